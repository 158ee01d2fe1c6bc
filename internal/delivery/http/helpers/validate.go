package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator is implemented by request DTOs with rules the struct tags cannot express.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateStruct runs the struct tag rules and the Validator hook of dest.
// It returns nil or a message listing every violation.
func ValidateStruct(dest any) error {
	var msgs []string
	if err := structValidator().Struct(dest); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
	}
	if v, ok := dest.(Validator); ok {
		msgs = append(msgs, v.Validate()...)
	}
	if len(msgs) > 0 {
		return errors.New(strings.Join(msgs, "; "))
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must use the format %q", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed rule %s=%s", field, fe.Tag(), fe.Param())
	}
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and validates it. On failure it writes a 400 ApiError and returns false.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
		return false
	}
	if err := ValidateStruct(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
