package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

// ApiError is the error body of every failed request.
// swagger:model ApiError
type ApiError struct {
	Status    string          `json:"status" example:"404 NOT_FOUND"`
	Reason    string          `json:"reason" example:"NOT_FOUND"`
	Message   string          `json:"message" example:"event 7: not found"`
	Timestamp domain.DateTime `json:"timestamp" swaggertype:"string" example:"2026-05-10 12:00:00"`
}

// reasonName turns a status code into its upper snake case name, e.g. 404 -> NOT_FOUND.
func reasonName(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes data.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteNoContent writes 204 with an empty body.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteJSONError writes an ApiError with the given status and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	reason := reasonName(statusCode)
	WriteJSON(w, statusCode, ApiError{
		Status:    fmt.Sprintf("%d %s", statusCode, reason),
		Reason:    reason,
		Message:   message,
		Timestamp: domain.NewDateTime(time.Now()),
	})
}

// StatusFor maps a service error onto an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// WriteServiceError renders err as an ApiError. Client errors are logged at
// INFO, everything else at ERROR with an opaque message unless it is a known
// configuration error.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusFor(err)
	if status < http.StatusInternalServerError {
		logger.InfoContext(r.Context(), "request rejected", "path", r.URL.Path, "method", r.Method, "status", status, "err", err)
		WriteJSONError(w, status, err.Error())
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	msg := "internal server error"
	if errors.Is(err, domain.ErrModerationNotConfigured) {
		msg = err.Error()
	}
	WriteJSONError(w, status, msg)
}
