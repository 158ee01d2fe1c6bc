package helpers

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

// PathID parses the named path value as a positive id.
func PathID(r *http.Request, name string) (int64, error) {
	s := r.PathValue(name)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrValidation, name, s)
	}
	return id, nil
}

// QueryID parses a required positive id from the query string.
func QueryID(r *http.Request, name string) (int64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, fmt.Errorf("%w: query parameter %s is required", domain.ErrValidation, name)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrValidation, name, s)
	}
	return id, nil
}

// QueryList returns the values of a list parameter given either as repeated
// keys or comma separated.
func QueryList(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// QueryIDs parses a list parameter of ids.
func QueryIDs(r *http.Request, name string) ([]int64, error) {
	values := QueryList(r, name)
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s contains a non-numeric id %q", domain.ErrValidation, name, v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// QueryBool parses an optional boolean parameter; nil means absent.
func QueryBool(r *http.Request, name string) (*bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrValidation, name)
	}
	return &b, nil
}

// QueryDateTime parses an optional "2006-01-02 15:04:05" parameter; nil means absent.
func QueryDateTime(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	t, err := domain.ParseDateTime(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must use the format %q", domain.ErrValidation, name, domain.DateTimeLayout)
	}
	return &t, nil
}

// ClientIP returns the host part of the connection's remote address.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
