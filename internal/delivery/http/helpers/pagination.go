package helpers

import (
	"fmt"
	"net/http"
	"strconv"

	"explorewithme/internal/domain"
)

// ParsePagination reads from and size from the query string. Missing values
// fall back to from=0, size=10; a negative from or non-positive size is a
// validation error.
func ParsePagination(r *http.Request) (domain.PageRequest, error) {
	from := domain.DefaultFrom
	if s := r.URL.Query().Get("from"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return domain.PageRequest{}, fmt.Errorf("%w: from must be a non-negative integer", domain.ErrValidation)
		}
		from = v
	}
	size := domain.DefaultSize
	if s := r.URL.Query().Get("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return domain.PageRequest{}, fmt.Errorf("%w: size must be a positive integer", domain.ErrValidation)
		}
		size = v
	}
	return domain.NewPageRequest(from, size), nil
}
