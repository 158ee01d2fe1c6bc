package domain

// Pagination defaults for list endpoints.
const (
	DefaultFrom = 0
	DefaultSize = 10
)

// PageRequest holds from/size pagination parameters for list queries.
type PageRequest struct {
	From int
	Size int
}

// NewPageRequest returns a PageRequest, substituting the default size for non-positive values.
func NewPageRequest(from, size int) PageRequest {
	if from < 0 {
		from = DefaultFrom
	}
	if size <= 0 {
		size = DefaultSize
	}
	return PageRequest{From: from, Size: size}
}

// Offset returns the row offset of the page that contains From.
// Pages are aligned to Size: from=15,size=10 reads rows 10..19.
func (p PageRequest) Offset() int {
	if p.Size <= 0 || p.From <= 0 {
		return 0
	}
	return (p.From / p.Size) * p.Size
}

// Limit returns the page size.
func (p PageRequest) Limit() int {
	if p.Size <= 0 {
		return DefaultSize
	}
	return p.Size
}
