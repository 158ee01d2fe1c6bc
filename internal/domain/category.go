package domain

import "context"

// Category groups events. Name is unique.
// swagger:model Category
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Category, error)
	// GetByName returns ErrNotFound when no category has the name.
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context, page PageRequest) ([]*Category, error)
}

// CategoryService defines category registry operations.
type CategoryService interface {
	Create(ctx context.Context, name string) (*Category, error)
	Update(ctx context.Context, id int64, name string) (*Category, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context, page PageRequest) ([]*Category, error)
}
