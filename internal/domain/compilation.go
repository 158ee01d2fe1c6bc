package domain

import "context"

// Compilation is a curated, possibly pinned, list of events.
type Compilation struct {
	ID       int64
	Title    string
	Pinned   bool
	EventIDs []int64
}

// CompilationView is the compilation with its events resolved to short views.
// swagger:model Compilation
type CompilationView struct {
	ID     int64         `json:"id"`
	Title  string        `json:"title"`
	Pinned bool          `json:"pinned"`
	Events []*EventShort `json:"events"`
}

// NewCompilation is the input of compilation creation. Events may be empty.
type NewCompilation struct {
	Title  string
	Pinned bool
	Events []int64
}

// CompilationPatch is a partial update. A non-nil Events replaces the whole event set.
type CompilationPatch struct {
	Title  *string
	Pinned *bool
	Events *[]int64
}

// Apply merges the present fields of p into c.
func (p CompilationPatch) Apply(c *Compilation) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Pinned != nil {
		c.Pinned = *p.Pinned
	}
	if p.Events != nil {
		c.EventIDs = append([]int64(nil), (*p.Events)...)
	}
}

// CompilationRepository defines the interface for compilation storage.
type CompilationRepository interface {
	Create(ctx context.Context, c *Compilation) error
	// Update stores title and pinned and replaces the event set.
	Update(ctx context.Context, c *Compilation) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Compilation, error)
	// List filters by pinned when it is non-nil.
	List(ctx context.Context, pinned *bool, page PageRequest) ([]*Compilation, error)
}

// CompilationService defines compilation operations.
type CompilationService interface {
	Create(ctx context.Context, in NewCompilation) (*CompilationView, error)
	Update(ctx context.Context, id int64, patch CompilationPatch) (*CompilationView, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*CompilationView, error)
	List(ctx context.Context, pinned *bool, page PageRequest) ([]*CompilationView, error)
}
