package domain

import "context"

// Comment is a user's comment on a published event.
// swagger:model Comment
type Comment struct {
	ID          int64     `json:"id"`
	AuthorID    int64     `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	EventID     int64     `json:"eventId"`
	Text        string    `json:"text"`
	CreatedDate DateTime  `json:"createdDate"`
	UpdatedDate *DateTime `json:"updatedDate"`
}

// CommentRepository defines the interface for comment storage.
type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	// Update stores text and updated date.
	Update(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	Delete(ctx context.Context, id int64) error
	// ListByAuthor returns the author's comments ordered by creation time,
	// oldest first when asc is true.
	ListByAuthor(ctx context.Context, authorID int64, asc bool, page PageRequest) ([]*Comment, error)
	ListByEvent(ctx context.Context, eventID int64, page PageRequest) ([]*Comment, error)
}

// CommentService defines comment operations.
type CommentService interface {
	Add(ctx context.Context, userID, eventID int64, text string) (*Comment, error)
	Update(ctx context.Context, userID, commentID int64, text string) (*Comment, error)
	Delete(ctx context.Context, userID, commentID int64) error
	DeleteByAdmin(ctx context.Context, commentID int64) error
	GetByID(ctx context.Context, commentID int64) (*Comment, error)
	ListByAuthor(ctx context.Context, userID int64, asc bool, page PageRequest) ([]*Comment, error)
	ListByEvent(ctx context.Context, eventID int64, page PageRequest) ([]*Comment, error)
}
