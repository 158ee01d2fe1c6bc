package domain

import "context"

// User is a registered user. Name is unique.
// swagger:model User
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserShort is the user projection embedded in events.
type UserShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewUser returns a new User. ID is set by the repository on create.
func NewUser(name, email string) *User {
	return &User{Name: name, Email: email}
}

// Short returns the embedded projection of u.
func (u *User) Short() UserShort {
	return UserShort{ID: u.ID, Name: u.Name}
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// List returns users with the given ids, or all users when ids is empty, ordered by id.
	List(ctx context.Context, ids []int64, page PageRequest) ([]*User, error)
	Delete(ctx context.Context, id int64) error
}

// UserService defines the admin operations on the user registry.
type UserService interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context, ids []int64, page PageRequest) ([]*User, error)
	Delete(ctx context.Context, id int64) error
}
