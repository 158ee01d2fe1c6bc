package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

type userService struct {
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

// NewUserService creates a UserService for the admin user registry.
func NewUserService(userRepo domain.UserRepository, timeout time.Duration) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		contextTimeout: timeout,
	}
}

func (s *userService) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	exists, err := s.userRepo.ExistsByName(ctx, user.Name)
	if err != nil {
		return fmt.Errorf("check user name: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: user name %q is already taken", domain.ErrConflict, user.Name)
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *userService) List(ctx context.Context, ids []int64, page domain.PageRequest) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	users, err := s.userRepo.List(ctx, ids, page)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

// requireUser resolves a user id, wrapping ErrNotFound with the id.
func requireUser(ctx context.Context, repo domain.UserRepository, id int64) (*domain.User, error) {
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	return u, nil
}
