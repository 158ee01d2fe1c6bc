package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

type categoryService struct {
	categoryRepo   domain.CategoryRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewCategoryService creates a CategoryService. eventRepo guards deletion of
// categories that are still referenced.
func NewCategoryService(categoryRepo domain.CategoryRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.CategoryService {
	return &categoryService{
		categoryRepo:   categoryRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *categoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if err := s.checkNameFree(ctx, name, 0); err != nil {
		return nil, err
	}
	c := &domain.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category %d: %w", id, err)
	}
	name = strings.TrimSpace(name)
	if err := s.checkNameFree(ctx, name, id); err != nil {
		return nil, err
	}
	c.Name = name
	if err := s.categoryRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// checkNameFree fails with ErrConflict when another category already uses name.
func (s *categoryService) checkNameFree(ctx context.Context, name string, selfID int64) error {
	existing, err := s.categoryRepo.GetByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check category name: %w", err)
	case existing.ID != selfID:
		return fmt.Errorf("%w: category name %q is already taken", domain.ErrConflict, name)
	}
	return nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("category %d: %w", id, err)
	}
	inUse, err := s.eventRepo.ExistsByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("check category usage: %w", err)
	}
	if inUse {
		return fmt.Errorf("%w: category %d is used by events", domain.ErrConflict, id)
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category %d: %w", id, err)
	}
	return c, nil
}

func (s *categoryService) List(ctx context.Context, page domain.PageRequest) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cats, err := s.categoryRepo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}
