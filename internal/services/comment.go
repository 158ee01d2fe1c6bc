package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

type commentService struct {
	commentRepo    domain.CommentRepository
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
	now            func() time.Time
}

func NewCommentService(commentRepo domain.CommentRepository, eventRepo domain.EventRepository, userRepo domain.UserRepository, timeout time.Duration) domain.CommentService {
	return &commentService{
		commentRepo:    commentRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *commentService) Add(ctx context.Context, userID, eventID int64, text string) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	author, err := requireUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("event %d: %w", eventID, err)
	}
	c := &domain.Comment{
		AuthorID:    author.ID,
		AuthorName:  author.Name,
		EventID:     eventID,
		Text:        text,
		CreatedDate: domain.NewDateTime(s.now()),
	}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

// ownComment loads a comment and checks that userID wrote it.
func (s *commentService) ownComment(ctx context.Context, userID, commentID int64) (*domain.Comment, error) {
	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("comment %d: %w", commentID, err)
	}
	if c.AuthorID != userID {
		return nil, fmt.Errorf("%w: comment %d belongs to another user", domain.ErrConflict, commentID)
	}
	return c, nil
}

// Update replaces the text when it is non-blank and stamps the edit time.
func (s *commentService) Update(ctx context.Context, userID, commentID int64, text string) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.ownComment(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) != "" {
		c.Text = text
	}
	updated := domain.NewDateTime(s.now())
	c.UpdatedDate = &updated
	if err := s.commentRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, userID, commentID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownComment(ctx, userID, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *commentService) DeleteByAdmin(ctx context.Context, commentID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	return nil
}

func (s *commentService) GetByID(ctx context.Context, commentID int64) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("comment %d: %w", commentID, err)
	}
	return c, nil
}

func (s *commentService) ListByAuthor(ctx context.Context, userID int64, asc bool, page domain.PageRequest) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByAuthor(ctx, userID, asc, page)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) ListByEvent(ctx context.Context, eventID int64, page domain.PageRequest) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("event %d: %w", eventID, err)
	}
	comments, err := s.commentRepo.ListByEvent(ctx, eventID, page)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
