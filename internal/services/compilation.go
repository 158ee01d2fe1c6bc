package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"explorewithme/internal/domain"
)

type compilationService struct {
	compilationRepo domain.CompilationRepository
	eventRepo       domain.EventRepository
	tx              domain.Transactor
	enricher        *eventEnricher
	contextTimeout  time.Duration
}

// NewCompilationService creates a CompilationService. stats may be nil.
func NewCompilationService(compilationRepo domain.CompilationRepository,
	eventRepo domain.EventRepository,
	requestRepo domain.RequestRepository,
	tx domain.Transactor,
	stats domain.StatsClient,
	logger *slog.Logger,
	timeout time.Duration,
) domain.CompilationService {
	return &compilationService{
		compilationRepo: compilationRepo,
		eventRepo:       eventRepo,
		tx:              tx,
		enricher:        &eventEnricher{requestRepo: requestRepo, stats: stats, logger: logger},
		contextTimeout:  timeout,
	}
}

func (s *compilationService) Create(ctx context.Context, in domain.NewCompilation) (*domain.CompilationView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByIDs(ctx, uniqueIDs(in.Events))
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	c := &domain.Compilation{Title: in.Title, Pinned: in.Pinned, EventIDs: eventIDs(events)}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.compilationRepo.Create(ctx, c)
	})
	if err != nil {
		return nil, fmt.Errorf("create compilation: %w", err)
	}
	return s.view(ctx, c, events, true)
}

func (s *compilationService) Update(ctx context.Context, id int64, patch domain.CompilationPatch) (*domain.CompilationView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var c *domain.Compilation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.compilationRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("compilation %d: %w", id, err)
		}
		if patch.Events != nil {
			found, err := s.eventRepo.ListByIDs(ctx, uniqueIDs(*patch.Events))
			if err != nil {
				return fmt.Errorf("load events: %w", err)
			}
			existing := eventIDs(found)
			patch.Events = &existing
		}
		patch.Apply(c)
		if err := s.compilationRepo.Update(ctx, c); err != nil {
			return fmt.Errorf("update compilation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByIDs(ctx, c.EventIDs)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return s.view(ctx, c, events, true)
}

func (s *compilationService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.compilationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete compilation %d: %w", id, err)
	}
	return nil
}

func (s *compilationService) GetByID(ctx context.Context, id int64) (*domain.CompilationView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.compilationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("compilation %d: %w", id, err)
	}
	events, err := s.eventRepo.ListByIDs(ctx, c.EventIDs)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return s.view(ctx, c, events, true)
}

// List resolves the events of the whole page with one query and one stats call.
func (s *compilationService) List(ctx context.Context, pinned *bool, page domain.PageRequest) ([]*domain.CompilationView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	comps, err := s.compilationRepo.List(ctx, pinned, page)
	if err != nil {
		return nil, fmt.Errorf("list compilations: %w", err)
	}
	var all []int64
	for _, c := range comps {
		all = append(all, c.EventIDs...)
	}
	events, err := s.eventRepo.ListByIDs(ctx, uniqueIDs(all))
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	shorts, err := s.enricher.short(ctx, events, false)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.EventShort, len(shorts))
	for _, e := range shorts {
		byID[e.ID] = e
	}

	out := make([]*domain.CompilationView, 0, len(comps))
	for _, c := range comps {
		out = append(out, assemble(c, byID))
	}
	return out, nil
}

func (s *compilationService) view(ctx context.Context, c *domain.Compilation, events []*domain.Event, unique bool) (*domain.CompilationView, error) {
	shorts, err := s.enricher.short(ctx, events, unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.EventShort, len(shorts))
	for _, e := range shorts {
		byID[e.ID] = e
	}
	return assemble(c, byID), nil
}

func assemble(c *domain.Compilation, byID map[int64]*domain.EventShort) *domain.CompilationView {
	v := &domain.CompilationView{ID: c.ID, Title: c.Title, Pinned: c.Pinned, Events: []*domain.EventShort{}}
	for _, id := range c.EventIDs {
		if e, ok := byID[id]; ok {
			v.Events = append(v.Events, e)
		}
	}
	return v
}

func eventIDs(events []*domain.Event) []int64 {
	out := make([]int64, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
