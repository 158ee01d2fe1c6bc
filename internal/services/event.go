package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"explorewithme/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	categoryRepo   domain.CategoryRepository
	userRepo       domain.UserRepository
	tx             domain.Transactor
	stats          domain.StatsClient
	notifier       domain.Notifier
	enricher       *eventEnricher
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEventService wires the event lifecycle. stats and notifier may be nil.
func NewEventService(eventRepo domain.EventRepository,
	categoryRepo domain.CategoryRepository,
	userRepo domain.UserRepository,
	requestRepo domain.RequestRepository,
	tx domain.Transactor,
	stats domain.StatsClient,
	notifier domain.Notifier,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		categoryRepo:   categoryRepo,
		userRepo:       userRepo,
		tx:             tx,
		stats:          stats,
		notifier:       notifier,
		enricher:       &eventEnricher{requestRepo: requestRepo, stats: stats, logger: logger},
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, userID int64, in domain.NewEvent) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	if in.EventDate.Before(now.Add(domain.MinLeadTime)) {
		return nil, fmt.Errorf("%w: event date must be at least %s from now", domain.ErrValidation, domain.MinLeadTime)
	}
	user, err := requireUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("category %d: %w", in.CategoryID, err)
	}

	e := &domain.Event{
		Annotation:        in.Annotation,
		Category:          *category,
		CreatedOn:         domain.NewDateTime(now),
		Description:       in.Description,
		EventDate:         domain.NewDateTime(in.EventDate),
		Initiator:         user.Short(),
		Location:          domain.Location{Lat: in.Location.Lat, Lon: in.Location.Lon},
		RequestModeration: true,
		State:             domain.EventStatePending,
		Title:             in.Title,
	}
	if in.Paid != nil {
		e.Paid = *in.Paid
	}
	if in.ParticipantLimit != nil {
		e.ParticipantLimit = *in.ParticipantLimit
	}
	if in.RequestModeration != nil {
		e.RequestModeration = *in.RequestModeration
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.eventRepo.Create(ctx, e)
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.logger.InfoContext(ctx, "event created", "event_id", e.ID, "initiator_id", userID)
	return e.Full(0, 0), nil
}

func (s *eventService) ListInitiatorEvents(ctx context.Context, userID int64, page domain.PageRequest) ([]*domain.EventShort, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByInitiator(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return s.enricher.short(ctx, events, true)
}

func (s *eventService) GetInitiatorEvent(ctx context.Context, userID, eventID int64) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", eventID, err)
	}
	if err := checkInitiator(e, userID); err != nil {
		return nil, err
	}
	return s.enricher.one(ctx, e, true)
}

func checkInitiator(e *domain.Event, userID int64) error {
	if e.Initiator.ID != userID {
		return fmt.Errorf("%w: user %d is not the initiator of event %d", domain.ErrConflict, userID, e.ID)
	}
	return nil
}

func (s *eventService) UpdateByInitiator(ctx context.Context, userID, eventID int64, patch domain.EventPatch) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	if patch.EventDate != nil && patch.EventDate.Before(now) {
		return nil, fmt.Errorf("%w: new event date is in the past", domain.ErrValidation)
	}

	var updated *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
			return err
		}
		e, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return fmt.Errorf("event %d: %w", eventID, err)
		}
		if err := checkInitiator(e, userID); err != nil {
			return err
		}
		if err := e.CheckInitiatorEditable(now); err != nil {
			return err
		}
		category, err := s.resolveCategory(ctx, patch)
		if err != nil {
			return err
		}
		patch.Apply(e, category)
		if patch.StateAction != nil {
			if err := e.ApplyInitiatorAction(*patch.StateAction); err != nil {
				return err
			}
		}
		if err := s.eventRepo.Update(ctx, e); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "event updated by initiator", "event_id", eventID, "state", updated.State)
	return s.enricher.one(ctx, updated, true)
}

func (s *eventService) resolveCategory(ctx context.Context, patch domain.EventPatch) (*domain.Category, error) {
	if patch.CategoryID == nil {
		return nil, nil
	}
	c, err := s.categoryRepo.GetByID(ctx, *patch.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("category %d: %w", *patch.CategoryID, err)
	}
	return c, nil
}

func (s *eventService) SearchAdmin(ctx context.Context, q domain.AdminEventSearch) ([]*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	states := make([]domain.EventState, 0, len(q.States))
	for _, name := range q.States {
		st, err := domain.ParseEventState(name)
		if err != nil {
			return nil, err
		}
		states = append(states, st)
	}
	start, end, err := domain.SearchRange(q.RangeStart, q.RangeEnd, s.now())
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.Search(ctx, domain.EventFilter{
		Users:      q.Users,
		States:     states,
		Categories: q.Categories,
		RangeStart: start,
		RangeEnd:   end,
	}, q.Page)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return s.enricher.full(ctx, events, true)
}

func (s *eventService) UpdateByAdmin(ctx context.Context, eventID int64, patch domain.EventPatch) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	if patch.EventDate != nil && patch.EventDate.Before(now) {
		return nil, fmt.Errorf("%w: new event date is in the past", domain.ErrValidation)
	}

	var updated *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		e, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return fmt.Errorf("event %d: %w", eventID, err)
		}
		if err := e.CheckAdminEditable(now); err != nil {
			return err
		}
		category, err := s.resolveCategory(ctx, patch)
		if err != nil {
			return err
		}
		patch.Apply(e, category)
		if patch.StateAction != nil {
			if err := e.ApplyAdminAction(*patch.StateAction, now); err != nil {
				return err
			}
		}
		if err := s.eventRepo.Update(ctx, e); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	if patch.StateAction != nil {
		s.logger.InfoContext(ctx, "event moderated", "event_id", eventID, "state", updated.State)
		s.notifyModerated(ctx, updated)
	}
	return s.enricher.one(ctx, updated, true)
}

// notifyModerated mails the initiator about an admin decision. Failures are logged.
func (s *eventService) notifyModerated(ctx context.Context, e *domain.Event) {
	if s.notifier == nil {
		return
	}
	initiator, err := s.userRepo.GetByID(ctx, e.Initiator.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "moderation notice skipped", "event_id", e.ID, "err", err)
		return
	}
	data := &domain.EventModeratedEmailData{
		Email:     initiator.Email,
		Name:      initiator.Name,
		EventID:   e.ID,
		Title:     e.Title,
		State:     e.State,
		EventDate: e.EventDate.Format(domain.DateTimeLayout),
	}
	if err := s.notifier.NotifyEventModerated(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "moderation notice failed", "event_id", e.ID, "err", err)
	}
}

func (s *eventService) SearchPublic(ctx context.Context, q domain.PublicEventSearch) ([]*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sortBy, err := domain.ParseEventSort(q.Sort)
	if err != nil {
		return nil, err
	}
	start, end, err := domain.SearchRange(q.RangeStart, q.RangeEnd, s.now())
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.Search(ctx, domain.EventFilter{
		Text:          q.Text,
		Categories:    q.Categories,
		Paid:          q.Paid,
		States:        []domain.EventState{domain.EventStatePublished},
		RangeStart:    start,
		RangeEnd:      end,
		OnlyAvailable: q.OnlyAvailable,
		OrderByDate:   sortBy == domain.EventSortEventDate,
	}, q.Page)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	full, err := s.enricher.full(ctx, events, true)
	if err != nil {
		return nil, err
	}
	if sortBy == domain.EventSortViews {
		sort.SliceStable(full, func(i, j int) bool { return full[i].Views < full[j].Views })
	}
	return full, nil
}

func (s *eventService) GetPublished(ctx context.Context, eventID int64) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", eventID, err)
	}
	if e.State != domain.EventStatePublished {
		return nil, fmt.Errorf("event %d: %w", eventID, domain.ErrNotFound)
	}
	return s.enricher.one(ctx, e, true)
}

func (s *eventService) RecordView(ctx context.Context, uri, ip string) {
	if s.stats == nil {
		return
	}
	hit := domain.EndpointHit{URI: uri, IP: ip, Timestamp: s.now()}
	if err := s.stats.RecordHit(ctx, hit); err != nil {
		s.logger.WarnContext(ctx, "hit not recorded", "uri", uri, "err", err)
	}
}
