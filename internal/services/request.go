package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"explorewithme/internal/domain"
)

// RequestUniqueness selects the scope of duplicate-request detection.
type RequestUniqueness string

const (
	// UniquePerEvent allows one request per (requester, event) pair.
	UniquePerEvent RequestUniqueness = "event"
	// UniquePerRequester allows one request per requester across all events.
	UniquePerRequester RequestUniqueness = "requester"
)

type requestService struct {
	requestRepo    domain.RequestRepository
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	tx             domain.Transactor
	notifier       domain.Notifier
	uniqueness     RequestUniqueness
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewRequestService creates a RequestService. notifier may be nil.
func NewRequestService(requestRepo domain.RequestRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	tx domain.Transactor,
	notifier domain.Notifier,
	uniqueness RequestUniqueness,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RequestService {
	if uniqueness != UniquePerRequester {
		uniqueness = UniquePerEvent
	}
	return &requestService{
		requestRepo:    requestRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		tx:             tx,
		notifier:       notifier,
		uniqueness:     uniqueness,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *requestService) Create(ctx context.Context, userID, eventID int64) (*domain.ParticipationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var req *domain.ParticipationRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
			return err
		}
		e, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return fmt.Errorf("event %d: %w", eventID, err)
		}
		if err := s.checkDuplicate(ctx, userID, eventID); err != nil {
			return err
		}
		if e.Initiator.ID == userID {
			return fmt.Errorf("%w: the initiator cannot request participation in own event", domain.ErrConflict)
		}
		if e.State != domain.EventStatePublished {
			return fmt.Errorf("%w: event %d is not published", domain.ErrConflict, eventID)
		}
		confirmed, err := s.requestRepo.CountConfirmed(ctx, eventID)
		if err != nil {
			return fmt.Errorf("count confirmed requests: %w", err)
		}
		if !e.HasFreeSlots(confirmed) {
			return fmt.Errorf("%w: participant limit of event %d is reached", domain.ErrConflict, eventID)
		}
		req = &domain.ParticipationRequest{
			Requester: userID,
			Event:     eventID,
			Status:    e.InitialRequestStatus(),
			Created:   domain.NewDateTime(s.now()),
		}
		if err := s.requestRepo.Create(ctx, req); err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "participation requested", "request_id", req.ID, "event_id", eventID, "status", req.Status)
	return req, nil
}

func (s *requestService) checkDuplicate(ctx context.Context, userID, eventID int64) error {
	var (
		exists bool
		err    error
	)
	if s.uniqueness == UniquePerRequester {
		exists, err = s.requestRepo.ExistsByRequester(ctx, userID)
	} else {
		exists, err = s.requestRepo.ExistsByRequesterAndEvent(ctx, userID, eventID)
	}
	if err != nil {
		return fmt.Errorf("check duplicate request: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: user %d already has a participation request", domain.ErrConflict, userID)
	}
	return nil
}

func (s *requestService) ListByRequester(ctx context.Context, userID int64) ([]*domain.ParticipationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	reqs, err := s.requestRepo.ListByRequester(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return reqs, nil
}

func (s *requestService) Cancel(ctx context.Context, userID, requestID int64) (*domain.ParticipationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var req *domain.ParticipationRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
			return err
		}
		r, err := s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("request %d: %w", requestID, err)
		}
		if r.Requester != userID {
			return fmt.Errorf("%w: request %d belongs to another user", domain.ErrConflict, requestID)
		}
		if err := s.requestRepo.UpdateStatus(ctx, []int64{r.ID}, domain.RequestStatusCanceled); err != nil {
			return fmt.Errorf("cancel request: %w", err)
		}
		r.Status = domain.RequestStatusCanceled
		req = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (s *requestService) ListForEvent(ctx context.Context, userID, eventID int64) ([]*domain.ParticipationRequest, error) {
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
	reqs, err := s.requestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event requests: %w", err)
	}
	return reqs, nil
}

// UpdateStatuses confirms or rejects pending requests of the initiator's event.
// The event row stays locked until the batch is stored, so concurrent batches
// see each other's confirmations.
func (s *requestService) UpdateStatuses(ctx context.Context, userID, eventID int64, upd domain.RequestStatusUpdate) (*domain.RequestStatusUpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if upd.Status != domain.RequestStatusConfirmed && upd.Status != domain.RequestStatusRejected {
		return nil, fmt.Errorf("%w: status must be CONFIRMED or REJECTED", domain.ErrValidation)
	}
	ids := uniqueIDs(upd.RequestIDs)

	var (
		res   *domain.RequestStatusUpdateResult
		event *domain.Event
	)
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
		if !e.RequestModeration || e.ParticipantLimit == 0 {
			return fmt.Errorf("event %d: %w", eventID, domain.ErrModerationNotConfigured)
		}

		reqs, err := s.requestRepo.ListByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("load requests: %w", err)
		}
		if len(reqs) != len(ids) {
			return fmt.Errorf("%w: some requests do not exist", domain.ErrNotFound)
		}
		for _, r := range reqs {
			if r.Event != eventID {
				return fmt.Errorf("%w: request %d does not belong to event %d", domain.ErrNotFound, r.ID, eventID)
			}
			if r.Status != domain.RequestStatusPending {
				return fmt.Errorf("%w: request %d is %s, only pending requests can be moderated", domain.ErrConflict, r.ID, r.Status)
			}
		}

		confirmed, err := s.requestRepo.CountConfirmed(ctx, eventID)
		if err != nil {
			return fmt.Errorf("count confirmed requests: %w", err)
		}
		if upd.Status == domain.RequestStatusConfirmed && !e.HasFreeSlots(confirmed) {
			return fmt.Errorf("%w: participant limit of event %d is reached", domain.ErrConflict, eventID)
		}

		res = domain.ModerateBatch(e.ParticipantLimit, confirmed, upd.Status, reqs)
		if err := s.requestRepo.UpdateStatus(ctx, requestIDs(res.ConfirmedRequests), domain.RequestStatusConfirmed); err != nil {
			return fmt.Errorf("confirm requests: %w", err)
		}
		if err := s.requestRepo.UpdateStatus(ctx, requestIDs(res.RejectedRequests), domain.RequestStatusRejected); err != nil {
			return fmt.Errorf("reject requests: %w", err)
		}
		event = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "requests moderated", "event_id", eventID,
		"confirmed", len(res.ConfirmedRequests), "rejected", len(res.RejectedRequests))
	s.notifyRequesters(ctx, event, res)
	return res, nil
}

func requestIDs(reqs []*domain.ParticipationRequest) []int64 {
	out := make([]int64, len(reqs))
	for i, r := range reqs {
		out[i] = r.ID
	}
	return out
}

// notifyRequesters mails every moderated requester. Failures are logged.
func (s *requestService) notifyRequesters(ctx context.Context, e *domain.Event, res *domain.RequestStatusUpdateResult) {
	if s.notifier == nil {
		return
	}
	all := append(append([]*domain.ParticipationRequest{}, res.ConfirmedRequests...), res.RejectedRequests...)
	for _, r := range all {
		u, err := s.userRepo.GetByID(ctx, r.Requester)
		if err != nil {
			s.logger.WarnContext(ctx, "request notice skipped", "request_id", r.ID, "err", err)
			continue
		}
		data := &domain.RequestStatusEmailData{
			Email:      u.Email,
			Name:       u.Name,
			RequestID:  r.ID,
			EventID:    e.ID,
			EventTitle: e.Title,
			Status:     r.Status,
		}
		if err := s.notifier.NotifyRequestStatus(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "request notice failed", "request_id", r.ID, "err", err)
		}
	}
}
