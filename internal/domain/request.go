package domain

import (
	"context"
	"fmt"
)

// RequestStatus is the status of a participation request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusConfirmed RequestStatus = "CONFIRMED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCanceled  RequestStatus = "CANCELED"
)

// ParseModerationTarget accepts the statuses an initiator may assign in bulk.
func ParseModerationTarget(s string) (RequestStatus, error) {
	switch st := RequestStatus(s); st {
	case RequestStatusConfirmed, RequestStatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("%w: status must be CONFIRMED or REJECTED, got %q", ErrValidation, s)
}

// ParticipationRequest is a user's request to attend an event.
// swagger:model ParticipationRequest
type ParticipationRequest struct {
	ID        int64         `json:"id"`
	Requester int64         `json:"requester"`
	Event     int64         `json:"event"`
	Status    RequestStatus `json:"status"`
	Created   DateTime      `json:"created"`
}

// RequestStatusUpdate is the initiator's bulk moderation input.
type RequestStatusUpdate struct {
	RequestIDs []int64
	Status     RequestStatus
}

// RequestStatusUpdateResult lists the requests confirmed and rejected by a bulk update.
// swagger:model RequestStatusUpdateResult
type RequestStatusUpdateResult struct {
	ConfirmedRequests []*ParticipationRequest `json:"confirmedRequests"`
	RejectedRequests  []*ParticipationRequest `json:"rejectedRequests"`
}

// ModerateBatch assigns statuses to pending requests in input order. For a
// CONFIRM batch each request is confirmed while capacity remains; once the
// limit is reached the rest of the batch is rejected. limit 0 is unlimited.
// The requests are mutated in place.
func ModerateBatch(limit int, confirmed int64, target RequestStatus, reqs []*ParticipationRequest) *RequestStatusUpdateResult {
	res := &RequestStatusUpdateResult{
		ConfirmedRequests: []*ParticipationRequest{},
		RejectedRequests:  []*ParticipationRequest{},
	}
	for _, r := range reqs {
		if target == RequestStatusConfirmed && (limit == 0 || confirmed < int64(limit)) {
			r.Status = RequestStatusConfirmed
			confirmed++
			res.ConfirmedRequests = append(res.ConfirmedRequests, r)
			continue
		}
		r.Status = RequestStatusRejected
		res.RejectedRequests = append(res.RejectedRequests, r)
	}
	return res
}

// RequestRepository defines the interface for participation request storage.
type RequestRepository interface {
	Create(ctx context.Context, r *ParticipationRequest) error
	GetByID(ctx context.Context, id int64) (*ParticipationRequest, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*ParticipationRequest, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*ParticipationRequest, error)
	// ListByIDs returns the requests in the order of ids; unknown ids are skipped.
	ListByIDs(ctx context.Context, ids []int64) ([]*ParticipationRequest, error)
	ExistsByRequester(ctx context.Context, requesterID int64) (bool, error)
	ExistsByRequesterAndEvent(ctx context.Context, requesterID, eventID int64) (bool, error)
	CountConfirmed(ctx context.Context, eventID int64) (int64, error)
	// CountConfirmedByEventIDs returns confirmed counts keyed by event id. Events without
	// confirmed requests are absent from the map.
	CountConfirmedByEventIDs(ctx context.Context, eventIDs []int64) (map[int64]int64, error)
	UpdateStatus(ctx context.Context, ids []int64, status RequestStatus) error
}

// RequestService defines participation request operations.
type RequestService interface {
	Create(ctx context.Context, userID, eventID int64) (*ParticipationRequest, error)
	ListByRequester(ctx context.Context, userID int64) ([]*ParticipationRequest, error)
	Cancel(ctx context.Context, userID, requestID int64) (*ParticipationRequest, error)
	ListForEvent(ctx context.Context, userID, eventID int64) ([]*ParticipationRequest, error)
	UpdateStatuses(ctx context.Context, userID, eventID int64, upd RequestStatusUpdate) (*RequestStatusUpdateResult, error)
}
