package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EventState is the publication state of an event.
type EventState string

const (
	EventStatePending   EventState = "PENDING"
	EventStatePublished EventState = "PUBLISHED"
	EventStateRejected  EventState = "REJECTED"
	EventStateCanceled  EventState = "CANCELED"
)

// ParseEventState converts an exact state name. Anything else is a validation error.
func ParseEventState(s string) (EventState, error) {
	switch st := EventState(s); st {
	case EventStatePending, EventStatePublished, EventStateRejected, EventStateCanceled:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown event state %q", ErrValidation, s)
}

// StateAction is a requested transition of an event's state.
type StateAction string

const (
	// Initiator actions.
	StateActionSendToReview StateAction = "SEND_TO_REVIEW"
	StateActionCancelReview StateAction = "CANCEL_REVIEW"
	// Admin actions.
	StateActionPublish StateAction = "PUBLISH_EVENT"
	StateActionReject  StateAction = "REJECT_EVENT"
)

// Lead times enforced by the lifecycle.
const (
	// MinLeadTime is how far ahead an event must be when it is created or
	// edited by its initiator.
	MinLeadTime = 2 * time.Hour
	// MinPublishLeadTime is how far ahead an event must be when an admin moderates it.
	MinPublishLeadTime = 1 * time.Hour
)

// Location is the place of an event. A new row is stored for every create or
// location change; rows are never shared between events.
// swagger:model Location
type Location struct {
	ID  int64   `json:"-"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Event is the stored event aggregate.
// swagger:model Event
type Event struct {
	ID                int64      `json:"id"`
	Annotation        string     `json:"annotation"`
	Category          Category   `json:"category"`
	CreatedOn         DateTime   `json:"createdOn"`
	Description       string     `json:"description"`
	EventDate         DateTime   `json:"eventDate"`
	Initiator         UserShort  `json:"initiator"`
	Location          Location   `json:"location"`
	Paid              bool       `json:"paid"`
	ParticipantLimit  int        `json:"participantLimit"`
	PublishedOn       *DateTime  `json:"publishedOn"`
	RequestModeration bool       `json:"requestModeration"`
	State             EventState `json:"state"`
	Title             string     `json:"title"`
}

// EventURI is the stats key of the public event page.
func EventURI(id int64) string {
	return "/events/" + strconv.FormatInt(id, 10)
}

// URI returns the stats key of e.
func (e *Event) URI() string {
	return EventURI(e.ID)
}

// HasFreeSlots reports whether another request can be confirmed given the
// current confirmed count. A zero limit means unlimited.
func (e *Event) HasFreeSlots(confirmed int64) bool {
	return e.ParticipantLimit == 0 || confirmed < int64(e.ParticipantLimit)
}

// InitialRequestStatus is the status a new participation request gets.
func (e *Event) InitialRequestStatus() RequestStatus {
	if !e.RequestModeration || e.ParticipantLimit == 0 {
		return RequestStatusConfirmed
	}
	return RequestStatusPending
}

// CheckInitiatorEditable enforces the preconditions of an initiator update:
// the event must still be at least MinLeadTime away and not yet published or canceled.
func (e *Event) CheckInitiatorEditable(now time.Time) error {
	if e.EventDate.Before(now.Add(MinLeadTime)) {
		return fmt.Errorf("%w: event date %s is less than %s away", ErrValidation, e.EventDate.Format(DateTimeLayout), MinLeadTime)
	}
	if e.State != EventStatePending && e.State != EventStateRejected {
		return fmt.Errorf("%w: only pending or rejected events can be changed", ErrConflict)
	}
	return nil
}

// CheckAdminEditable enforces the preconditions of an admin update: the event
// must be pending and at least MinPublishLeadTime away.
func (e *Event) CheckAdminEditable(now time.Time) error {
	if e.EventDate.Before(now.Add(MinPublishLeadTime)) {
		return fmt.Errorf("%w: event date must be at least %s after publication", ErrConflict, MinPublishLeadTime)
	}
	if e.State != EventStatePending {
		return fmt.Errorf("%w: only pending events can be published or rejected", ErrConflict)
	}
	return nil
}

// ApplyInitiatorAction performs SEND_TO_REVIEW or CANCEL_REVIEW.
func (e *Event) ApplyInitiatorAction(a StateAction) error {
	if e.State != EventStatePending && e.State != EventStateRejected {
		return fmt.Errorf("%w: cannot %s an event in state %s", ErrConflict, a, e.State)
	}
	switch a {
	case StateActionSendToReview:
		e.State = EventStatePending
	case StateActionCancelReview:
		e.State = EventStateCanceled
	default:
		return fmt.Errorf("%w: state action %q is not allowed for the initiator", ErrValidation, a)
	}
	return nil
}

// ApplyAdminAction performs PUBLISH_EVENT or REJECT_EVENT.
func (e *Event) ApplyAdminAction(a StateAction, now time.Time) error {
	if err := e.CheckAdminEditable(now); err != nil {
		return err
	}
	switch a {
	case StateActionPublish:
		e.State = EventStatePublished
		published := NewDateTime(now)
		e.PublishedOn = &published
	case StateActionReject:
		e.State = EventStateRejected
	default:
		return fmt.Errorf("%w: state action %q is not allowed for an admin", ErrValidation, a)
	}
	return nil
}

// Full returns the enriched projection of e.
func (e *Event) Full(confirmed, views int64) *EventFull {
	return &EventFull{Event: *e, ConfirmedRequests: confirmed, Views: views}
}

// Short returns the list projection of e.
func (e *Event) Short(confirmed, views int64) *EventShort {
	return &EventShort{
		ID:                e.ID,
		Annotation:        e.Annotation,
		Category:          e.Category,
		ConfirmedRequests: confirmed,
		EventDate:         e.EventDate,
		Initiator:         e.Initiator,
		Paid:              e.Paid,
		Title:             e.Title,
		Views:             views,
	}
}

// EventFull is the event enriched with its confirmed-request count and view count.
// swagger:model EventFull
type EventFull struct {
	Event
	ConfirmedRequests int64 `json:"confirmedRequests"`
	Views             int64 `json:"views"`
}

// EventShort is the event projection used in lists and compilations.
// swagger:model EventShort
type EventShort struct {
	ID                int64     `json:"id"`
	Annotation        string    `json:"annotation"`
	Category          Category  `json:"category"`
	ConfirmedRequests int64     `json:"confirmedRequests"`
	EventDate         DateTime  `json:"eventDate"`
	Initiator         UserShort `json:"initiator"`
	Paid              bool      `json:"paid"`
	Title             string    `json:"title"`
	Views             int64     `json:"views"`
}

// NewEvent is the input of event creation.
type NewEvent struct {
	Annotation        string
	CategoryID        int64
	Description       string
	EventDate         time.Time
	Location          Location
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
	Title             string
}

// EventPatch is a partial update of an event. A nil field is absent and
// leaves the stored value untouched.
type EventPatch struct {
	Annotation        *string
	CategoryID        *int64
	Description       *string
	EventDate         *time.Time
	Location          *Location
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
	Title             *string
	StateAction       *StateAction
}

// Apply merges the present fields of p into e. category is the resolved
// category when p.CategoryID is set. A present location replaces the stored
// one with a new, unsaved row. The state action is not applied here.
func (p EventPatch) Apply(e *Event, category *Category) {
	if p.Annotation != nil {
		e.Annotation = *p.Annotation
	}
	if p.CategoryID != nil && category != nil {
		e.Category = *category
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.EventDate != nil {
		e.EventDate = NewDateTime(*p.EventDate)
	}
	if p.Location != nil {
		e.Location = Location{Lat: p.Location.Lat, Lon: p.Location.Lon}
	}
	if p.Paid != nil {
		e.Paid = *p.Paid
	}
	if p.ParticipantLimit != nil {
		e.ParticipantLimit = *p.ParticipantLimit
	}
	if p.RequestModeration != nil {
		e.RequestModeration = *p.RequestModeration
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
}

// EventSort is the ordering of public search results.
type EventSort string

const (
	EventSortNone      EventSort = ""
	EventSortEventDate EventSort = "EVENT_DATE"
	EventSortViews     EventSort = "VIEWS"
)

// ParseEventSort converts a sort name; empty means unsorted.
func ParseEventSort(s string) (EventSort, error) {
	switch st := EventSort(strings.ToUpper(strings.TrimSpace(s))); st {
	case EventSortNone, EventSortEventDate, EventSortViews:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown sort %q", ErrValidation, s)
}

// EventFilter is the storage-level search predicate. Empty slices and nil
// pointers do not filter.
type EventFilter struct {
	Text          string
	Categories    []int64
	Paid          *bool
	Users         []int64
	States        []EventState
	RangeStart    time.Time
	RangeEnd      time.Time
	OnlyAvailable bool
	OrderByDate   bool
}

// PublicEventSearch is the input of the public event search.
type PublicEventSearch struct {
	Text          string
	Categories    []int64
	Paid          *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	OnlyAvailable bool
	Sort          string
	Page          PageRequest
}

// AdminEventSearch is the input of the admin event search.
type AdminEventSearch struct {
	Users      []int64
	States     []string
	Categories []int64
	RangeStart *time.Time
	RangeEnd   *time.Time
	Page       PageRequest
}

// Default search window when the caller gives no bounds.
const (
	searchWindowPast   = 20
	searchWindowFuture = 100
)

// SearchRange resolves the caller's optional bounds against now.
// It fails with ErrValidation when end is not after start.
func SearchRange(start, end *time.Time, now time.Time) (time.Time, time.Time, error) {
	from := now.AddDate(-searchWindowPast, 0, 0)
	to := now.AddDate(searchWindowFuture, 0, 0)
	if start != nil {
		from = *start
	}
	if end != nil {
		to = *end
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: rangeEnd must be after rangeStart", ErrValidation)
	}
	return from, to, nil
}

// EventRepository defines the interface for event storage. Locations are
// persisted by the repository together with the event.
type EventRepository interface {
	// Create stores a new location row and the event.
	Create(ctx context.Context, e *Event) error
	// Update stores the mutable fields of e. A location with a zero ID is inserted as a new row.
	Update(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	// GetByIDForUpdate locks the event row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*Event, error)
	ListByInitiator(ctx context.Context, initiatorID int64, page PageRequest) ([]*Event, error)
	// ListByIDs returns the existing events among ids; unknown ids are skipped.
	ListByIDs(ctx context.Context, ids []int64) ([]*Event, error)
	Search(ctx context.Context, filter EventFilter, page PageRequest) ([]*Event, error)
	ExistsByCategory(ctx context.Context, categoryID int64) (bool, error)
}

// EventService defines the event lifecycle operations.
type EventService interface {
	CreateEvent(ctx context.Context, userID int64, in NewEvent) (*EventFull, error)
	ListInitiatorEvents(ctx context.Context, userID int64, page PageRequest) ([]*EventShort, error)
	GetInitiatorEvent(ctx context.Context, userID, eventID int64) (*EventFull, error)
	UpdateByInitiator(ctx context.Context, userID, eventID int64, patch EventPatch) (*EventFull, error)
	SearchAdmin(ctx context.Context, q AdminEventSearch) ([]*EventFull, error)
	UpdateByAdmin(ctx context.Context, eventID int64, patch EventPatch) (*EventFull, error)
	SearchPublic(ctx context.Context, q PublicEventSearch) ([]*EventFull, error)
	GetPublished(ctx context.Context, eventID int64) (*EventFull, error)
	// RecordView reports a public page view to the stats collaborator. Failures are logged, not returned.
	RecordView(ctx context.Context, uri, ip string)
}
