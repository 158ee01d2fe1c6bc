package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// LocationRequest is the coordinates of an event.
type LocationRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

func (l *LocationRequest) toDomain() *domain.Location {
	if l == nil {
		return nil
	}
	return &domain.Location{Lat: l.Lat, Lon: l.Lon}
}

// NewEventRequest is the request body for POST /users/{userId}/events.
type NewEventRequest struct {
	Annotation        string           `json:"annotation" validate:"required,min=20,max=2000"`
	Category          int64            `json:"category" validate:"required,gt=0"`
	Description       string           `json:"description" validate:"required,min=20,max=7000"`
	EventDate         string           `json:"eventDate" validate:"required,datetime=2006-01-02 15:04:05" example:"2026-06-01 19:00:00"`
	Location          *LocationRequest `json:"location" validate:"required"`
	Paid              *bool            `json:"paid"`
	ParticipantLimit  *int             `json:"participantLimit" validate:"omitempty,gte=0"`
	RequestModeration *bool            `json:"requestModeration"`
	Title             string           `json:"title" validate:"required,min=3,max=120"`
}

// Validate implements Validator.
func (e NewEventRequest) Validate() []string {
	var errs []string
	for name, v := range map[string]string{"annotation": e.Annotation, "description": e.Description, "title": e.Title} {
		if v != "" && strings.TrimSpace(v) == "" {
			errs = append(errs, name+" must not be blank")
		}
	}
	return errs
}

func (e NewEventRequest) toDomain() (domain.NewEvent, error) {
	date, err := domain.ParseDateTime(e.EventDate)
	if err != nil {
		return domain.NewEvent{}, err
	}
	return domain.NewEvent{
		Annotation:        e.Annotation,
		CategoryID:        e.Category,
		Description:       e.Description,
		EventDate:         date,
		Location:          *e.Location.toDomain(),
		Paid:              e.Paid,
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		Title:             e.Title,
	}, nil
}

// UpdateEventUserRequest is the request body for PATCH /users/{userId}/events/{eventId}.
// Omitted fields are unchanged.
type UpdateEventUserRequest struct {
	Annotation        *string          `json:"annotation" validate:"omitempty,min=20,max=2000"`
	Category          *int64           `json:"category" validate:"omitempty,gt=0"`
	Description       *string          `json:"description" validate:"omitempty,min=20,max=7000"`
	EventDate         *string          `json:"eventDate" validate:"omitempty,datetime=2006-01-02 15:04:05"`
	Location          *LocationRequest `json:"location"`
	Paid              *bool            `json:"paid"`
	ParticipantLimit  *int             `json:"participantLimit" validate:"omitempty,gte=0"`
	RequestModeration *bool            `json:"requestModeration"`
	StateAction       *string          `json:"stateAction" validate:"omitempty,oneof=SEND_TO_REVIEW CANCEL_REVIEW"`
	Title             *string          `json:"title" validate:"omitempty,min=3,max=120"`
}

// UpdateEventAdminRequest is the request body for PATCH /admin/events/{eventId}.
type UpdateEventAdminRequest struct {
	Annotation        *string          `json:"annotation" validate:"omitempty,min=20,max=2000"`
	Category          *int64           `json:"category" validate:"omitempty,gt=0"`
	Description       *string          `json:"description" validate:"omitempty,min=20,max=7000"`
	EventDate         *string          `json:"eventDate" validate:"omitempty,datetime=2006-01-02 15:04:05"`
	Location          *LocationRequest `json:"location"`
	Paid              *bool            `json:"paid"`
	ParticipantLimit  *int             `json:"participantLimit" validate:"omitempty,gte=0"`
	RequestModeration *bool            `json:"requestModeration"`
	StateAction       *string          `json:"stateAction" validate:"omitempty,oneof=PUBLISH_EVENT REJECT_EVENT"`
	Title             *string          `json:"title" validate:"omitempty,min=3,max=120"`
}

// eventPatchFields is the field set shared by both update bodies; either
// converts to it directly.
type eventPatchFields struct {
	Annotation        *string
	Category          *int64
	Description       *string
	EventDate         *string
	Location          *LocationRequest
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
	StateAction       *string
	Title             *string
}

func (f eventPatchFields) toPatch() (domain.EventPatch, error) {
	p := domain.EventPatch{
		Annotation:        f.Annotation,
		CategoryID:        f.Category,
		Description:       f.Description,
		Location:          f.Location.toDomain(),
		Paid:              f.Paid,
		ParticipantLimit:  f.ParticipantLimit,
		RequestModeration: f.RequestModeration,
		Title:             f.Title,
	}
	if f.EventDate != nil {
		date, err := domain.ParseDateTime(*f.EventDate)
		if err != nil {
			return domain.EventPatch{}, err
		}
		p.EventDate = &date
	}
	if f.StateAction != nil {
		a := domain.StateAction(*f.StateAction)
		p.StateAction = &a
	}
	return p, nil
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an event
// @Description The event starts PENDING and must be at least two hours away.
// @Tags private: events
// @Accept json
// @Produce json
// @Param userId path int true "Initiator id"
// @Param event body NewEventRequest true "Event"
// @Success 201 {object} domain.EventFull
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Router /users/{userId}/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	var req NewEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toDomain()
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), userID, in)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// ListByInitiator godoc
// @Summary List the initiator's events
// @Tags private: events
// @Produce json
// @Param userId path int true "Initiator id"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.EventShort
// @Router /users/{userId}/events [get]
func (c *EventController) ListByInitiator(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	events, err := c.Service.ListInitiatorEvents(r.Context(), userID, page)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetByInitiator godoc
// @Summary Get one of the initiator's events
// @Tags private: events
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Success 200 {object} domain.EventFull
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError "not the initiator"
// @Router /users/{userId}/events/{eventId} [get]
func (c *EventController) GetByInitiator(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := c.userAndEvent(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetInitiatorEvent(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// UpdateByInitiator godoc
// @Summary Edit a pending or rejected event
// @Tags private: events
// @Accept json
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Param patch body UpdateEventUserRequest true "Changes"
// @Success 200 {object} domain.EventFull
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /users/{userId}/events/{eventId} [patch]
func (c *EventController) UpdateByInitiator(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := c.userAndEvent(w, r)
	if !ok {
		return
	}
	var req UpdateEventUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch, err := eventPatchFields(req).toPatch()
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	event, err := c.Service.UpdateByInitiator(r.Context(), userID, eventID, patch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// SearchAdmin godoc
// @Summary Search events in any state
// @Tags admin: events
// @Produce json
// @Security BearerAuth
// @Param users query []int false "Initiator ids" collectionFormat(csv)
// @Param states query []string false "States" collectionFormat(csv)
// @Param categories query []int false "Category ids" collectionFormat(csv)
// @Param rangeStart query string false "yyyy-MM-dd HH:mm:ss"
// @Param rangeEnd query string false "yyyy-MM-dd HH:mm:ss"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.EventFull
// @Failure 400 {object} helpers.ApiError
// @Router /admin/events [get]
func (c *EventController) SearchAdmin(w http.ResponseWriter, r *http.Request) {
	q := domain.AdminEventSearch{States: helpers.QueryList(r, "states")}
	var err error
	if q.Users, err = helpers.QueryIDs(r, "users"); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if q.Categories, err = helpers.QueryIDs(r, "categories"); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if q.RangeStart, err = helpers.QueryDateTime(r, "rangeStart"); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if q.RangeEnd, err = helpers.QueryDateTime(r, "rangeEnd"); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if q.Page, err = helpers.ParsePagination(r); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	events, err := c.Service.SearchAdmin(r.Context(), q)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// UpdateByAdmin godoc
// @Summary Edit, publish or reject a pending event
// @Tags admin: events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event id"
// @Param patch body UpdateEventAdminRequest true "Changes"
// @Success 200 {object} domain.EventFull
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /admin/events/{eventId} [patch]
func (c *EventController) UpdateByAdmin(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	var req UpdateEventAdminRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch, err := eventPatchFields(req).toPatch()
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	event, err := c.Service.UpdateByAdmin(r.Context(), eventID, patch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// SearchPublic godoc
// @Summary Search published events
// @Description Every call is reported to the stats service.
// @Tags public: events
// @Produce json
// @Param text query string false "Substring of annotation or description, case-insensitive"
// @Param categories query []int false "Category ids" collectionFormat(csv)
// @Param paid query bool false "Paid filter"
// @Param rangeStart query string false "yyyy-MM-dd HH:mm:ss"
// @Param rangeEnd query string false "yyyy-MM-dd HH:mm:ss"
// @Param onlyAvailable query bool false "Only events with free slots" default(false)
// @Param sort query string false "EVENT_DATE or VIEWS" Enums(EVENT_DATE, VIEWS)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.EventFull
// @Failure 400 {object} helpers.ApiError
// @Router /events [get]
func (c *EventController) SearchPublic(w http.ResponseWriter, r *http.Request) {
	q := domain.PublicEventSearch{
		Text: r.URL.Query().Get("text"),
		Sort: r.URL.Query().Get("sort"),
	}
	var err error
	if q.Categories, err = helpers.QueryIDs(r, "categories"); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if q.Paid, err = helpers.QueryBool(r, "paid"); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	onlyAvailable, err := helpers.QueryBool(r, "onlyAvailable")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	q.OnlyAvailable = onlyAvailable != nil && *onlyAvailable
	if q.RangeStart, err = helpers.QueryDateTime(r, "rangeStart"); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if q.RangeEnd, err = helpers.QueryDateTime(r, "rangeEnd"); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if q.Page, err = helpers.ParsePagination(r); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}

	c.Service.RecordView(r.Context(), r.URL.Path, helpers.ClientIP(r))
	events, err := c.Service.SearchPublic(r.Context(), q)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetPublic godoc
// @Summary Get a published event
// @Description The view is reported to the stats service before the lookup, so the response counts it.
// @Tags public: events
// @Produce json
// @Param eventId path int true "Event id"
// @Success 200 {object} domain.EventFull
// @Failure 404 {object} helpers.ApiError
// @Router /events/{eventId} [get]
func (c *EventController) GetPublic(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.Service.RecordView(r.Context(), domain.EventURI(eventID), helpers.ClientIP(r))
	event, err := c.Service.GetPublished(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

func (c *EventController) userAndEvent(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return 0, 0, false
	}
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return 0, 0, false
	}
	return userID, eventID, true
}
