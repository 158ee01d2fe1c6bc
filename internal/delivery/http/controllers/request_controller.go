package controllers

import (
	"log/slog"
	"net/http"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// RequestStatusUpdateRequest is the request body for
// PATCH /users/{userId}/events/{eventId}/requests.
type RequestStatusUpdateRequest struct {
	RequestIDs []int64 `json:"requestIds" validate:"required,min=1,dive,gt=0"`
	Status     string  `json:"status" validate:"required" enums:"CONFIRMED,REJECTED"`
}

type RequestController struct {
	Logger  *slog.Logger
	Service domain.RequestService
}

func NewRequestController(logger *slog.Logger, svc domain.RequestService) *RequestController {
	return &RequestController{Logger: logger, Service: svc}
}

// Create godoc
// @Summary Request participation in an event
// @Description Confirmed at once when the event has no limit or no moderation, pending otherwise.
// @Tags private: requests
// @Produce json
// @Param userId path int true "Requester id"
// @Param eventId query int true "Event id"
// @Success 201 {object} domain.ParticipationRequest
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError "duplicate, own event, unpublished or full"
// @Router /users/{userId}/requests [post]
func (c *RequestController) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	eventID, err := helpers.QueryID(r, "eventId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	req, err := c.Service.Create(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, req)
}

// ListByRequester godoc
// @Summary List the caller's participation requests
// @Tags private: requests
// @Produce json
// @Param userId path int true "Requester id"
// @Success 200 {array} domain.ParticipationRequest
// @Failure 404 {object} helpers.ApiError
// @Router /users/{userId}/requests [get]
func (c *RequestController) ListByRequester(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	reqs, err := c.Service.ListByRequester(r.Context(), userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, reqs)
}

// Cancel godoc
// @Summary Cancel an own participation request
// @Tags private: requests
// @Produce json
// @Param userId path int true "Requester id"
// @Param requestId path int true "Request id"
// @Success 200 {object} domain.ParticipationRequest
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /users/{userId}/requests/{requestId}/cancel [patch]
func (c *RequestController) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	requestID, err := helpers.PathID(r, "requestId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	req, err := c.Service.Cancel(r.Context(), userID, requestID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, req)
}

// ListForEvent godoc
// @Summary List requests for an own event
// @Tags private: requests
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Success 200 {array} domain.ParticipationRequest
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError "not the initiator"
// @Router /users/{userId}/events/{eventId}/requests [get]
func (c *RequestController) ListForEvent(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := c.userAndEvent(w, r)
	if !ok {
		return
	}
	reqs, err := c.Service.ListForEvent(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, reqs)
}

// UpdateStatuses godoc
// @Summary Confirm or reject pending requests in bulk
// @Description Confirmations beyond the participant limit are rejected; when the limit is reached every remaining pending request is rejected.
// @Tags private: requests
// @Accept json
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Param update body RequestStatusUpdateRequest true "Request ids and target status"
// @Success 200 {object} domain.RequestStatusUpdateResult
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Failure 500 {object} helpers.ApiError "event does not use moderation"
// @Router /users/{userId}/events/{eventId}/requests [patch]
func (c *RequestController) UpdateStatuses(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := c.userAndEvent(w, r)
	if !ok {
		return
	}
	var body RequestStatusUpdateRequest
	if !helpers.DecodeAndValidate(w, r, &body) {
		return
	}
	status, err := domain.ParseModerationTarget(body.Status)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	res, err := c.Service.UpdateStatuses(r.Context(), userID, eventID, domain.RequestStatusUpdate{
		RequestIDs: body.RequestIDs,
		Status:     status,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, res)
}

func (c *RequestController) userAndEvent(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
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
