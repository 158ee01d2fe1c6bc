package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// NewCommentRequest is the request body for posting a comment.
type NewCommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// Validate implements Validator.
func (c NewCommentRequest) Validate() []string {
	if strings.TrimSpace(c.Text) == "" {
		return []string{"text must not be blank"}
	}
	return nil
}

// UpdateCommentRequest is the request body for editing a comment. A blank
// text keeps the stored one.
type UpdateCommentRequest struct {
	Text string `json:"text" validate:"max=2000"`
}

type CommentController struct {
	Logger  *slog.Logger
	Service domain.CommentService
}

func NewCommentController(logger *slog.Logger, svc domain.CommentService) *CommentController {
	return &CommentController{Logger: logger, Service: svc}
}

// Add godoc
// @Summary Comment on an event
// @Tags private: comments
// @Accept json
// @Produce json
// @Param userId path int true "Author id"
// @Param eventId path int true "Event id"
// @Param comment body NewCommentRequest true "Comment"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Router /users/{userId}/events/{eventId}/comments [post]
func (c *CommentController) Add(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	var req NewCommentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	comment, err := c.Service.Add(r.Context(), userID, eventID, req.Text)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, comment)
}

// ListByAuthor godoc
// @Summary List own comments
// @Tags private: comments
// @Produce json
// @Param userId path int true "Author id"
// @Param asc query bool false "Oldest first" default(false)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.Comment
// @Failure 404 {object} helpers.ApiError
// @Router /users/{userId}/comments [get]
func (c *CommentController) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	asc, err := helpers.QueryBool(r, "asc")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	comments, err := c.Service.ListByAuthor(r.Context(), userID, asc != nil && *asc, page)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, comments)
}

// Update godoc
// @Summary Edit an own comment
// @Tags private: comments
// @Accept json
// @Produce json
// @Param userId path int true "Author id"
// @Param commentId path int true "Comment id"
// @Param comment body UpdateCommentRequest true "Comment"
// @Success 200 {object} domain.Comment
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError "not the author"
// @Router /users/{userId}/comments/{commentId} [patch]
func (c *CommentController) Update(w http.ResponseWriter, r *http.Request) {
	userID, commentID, ok := c.userAndComment(w, r)
	if !ok {
		return
	}
	var req UpdateCommentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	comment, err := c.Service.Update(r.Context(), userID, commentID, req.Text)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, comment)
}

// Delete godoc
// @Summary Delete an own comment
// @Tags private: comments
// @Param userId path int true "Author id"
// @Param commentId path int true "Comment id"
// @Success 204
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError "not the author"
// @Router /users/{userId}/comments/{commentId} [delete]
func (c *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, commentID, ok := c.userAndComment(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), userID, commentID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteNoContent(w)
}

// DeleteByAdmin godoc
// @Summary Delete any comment
// @Tags admin: comments
// @Security BearerAuth
// @Param commentId path int true "Comment id"
// @Success 204
// @Failure 404 {object} helpers.ApiError
// @Router /admin/comments/{commentId} [delete]
func (c *CommentController) DeleteByAdmin(w http.ResponseWriter, r *http.Request) {
	commentID, err := helpers.PathID(r, "commentId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if err := c.Service.DeleteByAdmin(r.Context(), commentID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteNoContent(w)
}

// Get godoc
// @Summary Get a comment
// @Tags public: comments
// @Produce json
// @Param commentId path int true "Comment id"
// @Success 200 {object} domain.Comment
// @Failure 404 {object} helpers.ApiError
// @Router /comments/{commentId} [get]
func (c *CommentController) Get(w http.ResponseWriter, r *http.Request) {
	commentID, err := helpers.PathID(r, "commentId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	comment, err := c.Service.GetByID(r.Context(), commentID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, comment)
}

// ListByEvent godoc
// @Summary List comments of an event
// @Tags public: comments
// @Produce json
// @Param eventId path int true "Event id"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.Comment
// @Failure 404 {object} helpers.ApiError
// @Router /events/{eventId}/comments [get]
func (c *CommentController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	comments, err := c.Service.ListByEvent(r.Context(), eventID, page)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, comments)
}

func (c *CommentController) userAndComment(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return 0, 0, false
	}
	commentID, err := helpers.PathID(r, "commentId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return 0, 0, false
	}
	return userID, commentID, true
}
