package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// NewUserRequest is the request body for POST /admin/users.
type NewUserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=250"`
	Email string `json:"email" validate:"required,email,min=6,max=254"`
}

// Validate implements Validator.
func (u NewUserRequest) Validate() []string {
	if strings.TrimSpace(u.Name) == "" {
		return []string{"name must not be blank"}
	}
	return nil
}

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Register a user
// @Tags admin: users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body NewUserRequest true "User"
// @Success 201 {object} domain.User
// @Failure 400 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError "name already taken"
// @Router /admin/users [post]
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req NewUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user := domain.NewUser(req.Name, req.Email)
	if err := c.Service.Create(r.Context(), user); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, user)
}

// List godoc
// @Summary List users
// @Description Returns users with the given ids, or all users when ids is absent.
// @Tags admin: users
// @Produce json
// @Security BearerAuth
// @Param ids query []int false "User ids" collectionFormat(csv)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.User
// @Failure 400 {object} helpers.ApiError
// @Router /admin/users [get]
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	ids, err := helpers.QueryIDs(r, "ids")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	users, err := c.Service.List(r.Context(), ids, page)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, users)
}

// Delete godoc
// @Summary Delete a user
// @Tags admin: users
// @Security BearerAuth
// @Param userId path int true "User id"
// @Success 204
// @Failure 404 {object} helpers.ApiError
// @Router /admin/users/{userId} [delete]
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteNoContent(w)
}
