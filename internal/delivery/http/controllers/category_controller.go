package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// CategoryRequest is the request body for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// Validate implements Validator.
func (c CategoryRequest) Validate() []string {
	if strings.TrimSpace(c.Name) == "" {
		return []string{"name must not be blank"}
	}
	return nil
}

type CategoryController struct {
	Logger  *slog.Logger
	Service domain.CategoryService
}

func NewCategoryController(logger *slog.Logger, svc domain.CategoryService) *CategoryController {
	return &CategoryController{Logger: logger, Service: svc}
}

// Create godoc
// @Summary Create a category
// @Tags admin: categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body CategoryRequest true "Category"
// @Success 201 {object} domain.Category
// @Failure 400 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /admin/categories [post]
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	cat, err := c.Service.Create(r.Context(), req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, cat)
}

// Update godoc
// @Summary Rename a category
// @Tags admin: categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param catId path int true "Category id"
// @Param category body CategoryRequest true "Category"
// @Success 200 {object} domain.Category
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /admin/categories/{catId} [patch]
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "catId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	var req CategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	cat, err := c.Service.Update(r.Context(), id, req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, cat)
}

// Delete godoc
// @Summary Delete a category
// @Description Fails with 409 while events still use the category.
// @Tags admin: categories
// @Security BearerAuth
// @Param catId path int true "Category id"
// @Success 204
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /admin/categories/{catId} [delete]
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "catId")
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

// List godoc
// @Summary List categories
// @Tags public: categories
// @Produce json
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	cats, err := c.Service.List(r.Context(), page)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, cats)
}

// Get godoc
// @Summary Get a category
// @Tags public: categories
// @Produce json
// @Param catId path int true "Category id"
// @Success 200 {object} domain.Category
// @Failure 404 {object} helpers.ApiError
// @Router /categories/{catId} [get]
func (c *CategoryController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "catId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	cat, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, cat)
}
