package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// NewCompilationRequest is the request body for POST /admin/compilations.
type NewCompilationRequest struct {
	Events []int64 `json:"events"`
	Pinned *bool   `json:"pinned"`
	Title  string  `json:"title" validate:"required,min=1,max=50"`
}

// Validate implements Validator.
func (c NewCompilationRequest) Validate() []string {
	if strings.TrimSpace(c.Title) == "" {
		return []string{"title must not be blank"}
	}
	return nil
}

// UpdateCompilationRequest is the request body for PATCH /admin/compilations/{compId}.
// A present events list replaces the membership.
type UpdateCompilationRequest struct {
	Events *[]int64 `json:"events"`
	Pinned *bool    `json:"pinned"`
	Title  *string  `json:"title" validate:"omitempty,min=1,max=50"`
}

type CompilationController struct {
	Logger  *slog.Logger
	Service domain.CompilationService
}

func NewCompilationController(logger *slog.Logger, svc domain.CompilationService) *CompilationController {
	return &CompilationController{Logger: logger, Service: svc}
}

// Create godoc
// @Summary Create a compilation
// @Description Unknown event ids are dropped. pinned defaults to false.
// @Tags admin: compilations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param compilation body NewCompilationRequest true "Compilation"
// @Success 201 {object} domain.CompilationView
// @Failure 400 {object} helpers.ApiError
// @Router /admin/compilations [post]
func (c *CompilationController) Create(w http.ResponseWriter, r *http.Request) {
	var req NewCompilationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	in := domain.NewCompilation{Title: req.Title, Events: req.Events}
	if req.Pinned != nil {
		in.Pinned = *req.Pinned
	}
	comp, err := c.Service.Create(r.Context(), in)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, comp)
}

// Update godoc
// @Summary Update a compilation
// @Tags admin: compilations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param compId path int true "Compilation id"
// @Param patch body UpdateCompilationRequest true "Changes"
// @Success 200 {object} domain.CompilationView
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Router /admin/compilations/{compId} [patch]
func (c *CompilationController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "compId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	var req UpdateCompilationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	comp, err := c.Service.Update(r.Context(), id, domain.CompilationPatch{
		Title:  req.Title,
		Pinned: req.Pinned,
		Events: req.Events,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, comp)
}

// Delete godoc
// @Summary Delete a compilation
// @Tags admin: compilations
// @Security BearerAuth
// @Param compId path int true "Compilation id"
// @Success 204
// @Failure 404 {object} helpers.ApiError
// @Router /admin/compilations/{compId} [delete]
func (c *CompilationController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "compId")
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
// @Summary List compilations
// @Tags public: compilations
// @Produce json
// @Param pinned query bool false "Pinned filter"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.CompilationView
// @Failure 400 {object} helpers.ApiError
// @Router /compilations [get]
func (c *CompilationController) List(w http.ResponseWriter, r *http.Request) {
	pinned, err := helpers.QueryBool(r, "pinned")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	comps, err := c.Service.List(r.Context(), pinned, page)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, comps)
}

// Get godoc
// @Summary Get a compilation
// @Tags public: compilations
// @Produce json
// @Param compId path int true "Compilation id"
// @Success 200 {object} domain.CompilationView
// @Failure 404 {object} helpers.ApiError
// @Router /compilations/{compId} [get]
func (c *CompilationController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "compId")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	comp, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, comp)
}
