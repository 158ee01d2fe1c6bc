package controllers

import (
	"log/slog"
	"net/http"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// TokenRequest is the request body for POST /admin/auth/token.
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an admin access token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AdminAuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AdminAuthService) *AuthController {
	return &AuthController{Logger: logger, Service: svc}
}

// IssueToken godoc
// @Summary Exchange operator credentials for an admin token
// @Tags admin: auth
// @Accept json
// @Produce json
// @Param credentials body TokenRequest true "Operator credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} helpers.ApiError
// @Failure 401 {object} helpers.ApiError
// @Router /admin/auth/token [post]
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.IssueToken(r.Context(), req.Username, req.Password)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, TokenResponse{Token: token, TokenType: "Bearer"})
}
