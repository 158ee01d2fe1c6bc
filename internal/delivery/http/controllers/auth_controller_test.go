package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"explorewithme/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthController_IssueToken(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fake       *fakeAuthService
		wantStatus int
	}{
		{"success", `{"username":"ops","password":"s3cret"}`, &fakeAuthService{token: "jwt"}, http.StatusOK},
		{"wrong credentials", `{"username":"ops","password":"nope"}`, &fakeAuthService{err: domain.ErrUnauthorized}, http.StatusUnauthorized},
		{"missing password", `{"username":"ops"}`, &fakeAuthService{token: "jwt"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger, tt.fake)
			rr := serve(t, "POST /admin/auth/token", ctrl.IssueToken, http.MethodPost, "/admin/auth/token", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var resp TokenResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, TokenResponse{Token: "jwt", TokenType: "Bearer"}, resp)
			}
		})
	}
}
