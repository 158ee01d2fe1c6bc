package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"explorewithme/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantReason string
	}{
		{"success", `{"name":"alice","email":"alice@example.com"}`, nil, http.StatusCreated, ""},
		{"invalid email", `{"name":"alice","email":"nope"}`, nil, http.StatusBadRequest, "BAD_REQUEST"},
		{"blank name", `{"name":"    ","email":"alice@example.com"}`, nil, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown field", `{"name":"alice","email":"alice@example.com","id":5}`, nil, http.StatusBadRequest, "BAD_REQUEST"},
		{"duplicate name", `{"name":"alice","email":"alice@example.com"}`, fmt.Errorf("%w: taken", domain.ErrConflict), http.StatusConflict, "CONFLICT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeUserService{err: tt.fakeErr}
			ctrl := NewUserController(testLogger, fake)

			rr := serve(t, "POST /admin/users", ctrl.Create, http.MethodPost, "/admin/users", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, decodeError(t, rr).Reason)
				return
			}
			var u domain.User
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&u))
			assert.Equal(t, int64(1), u.ID)
			assert.Equal(t, "alice@example.com", u.Email)
		})
	}
}

func TestUserController_List(t *testing.T) {
	fake := &fakeUserService{users: []*domain.User{{ID: 1, Name: "alice"}}}
	ctrl := NewUserController(testLogger, fake)

	rr := serve(t, "GET /admin/users", ctrl.List, http.MethodGet, "/admin/users?ids=1,2&ids=3&from=10&size=5", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{1, 2, 3}, fake.listIDs)
	assert.Equal(t, domain.PageRequest{From: 10, Size: 5}, fake.page)

	rr = serve(t, "GET /admin/users", ctrl.List, http.MethodGet, "/admin/users?size=0", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUserController_Delete(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		fakeErr    error
		wantStatus int
	}{
		{"success", "/admin/users/3", nil, http.StatusNoContent},
		{"missing", "/admin/users/3", fmt.Errorf("user 3: %w", domain.ErrNotFound), http.StatusNotFound},
		{"bad id", "/admin/users/abc", nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewUserController(testLogger, &fakeUserService{err: tt.fakeErr})
			rr := serve(t, "DELETE /admin/users/{userId}", ctrl.Delete, http.MethodDelete, tt.target, "")
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
