package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"explorewithme/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentController_Add(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
	}{
		{"success", `{"text":"See you there"}`, nil, http.StatusCreated},
		{"blank", `{"text":"   "}`, nil, http.StatusBadRequest},
		{"too long", `{"text":"` + strings.Repeat("a", 2001) + `"}`, nil, http.StatusBadRequest},
		{"unknown event", `{"text":"hi"}`, fmt.Errorf("event 7: %w", domain.ErrNotFound), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCommentService{err: tt.fakeErr}
			ctrl := NewCommentController(testLogger, fake)

			rr := serve(t, "POST /users/{userId}/events/{eventId}/comments", ctrl.Add, http.MethodPost, "/users/2/events/7/comments", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, int64(2), fake.userID)
				assert.Equal(t, int64(7), fake.targetID)
				assert.Equal(t, "See you there", fake.text)
			}
		})
	}
}

func TestCommentController_UpdateAndDelete(t *testing.T) {
	fake := &fakeCommentService{}
	ctrl := NewCommentController(testLogger, fake)

	rr := serve(t, "PATCH /users/{userId}/comments/{commentId}", ctrl.Update, http.MethodPatch, "/users/2/comments/4", `{"text":""}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(4), fake.targetID)
	assert.Empty(t, fake.text)

	fake.err = fmt.Errorf("%w: not the author", domain.ErrConflict)
	rr = serve(t, "DELETE /users/{userId}/comments/{commentId}", ctrl.Delete, http.MethodDelete, "/users/3/comments/4", "")
	require.Equal(t, http.StatusConflict, rr.Code)

	fake.err = nil
	rr = serve(t, "DELETE /admin/comments/{commentId}", ctrl.DeleteByAdmin, http.MethodDelete, "/admin/comments/4", "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestCommentController_Lists(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantAsc bool
		wantErr bool
	}{
		{"default newest first", "/users/2/comments", false, false},
		{"oldest first", "/users/2/comments?asc=true", true, false},
		{"bad flag", "/users/2/comments?asc=maybe", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCommentService{}
			ctrl := NewCommentController(testLogger, fake)

			rr := serve(t, "GET /users/{userId}/comments", ctrl.ListByAuthor, http.MethodGet, tt.target, "")

			if tt.wantErr {
				require.Equal(t, http.StatusBadRequest, rr.Code)
				return
			}
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantAsc, fake.asc)
		})
	}

	fake := &fakeCommentService{}
	ctrl := NewCommentController(testLogger, fake)
	rr := serve(t, "GET /events/{eventId}/comments", ctrl.ListByEvent, http.MethodGet, "/events/7/comments", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(7), fake.targetID)

	rr = serve(t, "GET /comments/{commentId}", ctrl.Get, http.MethodGet, "/comments/0", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
