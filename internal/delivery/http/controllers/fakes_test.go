package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"

	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// serve routes one request through a mux registered with pattern, so path
// values are populated the way the router does it.
func serve(t *testing.T, pattern string, handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, handler)
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "http://test"+target, rdr)
	req.RemoteAddr = "203.0.113.5:40000"
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) helpers.ApiError {
	t.Helper()
	var body helpers.ApiError
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	created *domain.User
	listIDs []int64
	page    domain.PageRequest
	users   []*domain.User
	err     error
}

func (f *fakeUserService) Create(ctx context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	user.ID = 1
	f.created = user
	return nil
}

func (f *fakeUserService) List(ctx context.Context, ids []int64, page domain.PageRequest) ([]*domain.User, error) {
	f.listIDs, f.page = ids, page
	return f.users, f.err
}

func (f *fakeUserService) Delete(ctx context.Context, id int64) error {
	return f.err
}

// fakeCategoryService implements domain.CategoryService for handler tests.
type fakeCategoryService struct {
	name string
	err  error
}

func (f *fakeCategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	f.name = name
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Category{ID: 1, Name: name}, nil
}

func (f *fakeCategoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	f.name = name
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Category{ID: id, Name: name}, nil
}

func (f *fakeCategoryService) Delete(ctx context.Context, id int64) error { return f.err }

func (f *fakeCategoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Category{ID: id, Name: "Concerts"}, nil
}

func (f *fakeCategoryService) List(ctx context.Context, page domain.PageRequest) ([]*domain.Category, error) {
	return []*domain.Category{{ID: 1, Name: "Concerts"}}, f.err
}

// fakeEventService implements domain.EventService and records its inputs and
// the order of calls.
type fakeEventService struct {
	calls    []string
	userID   int64
	eventID  int64
	newEvent domain.NewEvent
	patch    domain.EventPatch
	public   domain.PublicEventSearch
	admin    domain.AdminEventSearch
	viewURI  string
	viewIP   string
	event    *domain.EventFull
	err      error
}

func (f *fakeEventService) CreateEvent(ctx context.Context, userID int64, in domain.NewEvent) (*domain.EventFull, error) {
	f.calls = append(f.calls, "create")
	f.userID, f.newEvent = userID, in
	return f.event, f.err
}

func (f *fakeEventService) ListInitiatorEvents(ctx context.Context, userID int64, page domain.PageRequest) ([]*domain.EventShort, error) {
	f.calls = append(f.calls, "listInitiator")
	f.userID = userID
	return []*domain.EventShort{}, f.err
}

func (f *fakeEventService) GetInitiatorEvent(ctx context.Context, userID, eventID int64) (*domain.EventFull, error) {
	f.calls = append(f.calls, "getInitiator")
	f.userID, f.eventID = userID, eventID
	return f.event, f.err
}

func (f *fakeEventService) UpdateByInitiator(ctx context.Context, userID, eventID int64, patch domain.EventPatch) (*domain.EventFull, error) {
	f.calls = append(f.calls, "updateInitiator")
	f.userID, f.eventID, f.patch = userID, eventID, patch
	return f.event, f.err
}

func (f *fakeEventService) SearchAdmin(ctx context.Context, q domain.AdminEventSearch) ([]*domain.EventFull, error) {
	f.calls = append(f.calls, "searchAdmin")
	f.admin = q
	return []*domain.EventFull{}, f.err
}

func (f *fakeEventService) UpdateByAdmin(ctx context.Context, eventID int64, patch domain.EventPatch) (*domain.EventFull, error) {
	f.calls = append(f.calls, "updateAdmin")
	f.eventID, f.patch = eventID, patch
	return f.event, f.err
}

func (f *fakeEventService) SearchPublic(ctx context.Context, q domain.PublicEventSearch) ([]*domain.EventFull, error) {
	f.calls = append(f.calls, "searchPublic")
	f.public = q
	return []*domain.EventFull{}, f.err
}

func (f *fakeEventService) GetPublished(ctx context.Context, eventID int64) (*domain.EventFull, error) {
	f.calls = append(f.calls, "getPublished")
	f.eventID = eventID
	return f.event, f.err
}

func (f *fakeEventService) RecordView(ctx context.Context, uri, ip string) {
	f.calls = append(f.calls, "recordView")
	f.viewURI, f.viewIP = uri, ip
}

// fakeRequestService implements domain.RequestService for handler tests.
type fakeRequestService struct {
	userID, eventID, requestID int64
	update                     domain.RequestStatusUpdate
	result                     *domain.RequestStatusUpdateResult
	err                        error
}

func (f *fakeRequestService) Create(ctx context.Context, userID, eventID int64) (*domain.ParticipationRequest, error) {
	f.userID, f.eventID = userID, eventID
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ParticipationRequest{ID: 1, Requester: userID, Event: eventID, Status: domain.RequestStatusPending}, nil
}

func (f *fakeRequestService) ListByRequester(ctx context.Context, userID int64) ([]*domain.ParticipationRequest, error) {
	f.userID = userID
	return []*domain.ParticipationRequest{}, f.err
}

func (f *fakeRequestService) Cancel(ctx context.Context, userID, requestID int64) (*domain.ParticipationRequest, error) {
	f.userID, f.requestID = userID, requestID
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ParticipationRequest{ID: requestID, Requester: userID, Status: domain.RequestStatusCanceled}, nil
}

func (f *fakeRequestService) ListForEvent(ctx context.Context, userID, eventID int64) ([]*domain.ParticipationRequest, error) {
	f.userID, f.eventID = userID, eventID
	return []*domain.ParticipationRequest{}, f.err
}

func (f *fakeRequestService) UpdateStatuses(ctx context.Context, userID, eventID int64, upd domain.RequestStatusUpdate) (*domain.RequestStatusUpdateResult, error) {
	f.userID, f.eventID, f.update = userID, eventID, upd
	return f.result, f.err
}

// fakeCompilationService implements domain.CompilationService for handler tests.
type fakeCompilationService struct {
	created domain.NewCompilation
	patch   domain.CompilationPatch
	pinned  *bool
	err     error
}

func (f *fakeCompilationService) Create(ctx context.Context, in domain.NewCompilation) (*domain.CompilationView, error) {
	f.created = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.CompilationView{ID: 1, Title: in.Title, Pinned: in.Pinned, Events: []*domain.EventShort{}}, nil
}

func (f *fakeCompilationService) Update(ctx context.Context, id int64, patch domain.CompilationPatch) (*domain.CompilationView, error) {
	f.patch = patch
	if f.err != nil {
		return nil, f.err
	}
	return &domain.CompilationView{ID: id, Events: []*domain.EventShort{}}, nil
}

func (f *fakeCompilationService) Delete(ctx context.Context, id int64) error { return f.err }

func (f *fakeCompilationService) GetByID(ctx context.Context, id int64) (*domain.CompilationView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.CompilationView{ID: id, Events: []*domain.EventShort{}}, nil
}

func (f *fakeCompilationService) List(ctx context.Context, pinned *bool, page domain.PageRequest) ([]*domain.CompilationView, error) {
	f.pinned = pinned
	return []*domain.CompilationView{}, f.err
}

// fakeCommentService implements domain.CommentService for handler tests.
type fakeCommentService struct {
	userID, targetID int64
	text             string
	asc              bool
	err              error
}

func (f *fakeCommentService) comment() (*domain.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Comment{ID: 1, AuthorID: f.userID, Text: f.text}, nil
}

func (f *fakeCommentService) Add(ctx context.Context, userID, eventID int64, text string) (*domain.Comment, error) {
	f.userID, f.targetID, f.text = userID, eventID, text
	return f.comment()
}

func (f *fakeCommentService) Update(ctx context.Context, userID, commentID int64, text string) (*domain.Comment, error) {
	f.userID, f.targetID, f.text = userID, commentID, text
	return f.comment()
}

func (f *fakeCommentService) Delete(ctx context.Context, userID, commentID int64) error {
	f.userID, f.targetID = userID, commentID
	return f.err
}

func (f *fakeCommentService) DeleteByAdmin(ctx context.Context, commentID int64) error {
	f.targetID = commentID
	return f.err
}

func (f *fakeCommentService) GetByID(ctx context.Context, commentID int64) (*domain.Comment, error) {
	f.targetID = commentID
	return f.comment()
}

func (f *fakeCommentService) ListByAuthor(ctx context.Context, userID int64, asc bool, page domain.PageRequest) ([]*domain.Comment, error) {
	f.userID, f.asc = userID, asc
	return []*domain.Comment{}, f.err
}

func (f *fakeCommentService) ListByEvent(ctx context.Context, eventID int64, page domain.PageRequest) ([]*domain.Comment, error) {
	f.targetID = eventID
	return []*domain.Comment{}, f.err
}

// fakeAuthService implements domain.AdminAuthService for handler tests.
type fakeAuthService struct {
	token string
	err   error
}

func (f *fakeAuthService) IssueToken(ctx context.Context, username, password string) (string, error) {
	return f.token, f.err
}
