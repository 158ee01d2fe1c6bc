package services

import (
	"context"
	"testing"
	"time"

	"explorewithme/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventFixture struct {
	users    *fakeUserRepo
	cats     *fakeCategoryRepo
	events   *fakeEventRepo
	requests *fakeRequestRepo
	stats    *fakeStats
	notifier *fakeNotifier
	tx       *fakeTx
	svc      *eventService
}

func newEventFixture() *eventFixture {
	f := &eventFixture{
		users: newFakeUserRepo(
			&domain.User{ID: 1, Name: "alice", Email: "alice@example.com"},
			&domain.User{ID: 2, Name: "bob", Email: "bob@example.com"},
			&domain.User{ID: 3, Name: "carol", Email: "carol@example.com"},
		),
		cats:     newFakeCategoryRepo(&domain.Category{ID: 1, Name: "Concerts"}, &domain.Category{ID: 2, Name: "Theatre"}),
		requests: newFakeRequestRepo(),
		stats:    newFakeStats(),
		notifier: &fakeNotifier{},
		tx:       &fakeTx{},
	}
	f.events = newFakeEventRepo(f.requests)
	svc := NewEventService(f.events, f.cats, f.users, f.requests, f.tx, f.stats, f.notifier, discardLogger(), 5*time.Second).(*eventService)
	svc.now = func() time.Time { return testNow }
	f.svc = svc
	return f
}

// seed stores an event of alice in the given state, in hours from testNow.
func (f *eventFixture) seed(state domain.EventState, inHours int, limit int) *domain.Event {
	return f.events.put(&domain.Event{
		Annotation:        "An evening of improvised jazz music",
		Category:          domain.Category{ID: 1, Name: "Concerts"},
		CreatedOn:         domain.NewDateTime(testNow.Add(-24 * time.Hour)),
		Description:       "Bring friends, the club opens at seven",
		EventDate:         domain.NewDateTime(testNow.Add(time.Duration(inHours) * time.Hour)),
		Initiator:         domain.UserShort{ID: 1, Name: "alice"},
		Location:          domain.Location{ID: 100, Lat: 55.75, Lon: 37.61},
		ParticipantLimit:  limit,
		RequestModeration: true,
		State:             state,
		Title:             "Jazz night",
	})
}

func newEventInput(in time.Duration) domain.NewEvent {
	return domain.NewEvent{
		Annotation:  "An evening of improvised jazz music",
		CategoryID:  1,
		Description: "Bring friends, the club opens at seven",
		EventDate:   testNow.Add(in),
		Location:    domain.Location{Lat: 55.75, Lon: 37.61},
		Title:       "Jazz night",
	}
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and pending state", func(t *testing.T) {
		f := newEventFixture()
		full, err := f.svc.CreateEvent(ctx, 1, newEventInput(3*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatePending, full.State)
		assert.True(t, full.RequestModeration)
		assert.False(t, full.Paid)
		assert.Equal(t, 0, full.ParticipantLimit)
		assert.True(t, full.CreatedOn.Equal(testNow))
		assert.Equal(t, domain.UserShort{ID: 1, Name: "alice"}, full.Initiator)
		assert.NotZero(t, full.Location.ID)
		assert.Zero(t, full.ConfirmedRequests)
		assert.Zero(t, full.Views)
		assert.Len(t, f.events.byID, 1)
	})

	t.Run("explicit options", func(t *testing.T) {
		f := newEventFixture()
		in := newEventInput(3 * time.Hour)
		paid, limit, moderation := true, 5, false
		in.Paid, in.ParticipantLimit, in.RequestModeration = &paid, &limit, &moderation
		full, err := f.svc.CreateEvent(ctx, 1, in)
		require.NoError(t, err)
		assert.True(t, full.Paid)
		assert.Equal(t, 5, full.ParticipantLimit)
		assert.False(t, full.RequestModeration)
	})

	t.Run("too soon persists nothing", func(t *testing.T) {
		f := newEventFixture()
		_, err := f.svc.CreateEvent(ctx, 1, newEventInput(90*time.Minute))
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, f.events.byID)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newEventFixture()
		_, err := f.svc.CreateEvent(ctx, 99, newEventInput(3*time.Hour))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newEventFixture()
		in := newEventInput(3 * time.Hour)
		in.CategoryID = 42
		_, err := f.svc.CreateEvent(ctx, 1, in)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_UpdateByInitiator(t *testing.T) {
	ctx := context.Background()
	title := "Late jazz night"
	send := domain.StateActionSendToReview
	cancelReview := domain.StateActionCancelReview

	tests := []struct {
		name      string
		state     domain.EventState
		inHours   int
		userID    int64
		patch     domain.EventPatch
		wantErr   error
		wantState domain.EventState
	}{
		{"rename pending", domain.EventStatePending, 5, 1, domain.EventPatch{Title: &title}, nil, domain.EventStatePending},
		{"resubmit rejected", domain.EventStateRejected, 5, 1, domain.EventPatch{StateAction: &send}, nil, domain.EventStatePending},
		{"cancel pending", domain.EventStatePending, 5, 1, domain.EventPatch{StateAction: &cancelReview}, nil, domain.EventStateCanceled},
		{"published is locked", domain.EventStatePublished, 5, 1, domain.EventPatch{Title: &title}, domain.ErrConflict, ""},
		{"canceled is locked", domain.EventStateCanceled, 5, 1, domain.EventPatch{Title: &title}, domain.ErrConflict, ""},
		{"existing date too close", domain.EventStatePending, 1, 1, domain.EventPatch{Title: &title}, domain.ErrValidation, ""},
		{"not the initiator", domain.EventStatePending, 5, 2, domain.EventPatch{Title: &title}, domain.ErrConflict, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEventFixture()
			e := f.seed(tt.state, tt.inHours, 0)
			full, err := f.svc.UpdateByInitiator(ctx, tt.userID, e.ID, tt.patch)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "Jazz night", f.events.byID[e.ID].Title)
				assert.Zero(t, f.events.updates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, full.State)
			assert.Equal(t, tt.wantState, f.events.byID[e.ID].State)
			assert.Contains(t, f.events.locked, e.ID)
		})
	}

	t.Run("new date in the past", func(t *testing.T) {
		f := newEventFixture()
		e := f.seed(domain.EventStatePending, 5, 0)
		past := testNow.Add(-time.Minute)
		_, err := f.svc.UpdateByInitiator(ctx, 1, e.ID, domain.EventPatch{EventDate: &past})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("location and category change", func(t *testing.T) {
		f := newEventFixture()
		e := f.seed(domain.EventStatePending, 5, 0)
		cat := int64(2)
		full, err := f.svc.UpdateByInitiator(ctx, 1, e.ID, domain.EventPatch{
			CategoryID: &cat,
			Location:   &domain.Location{Lat: 1, Lon: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, "Theatre", full.Category.Name)
		assert.NotEqual(t, int64(100), full.Location.ID)
		assert.Equal(t, 1.0, full.Location.Lat)
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newEventFixture()
		e := f.seed(domain.EventStatePending, 5, 0)
		cat := int64(9)
		_, err := f.svc.UpdateByInitiator(ctx, 1, e.ID, domain.EventPatch{CategoryID: &cat})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_UpdateByAdmin(t *testing.T) {
	ctx := context.Background()
	publish := domain.StateActionPublish
	reject := domain.StateActionReject

	t.Run("publish notifies initiator", func(t *testing.T) {
		f := newEventFixture()
		e := f.seed(domain.EventStatePending, 5, 0)
		full, err := f.svc.UpdateByAdmin(ctx, e.ID, domain.EventPatch{StateAction: &publish})
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatePublished, full.State)
		require.NotNil(t, full.PublishedOn)
		assert.True(t, full.PublishedOn.Equal(testNow))
		require.Len(t, f.notifier.moderated, 1)
		assert.Equal(t, "alice@example.com", f.notifier.moderated[0].Email)
		assert.Equal(t, domain.EventStatePublished, f.notifier.moderated[0].State)
	})

	t.Run("publish thirty minutes ahead conflicts", func(t *testing.T) {
		f := newEventFixture()
		e := f.events.put(&domain.Event{
			State:     domain.EventStatePending,
			EventDate: domain.NewDateTime(testNow.Add(30 * time.Minute)),
			Initiator: domain.UserShort{ID: 1},
		})
		_, err := f.svc.UpdateByAdmin(ctx, e.ID, domain.EventPatch{StateAction: &publish})
		require.ErrorIs(t, err, domain.ErrConflict)
		assert.Empty(t, f.notifier.moderated)
	})

	t.Run("reject published conflicts", func(t *testing.T) {
		f := newEventFixture()
		e := f.seed(domain.EventStatePublished, 5, 0)
		_, err := f.svc.UpdateByAdmin(ctx, e.ID, domain.EventPatch{StateAction: &reject})
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("field edit without action", func(t *testing.T) {
		f := newEventFixture()
		e := f.seed(domain.EventStatePending, 5, 0)
		limit := 3
		full, err := f.svc.UpdateByAdmin(ctx, e.ID, domain.EventPatch{ParticipantLimit: &limit})
		require.NoError(t, err)
		assert.Equal(t, 3, full.ParticipantLimit)
		assert.Equal(t, domain.EventStatePending, full.State)
		assert.Empty(t, f.notifier.moderated)
	})

	t.Run("new date under an hour without action", func(t *testing.T) {
		f := newEventFixture()
		e := f.seed(domain.EventStatePending, 5, 0)
		soon := testNow.Add(20 * time.Minute)
		full, err := f.svc.UpdateByAdmin(ctx, e.ID, domain.EventPatch{EventDate: &soon})
		require.NoError(t, err)
		assert.True(t, full.EventDate.Equal(soon))
		assert.Equal(t, domain.EventStatePending, full.State)
	})

	t.Run("publish with new date under an hour conflicts", func(t *testing.T) {
		f := newEventFixture()
		e := f.seed(domain.EventStatePending, 5, 0)
		soon := testNow.Add(20 * time.Minute)
		_, err := f.svc.UpdateByAdmin(ctx, e.ID, domain.EventPatch{EventDate: &soon, StateAction: &publish})
		require.ErrorIs(t, err, domain.ErrConflict)
		stored, err := f.events.GetByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatePending, stored.State)
	})

	t.Run("new date in the past", func(t *testing.T) {
		f := newEventFixture()
		e := f.seed(domain.EventStatePending, 5, 0)
		past := testNow.Add(-time.Minute)
		_, err := f.svc.UpdateByAdmin(ctx, e.ID, domain.EventPatch{EventDate: &past})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing event", func(t *testing.T) {
		f := newEventFixture()
		_, err := f.svc.UpdateByAdmin(ctx, 77, domain.EventPatch{StateAction: &publish})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_GetPublished(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture()
	pub := f.seed(domain.EventStatePublished, 5, 0)
	pending := f.seed(domain.EventStatePending, 5, 0)
	f.stats.views[pub.URI()] = 7
	f.requests.byID[1] = &domain.ParticipationRequest{ID: 1, Event: pub.ID, Requester: 2, Status: domain.RequestStatusConfirmed}

	full, err := f.svc.GetPublished(ctx, pub.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), full.Views)
	assert.Equal(t, int64(1), full.ConfirmedRequests)
	assert.Equal(t, []bool{true}, f.stats.unique)

	_, err = f.svc.GetPublished(ctx, pending.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_StatsFailureReportsZeroViews(t *testing.T) {
	f := newEventFixture()
	pub := f.seed(domain.EventStatePublished, 5, 0)
	f.stats.views[pub.URI()] = 7
	f.stats.fetchErr = errStatsDown

	full, err := f.svc.GetPublished(context.Background(), pub.ID)
	require.NoError(t, err)
	assert.Zero(t, full.Views)
}

func TestEventService_SearchPublic(t *testing.T) {
	ctx := context.Background()

	t.Run("only available drops full limited events", func(t *testing.T) {
		f := newEventFixture()
		full := f.seed(domain.EventStatePublished, 5, 1)
		open := f.seed(domain.EventStatePublished, 6, 0)
		f.seed(domain.EventStatePending, 7, 0)
		f.requests.byID[1] = &domain.ParticipationRequest{ID: 1, Event: full.ID, Requester: 2, Status: domain.RequestStatusConfirmed}
		f.requests.byID[2] = &domain.ParticipationRequest{ID: 2, Event: open.ID, Requester: 2, Status: domain.RequestStatusConfirmed}

		got, err := f.svc.SearchPublic(ctx, domain.PublicEventSearch{OnlyAvailable: true, Page: page(0, 10)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, open.ID, got[0].ID)

		got, err = f.svc.SearchPublic(ctx, domain.PublicEventSearch{Page: page(0, 10)})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("sort by views", func(t *testing.T) {
		f := newEventFixture()
		a := f.seed(domain.EventStatePublished, 5, 0)
		b := f.seed(domain.EventStatePublished, 6, 0)
		f.stats.views[a.URI()] = 10
		f.stats.views[b.URI()] = 2

		got, err := f.svc.SearchPublic(ctx, domain.PublicEventSearch{Sort: "VIEWS", Page: page(0, 10)})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, b.ID, got[0].ID)
		assert.Equal(t, a.ID, got[1].ID)
	})

	t.Run("text matches description case-insensitively", func(t *testing.T) {
		f := newEventFixture()
		e := f.seed(domain.EventStatePublished, 5, 0)
		got, err := f.svc.SearchPublic(ctx, domain.PublicEventSearch{Text: "CLUB", Page: page(0, 10)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, e.ID, got[0].ID)
	})

	t.Run("inverted range", func(t *testing.T) {
		f := newEventFixture()
		start, end := testNow.Add(time.Hour), testNow
		_, err := f.svc.SearchPublic(ctx, domain.PublicEventSearch{RangeStart: &start, RangeEnd: &end, Page: page(0, 10)})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown sort", func(t *testing.T) {
		f := newEventFixture()
		_, err := f.svc.SearchPublic(ctx, domain.PublicEventSearch{Sort: "RANDOM", Page: page(0, 10)})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestEventService_SearchAdmin(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture()
	f.seed(domain.EventStatePublished, 5, 0)
	pending := f.seed(domain.EventStatePending, 5, 0)

	got, err := f.svc.SearchAdmin(ctx, domain.AdminEventSearch{States: []string{"PENDING"}, Users: []int64{1}, Page: page(0, 10)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pending.ID, got[0].ID)

	_, err = f.svc.SearchAdmin(ctx, domain.AdminEventSearch{States: []string{"DRAFT"}, Page: page(0, 10)})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_InitiatorReads(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture()
	e := f.seed(domain.EventStatePending, 5, 0)

	list, err := f.svc.ListInitiatorEvents(ctx, 1, page(0, 10))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Jazz night", list[0].Title)

	_, err = f.svc.GetInitiatorEvent(ctx, 2, e.ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.svc.ListInitiatorEvents(ctx, 50, page(0, 10))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_RecordView(t *testing.T) {
	f := newEventFixture()
	f.svc.RecordView(context.Background(), "/events/3", "10.0.0.1")
	require.Len(t, f.stats.hits, 1)
	assert.Equal(t, "/events/3", f.stats.hits[0].URI)
	assert.Equal(t, "10.0.0.1", f.stats.hits[0].IP)

	f.stats.hitErr = errStatsDown
	f.svc.RecordView(context.Background(), "/events", "10.0.0.1")
	assert.Len(t, f.stats.hits, 1)
}
