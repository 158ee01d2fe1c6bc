package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.Local)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func page(from, size int) domain.PageRequest {
	return domain.NewPageRequest(from, size)
}

func paginate[T any](items []T, p domain.PageRequest) []T {
	off := p.Offset()
	if off >= len(items) {
		return []T{}
	}
	end := off + p.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[off:end]
}

// fakeTx runs fn directly and counts calls.
type fakeTx struct {
	calls int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byID   map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[int64]*domain.User), nextID: 1}
	for _, u := range users {
		f.byID[u.ID] = u
		if u.ID >= f.nextID {
			f.nextID = u.ID + 1
		}
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	u.ID = f.nextID
	f.nextID++
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, u := range f.byID {
		if u.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) List(ctx context.Context, ids []int64, p domain.PageRequest) ([]*domain.User, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*domain.User
	for _, u := range f.byID {
		if len(ids) == 0 || want[u.ID] {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, p), nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeCategoryRepo is an in-memory CategoryRepository for tests.
type fakeCategoryRepo struct {
	byID   map[int64]*domain.Category
	nextID int64
}

func newFakeCategoryRepo(cats ...*domain.Category) *fakeCategoryRepo {
	f := &fakeCategoryRepo{byID: make(map[int64]*domain.Category), nextID: 1}
	for _, c := range cats {
		f.byID[c.ID] = c
		if c.ID >= f.nextID {
			f.nextID = c.ID + 1
		}
	}
	return f
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	c.ID = f.nextID
	f.nextID++
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	if _, ok := f.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if c, ok := f.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	for _, c := range f.byID {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCategoryRepo) List(ctx context.Context, p domain.PageRequest) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range f.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, p), nil
}

// fakeEventRepo is an in-memory EventRepository for tests. Stored events are
// copied on read and write so services cannot mutate them behind Update.
type fakeEventRepo struct {
	byID      map[int64]*domain.Event
	nextID    int64
	nextLocID int64
	requests  *fakeRequestRepo
	locked    []int64
	updates   int
}

func newFakeEventRepo(requests *fakeRequestRepo) *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[int64]*domain.Event), nextID: 1, nextLocID: 1, requests: requests}
}

func (f *fakeEventRepo) put(e *domain.Event) *domain.Event {
	if e.ID == 0 {
		e.ID = f.nextID
	}
	if e.ID >= f.nextID {
		f.nextID = e.ID + 1
	}
	cp := *e
	f.byID[e.ID] = &cp
	return e
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	e.Location.ID = f.nextLocID
	f.nextLocID++
	e.ID = f.nextID
	f.put(e)
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	if e.Location.ID == 0 {
		e.Location.ID = f.nextLocID
		f.nextLocID++
	}
	f.updates++
	f.put(e)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	f.locked = append(f.locked, id)
	return f.GetByID(ctx, id)
}

func (f *fakeEventRepo) sorted() []*domain.Event {
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeEventRepo) ListByInitiator(ctx context.Context, initiatorID int64, p domain.PageRequest) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.sorted() {
		if e.Initiator.ID == initiatorID {
			out = append(out, e)
		}
	}
	return paginate(out, p), nil
}

func (f *fakeEventRepo) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Event, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []*domain.Event{}
	for _, e := range f.sorted() {
		if want[e.ID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func contains[T comparable](xs []T, x T) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func (f *fakeEventRepo) Search(ctx context.Context, flt domain.EventFilter, p domain.PageRequest) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.sorted() {
		if flt.Text != "" {
			t := strings.ToLower(flt.Text)
			if !strings.Contains(strings.ToLower(e.Annotation), t) && !strings.Contains(strings.ToLower(e.Description), t) {
				continue
			}
		}
		if len(flt.Categories) > 0 && !contains(flt.Categories, e.Category.ID) {
			continue
		}
		if flt.Paid != nil && e.Paid != *flt.Paid {
			continue
		}
		if len(flt.Users) > 0 && !contains(flt.Users, e.Initiator.ID) {
			continue
		}
		if len(flt.States) > 0 && !contains(flt.States, e.State) {
			continue
		}
		if !flt.RangeStart.IsZero() && e.EventDate.Before(flt.RangeStart) {
			continue
		}
		if !flt.RangeEnd.IsZero() && e.EventDate.After(flt.RangeEnd) {
			continue
		}
		if flt.OnlyAvailable {
			n, _ := f.requests.CountConfirmed(ctx, e.ID)
			if !e.HasFreeSlots(n) {
				continue
			}
		}
		out = append(out, e)
	}
	if flt.OrderByDate {
		sort.SliceStable(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate.Time) })
	}
	return paginate(out, p), nil
}

func (f *fakeEventRepo) ExistsByCategory(ctx context.Context, categoryID int64) (bool, error) {
	for _, e := range f.byID {
		if e.Category.ID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

// fakeRequestRepo is an in-memory RequestRepository for tests.
type fakeRequestRepo struct {
	byID   map[int64]*domain.ParticipationRequest
	nextID int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{byID: make(map[int64]*domain.ParticipationRequest), nextID: 1}
}

func (f *fakeRequestRepo) Create(ctx context.Context, r *domain.ParticipationRequest) error {
	r.ID = f.nextID
	f.nextID++
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ParticipationRequest, error) {
	if r, ok := f.byID[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRequestRepo) filter(keep func(r *domain.ParticipationRequest) bool) []*domain.ParticipationRequest {
	out := []*domain.ParticipationRequest{}
	for _, r := range f.byID {
		if keep(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeRequestRepo) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.ParticipationRequest, error) {
	return f.filter(func(r *domain.ParticipationRequest) bool { return r.Requester == requesterID }), nil
}

func (f *fakeRequestRepo) ListByEvent(ctx context.Context, eventID int64) ([]*domain.ParticipationRequest, error) {
	return f.filter(func(r *domain.ParticipationRequest) bool { return r.Event == eventID }), nil
}

func (f *fakeRequestRepo) ListByIDs(ctx context.Context, ids []int64) ([]*domain.ParticipationRequest, error) {
	out := []*domain.ParticipationRequest{}
	for _, id := range ids {
		if r, ok := f.byID[id]; ok {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ExistsByRequester(ctx context.Context, requesterID int64) (bool, error) {
	return len(f.filter(func(r *domain.ParticipationRequest) bool { return r.Requester == requesterID })) > 0, nil
}

func (f *fakeRequestRepo) ExistsByRequesterAndEvent(ctx context.Context, requesterID, eventID int64) (bool, error) {
	return len(f.filter(func(r *domain.ParticipationRequest) bool {
		return r.Requester == requesterID && r.Event == eventID
	})) > 0, nil
}

func (f *fakeRequestRepo) CountConfirmed(ctx context.Context, eventID int64) (int64, error) {
	return int64(len(f.filter(func(r *domain.ParticipationRequest) bool {
		return r.Event == eventID && r.Status == domain.RequestStatusConfirmed
	}))), nil
}

func (f *fakeRequestRepo) CountConfirmedByEventIDs(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	out := map[int64]int64{}
	for _, r := range f.byID {
		if r.Status == domain.RequestStatusConfirmed && contains(eventIDs, r.Event) {
			out[r.Event]++
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, ids []int64, status domain.RequestStatus) error {
	for _, id := range ids {
		if r, ok := f.byID[id]; ok {
			r.Status = status
		}
	}
	return nil
}

// fakeStats is an in-memory StatsClient for tests.
type fakeStats struct {
	hits     []domain.EndpointHit
	views    map[string]int64
	fetchErr error
	hitErr   error
	fetches  int
	unique   []bool
}

func newFakeStats() *fakeStats {
	return &fakeStats{views: map[string]int64{}}
}

func (f *fakeStats) RecordHit(ctx context.Context, hit domain.EndpointHit) error {
	if f.hitErr != nil {
		return f.hitErr
	}
	f.hits = append(f.hits, hit)
	return nil
}

func (f *fakeStats) FetchViewCounts(ctx context.Context, uris []string, unique bool) (map[string]int64, error) {
	f.fetches++
	f.unique = append(f.unique, unique)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := map[string]int64{}
	for _, u := range uris {
		if n, ok := f.views[u]; ok {
			out[u] = n
		}
	}
	return out, nil
}

// fakeNotifier records notifications.
type fakeNotifier struct {
	moderated []*domain.EventModeratedEmailData
	statuses  []*domain.RequestStatusEmailData
	err       error
}

func (f *fakeNotifier) NotifyEventModerated(ctx context.Context, data *domain.EventModeratedEmailData) error {
	f.moderated = append(f.moderated, data)
	return f.err
}

func (f *fakeNotifier) NotifyRequestStatus(ctx context.Context, data *domain.RequestStatusEmailData) error {
	f.statuses = append(f.statuses, data)
	return f.err
}

var errStatsDown = errors.New("stats down")
