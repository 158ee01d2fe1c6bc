package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"explorewithme/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompilationRepo is an in-memory CompilationRepository for tests.
type fakeCompilationRepo struct {
	byID   map[int64]*domain.Compilation
	nextID int64
}

func newFakeCompilationRepo() *fakeCompilationRepo {
	return &fakeCompilationRepo{byID: make(map[int64]*domain.Compilation), nextID: 1}
}

func (f *fakeCompilationRepo) Create(ctx context.Context, c *domain.Compilation) error {
	c.ID = f.nextID
	f.nextID++
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCompilationRepo) Update(ctx context.Context, c *domain.Compilation) error {
	if _, ok := f.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCompilationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCompilationRepo) GetByID(ctx context.Context, id int64) (*domain.Compilation, error) {
	if c, ok := f.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCompilationRepo) List(ctx context.Context, pinned *bool, p domain.PageRequest) ([]*domain.Compilation, error) {
	var out []*domain.Compilation
	for _, c := range f.byID {
		if pinned == nil || c.Pinned == *pinned {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, p), nil
}

type compilationFixture struct {
	*eventFixture
	comps *fakeCompilationRepo
	svc   domain.CompilationService
}

func newCompilationFixture() *compilationFixture {
	ef := newEventFixture()
	comps := newFakeCompilationRepo()
	svc := NewCompilationService(comps, ef.events, ef.requests, ef.tx, ef.stats, discardLogger(), 5*time.Second)
	return &compilationFixture{eventFixture: ef, comps: comps, svc: svc}
}

func shortIDs(events []*domain.EventShort) []int64 {
	out := make([]int64, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestCompilationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown event ids are dropped", func(t *testing.T) {
		f := newCompilationFixture()
		a := f.seed(domain.EventStatePublished, 5, 0)
		b := f.seed(domain.EventStatePublished, 6, 0)
		f.stats.views[a.URI()] = 4

		v, err := f.svc.Create(ctx, domain.NewCompilation{Title: "Weekend", Events: []int64{a.ID, b.ID, 404}})
		require.NoError(t, err)
		assert.False(t, v.Pinned)
		assert.ElementsMatch(t, []int64{a.ID, b.ID}, shortIDs(v.Events))
		assert.ElementsMatch(t, []int64{a.ID, b.ID}, f.comps.byID[v.ID].EventIDs)
		for _, e := range v.Events {
			if e.ID == a.ID {
				assert.Equal(t, int64(4), e.Views)
			}
		}
	})

	t.Run("empty set skips stats", func(t *testing.T) {
		f := newCompilationFixture()
		v, err := f.svc.Create(ctx, domain.NewCompilation{Title: "Empty", Pinned: true})
		require.NoError(t, err)
		assert.True(t, v.Pinned)
		assert.Empty(t, v.Events)
		assert.NotNil(t, v.Events)
		assert.Zero(t, f.stats.fetches)
	})
}

func TestCompilationService_Update(t *testing.T) {
	ctx := context.Background()
	f := newCompilationFixture()
	a := f.seed(domain.EventStatePublished, 5, 0)
	b := f.seed(domain.EventStatePublished, 6, 0)
	v, err := f.svc.Create(ctx, domain.NewCompilation{Title: "Weekend", Events: []int64{a.ID}})
	require.NoError(t, err)

	pinned := true
	events := []int64{b.ID, 999}
	updated, err := f.svc.Update(ctx, v.ID, domain.CompilationPatch{Pinned: &pinned, Events: &events})
	require.NoError(t, err)
	assert.Equal(t, "Weekend", updated.Title)
	assert.True(t, updated.Pinned)
	assert.Equal(t, []int64{b.ID}, shortIDs(updated.Events))

	_, err = f.svc.Update(ctx, 404, domain.CompilationPatch{Pinned: &pinned})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompilationService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newCompilationFixture()
	a := f.seed(domain.EventStatePublished, 5, 0)
	_, err := f.svc.Create(ctx, domain.NewCompilation{Title: "Pinned", Pinned: true, Events: []int64{a.ID}})
	require.NoError(t, err)
	plain, err := f.svc.Create(ctx, domain.NewCompilation{Title: "Plain", Events: []int64{a.ID}})
	require.NoError(t, err)

	f.stats.unique = nil
	pinned := true
	list, err := f.svc.List(ctx, &pinned, page(0, 10))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pinned", list[0].Title)
	assert.Equal(t, []bool{false}, f.stats.unique, "list counts non-unique hits")

	all, err := f.svc.List(ctx, nil, page(0, 10))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, f.svc.Delete(ctx, plain.ID))
	require.ErrorIs(t, f.svc.Delete(ctx, plain.ID), domain.ErrNotFound)
	_, err = f.svc.GetByID(ctx, plain.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
