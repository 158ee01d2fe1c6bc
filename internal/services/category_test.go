package services

import (
	"context"
	"testing"
	"time"

	"explorewithme/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService(t *testing.T) {
	ctx := context.Background()
	cats := newFakeCategoryRepo()
	events := newFakeEventRepo(newFakeRequestRepo())
	svc := NewCategoryService(cats, events, 5*time.Second)

	concerts, err := svc.Create(ctx, "Concerts")
	require.NoError(t, err)
	theatre, err := svc.Create(ctx, "Theatre")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Concerts")
	require.ErrorIs(t, err, domain.ErrConflict)

	t.Run("rename to own name is allowed", func(t *testing.T) {
		c, err := svc.Update(ctx, concerts.ID, "Concerts")
		require.NoError(t, err)
		assert.Equal(t, "Concerts", c.Name)
	})

	t.Run("rename to taken name", func(t *testing.T) {
		_, err := svc.Update(ctx, theatre.ID, "Concerts")
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("update missing", func(t *testing.T) {
		_, err := svc.Update(ctx, 404, "Films")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete referenced category", func(t *testing.T) {
		events.put(&domain.Event{Category: *concerts, State: domain.EventStatePending})
		require.ErrorIs(t, svc.Delete(ctx, concerts.ID), domain.ErrConflict)
	})

	t.Run("delete unused category", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, theatre.ID))
		_, err := svc.GetByID(ctx, theatre.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	list, err := svc.List(ctx, page(0, 10))
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
