package location

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(id string, created time.Time, paths ...string) Location {
	return Location{
		ID: id, Name: strings.ToUpper(id), Type: TypeRoom, Category: CategoryAcademic,
		AccessType: AccessInternal, ConnectedPath: paths, Latitude: 8.63, Longitude: 126.09,
		CreatedAt: created,
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(sample("a", now.Add(-2*time.Hour), "admin_path"))

	require.NoError(t, s.Create(ctx, sample("b", now, "canteen_path")))
	assert.Error(t, s.Create(ctx, sample("b", now, "canteen_path")))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "newest first")

	upd := sample("a", time.Time{}, "admin_path", "commission_path")
	upd.Name = "Renamed"
	require.NoError(t, s.Update(ctx, upd))
	list, _ = s.List(ctx)
	assert.Equal(t, "Renamed", list[1].Name)
	assert.Equal(t, now.Add(-2*time.Hour), list[1].CreatedAt, "update keeps creation time")

	require.NoError(t, s.Delete(ctx, "a"))
	assert.True(t, errors.Is(s.Delete(ctx, "a"), ErrNotFound))
	assert.True(t, errors.Is(s.Update(ctx, upd), ErrNotFound))

	list, _ = s.List(ctx)
	assert.Len(t, list, 1)
}

func TestMemoryStoreRejectsInvalid(t *testing.T) {
	s := NewMemoryStore()
	err := s.Create(context.Background(), sample("x", now))

	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(sample("a", now, "admin_path"))

	list, _ := s.List(ctx)
	list[0].ConnectedPath[0] = "mutated"

	list, _ = s.List(ctx)
	assert.Equal(t, "admin_path", list[0].ConnectedPath[0])
}

func TestMemoryStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMemoryStore().List(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
