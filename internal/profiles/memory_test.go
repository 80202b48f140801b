package profiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClockedStore(t *testing.T) (*MemoryStore, *time.Time) {
	t.Helper()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.SetClock(func() time.Time { return now })
	return s, &now
}

func TestMemoryStore_CreateAssignsTimestamps(t *testing.T) {
	s, now := newClockedStore(t)
	ctx := context.Background()

	rec, err := s.Create(ctx, &Record{UID: "u1", Email: "a@x.com", CreatedAt: time.Unix(1, 0)})
	require.NoError(t, err)

	assert.Equal(t, *now, rec.CreatedAt)
	assert.Equal(t, *now, rec.UpdatedAt)
	assert.Equal(t, *now, rec.LastLoginAt)
	assert.Equal(t, []string{"user"}, rec.Roles)

	_, err = s.Create(ctx, &Record{UID: "u1"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = s.Create(ctx, &Record{})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestMemoryStore_GetReturnsCopies(t *testing.T) {
	s, _ := newClockedStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Create(ctx, &Record{UID: "u1", Roles: []string{"user"}})
	require.NoError(t, err)

	got, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	got.Roles[0] = "admin"
	got.IsAdmin = true

	again, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, again.IsAdmin)
	assert.Equal(t, []string{"user"}, again.Roles)
}

func TestMemoryStore_UpdateAndTouch(t *testing.T) {
	s, now := newClockedStore(t)
	ctx := context.Background()
	created, err := s.Create(ctx, &Record{UID: "u1", Email: "a@x.com"})
	require.NoError(t, err)

	*now = now.Add(time.Hour)
	name := "Ann"
	rec, err := s.Update(ctx, "u1", Patch{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ann", rec.DisplayName)
	assert.Equal(t, *now, rec.UpdatedAt)
	assert.Equal(t, created.LastLoginAt, rec.LastLoginAt)

	*now = now.Add(time.Hour)
	require.NoError(t, s.TouchLastLogin(ctx, "u1"))
	rec, err = s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, *now, rec.LastLoginAt)
	assert.Equal(t, created.CreatedAt, rec.CreatedAt)

	_, err = s.Update(ctx, "ghost", Patch{DisplayName: &name})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, s.TouchLastLogin(ctx, "ghost"), common.ErrorNotFound)
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	s, _ := newClockedStore(t)
	ctx := context.Background()
	_, err := s.Create(ctx, &Record{UID: "u1"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "u1"))
	require.NoError(t, s.Delete(ctx, "u1"))
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_SetAdmin(t *testing.T) {
	s, _ := newClockedStore(t)
	ctx := context.Background()
	_, err := s.Create(ctx, &Record{UID: "u1"})
	require.NoError(t, err)

	require.NoError(t, s.SetAdmin(ctx, "u1", true))
	rec, _ := s.Get(ctx, "u1")
	assert.True(t, rec.IsAdmin)
	assert.Equal(t, []string{"admin", "user"}, rec.Roles)

	require.NoError(t, s.SetAdmin(ctx, "u1", false))
	rec, _ = s.Get(ctx, "u1")
	assert.False(t, rec.IsAdmin)
	assert.Equal(t, []string{"user"}, rec.Roles)

	assert.ErrorIs(t, s.SetAdmin(ctx, "ghost", true), common.ErrorNotFound)
}

func TestMemoryStore_FailureInjection(t *testing.T) {
	s, _ := newClockedStore(t)
	ctx := context.Background()
	down := errors.New("store down")

	s.FailAll(down)
	_, err := s.Get(ctx, "u1")
	assert.ErrorIs(t, err, down)
	_, err = s.Create(ctx, &Record{UID: "u1"})
	assert.ErrorIs(t, err, down)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, s.Writes())

	s.FailAll(nil)
	_, err = s.Create(ctx, &Record{UID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Calls(OpCreate))
}
