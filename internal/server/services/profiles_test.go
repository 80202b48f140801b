package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
	"github.com/dmitrijs2005/esgportal/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) (*ProfileService, *memRepos) {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repos := newMemRepos(time.Now)
	return NewProfileService(db, repos, logging.NopLogger{}), repos
}

func TestProfileCreate_ForcesDefaults(t *testing.T) {
	svc, _ := newProfileService(t)
	me := auth.Principal{UserID: "u1"}

	rec, err := svc.Create(context.Background(), me, &profiles.Record{
		UID:        "u1",
		Email:      "ann@example.com",
		IsAdmin:    true,
		Roles:      []string{"admin"},
		Extensions: profiles.Extensions{"org": []byte(`"acme"`)},
	})
	require.NoError(t, err)
	assert.False(t, rec.IsAdmin)
	assert.Equal(t, []string{common.DefaultRole}, rec.Roles)
	assert.Equal(t, "ann@example.com", rec.Email)
	assert.JSONEq(t, `"acme"`, string(rec.Extensions["org"]))

	_, err = svc.Create(context.Background(), me, &profiles.Record{UID: "u1"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = svc.Create(context.Background(), me, &profiles.Record{UID: "u2"})
	assert.ErrorIs(t, err, autherr.ErrPermissionDenied)

	_, err = svc.Create(context.Background(), me, nil)
	assert.ErrorIs(t, err, autherr.ErrInvalidArgument)
}

func TestProfileGet_OwnerOrAdmin(t *testing.T) {
	svc, repos := newProfileService(t)
	repos.profiles.Put(profiles.NewUserRecord("u1", "ann@example.com", "", "", false, nil))
	repos.profiles.Put(profiles.NewUserRecord("u2", "bob@example.com", "", "", false, nil))
	admin := profiles.NewUserRecord("root", "root@example.com", "", "", true, nil)
	admin.IsAdmin = true
	admin.Roles = []string{"admin", "user"}
	repos.profiles.Put(admin)

	rec, err := svc.Get(context.Background(), auth.Principal{UserID: "u1"}, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", rec.Email)

	_, err = svc.Get(context.Background(), auth.Principal{UserID: "u1"}, "u2")
	assert.ErrorIs(t, err, autherr.ErrPermissionDenied)

	_, err = svc.Get(context.Background(), auth.Principal{UserID: "nobody"}, "u2")
	assert.ErrorIs(t, err, autherr.ErrPermissionDenied)

	rec, err = svc.Get(context.Background(), auth.Principal{UserID: "root"}, "u2")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", rec.Email)

	_, err = svc.Get(context.Background(), auth.Principal{UserID: "u3"}, "u3")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestProfileUpdate_OwnerOnly(t *testing.T) {
	svc, repos := newProfileService(t)
	repos.profiles.Put(profiles.NewUserRecord("u1", "ann@example.com", "", "", false, nil))
	me := auth.Principal{UserID: "u1"}
	name := "Ann"

	rec, err := svc.Update(context.Background(), me, "u1", profiles.Patch{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ann", rec.DisplayName)
	assert.False(t, rec.IsAdmin)

	rec, err = svc.Update(context.Background(), me, "u1", profiles.Patch{})
	require.NoError(t, err)
	assert.Equal(t, "Ann", rec.DisplayName)

	_, err = svc.Update(context.Background(), auth.Principal{UserID: "u2"}, "u1", profiles.Patch{DisplayName: &name})
	assert.ErrorIs(t, err, autherr.ErrPermissionDenied)
}

func TestProfileTouchAndDelete(t *testing.T) {
	svc, repos := newProfileService(t)
	repos.profiles.Put(profiles.NewUserRecord("u1", "ann@example.com", "", "", false, nil))
	me := auth.Principal{UserID: "u1"}

	require.NoError(t, svc.TouchLastLogin(context.Background(), me, "u1"))
	assert.ErrorIs(t, svc.TouchLastLogin(context.Background(), me, "u2"), autherr.ErrPermissionDenied)
	assert.ErrorIs(t, svc.Delete(context.Background(), me, ""), autherr.ErrInvalidArgument)

	require.NoError(t, svc.Delete(context.Background(), me, "u1"))
	assert.Equal(t, 0, repos.profiles.Len())
}

func TestProfileSetAdmin(t *testing.T) {
	svc, repos := newProfileService(t)
	repos.profiles.Put(profiles.NewUserRecord("u1", "ann@example.com", "", "", false, nil))

	require.NoError(t, svc.SetAdmin(context.Background(), "u1", true))

	rec, err := svc.Get(context.Background(), auth.Principal{UserID: "u1"}, "u1")
	require.NoError(t, err)
	assert.True(t, rec.IsAdmin)
	assert.True(t, rec.HasRole(common.AdminRole))

	assert.ErrorIs(t, svc.SetAdmin(context.Background(), "ghost", true), common.ErrorNotFound)
}
