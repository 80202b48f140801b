package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	login := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	recLogin := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	ident := &identity.Identity{
		UID:           "u1",
		Email:         "id@x.com",
		DisplayName:   "From Identity",
		PhotoURL:      "https://img/id.png",
		EmailVerified: true,
		ProviderID:    identity.ProviderGoogle,
		Providers:     []identity.ProviderTag{identity.ProviderGoogle},
		CreatedAt:     created,
		LastLoginAt:   login,
		RefreshToken:  "rt",
	}

	tests := []struct {
		name string
		rec  *profiles.Record
		want *MergedUser
	}{
		{
			name: "no record falls back to identity with safe defaults",
			rec:  nil,
			want: &MergedUser{
				UID: "u1", Email: "id@x.com", DisplayName: "From Identity", PhotoURL: "https://img/id.png",
				EmailVerified: true, ProviderID: identity.ProviderGoogle,
				Providers: []identity.ProviderTag{identity.ProviderGoogle}, RefreshToken: "rt",
				IsAdmin: false, Roles: []string{"user"},
				CreatedAt: created, LastLoginAt: login,
			},
		},
		{
			name: "record wins where it has values",
			rec: &profiles.Record{
				UID: "u1", Email: "rec@x.com", DisplayName: "", PhotoURL: "https://img/rec.png",
				EmailVerified: false, IsAdmin: true, Roles: []string{"admin", "user"},
				Extensions: profiles.Extensions{"sector": json.RawMessage(`"energy"`)},
				LastLoginAt: recLogin, UpdatedAt: recLogin,
			},
			want: &MergedUser{
				UID: "u1", Email: "rec@x.com", DisplayName: "From Identity", PhotoURL: "https://img/rec.png",
				EmailVerified: false, ProviderID: identity.ProviderGoogle,
				Providers: []identity.ProviderTag{identity.ProviderGoogle}, RefreshToken: "rt",
				IsAdmin: true, Roles: []string{"admin", "user"},
				Extensions: profiles.Extensions{"sector": json.RawMessage(`"energy"`)},
				CreatedAt:  created, UpdatedAt: recLogin, LastLoginAt: recLogin,
				HasProfile: true,
			},
		},
		{
			name: "record without roles gets the default role",
			rec:  &profiles.Record{UID: "u1"},
			want: &MergedUser{
				UID: "u1", Email: "id@x.com", DisplayName: "From Identity", PhotoURL: "https://img/id.png",
				EmailVerified: false, ProviderID: identity.ProviderGoogle,
				Providers: []identity.ProviderTag{identity.ProviderGoogle}, RefreshToken: "rt",
				Roles:     []string{"user"},
				CreatedAt: created, LastLoginAt: login,
				HasProfile: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(ident, tt.rec)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Merge mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_NilIdentity(t *testing.T) {
	assert.Nil(t, Merge(nil, &profiles.Record{UID: "u1", IsAdmin: true}))
}

func TestMerge_DoesNotAlias(t *testing.T) {
	ident := &identity.Identity{UID: "u1", Providers: []identity.ProviderTag{identity.ProviderPassword}}
	rec := &profiles.Record{UID: "u1", Roles: []string{"user"}}

	u := Merge(ident, rec)
	u.Providers[0] = identity.ProviderGitHub
	u.Roles[0] = "admin"

	assert.Equal(t, identity.ProviderPassword, ident.Providers[0])
	assert.Equal(t, "user", rec.Roles[0])
}

func TestState_Clone(t *testing.T) {
	s := State{
		CurrentIdentity: &identity.Identity{UID: "u1"},
		MergedUser:      &MergedUser{UID: "u1", Roles: []string{"user"}},
	}
	c := s.Clone()
	c.CurrentIdentity.UID = "changed"
	c.MergedUser.Roles[0] = "admin"

	require.True(t, s.SignedIn())
	assert.Equal(t, "u1", s.CurrentIdentity.UID)
	assert.False(t, s.MergedUser.HasRole("admin"))
	assert.False(t, State{}.SignedIn())
}

func TestInitialState(t *testing.T) {
	s := initialState()
	assert.True(t, s.IsLoading)
	assert.Nil(t, s.CurrentIdentity)
	assert.Nil(t, s.MergedUser)
	assert.False(t, s.IsAdmin)
	assert.Empty(t, s.Error)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
}
