package session

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
)

// MergedUser combines an identity with its profile record.
type MergedUser struct {
	UID           string
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
	IsAnonymous   bool
	ProviderID    identity.ProviderTag
	Providers     []identity.ProviderTag
	RefreshToken  string

	IsAdmin    bool
	Roles      []string
	Extensions profiles.Extensions

	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt time.Time

	// HasProfile is false when the record could not be read.
	HasProfile bool
}

// Clone returns a deep copy; nil stays nil.
func (u *MergedUser) Clone() *MergedUser {
	if u == nil {
		return nil
	}
	c := *u
	c.Providers = slices.Clone(u.Providers)
	c.Roles = slices.Clone(u.Roles)
	c.Extensions = u.Extensions.Clone()
	return &c
}

// HasRole reports whether the merged user carries role.
func (u *MergedUser) HasRole(role string) bool {
	return u != nil && slices.Contains(u.Roles, role)
}

// Merge builds the merged view of ident and rec. rec may be nil.
//
// Precedence, field by field:
//   - UID, IsAnonymous, ProviderID, Providers and RefreshToken always come
//     from the identity.
//   - IsAdmin and Roles come only from the record; without a record they
//     are false and the default role.
//   - Email, DisplayName, PhotoURL and the timestamps come from the record
//     when it has a value, otherwise from the identity.
//   - EmailVerified comes from the record when there is one.
//   - Extensions come from the record.
func Merge(ident *identity.Identity, rec *profiles.Record) *MergedUser {
	if ident == nil {
		return nil
	}

	u := &MergedUser{
		UID:           ident.UID,
		Email:         ident.Email,
		DisplayName:   ident.DisplayName,
		PhotoURL:      ident.PhotoURL,
		EmailVerified: ident.EmailVerified,
		IsAnonymous:   ident.IsAnonymous,
		ProviderID:    ident.ProviderID,
		Providers:     slices.Clone(ident.Providers),
		RefreshToken:  ident.RefreshToken,
		IsAdmin:       false,
		Roles:         []string{common.DefaultRole},
		CreatedAt:     ident.CreatedAt,
		LastLoginAt:   ident.LastLoginAt,
	}
	if rec == nil {
		return u
	}

	u.HasProfile = true
	u.IsAdmin = rec.IsAdmin
	u.Roles = profiles.NormalizeRoles(rec.Roles)
	u.Extensions = rec.Extensions.Clone()
	u.EmailVerified = rec.EmailVerified
	u.Email = prefer(rec.Email, u.Email)
	u.DisplayName = prefer(rec.DisplayName, u.DisplayName)
	u.PhotoURL = prefer(rec.PhotoURL, u.PhotoURL)
	u.CreatedAt = preferTime(rec.CreatedAt, u.CreatedAt)
	u.UpdatedAt = rec.UpdatedAt
	u.LastLoginAt = preferTime(rec.LastLoginAt, u.LastLoginAt)
	return u
}

func prefer(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func preferTime(a, b time.Time) time.Time {
	if !a.IsZero() {
		return a
	}
	return b
}

// State is a snapshot of the session.
type State struct {
	CurrentIdentity *identity.Identity
	MergedUser      *MergedUser
	IsLoading       bool
	IsAdmin         bool
	// Error is the last user-facing error or warning, empty when none.
	Error string
}

// initialState is the state before the first notification: loading, signed
// out, no error.
func initialState() State {
	return State{IsLoading: true}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	s.CurrentIdentity = s.CurrentIdentity.Clone()
	s.MergedUser = s.MergedUser.Clone()
	return s
}

// SignedIn reports whether an identity is present.
func (s State) SignedIn() bool {
	return s.CurrentIdentity != nil
}
