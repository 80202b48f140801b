// Package profiles describes the profile document store: one Record per
// identity, kept in the "users" collection, holding the role and admin
// flags the session manager trusts.
package profiles

import (
	"encoding/json"
	"maps"
	"slices"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/common"
)

// Extensions holds free-form fields that have no place in the fixed schema.
// Values are kept as raw JSON so unknown fields survive a round trip.
type Extensions map[string]json.RawMessage

// Set stores v under key as JSON.
func (e Extensions) Set(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e[key] = b
	return nil
}

// Get decodes the value under key into dst. It reports false when the key
// is absent.
func (e Extensions) Get(key string, dst any) (bool, error) {
	raw, ok := e[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

// Clone returns a deep copy; nil stays nil.
func (e Extensions) Clone() Extensions {
	if e == nil {
		return nil
	}
	c := make(Extensions, len(e))
	for k, v := range e {
		c[k] = slices.Clone(v)
	}
	return c
}

// Record is a profile document. CreatedAt, UpdatedAt and LastLoginAt are
// assigned by the store, never by callers.
type Record struct {
	UID           string     `json:"uid"`
	Email         string     `json:"email"`
	DisplayName   string     `json:"displayName"`
	PhotoURL      string     `json:"photoURL"`
	EmailVerified bool       `json:"emailVerified"`
	IsAdmin       bool       `json:"isAdmin"`
	Roles         []string   `json:"roles"`
	Extensions    Extensions `json:"extensions,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	LastLoginAt   time.Time  `json:"lastLoginAt"`
}

// Clone returns a deep copy; nil stays nil.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	c.Roles = slices.Clone(r.Roles)
	c.Extensions = r.Extensions.Clone()
	return &c
}

// HasRole reports whether the record carries role.
func (r *Record) HasRole(role string) bool {
	return r != nil && slices.Contains(r.Roles, role)
}

// NormalizeRoles returns roles sorted and de-duplicated, or the default
// role set when nothing is left.
func NormalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		if r != "" {
			out = append(out, r)
		}
	}
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return []string{common.DefaultRole}
	}
	return out
}

// NewUserRecord returns the record written for a freshly created identity:
// never an admin, only the default role.
func NewUserRecord(uid, email, displayName, photoURL string, emailVerified bool, ext Extensions) *Record {
	return &Record{
		UID:           uid,
		Email:         email,
		DisplayName:   displayName,
		PhotoURL:      photoURL,
		EmailVerified: emailVerified,
		IsAdmin:       false,
		Roles:         []string{common.DefaultRole},
		Extensions:    ext.Clone(),
	}
}

// Patch is a partial update. Nil fields are left unchanged; Extensions are
// merged key by key.
type Patch struct {
	Email         *string    `json:"email,omitempty"`
	DisplayName   *string    `json:"displayName,omitempty"`
	PhotoURL      *string    `json:"photoURL,omitempty"`
	EmailVerified *bool      `json:"emailVerified,omitempty"`
	Extensions    Extensions `json:"extensions,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Email == nil && p.DisplayName == nil && p.PhotoURL == nil &&
		p.EmailVerified == nil && len(p.Extensions) == 0
}

// Apply writes the patch onto r. Timestamps are not touched.
func (p Patch) Apply(r *Record) {
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.DisplayName != nil {
		r.DisplayName = *p.DisplayName
	}
	if p.PhotoURL != nil {
		r.PhotoURL = *p.PhotoURL
	}
	if p.EmailVerified != nil {
		r.EmailVerified = *p.EmailVerified
	}
	if len(p.Extensions) > 0 {
		if r.Extensions == nil {
			r.Extensions = make(Extensions, len(p.Extensions))
		}
		maps.Copy(r.Extensions, p.Extensions.Clone())
	}
}
