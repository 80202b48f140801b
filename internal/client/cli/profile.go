package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/esgportal/internal/filex"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/netx"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
)

// ExtOrganisation is the profile extension written by signup.
const ExtOrganisation = "organisation"

func signUpExtensions(org string) (profiles.Extensions, error) {
	org = strings.TrimSpace(org)
	if org == "" {
		return nil, nil
	}
	ext := profiles.Extensions{}
	if err := ext.Set(ExtOrganisation, org); err != nil {
		return nil, err
	}
	return ext, nil
}

// UpdateProfile changes the display name. An empty answer keeps it.
func (a *App) UpdateProfile(ctx context.Context) error {
	name, err := a.ask("Display name")
	if err != nil {
		return err
	}
	if name == "" {
		a.say("Nothing to change")
		return nil
	}
	if err := a.manager.UpdateProfile(ctx, identity.ProfileChanges{DisplayName: &name}); err != nil {
		return err
	}
	a.say("Profile updated")
	return nil
}

// UploadAvatar reads an image, uploads it to the presigned URL the server
// hands out and stores the resulting photo URL in the profile.
func (a *App) UploadAvatar(ctx context.Context) error {
	if a.backend.avatars == nil {
		return a.fail(errNeedsServer)
	}
	path, err := a.ask("Path to image")
	if err != nil {
		return err
	}

	data, contentType, err := filex.ReadAvatar(path)
	if err != nil {
		return a.fail(err)
	}
	uploadURL, photoURL, err := a.backend.avatars.AvatarUploadURL(ctx, contentType)
	if err != nil {
		return a.fail(err)
	}
	if err := netx.UploadToPresignedURL(ctx, a.httpClient, uploadURL, contentType, data); err != nil {
		return a.fail(err)
	}

	if err := a.manager.UpdateProfile(ctx, identity.ProfileChanges{PhotoURL: &photoURL}); err != nil {
		return err
	}
	a.say("Avatar updated")
	return nil
}

func (a *App) UpdateEmail(ctx context.Context) error {
	email, err := a.ask("New email")
	if err != nil {
		return err
	}
	if err := a.manager.UpdateEmail(ctx, email); err != nil {
		return err
	}
	a.say("Email changed to %s. Please verify it.", email)
	return nil
}

func (a *App) UpdatePassword(ctx context.Context) error {
	password, err := a.askPassword("New password")
	if err != nil {
		return err
	}
	if err := a.manager.UpdatePassword(ctx, password); err != nil {
		return err
	}
	a.say("Password changed")
	return nil
}

// CheckAdmin looks up the admin flag of a uid, the signed-in one when the
// answer is empty.
func (a *App) CheckAdmin(ctx context.Context) error {
	uid, err := a.ask("UID (empty for yourself)")
	if err != nil {
		return err
	}
	if uid == "" {
		if u := a.manager.Snapshot().CurrentIdentity; u != nil {
			uid = u.UID
		}
	}
	if a.manager.CheckIsAdmin(ctx, uid) {
		a.say("%s is an admin", uid)
	} else {
		a.say("%s is not an admin", uid)
	}
	return nil
}

// Status prints the session snapshot and the locally saved session.
func (a *App) Status(ctx context.Context) error {
	s := a.manager.Snapshot()

	switch {
	case s.IsLoading:
		a.say("Session: loading")
	case !s.SignedIn():
		a.say("Session: signed out")
	default:
		u := s.MergedUser
		a.say("Signed in as %s (%s)", u.Email, u.UID)
		if u.DisplayName != "" {
			a.say("  name:      %s", u.DisplayName)
		}
		if u.PhotoURL != "" {
			a.say("  photo:     %s", u.PhotoURL)
		}
		a.say("  verified:  %t", u.EmailVerified)
		a.say("  providers: %s", joinTags(u.Providers))
		a.say("  roles:     %s", strings.Join(u.Roles, ", "))
		a.say("  admin:     %t", s.IsAdmin)
		if org := extString(u.Extensions, ExtOrganisation); org != "" {
			a.say("  org:       %s", org)
		}
		if !u.LastLoginAt.IsZero() {
			a.say("  last login: %s", u.LastLoginAt.Local().Format(time.DateTime))
		}
		if !u.HasProfile {
			a.say("  profile:   unavailable")
		}
	}
	if s.Error != "" {
		a.say("Last error: %s", s.Error)
	}
	a.say("Mode: %s", a.Mode())

	if a.backend.meta == nil {
		return nil
	}
	entries, err := a.backend.meta.List(ctx)
	if err != nil {
		return a.fail(err)
	}
	if e, ok := entries[metadata.KeyUID]; ok && len(e.Value) > 0 {
		a.say("Saved session: %s, written %s", e.Value, e.UpdatedAt.Local().Format(time.DateTime))
	}
	return nil
}

// getStatus renders the prompt decoration.
func (a *App) getStatus() string {
	s := a.manager.Snapshot()
	var parts []string
	switch {
	case s.IsLoading:
		parts = append(parts, "…")
	case s.MergedUser != nil:
		who := s.MergedUser.Email
		if who == "" {
			who = s.MergedUser.UID
		}
		parts = append(parts, who)
		if s.IsAdmin {
			parts = append(parts, "admin")
		}
	}
	parts = append(parts, string(a.Mode()))
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

func joinTags(tags []identity.ProviderTag) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, string(t))
	}
	return strings.Join(out, ", ")
}

func extString(ext profiles.Extensions, key string) string {
	var s string
	if ok, err := ext.Get(key, &s); !ok || err != nil {
		return ""
	}
	return s
}
