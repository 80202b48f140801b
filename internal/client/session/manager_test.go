package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

type note struct {
	level Level
	msg   string
}

type recorder struct {
	mu    sync.Mutex
	notes []note
}

func (r *recorder) Notify(ctx context.Context, level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, note{level: level, msg: msg})
}

func (r *recorder) has(level Level, msg string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notes {
		if n.level == level && n.msg == msg {
			return true
		}
	}
	return false
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

// codeFlow answers every consent request with a fixed code.
type codeFlow struct{ code string }

func (f codeFlow) Authorize(ctx context.Context, tag identity.ProviderTag, consentURL string) (string, error) {
	return f.code, nil
}

type fixture struct {
	m     *Manager
	p     *identity.MemoryProvider
	store *profiles.MemoryStore
	notes *recorder
}

// newFixture builds a started manager over in-memory backends and waits for
// the first settle.
func newFixture(t *testing.T, flow identity.FederatedFlow) *fixture {
	t.Helper()
	f := &fixture{
		p:     identity.NewMemoryProvider(flow),
		store: profiles.NewMemoryStore(),
		notes: &recorder{},
	}
	f.m = NewManager(f.p, f.store, f.notes, nil)
	stop := f.m.Start(context.Background())
	t.Cleanup(func() {
		stop()
		_ = f.m.Close()
	})
	waitSettled(t, f.m)
	return f
}

func waitSettled(t *testing.T, m *Manager) {
	t.Helper()
	require.Eventually(t, func() bool { return !m.Snapshot().IsLoading }, waitFor, tick)
}

// manualProvider hands notifications to the manager only when told to.
type manualProvider struct {
	*identity.MemoryProvider

	mu  sync.Mutex
	fns map[int]func(*identity.Identity)
	id  int
}

func newManualProvider() *manualProvider {
	return &manualProvider{
		MemoryProvider: identity.NewMemoryProvider(nil),
		fns:            make(map[int]func(*identity.Identity)),
	}
}

func (p *manualProvider) Subscribe(fn func(*identity.Identity)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.id
	p.id++
	p.fns[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.fns, id)
	}
}

func (p *manualProvider) emit(ident *identity.Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, fn := range p.fns {
		fn(ident)
	}
}

// gatedStore blocks Get while block is set until release is closed.
type gatedStore struct {
	*profiles.MemoryStore
	block   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func (s *gatedStore) Get(ctx context.Context, uid string) (*profiles.Record, error) {
	if s.block.Load() {
		select {
		case s.entered <- struct{}{}:
		default:
		}
		<-s.release
	}
	return s.MemoryStore.Get(ctx, uid)
}

func TestManager_LoadingUntilFirstNotification(t *testing.T) {
	p := newManualProvider()
	m := NewManager(p, profiles.NewMemoryStore(), nil, nil)
	defer m.Close()
	stop := m.Start(context.Background())
	defer stop()

	s := m.Snapshot()
	assert.True(t, s.IsLoading)
	assert.Nil(t, s.CurrentIdentity)

	p.emit(nil)
	waitSettled(t, m)

	ch, cancel := m.Watch()
	defer cancel()

	ident, err := p.CreateUserWithPassword(context.Background(), "a@x.com", "Secret123")
	require.NoError(t, err)
	p.emit(ident)
	p.emit(nil)
	p.emit(ident)

	deadline := time.After(waitFor)
	for {
		select {
		case s := <-ch:
			require.False(t, s.IsLoading, "loading after the first settle")
			if s.CurrentIdentity != nil && s.CurrentIdentity.UID == ident.UID {
				return
			}
		case <-deadline:
			t.Fatal("signed-in state never published")
		}
	}
}

func TestManager_StartReplacesSubscription(t *testing.T) {
	p := identity.NewMemoryProvider(nil)
	m := NewManager(p, profiles.NewMemoryStore(), nil, nil)

	stop1 := m.Start(context.Background())
	stop2 := m.Start(context.Background())
	assert.Equal(t, 1, p.Subscribers())

	stop1()
	assert.Equal(t, 1, p.Subscribers())

	stop2()
	assert.Equal(t, 0, p.Subscribers())
	require.NoError(t, m.Close())
}

func TestManager_StopDetachesFromProvider(t *testing.T) {
	p := identity.NewMemoryProvider(nil)
	m := NewManager(p, profiles.NewMemoryStore(), nil, nil)
	stop := m.Start(context.Background())
	waitSettled(t, m)
	stop()

	_, err := p.CreateUserWithPassword(context.Background(), "a@x.com", "Secret123")
	require.NoError(t, err)

	assert.Never(t, func() bool { return m.Snapshot().SignedIn() }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestManager_FollowsProviderNotifications(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	ident, err := f.p.CreateUserWithPassword(ctx, "a@x.com", "Secret123")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return f.m.Snapshot().SignedIn() }, waitFor, tick)

	// No record was provisioned: identity-only view with the warning.
	s := f.m.Snapshot()
	assert.Equal(t, ident.UID, s.MergedUser.UID)
	assert.False(t, s.MergedUser.HasProfile)
	assert.False(t, s.IsAdmin)
	assert.Equal(t, ProfileUnavailableWarning, s.Error)

	require.NoError(t, f.p.SignOut(ctx))
	require.Eventually(t, func() bool { return !f.m.Snapshot().SignedIn() }, waitFor, tick)
	assert.Nil(t, f.m.Snapshot().MergedUser)
	assert.Empty(t, f.m.Snapshot().Error)
}

func TestManager_MissingProfileWarns(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	assert.False(t, f.notes.has(LevelWarning, ProfileUnavailableWarning), "no warning while the record is being written")

	uid := f.m.Snapshot().CurrentIdentity.UID
	require.NoError(t, f.store.Delete(ctx, uid))
	f.m.Reload(ctx)

	s := f.m.Snapshot()
	require.True(t, s.SignedIn())
	assert.False(t, s.MergedUser.HasProfile)
	assert.False(t, s.IsAdmin)
	assert.Equal(t, []string{"user"}, s.MergedUser.Roles)
	assert.Equal(t, ProfileUnavailableWarning, s.Error)
	assert.True(t, f.notes.has(LevelWarning, ProfileUnavailableWarning))

	f.store.Put(profiles.NewUserRecord(uid, "a@x.com", "", "", false, nil))
	f.m.Reload(ctx)
	assert.Empty(t, f.m.Snapshot().Error)
}

func TestManager_SignUpSignOutSignIn(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))

	s := f.m.Snapshot()
	require.True(t, s.SignedIn())
	assert.False(t, s.IsLoading)
	assert.Equal(t, "a@x.com", s.MergedUser.Email)
	assert.False(t, s.IsAdmin)
	assert.Equal(t, []string{"user"}, s.MergedUser.Roles)

	rec, err := f.store.Get(ctx, s.CurrentIdentity.UID)
	require.NoError(t, err)
	assert.False(t, rec.IsAdmin)
	assert.Equal(t, []string{"user"}, rec.Roles)
	assert.False(t, f.m.CheckIsAdmin(ctx, s.CurrentIdentity.UID))

	out := f.p.Outbox()
	require.Len(t, out, 1)
	assert.Equal(t, "verify", out[0].Kind)

	require.NoError(t, f.m.SignOut(ctx))
	s = f.m.Snapshot()
	assert.Nil(t, s.CurrentIdentity)
	assert.Nil(t, s.MergedUser)
	assert.False(t, s.IsAdmin)

	require.NoError(t, f.m.SignIn(ctx, "a@x.com", "Secret123"))
	s = f.m.Snapshot()
	require.True(t, s.SignedIn())
	assert.Equal(t, "a@x.com", s.MergedUser.Email)
	assert.True(t, s.MergedUser.HasProfile)
}

func TestManager_SignUpKeepsExtensions(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	ext := profiles.Extensions{}
	require.NoError(t, ext.Set("organization", "Acme"))
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", ext))

	var org string
	ok, err := f.m.Snapshot().MergedUser.Extensions.Get("organization", &org)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Acme", org)
}

func TestManager_SignUpRollsBackWhenProfileWriteFails(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.store.FailWith(profiles.OpCreate, errors.New("connection refused"))

	err := f.m.SignUp(ctx, "a@x.com", "Secret123", nil)
	require.ErrorIs(t, err, autherr.ErrServiceUnavailable)

	assert.Equal(t, 0, f.p.Accounts())
	assert.Equal(t, 1, f.p.Calls(identity.OpDeleteUser))
	s := f.m.Snapshot()
	assert.False(t, s.SignedIn())
	assert.False(t, s.IsLoading)
	assert.Equal(t, autherr.Message(autherr.ErrServiceUnavailable), s.Error)
}

func TestManager_AdminOnlyFromRecord(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	uid := f.m.Snapshot().CurrentIdentity.UID
	assert.False(t, f.m.Snapshot().IsAdmin)

	require.NoError(t, f.store.SetAdmin(ctx, uid, true))
	f.m.Reload(ctx)

	s := f.m.Snapshot()
	assert.True(t, s.IsAdmin)
	assert.True(t, s.MergedUser.HasRole("admin"))
	assert.True(t, f.m.CheckIsAdmin(ctx, uid))

	require.NoError(t, f.m.SignOut(ctx))
	assert.False(t, f.m.Snapshot().IsAdmin)
}

func TestManager_CheckIsAdminFailsClosed(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	f.store.Put(&profiles.Record{UID: "boss", IsAdmin: true, Roles: []string{"admin"}})
	assert.True(t, f.m.CheckIsAdmin(ctx, "boss"))

	assert.False(t, f.m.CheckIsAdmin(ctx, ""))
	assert.False(t, f.m.CheckIsAdmin(ctx, "nobody"))

	f.store.FailAll(errors.New("connection refused"))
	assert.False(t, f.m.CheckIsAdmin(ctx, "boss"))

	nostore := NewManager(f.p, nil, nil, nil)
	assert.False(t, nostore.CheckIsAdmin(ctx, "boss"))
}

func TestManager_StoreUnreachableDuringSignIn(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	require.NoError(t, f.m.SignOut(ctx))

	f.store.FailAll(errors.New("connection refused"))
	require.NoError(t, f.m.SignIn(ctx, "a@x.com", "Secret123"))

	s := f.m.Snapshot()
	require.True(t, s.SignedIn())
	assert.False(t, s.IsLoading)
	assert.False(t, s.IsAdmin)
	assert.False(t, s.MergedUser.HasProfile)
	assert.Equal(t, "a@x.com", s.MergedUser.Email)
	assert.Equal(t, ProfileUnavailableWarning, s.Error)
	assert.True(t, f.notes.has(LevelWarning, ProfileUnavailableWarning))

	f.store.FailAll(nil)
	f.m.Reload(ctx)
	s = f.m.Snapshot()
	assert.True(t, s.MergedUser.HasProfile)
	assert.Empty(t, s.Error)
}

func TestManager_WarningOutlivesNonSessionOperations(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	require.NoError(t, f.m.SignOut(ctx))

	f.store.FailAll(errors.New("connection refused"))
	require.NoError(t, f.m.SignIn(ctx, "a@x.com", "Secret123"))
	require.Equal(t, ProfileUnavailableWarning, f.m.Snapshot().Error)

	require.NoError(t, f.m.ResetPassword(ctx, "a@x.com"))
	assert.Equal(t, ProfileUnavailableWarning, f.m.Snapshot().Error)

	require.NoError(t, f.m.Reauthenticate(ctx, identity.PasswordCredential("a@x.com", "Secret123")))
	assert.Equal(t, ProfileUnavailableWarning, f.m.Snapshot().Error)

	f.store.FailAll(nil)
	f.m.Reload(ctx)
	assert.Empty(t, f.m.Snapshot().Error)
}

func TestManager_RequiresSession(t *testing.T) {
	f := newFixture(t, codeFlow{code: "c"})
	ctx := context.Background()
	name := "Ann"

	ops := map[string]func() error{
		"update_profile":  func() error { return f.m.UpdateProfile(ctx, identity.ProfileChanges{DisplayName: &name}) },
		"update_email":    func() error { return f.m.UpdateEmail(ctx, "b@x.com") },
		"update_password": func() error { return f.m.UpdatePassword(ctx, "Another123") },
		"link_credential": func() error {
			return f.m.LinkCredential(ctx, identity.PasswordCredential("a@x.com", "Secret123"))
		},
		"reauthenticate": func() error {
			return f.m.Reauthenticate(ctx, identity.PasswordCredential("a@x.com", "Secret123"))
		},
		"delete_account": func() error { return f.m.DeleteAccount(ctx) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			require.ErrorIs(t, err, autherr.ErrNotAuthenticated)
			assert.Equal(t, autherr.Message(autherr.ErrNotAuthenticated), f.m.Snapshot().Error)
			assert.False(t, f.m.Snapshot().IsLoading)
		})
	}

	f.m.SendVerificationEmail(ctx)

	assert.Equal(t, 0, f.store.Writes())
	for _, op := range []string{
		identity.OpUpdateProfile, identity.OpUpdateEmail, identity.OpUpdatePassword,
		identity.OpLinkCredential, identity.OpReauthenticate, identity.OpDeleteUser,
		identity.OpSendEmailVerification,
	} {
		assert.Equal(t, 0, f.p.Calls(op), op)
	}
}

func TestManager_EmptyInputs(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.ErrorIs(t, f.m.SignIn(ctx, "", "x"), autherr.ErrInvalidArgument)
	require.ErrorIs(t, f.m.SignUp(ctx, "a@x.com", " ", nil), autherr.ErrInvalidArgument)
	require.ErrorIs(t, f.m.ResetPassword(ctx, ""), autherr.ErrInvalidArgument)
	assert.Equal(t, 0, f.p.Calls(identity.OpSignIn))
	assert.Equal(t, 0, f.p.Calls(identity.OpCreateUser))
}

func TestManager_SignInErrors(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	require.NoError(t, f.m.SignOut(ctx))

	err := f.m.SignIn(ctx, "a@x.com", "wrong-password")
	require.ErrorIs(t, err, autherr.ErrInvalidCredentials)
	s := f.m.Snapshot()
	assert.Equal(t, "The email or password is incorrect.", s.Error)
	assert.False(t, s.SignedIn())
	assert.False(t, s.IsLoading)
	assert.True(t, f.notes.has(LevelError, "The email or password is incorrect."))

	f.p.FailWith(identity.OpSignIn, errors.New("boom"))
	err = f.m.SignIn(ctx, "a@x.com", "Secret123")
	require.ErrorIs(t, err, autherr.ErrUnknown)
	assert.Equal(t, "An unexpected error occurred: boom", f.m.Snapshot().Error)

	f.p.FailWith(identity.OpSignIn, nil)
	require.NoError(t, f.m.SignIn(ctx, "a@x.com", "Secret123"))
	assert.Empty(t, f.m.Snapshot().Error)
}

func TestManager_SignOutFailureStillClears(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))

	f.p.FailWith(identity.OpSignOut, autherr.ErrNetworkUnavailable)
	err := f.m.SignOut(ctx)
	require.ErrorIs(t, err, autherr.ErrNetworkUnavailable)

	s := f.m.Snapshot()
	assert.Nil(t, s.CurrentIdentity)
	assert.Nil(t, s.MergedUser)
	assert.False(t, s.IsAdmin)
	assert.Equal(t, autherr.Message(autherr.ErrNetworkUnavailable), s.Error)
}

func TestManager_ResetPassword(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	require.NoError(t, f.m.SignOut(ctx))

	require.NoError(t, f.m.ResetPassword(ctx, "nobody@x.com"))
	require.NoError(t, f.m.ResetPassword(ctx, "A@X.com"))

	var resets int
	for _, e := range f.p.Outbox() {
		if e.Kind == "reset" {
			resets++
			assert.Equal(t, "a@x.com", e.To)
		}
	}
	assert.Equal(t, 1, resets)
	assert.False(t, f.m.Snapshot().SignedIn())
}

func TestManager_UpdateProfile(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	uid := f.m.Snapshot().CurrentIdentity.UID

	name, photo := "Ann", "https://img/ann.png"
	require.NoError(t, f.m.UpdateProfile(ctx, identity.ProfileChanges{DisplayName: &name, PhotoURL: &photo}))

	s := f.m.Snapshot()
	assert.Equal(t, "Ann", s.MergedUser.DisplayName)
	assert.Equal(t, photo, s.MergedUser.PhotoURL)
	assert.Equal(t, "Ann", s.CurrentIdentity.DisplayName)

	rec, err := f.store.Get(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "Ann", rec.DisplayName)
	assert.Equal(t, photo, rec.PhotoURL)

	updates := f.store.Calls(profiles.OpUpdate)
	require.NoError(t, f.m.UpdateProfile(ctx, identity.ProfileChanges{}))
	assert.Equal(t, updates, f.store.Calls(profiles.OpUpdate))
}

func TestManager_UpdateEmail(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	uid := f.m.Snapshot().CurrentIdentity.UID
	require.NoError(t, f.p.VerifyEmail(uid))

	require.NoError(t, f.m.UpdateEmail(ctx, "B@x.com"))

	s := f.m.Snapshot()
	assert.Equal(t, "b@x.com", s.MergedUser.Email)
	assert.False(t, s.MergedUser.EmailVerified)

	rec, err := f.store.Get(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", rec.Email)
	assert.False(t, rec.EmailVerified)

	out := f.p.Outbox()
	require.NotEmpty(t, out)
	last := out[len(out)-1]
	assert.Equal(t, "verify", last.Kind)
	assert.Equal(t, "b@x.com", last.To)
}

func TestManager_UpdateEmailNeedsRecentLogin(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	uid := f.m.Snapshot().CurrentIdentity.UID
	f.p.SetRecentLoginWindow(time.Minute)
	f.p.SetClock(func() time.Time { return time.Now().Add(time.Hour) })

	err := f.m.UpdateEmail(ctx, "b@x.com")
	require.ErrorIs(t, err, autherr.ErrRequiresRecentLogin)

	rec, err := f.store.Get(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", rec.Email)

	require.NoError(t, f.m.Reauthenticate(ctx, identity.PasswordCredential("a@x.com", "Secret123")))
	require.NoError(t, f.m.UpdateEmail(ctx, "b@x.com"))
}

func TestManager_UpdatePasswordDoesNotWriteProfile(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))

	creates, updates := f.store.Calls(profiles.OpCreate), f.store.Calls(profiles.OpUpdate)
	require.NoError(t, f.m.UpdatePassword(ctx, "Another123"))
	assert.Equal(t, creates, f.store.Calls(profiles.OpCreate))
	assert.Equal(t, updates, f.store.Calls(profiles.OpUpdate))

	require.ErrorIs(t, f.m.UpdatePassword(ctx, "short"), autherr.ErrWeakPassword)

	require.NoError(t, f.m.SignOut(ctx))
	require.ErrorIs(t, f.m.SignIn(ctx, "a@x.com", "Secret123"), autherr.ErrInvalidCredentials)
	require.NoError(t, f.m.SignIn(ctx, "a@x.com", "Another123"))
}

func TestManager_FederatedLogin(t *testing.T) {
	f := newFixture(t, codeFlow{code: "code-1"})
	ctx := context.Background()
	c := &clock{t: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	f.store.SetClock(c.now)
	f.p.RegisterExternalAccount(identity.ProviderGoogle, "code-1", identity.ExternalAccount{
		Subject: "g-1", Email: "g@x.com", Name: "Gee",
	})

	require.NoError(t, f.m.LoginWithFederatedProvider(ctx, identity.ProviderGoogle))
	s := f.m.Snapshot()
	require.True(t, s.SignedIn())
	uid := s.CurrentIdentity.UID
	assert.Equal(t, "Gee", s.MergedUser.DisplayName)
	assert.False(t, s.IsAdmin)
	assert.Equal(t, 1, f.store.Calls(profiles.OpCreate))
	assert.Equal(t, 1, f.store.Len())

	require.NoError(t, f.m.SignOut(ctx))
	second := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	c.set(second)

	require.NoError(t, f.m.LoginWithFederatedProvider(ctx, identity.ProviderGoogle))
	assert.Equal(t, uid, f.m.Snapshot().CurrentIdentity.UID)
	assert.Equal(t, 1, f.store.Calls(profiles.OpCreate))
	assert.Equal(t, 1, f.store.Len())

	rec, err := f.store.Get(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, second, rec.LastLoginAt)
	assert.Equal(t, second, f.m.Snapshot().MergedUser.LastLoginAt)
}

func TestManager_FederatedLoginErrors(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	err := f.m.LoginWithFederatedProvider(ctx, identity.ProviderPassword)
	require.ErrorIs(t, err, autherr.ErrUnsupportedProvider)

	err = f.m.LoginWithFederatedProvider(ctx, identity.ProviderGitHub)
	require.ErrorIs(t, err, autherr.ErrPopupClosedByUser)
	assert.Equal(t, autherr.Message(autherr.ErrPopupClosedByUser), f.m.Snapshot().Error)
	assert.Equal(t, 0, f.store.Writes())
}

func TestManager_LinkCredential(t *testing.T) {
	f := newFixture(t, codeFlow{code: "gh"})
	ctx := context.Background()
	f.p.RegisterExternalAccount(identity.ProviderGitHub, "gh", identity.ExternalAccount{Subject: "octo"})
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))

	require.NoError(t, f.m.LinkCredential(ctx, identity.Credential{Provider: identity.ProviderGitHub}))
	assert.Contains(t, f.m.Snapshot().MergedUser.Providers, identity.ProviderGitHub)

	err := f.m.LinkCredential(ctx, identity.Credential{Provider: identity.ProviderGitHub})
	require.ErrorIs(t, err, autherr.ErrCredentialAlreadyInUse)
}

func TestManager_SendVerificationEmailNeverFails(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))

	f.p.FailWith(identity.OpSendEmailVerification, autherr.ErrTooManyRequests)
	f.m.SendVerificationEmail(ctx)
	assert.Empty(t, f.m.Snapshot().Error)

	f.p.FailWith(identity.OpSendEmailVerification, nil)
	f.m.SendVerificationEmail(ctx)
	assert.True(t, f.notes.has(LevelInfo, "Verification email sent."))
}

func TestManager_DeleteAccount(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	uid := f.m.Snapshot().CurrentIdentity.UID

	require.NoError(t, f.m.DeleteAccount(ctx))

	s := f.m.Snapshot()
	assert.Nil(t, s.CurrentIdentity)
	assert.Nil(t, s.MergedUser)
	assert.False(t, s.IsAdmin)
	assert.Equal(t, 0, f.p.Accounts())
	assert.False(t, f.m.CheckIsAdmin(ctx, uid))

	require.NoError(t, f.m.Close())
	assert.Equal(t, 0, f.store.Len())
}

func TestManager_DeleteAccountIdentityFailure(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	require.NoError(t, f.m.Close())
	f.p.FailWith(identity.OpDeleteUser, autherr.ErrRequiresRecentLogin)

	err := f.m.DeleteAccount(ctx)
	require.ErrorIs(t, err, autherr.ErrRequiresRecentLogin)

	s := f.m.Snapshot()
	require.True(t, s.SignedIn())
	assert.False(t, s.IsAdmin)
	assert.False(t, s.MergedUser.HasProfile)
	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, 1, f.p.Accounts())
}

func TestManager_DropsStaleReconcile(t *testing.T) {
	p := identity.NewMemoryProvider(nil)
	store := &gatedStore{
		MemoryStore: profiles.NewMemoryStore(),
		entered:     make(chan struct{}, 1),
		release:     make(chan struct{}),
	}
	m := NewManager(p, store, nil, nil)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.SignUp(ctx, "a@x.com", "Secret123", nil))
	require.True(t, m.Snapshot().SignedIn())

	store.block.Store(true)
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.Reload(ctx)
	}()

	select {
	case <-store.entered:
	case <-time.After(waitFor):
		t.Fatal("reload never reached the store")
	}

	require.NoError(t, m.SignOut(ctx))
	require.False(t, m.Snapshot().SignedIn())

	close(store.release)
	<-done

	s := m.Snapshot()
	assert.False(t, s.SignedIn())
	assert.Nil(t, s.MergedUser)
	assert.False(t, s.IsLoading)
}

func TestManager_TouchesLastLoginOncePerSession(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	require.Eventually(t, func() bool { return f.store.Calls(profiles.OpTouchLastLogin) == 1 }, waitFor, tick)

	f.m.Reload(ctx)
	f.m.Reload(ctx)
	require.NoError(t, f.m.Close())
	assert.Equal(t, 1, f.store.Calls(profiles.OpTouchLastLogin))
}

func TestManager_SignInTouchesLastLoginAgain(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	require.Eventually(t, func() bool { return f.store.Calls(profiles.OpTouchLastLogin) == 1 }, waitFor, tick)

	require.NoError(t, f.m.SignIn(ctx, "a@x.com", "Secret123"))
	require.NoError(t, f.m.Close())
	assert.Equal(t, 2, f.store.Calls(profiles.OpTouchLastLogin))
}

func TestManager_NoLastLoginWriteAfterClose(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.m.SignIn(ctx, "a@x.com", "Secret123")
		}()
	}
	require.NoError(t, f.m.Close())
	touches := f.store.Calls(profiles.OpTouchLastLogin)
	wg.Wait()

	require.NoError(t, f.m.SignIn(ctx, "a@x.com", "Secret123"))
	assert.Equal(t, touches, f.store.Calls(profiles.OpTouchLastLogin))
	assert.True(t, f.m.Snapshot().MergedUser.HasProfile)
}

func TestManager_TouchFailureIsSilent(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.store.FailWith(profiles.OpTouchLastLogin, errors.New("timeout"))

	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	require.NoError(t, f.m.Close())

	s := f.m.Snapshot()
	assert.Empty(t, s.Error)
	assert.True(t, s.MergedUser.HasProfile)
}

func TestManager_Watch(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	ch, cancel := f.m.Watch()
	first := <-ch
	assert.False(t, first.SignedIn())

	require.NoError(t, f.m.SignUp(ctx, "a@x.com", "Secret123", nil))
	require.Eventually(t, func() bool {
		select {
		case s := <-ch:
			return s.SignedIn() && !s.IsLoading
		default:
			return false
		}
	}, waitFor, tick)

	cancel()
	cancel()
	for range ch {
	}
}
