package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/client/config"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the manager's goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// stubAnswers replaces the prompts with queued answers. An exhausted queue
// behaves like closed input.
func stubAnswers(t *testing.T, text []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(text) == 0 {
			return "", io.EOF
		}
		s := text[0]
		text = text[1:]
		return s, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type testApp struct {
	*App
	out      *syncBuffer
	provider *identity.MemoryProvider
	store    *profiles.MemoryStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	out := &syncBuffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Mode = config.ModeMemory

	b := newMemoryBackend(promptFlow{reader: rdr(""), out: out})
	a := newApp(cfg, logging.NopLogger{}, b, rdr(""), out)

	stop := a.manager.Start(context.Background())
	t.Cleanup(func() {
		stop()
		_ = a.manager.Close()
	})
	require.Eventually(t, func() bool { return !a.manager.Snapshot().IsLoading }, 2*time.Second, 5*time.Millisecond)

	return &testApp{
		App:      a,
		out:      out,
		provider: b.provider.(*identity.MemoryProvider),
		store:    b.store.(*profiles.MemoryStore),
	}
}

func (a *testApp) signUp(t *testing.T) {
	t.Helper()
	stubAnswers(t, []string{"a@x.com", "Acme"}, []string{"Secret123"})
	require.NoError(t, a.SignUp(context.Background()))
}

func TestSignUp_StoresOrganisation(t *testing.T) {
	a := newTestApp(t)
	a.signUp(t)

	s := a.manager.Snapshot()
	require.True(t, s.SignedIn())
	assert.Equal(t, "a@x.com", s.MergedUser.Email)
	assert.Equal(t, "Acme", extString(s.MergedUser.Extensions, ExtOrganisation))
	assert.Contains(t, a.out.String(), "Account created")
	assert.Equal(t, "(a@x.com local)", a.getStatus())
}

func TestSignUp_NoOrganisation(t *testing.T) {
	a := newTestApp(t)
	stubAnswers(t, []string{"b@x.com", ""}, []string{"Secret123"})
	require.NoError(t, a.SignUp(context.Background()))

	assert.Empty(t, a.manager.Snapshot().MergedUser.Extensions)
}

func TestSignIn_WrongPasswordIsReported(t *testing.T) {
	a := newTestApp(t)
	a.signUp(t)
	stubAnswers(t, nil, nil)
	require.NoError(t, a.SignOut(context.Background()))
	assert.Equal(t, "(local)", a.getStatus())

	stubAnswers(t, []string{"a@x.com"}, []string{"Wrong1234"})
	err := a.SignIn(context.Background())
	require.ErrorIs(t, err, autherr.ErrInvalidCredentials)
	assert.Contains(t, a.out.String(), "[error] The email or password is incorrect.")

	stubAnswers(t, []string{"a@x.com"}, []string{"Secret123"})
	require.NoError(t, a.SignIn(context.Background()))
	assert.True(t, a.isLoggedIn())
}

func TestSignIn_PromptClosed(t *testing.T) {
	a := newTestApp(t)
	stubAnswers(t, nil, nil)

	err := a.SignIn(context.Background())
	require.ErrorIs(t, err, io.EOF)
	assert.False(t, a.isLoggedIn())
}

func TestSignInWith_Federated(t *testing.T) {
	a := newTestApp(t)

	stubAnswers(t, []string{""}, nil)
	err := a.SignInWith(context.Background(), identity.ProviderGoogle)
	require.ErrorIs(t, err, autherr.ErrPopupClosedByUser)

	stubAnswers(t, []string{DemoCode}, nil)
	require.NoError(t, a.SignInWith(context.Background(), identity.ProviderGoogle))

	s := a.manager.Snapshot()
	require.True(t, s.SignedIn())
	assert.Equal(t, "demo@google.com", s.MergedUser.Email)
	assert.Equal(t, 1, a.store.Len())
}

func TestLinkProvider(t *testing.T) {
	a := newTestApp(t)
	a.signUp(t)

	stubAnswers(t, []string{"github", DemoCode}, nil)
	require.NoError(t, a.LinkProvider(context.Background()))

	providers := a.manager.Snapshot().CurrentIdentity.Providers
	assert.Equal(t, []identity.ProviderTag{identity.ProviderPassword, identity.ProviderGitHub}, providers)

	stubAnswers(t, []string{"carrier-pigeon"}, nil)
	err := a.LinkProvider(context.Background())
	require.ErrorIs(t, err, autherr.ErrUnsupportedProvider)
}

func TestReauthenticateThenUpdateEmail(t *testing.T) {
	a := newTestApp(t)
	a.signUp(t)

	stubAnswers(t, []string{"password", "a@x.com", "b@x.com"}, []string{"Secret123"})
	require.NoError(t, a.Reauthenticate(context.Background()))
	require.NoError(t, a.UpdateEmail(context.Background()))

	s := a.manager.Snapshot()
	assert.Equal(t, "b@x.com", s.MergedUser.Email)
	assert.False(t, s.MergedUser.EmailVerified)
}

func TestUpdateProfile(t *testing.T) {
	a := newTestApp(t)
	a.signUp(t)

	stubAnswers(t, []string{""}, nil)
	require.NoError(t, a.UpdateProfile(context.Background()))
	assert.Contains(t, a.out.String(), "Nothing to change")

	stubAnswers(t, []string{"Ann"}, nil)
	require.NoError(t, a.UpdateProfile(context.Background()))
	assert.Equal(t, "Ann", a.manager.Snapshot().MergedUser.DisplayName)
}

func TestUpdatePassword(t *testing.T) {
	a := newTestApp(t)
	a.signUp(t)

	stubAnswers(t, nil, []string{"short"})
	err := a.UpdatePassword(context.Background())
	require.ErrorIs(t, err, autherr.ErrWeakPassword)

	stubAnswers(t, nil, []string{"Better1234"})
	require.NoError(t, a.UpdatePassword(context.Background()))
}

func TestServerOnlyCommands(t *testing.T) {
	a := newTestApp(t)
	a.signUp(t)
	stubAnswers(t, nil, nil)

	for name, run := range map[string]func(context.Context) error{
		"avatar":        a.UploadAvatar,
		"confirm-reset": a.ConfirmReset,
		"verify-code":   a.VerifyEmail,
	} {
		err := run(context.Background())
		require.Truef(t, errors.Is(err, errNeedsServer), "%s: %v", name, err)
	}
}

func TestCheckAdmin(t *testing.T) {
	a := newTestApp(t)
	a.signUp(t)
	uid := a.manager.Snapshot().CurrentIdentity.UID

	stubAnswers(t, []string{""}, nil)
	require.NoError(t, a.CheckAdmin(context.Background()))
	assert.Contains(t, a.out.String(), uid+" is not an admin")

	require.NoError(t, a.store.SetAdmin(context.Background(), uid, true))
	stubAnswers(t, []string{uid}, nil)
	require.NoError(t, a.CheckAdmin(context.Background()))
	assert.Contains(t, a.out.String(), uid+" is an admin")

	a.manager.Reload(context.Background())
	assert.Equal(t, "(a@x.com admin local)", a.getStatus())
}

func TestStatus(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Status(context.Background()))
	assert.Contains(t, a.out.String(), "Session: signed out")

	a.signUp(t)
	require.NoError(t, a.Status(context.Background()))
	out := a.out.String()
	assert.Contains(t, out, "Signed in as a@x.com")
	assert.Contains(t, out, "org:       Acme")
	assert.Contains(t, out, "roles:     user")
	assert.Contains(t, out, "Mode: local")
}

func TestDeleteAccount(t *testing.T) {
	a := newTestApp(t)
	a.signUp(t)

	stubAnswers(t, []string{"nope"}, nil)
	require.NoError(t, a.DeleteAccount(context.Background()))
	assert.True(t, a.isLoggedIn())

	stubAnswers(t, []string{"DELETE"}, nil)
	require.NoError(t, a.DeleteAccount(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, 0, a.provider.Accounts())
	assert.Equal(t, 0, a.store.Len())
	assert.Contains(t, a.out.String(), "Your account has been deleted.")
}

func TestResetPassword_UnknownEmailSucceeds(t *testing.T) {
	a := newTestApp(t)
	stubAnswers(t, []string{"nobody@x.com"}, nil)

	require.NoError(t, a.ResetPassword(context.Background()))
	assert.Contains(t, a.out.String(), "If an account exists for nobody@x.com")
}

func TestSendVerification(t *testing.T) {
	a := newTestApp(t)
	a.signUp(t)

	require.NoError(t, a.SendVerification(context.Background()))
	assert.Contains(t, a.out.String(), "Verification email sent.")
}

type fakePinger struct {
	mu  sync.Mutex
	err error
}

func (p *fakePinger) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *fakePinger) set(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func TestOnlineStatusWatcher(t *testing.T) {
	out := &syncBuffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()

	b := newMemoryBackend(nil)
	p := &fakePinger{}
	b.pinger = p
	a := newApp(cfg, logging.NopLogger{}, b, rdr(""), out)
	require.Equal(t, ModeOffline, a.Mode())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return a.Mode() == ModeOnline }, 2*time.Second, 5*time.Millisecond)
	p.set(errors.New("down"))
	require.Eventually(t, func() bool { return a.Mode() == ModeOffline }, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestRun_QuitsOnEOF(t *testing.T) {
	silence(t)
	out := &syncBuffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()

	a := newApp(cfg, logging.NopLogger{}, newMemoryBackend(nil), rdr("status\n"), out)
	a.Run(context.Background())

	assert.Contains(t, out.String(), "ESG portal CLI")
	assert.Contains(t, out.String(), "Session: signed out")
}
