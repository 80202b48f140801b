package grpc

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
	"github.com/dmitrijs2005/esgportal/internal/server/auth"
	"github.com/dmitrijs2005/esgportal/internal/server/services"
)

const testSecret = "test-secret"

// fakeAccounts implements the calls a test needs; the embedded nil
// interface panics on anything else.
type fakeAccounts struct {
	accountSvc

	mu          sync.Mutex
	signInErr   error
	signInToken time.Duration
	refreshed   int
	signedOut   []string
	deleted     []string
	updateErr   error
	lastProfile *string
}

func testIdentity(uid string) *identity.Identity {
	return &identity.Identity{
		UID:         uid,
		Email:       uid + "@example.com",
		ProviderID:  identity.ProviderPassword,
		Providers:   []identity.ProviderTag{identity.ProviderPassword},
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		LastLoginAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func result(uid string, validity time.Duration, refresh string) (*services.AuthResult, error) {
	tok, err := auth.GenerateToken(uid, time.Now(), []byte(testSecret), validity)
	if err != nil {
		return nil, err
	}
	return &services.AuthResult{
		Identity: testIdentity(uid),
		Tokens:   &services.TokenPair{AccessToken: tok, RefreshToken: refresh},
	}, nil
}

func (f *fakeAccounts) SignIn(ctx context.Context, email, password string) (*services.AuthResult, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	validity := f.signInToken
	if validity == 0 {
		validity = time.Minute
	}
	return result("u1", validity, "r1")
}

func (f *fakeAccounts) Refresh(ctx context.Context, refreshToken string) (*services.AuthResult, error) {
	f.mu.Lock()
	f.refreshed++
	f.mu.Unlock()
	return result("u1", time.Minute, "r2")
}

func (f *fakeAccounts) SignOut(ctx context.Context, refreshToken string) error {
	f.signedOut = append(f.signedOut, refreshToken)
	return nil
}

func (f *fakeAccounts) UpdateProfile(ctx context.Context, p auth.Principal, displayName, photoURL *string) (*identity.Identity, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.lastProfile = displayName
	ident := testIdentity(p.UserID)
	if displayName != nil {
		ident.DisplayName = *displayName
	}
	return ident, nil
}

func (f *fakeAccounts) DeleteUser(ctx context.Context, p auth.Principal) error {
	f.deleted = append(f.deleted, p.UserID)
	return nil
}

// fakeProfiles serves records from a memory store without access checks.
type fakeProfiles struct {
	store *profiles.MemoryStore
}

func (f *fakeProfiles) Get(ctx context.Context, p auth.Principal, uid string) (*profiles.Record, error) {
	return f.store.Get(ctx, uid)
}

func (f *fakeProfiles) Create(ctx context.Context, p auth.Principal, rec *profiles.Record) (*profiles.Record, error) {
	return f.store.Create(ctx, rec)
}

func (f *fakeProfiles) Update(ctx context.Context, p auth.Principal, uid string, patch profiles.Patch) (*profiles.Record, error) {
	return f.store.Update(ctx, uid, patch)
}

func (f *fakeProfiles) TouchLastLogin(ctx context.Context, p auth.Principal, uid string) error {
	return f.store.TouchLastLogin(ctx, uid)
}

func (f *fakeProfiles) Delete(ctx context.Context, p auth.Principal, uid string) error {
	return f.store.Delete(ctx, uid)
}

type fakeAvatars struct {
	err error
}

func (f *fakeAvatars) UploadURL(ctx context.Context, p auth.Principal, contentType string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return "https://upload.example/" + p.UserID, "https://cdn.example/users/" + p.UserID + "/a.png", nil
}

func newServer(accounts accountSvc) *GRPCServer {
	s, _ := NewGRPCServer("127.0.0.1:0", logging.NopLogger{}, accounts,
		&fakeProfiles{store: profiles.NewMemoryStore()}, &fakeAvatars{}, testSecret)
	return s
}
