package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/dbx"
	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
	"github.com/dmitrijs2005/esgportal/internal/server/config"
	"github.com/dmitrijs2005/esgportal/internal/server/federation"
	"github.com/dmitrijs2005/esgportal/internal/server/models"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/actioncodes"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/federated"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/repomanager"
)

// memRepos is an in-memory RepositoryManager. Every repository ignores the
// DBTX it is bound to; transactions are only observed through sqlmock.
type memRepos struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	links    []models.FederatedIdentity
	tokens   map[string]*models.RefreshToken
	codes    map[string]*models.ActionCode
	profiles *profiles.MemoryStore
	nextID   int
	now      func() time.Time
}

func newMemRepos(now func() time.Time) *memRepos {
	return &memRepos{
		accounts: map[string]*models.Account{},
		tokens:   map[string]*models.RefreshToken{},
		codes:    map[string]*models.ActionCode{},
		profiles: profiles.NewMemoryStore(),
		now:      now,
	}
}

func (m *memRepos) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *memRepos) Accounts(dbx.DBTX) accounts.Repository {
	return memAccounts{m}
}

func (m *memRepos) FederatedIdentities(dbx.DBTX) federated.Repository {
	return memFederated{m}
}

func (m *memRepos) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return memTokens{m}
}

func (m *memRepos) ActionCodes(dbx.DBTX) actioncodes.Repository {
	return memCodes{m}
}

func (m *memRepos) Profiles(dbx.DBTX) repomanager.ProfileStore {
	return m.profiles
}

var _ repomanager.RepositoryManager = (*memRepos)(nil)

type memAccounts struct{ m *memRepos }

func (r memAccounts) emailTaken(email, exceptID string) bool {
	for id, a := range r.m.accounts {
		if email != "" && a.Email == email && id != exceptID {
			return true
		}
	}
	return false
}

func (r memAccounts) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.emailTaken(a.Email, "") {
		return nil, common.ErrorAlreadyExists
	}
	r.m.nextID++
	c := *a
	c.ID = fmt.Sprintf("uid-%d", r.m.nextID)
	c.CreatedAt = r.m.now()
	c.LastLoginAt = c.CreatedAt
	r.m.accounts[c.ID] = &c
	out := c
	return &out, nil
}

func (r memAccounts) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	a, ok := r.m.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *a
	return &c, nil
}

func (r memAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, a := range r.m.accounts {
		if a.Email == email {
			c := *a
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memAccounts) UpdateProfile(ctx context.Context, id string, displayName, photoURL *string) (*models.Account, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	a, ok := r.m.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if displayName != nil {
		a.DisplayName = *displayName
	}
	if photoURL != nil {
		a.PhotoURL = *photoURL
	}
	c := *a
	return &c, nil
}

func (r memAccounts) UpdateEmail(ctx context.Context, id, email string) (*models.Account, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	a, ok := r.m.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if r.emailTaken(email, id) {
		return nil, common.ErrorAlreadyExists
	}
	a.Email, a.EmailVerified = email, false
	c := *a
	return &c, nil
}

func (r memAccounts) SetPassword(ctx context.Context, id string, salt, verifier []byte) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	a, ok := r.m.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.Salt, a.Verifier = salt, verifier
	return nil
}

func (r memAccounts) SetEmailVerified(ctx context.Context, id, email string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	a, ok := r.m.accounts[id]
	if !ok || a.Email != email {
		return common.ErrorNotFound
	}
	a.EmailVerified = true
	return nil
}

func (r memAccounts) TouchLastLogin(ctx context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	a, ok := r.m.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.LastLoginAt = r.m.now()
	return nil
}

func (r memAccounts) Delete(ctx context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.accounts[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.m.accounts, id)
	kept := r.m.links[:0]
	for _, l := range r.m.links {
		if l.AccountID != id {
			kept = append(kept, l)
		}
	}
	r.m.links = kept
	for k, t := range r.m.tokens {
		if t.UserID == id {
			delete(r.m.tokens, k)
		}
	}
	return nil
}

type memFederated struct{ m *memRepos }

func (r memFederated) Find(ctx context.Context, provider, subject string) (*models.FederatedIdentity, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, l := range r.m.links {
		if l.Provider == provider && l.Subject == subject {
			c := l
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memFederated) Link(ctx context.Context, fi *models.FederatedIdentity) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, l := range r.m.links {
		if (l.Provider == fi.Provider && l.Subject == fi.Subject) || (l.AccountID == fi.AccountID && l.Provider == fi.Provider) {
			return common.ErrorAlreadyExists
		}
	}
	r.m.links = append(r.m.links, *fi)
	return nil
}

func (r memFederated) ListByAccount(ctx context.Context, accountID string) ([]models.FederatedIdentity, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.FederatedIdentity
	for _, l := range r.m.links {
		if l.AccountID == accountID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Provider < out[j].Provider })
	return out, nil
}

type memTokens struct{ m *memRepos }

func (r memTokens) Create(ctx context.Context, userID, token string, validity time.Duration, authTime time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.tokens[token] = &models.RefreshToken{Token: token, UserID: userID, AuthTime: authTime, Expires: r.m.now().Add(validity)}
	return nil
}

func (r memTokens) Take(ctx context.Context, token string) (*models.RefreshToken, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.m.tokens, token)
	return t, nil
}

func (r memTokens) Delete(ctx context.Context, token string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	delete(r.m.tokens, token)
	return nil
}

func (r memTokens) DeleteByUser(ctx context.Context, userID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for k, t := range r.m.tokens {
		if t.UserID == userID {
			delete(r.m.tokens, k)
		}
	}
	return nil
}

type memCodes struct{ m *memRepos }

func (r memCodes) Create(ctx context.Context, code *models.ActionCode) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c := *code
	r.m.codes[code.Code] = &c
	return nil
}

func (r memCodes) Take(ctx context.Context, code, purpose string) (*models.ActionCode, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.codes[code]
	if !ok || c.Purpose != purpose {
		return nil, common.ErrorNotFound
	}
	delete(r.m.codes, code)
	return c, nil
}

func (r memCodes) DeleteByAccount(ctx context.Context, accountID, purpose string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for k, c := range r.m.codes {
		if c.AccountID == accountID && c.Purpose == purpose {
			delete(r.m.codes, k)
		}
	}
	return nil
}

// outbox records mailed codes.
type outbox struct {
	mu   sync.Mutex
	sent []models.ActionCode
	err  error
}

func (o *outbox) SendActionCode(ctx context.Context, code *models.ActionCode) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.sent = append(o.sent, *code)
	return nil
}

func (o *outbox) last(t *testing.T) models.ActionCode {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.sent) == 0 {
		t.Fatal("no code was mailed")
	}
	return o.sent[len(o.sent)-1]
}

// fakeProvider accepts one code per subject.
type fakeProvider struct {
	profiles map[string]*federation.Profile
	err      error
}

func (p *fakeProvider) AuthCodeURL(state string) string {
	return "https://consent.example/authorize?state=" + state
}

func (p *fakeProvider) Exchange(ctx context.Context, code string) (*federation.Profile, error) {
	if p.err != nil {
		return nil, p.err
	}
	prof, ok := p.profiles[code]
	if !ok {
		return nil, federation.ErrExchange
	}
	c := *prof
	return &c, nil
}

type countingRecorder struct {
	mu        sync.Mutex
	signUps   map[string]int
	throttled int
}

func (r *countingRecorder) RecordSignUp(provider string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.signUps == nil {
		r.signUps = map[string]int{}
	}
	r.signUps[provider]++
}

func (r *countingRecorder) RecordSignInThrottled() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.throttled++
}

// harness wires an AccountService to in-memory fakes and a sqlmock DB.
type harness struct {
	svc      *AccountService
	repos    *memRepos
	mock     sqlmock.Sqlmock
	mail     *outbox
	github   *fakeProvider
	recorder *countingRecorder
	now      time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sql expectations: %v", err)
		}
		_ = db.Close()
	})

	h := &harness{
		mock:     mock,
		mail:     &outbox{},
		github:   &fakeProvider{profiles: map[string]*federation.Profile{}},
		recorder: &countingRecorder{},
		now:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return h.now }
	h.repos = newMemRepos(clock)

	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 24 * time.Hour,
		RecentLoginWindow:            5 * time.Minute,
		ActionCodeValidityDuration:   time.Hour,
	}
	providers := federation.Registry{"github.com": h.github}
	h.svc = NewAccountService(db, h.repos, cfg, providers, h.mail, NewKeyedLimiter(5, 3), h.recorder, logging.NopLogger{})
	h.svc.now = clock
	return h
}

func (h *harness) expectTx(commit bool) {
	h.mock.ExpectBegin()
	if commit {
		h.mock.ExpectCommit()
	} else {
		h.mock.ExpectRollback()
	}
}
