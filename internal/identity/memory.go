package identity

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/cryptox"
	"github.com/google/uuid"
)

// Operation names accepted by MemoryProvider.FailWith and Calls.
const (
	OpSignIn                = "SignInWithPassword"
	OpCreateUser            = "CreateUserWithPassword"
	OpSignInWithFederated   = "SignInWithFederated"
	OpSignOut               = "SignOut"
	OpSendPasswordReset     = "SendPasswordResetEmail"
	OpSendEmailVerification = "SendEmailVerification"
	OpUpdateProfile         = "UpdateProfile"
	OpUpdateEmail           = "UpdateEmail"
	OpUpdatePassword        = "UpdatePassword"
	OpLinkCredential        = "LinkCredential"
	OpReauthenticate        = "Reauthenticate"
	OpDeleteUser            = "DeleteUser"
)

// DefaultRecentLoginWindow is how long after authenticating sensitive
// operations are allowed without re-authentication.
const DefaultRecentLoginWindow = 5 * time.Minute

// ExternalAccount is an account at a federated provider.
type ExternalAccount struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// SentEmail is a message recorded in the MemoryProvider outbox.
type SentEmail struct {
	Kind string // "verify" or "reset"
	To   string
	UID  string
}

type memAccount struct {
	ident    Identity
	salt     []byte
	verifier []byte
}

type linkKey struct {
	tag     ProviderTag
	subject string
}

// MemoryProvider is an in-process Provider. It backs the CLI memory mode and
// the session manager tests.
//
// Federated sign-in asks the configured FederatedFlow for an authorization
// code and resolves it against accounts registered with
// RegisterExternalAccount.
type MemoryProvider struct {
	mu       sync.Mutex
	accounts map[string]*memAccount
	byEmail  map[string]string
	links    map[linkKey]string
	external map[ProviderTag]map[string]ExternalAccount
	current  string
	authTime time.Time
	outbox   []SentEmail
	failures map[string]error
	calls    map[string]int

	// emitMu serializes notifications so listeners see changes in order.
	emitMu    sync.Mutex
	listeners Listeners

	flow              FederatedFlow
	now               func() time.Time
	recentLoginWindow time.Duration
	minPasswordLength int
}

// NewMemoryProvider returns an empty provider. flow may be nil, in which
// case every federated sign-in fails with PopupClosedByUser.
func NewMemoryProvider(flow FederatedFlow) *MemoryProvider {
	return &MemoryProvider{
		accounts:          make(map[string]*memAccount),
		byEmail:           make(map[string]string),
		links:             make(map[linkKey]string),
		external:          make(map[ProviderTag]map[string]ExternalAccount),
		failures:          make(map[string]error),
		calls:             make(map[string]int),
		flow:              flow,
		now:               time.Now,
		recentLoginWindow: DefaultRecentLoginWindow,
		minPasswordLength: MinPasswordLength,
	}
}

// SetClock replaces the time source.
func (p *MemoryProvider) SetClock(now func() time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = now
}

// SetRecentLoginWindow changes how fresh the last authentication must be for
// email, password and delete operations.
func (p *MemoryProvider) SetRecentLoginWindow(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recentLoginWindow = d
}

// FailWith makes every following call of op return err. A nil err clears it.
func (p *MemoryProvider) FailWith(op string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err == nil {
		delete(p.failures, op)
		return
	}
	p.failures[op] = err
}

// Calls returns how many times op has been invoked.
func (p *MemoryProvider) Calls(op string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[op]
}

// Outbox returns the emails sent so far.
func (p *MemoryProvider) Outbox() []SentEmail {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.outbox)
}

// RegisterExternalAccount makes code a valid authorization code for acc at
// the federated provider tag.
func (p *MemoryProvider) RegisterExternalAccount(tag ProviderTag, code string, acc ExternalAccount) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.external[tag] == nil {
		p.external[tag] = make(map[string]ExternalAccount)
	}
	p.external[tag][code] = acc
}

// Accounts returns the number of accounts.
func (p *MemoryProvider) Accounts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.accounts)
}

// Subscribers returns the number of active listeners.
func (p *MemoryProvider) Subscribers() int {
	return p.listeners.Len()
}

// Subscribe registers fn and immediately calls it with the current state.
func (p *MemoryProvider) Subscribe(fn func(*Identity)) func() {
	p.emitMu.Lock()
	defer p.emitMu.Unlock()

	remove := p.listeners.Add(fn)
	fn(p.CurrentIdentity())
	return remove
}

func (p *MemoryProvider) CurrentIdentity() *Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentLocked()
}

func (p *MemoryProvider) currentLocked() *Identity {
	if p.current == "" {
		return nil
	}
	acc, ok := p.accounts[p.current]
	if !ok {
		return nil
	}
	return acc.ident.Clone()
}

// notify emits the state as of now. Emitting the current state rather than a
// captured one keeps the last notification accurate even if two changes race.
func (p *MemoryProvider) notify() {
	p.emitMu.Lock()
	defer p.emitMu.Unlock()
	p.listeners.Emit(p.CurrentIdentity())
}

// enter counts the call and returns the injected failure, if any. It must
// be called with p.mu held.
func (p *MemoryProvider) enter(op string) error {
	p.calls[op]++
	return p.failures[op]
}

func (p *MemoryProvider) SignInWithPassword(ctx context.Context, email, password string) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, autherr.Wrap(autherr.CodeNetworkUnavailable, err)
	}

	p.mu.Lock()
	if err := p.enter(OpSignIn); err != nil {
		p.mu.Unlock()
		return nil, err
	}
	email, err := NormalizeEmail(email)
	if err != nil || password == "" {
		p.mu.Unlock()
		return nil, autherr.ErrInvalidCredentials
	}
	uid, ok := p.byEmail[email]
	acc := p.accounts[uid]
	if !ok || acc == nil || !cryptox.CheckPassword(password, acc.salt, acc.verifier) {
		p.mu.Unlock()
		return nil, autherr.ErrInvalidCredentials
	}
	ident := p.startSessionLocked(acc, ProviderPassword)
	p.mu.Unlock()

	p.notify()
	return ident, nil
}

func (p *MemoryProvider) CreateUserWithPassword(ctx context.Context, email, password string) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, autherr.Wrap(autherr.CodeNetworkUnavailable, err)
	}

	p.mu.Lock()
	if err := p.enter(OpCreateUser); err != nil {
		p.mu.Unlock()
		return nil, err
	}
	email, err := NormalizeEmail(email)
	if err != nil {
		p.mu.Unlock()
		return nil, err
	}
	if err := CheckPassword(password, p.minPasswordLength); err != nil {
		p.mu.Unlock()
		return nil, err
	}
	if _, taken := p.byEmail[email]; taken {
		p.mu.Unlock()
		return nil, autherr.ErrEmailAlreadyInUse
	}

	now := p.now().UTC()
	acc := &memAccount{
		ident: Identity{
			UID:        uuid.NewString(),
			Email:      email,
			ProviderID: ProviderPassword,
			Providers:  []ProviderTag{ProviderPassword},
			CreatedAt:  now,
		},
	}
	acc.salt, acc.verifier = cryptox.HashPassword(password)
	p.accounts[acc.ident.UID] = acc
	p.byEmail[email] = acc.ident.UID
	ident := p.startSessionLocked(acc, ProviderPassword)
	p.mu.Unlock()

	p.notify()
	return ident, nil
}

func (p *MemoryProvider) startSessionLocked(acc *memAccount, via ProviderTag) *Identity {
	now := p.now().UTC()
	token, err := common.MakeRandHexString(16)
	if err != nil {
		token = uuid.NewString()
	}
	acc.ident.LastLoginAt = now
	acc.ident.ProviderID = via
	acc.ident.RefreshToken = token
	p.current = acc.ident.UID
	p.authTime = now
	return acc.ident.Clone()
}

func (p *MemoryProvider) SignInWithFederated(ctx context.Context, tag ProviderTag) (*FederatedResult, error) {
	p.mu.Lock()
	if err := p.enter(OpSignInWithFederated); err != nil {
		p.mu.Unlock()
		return nil, err
	}
	p.mu.Unlock()

	code, err := p.authorize(ctx, tag)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	ext, ok := p.external[tag][code]
	if !ok {
		p.mu.Unlock()
		return nil, autherr.New(autherr.CodeInvalidCredentials, "unknown authorization code")
	}

	key := linkKey{tag: tag, subject: ext.Subject}
	isNew := false
	uid, linked := p.links[key]
	if !linked {
		isNew = true
		now := p.now().UTC()
		acc := &memAccount{
			ident: Identity{
				UID:           uuid.NewString(),
				Email:         ext.Email,
				DisplayName:   ext.Name,
				PhotoURL:      ext.Picture,
				EmailVerified: ext.Email != "",
				Providers:     []ProviderTag{tag},
				CreatedAt:     now,
			},
		}
		if email, err := NormalizeEmail(ext.Email); err == nil {
			if _, taken := p.byEmail[email]; taken {
				p.mu.Unlock()
				return nil, autherr.New(autherr.CodeCredentialAlreadyInUse, "email belongs to another account")
			}
			acc.ident.Email = email
			p.byEmail[email] = acc.ident.UID
		}
		uid = acc.ident.UID
		p.accounts[uid] = acc
		p.links[key] = uid
	}
	ident := p.startSessionLocked(p.accounts[uid], tag)
	p.mu.Unlock()

	p.notify()
	return &FederatedResult{Identity: ident, IsNewUser: isNew}, nil
}

// authorize runs the consent flow for tag and returns the authorization code.
func (p *MemoryProvider) authorize(ctx context.Context, tag ProviderTag) (string, error) {
	if !IsFederated(tag) {
		return "", autherr.New(autherr.CodeUnsupportedProvider, string(tag))
	}
	p.mu.Lock()
	flow := p.flow
	p.mu.Unlock()
	if flow == nil {
		return "", autherr.ErrPopupClosedByUser
	}

	code, err := flow.Authorize(ctx, tag, consentURL(tag, uuid.NewString()))
	if err != nil {
		return "", err
	}
	if code == "" {
		return "", autherr.ErrPopupClosedByUser
	}
	return code, nil
}

// resolveCode fills in the authorization code of a federated credential by
// running the consent flow when the caller did not supply one.
func (p *MemoryProvider) resolveCode(ctx context.Context, cred Credential) (Credential, error) {
	if !IsFederated(cred.Provider) || cred.Code != "" || p.CurrentIdentity() == nil {
		return cred, nil
	}
	code, err := p.authorize(ctx, cred.Provider)
	if err != nil {
		return cred, err
	}
	cred.Code = code
	return cred, nil
}

func consentURL(tag ProviderTag, state string) string {
	q := url.Values{}
	q.Set("state", state)
	return fmt.Sprintf("memory://%s/authorize?%s", tag, q.Encode())
}

func (p *MemoryProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	err := p.enter(OpSignOut)
	changed := p.current != ""
	p.current = ""
	p.authTime = time.Time{}
	p.mu.Unlock()

	if changed {
		p.notify()
	}
	return err
}

func (p *MemoryProvider) SendPasswordResetEmail(ctx context.Context, email string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.enter(OpSendPasswordReset); err != nil {
		return err
	}
	email, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	uid, ok := p.byEmail[email]
	if !ok {
		return nil
	}
	p.outbox = append(p.outbox, SentEmail{Kind: "reset", To: email, UID: uid})
	return nil
}

func (p *MemoryProvider) SendEmailVerification(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.enter(OpSendEmailVerification); err != nil {
		return err
	}
	acc, err := p.sessionLocked()
	if err != nil {
		return err
	}
	if acc.ident.Email == "" {
		return autherr.New(autherr.CodeInvalidArgument, "account has no email")
	}
	p.outbox = append(p.outbox, SentEmail{Kind: "verify", To: acc.ident.Email, UID: acc.ident.UID})
	return nil
}

// VerifyEmail marks uid's email as verified, as following the emailed link
// would.
func (p *MemoryProvider) VerifyEmail(uid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	acc, ok := p.accounts[uid]
	if !ok {
		return autherr.ErrUserNotFound
	}
	acc.ident.EmailVerified = true
	return nil
}

func (p *MemoryProvider) sessionLocked() (*memAccount, error) {
	if p.current == "" {
		return nil, autherr.ErrNotAuthenticated
	}
	acc, ok := p.accounts[p.current]
	if !ok {
		return nil, autherr.ErrNotAuthenticated
	}
	return acc, nil
}

func (p *MemoryProvider) recentLocked() error {
	if p.now().Sub(p.authTime) > p.recentLoginWindow {
		return autherr.ErrRequiresRecentLogin
	}
	return nil
}

func (p *MemoryProvider) UpdateProfile(ctx context.Context, changes ProfileChanges) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.enter(OpUpdateProfile); err != nil {
		return err
	}
	acc, err := p.sessionLocked()
	if err != nil {
		return err
	}
	if changes.DisplayName != nil {
		acc.ident.DisplayName = *changes.DisplayName
	}
	if changes.PhotoURL != nil {
		acc.ident.PhotoURL = *changes.PhotoURL
	}
	return nil
}

func (p *MemoryProvider) UpdateEmail(ctx context.Context, email string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.enter(OpUpdateEmail); err != nil {
		return err
	}
	acc, err := p.sessionLocked()
	if err != nil {
		return err
	}
	email, err = NormalizeEmail(email)
	if err != nil {
		return err
	}
	if err := p.recentLocked(); err != nil {
		return err
	}
	if owner, taken := p.byEmail[email]; taken && owner != acc.ident.UID {
		return autherr.ErrEmailAlreadyInUse
	}

	delete(p.byEmail, acc.ident.Email)
	acc.ident.Email = email
	acc.ident.EmailVerified = false
	p.byEmail[email] = acc.ident.UID
	return nil
}

func (p *MemoryProvider) UpdatePassword(ctx context.Context, password string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.enter(OpUpdatePassword); err != nil {
		return err
	}
	acc, err := p.sessionLocked()
	if err != nil {
		return err
	}
	if err := CheckPassword(password, p.minPasswordLength); err != nil {
		return err
	}
	if err := p.recentLocked(); err != nil {
		return err
	}
	acc.salt, acc.verifier = cryptox.HashPassword(password)
	if !slices.Contains(acc.ident.Providers, ProviderPassword) {
		acc.ident.Providers = append(acc.ident.Providers, ProviderPassword)
	}
	return nil
}

func (p *MemoryProvider) LinkCredential(ctx context.Context, cred Credential) (*Identity, error) {
	cred, err := p.resolveCode(ctx, cred)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.enter(OpLinkCredential); err != nil {
		return nil, err
	}
	acc, err := p.sessionLocked()
	if err != nil {
		return nil, err
	}
	if slices.Contains(acc.ident.Providers, cred.Provider) {
		return nil, autherr.New(autherr.CodeCredentialAlreadyInUse, "provider already linked")
	}

	switch {
	case cred.Provider == ProviderPassword:
		email, err := NormalizeEmail(cred.Email)
		if err != nil {
			return nil, err
		}
		if err := CheckPassword(cred.Password, p.minPasswordLength); err != nil {
			return nil, err
		}
		if owner, taken := p.byEmail[email]; taken && owner != acc.ident.UID {
			return nil, autherr.ErrCredentialAlreadyInUse
		}
		if acc.ident.Email != "" && acc.ident.Email != email {
			delete(p.byEmail, acc.ident.Email)
		}
		acc.ident.Email = email
		p.byEmail[email] = acc.ident.UID
		acc.salt, acc.verifier = cryptox.HashPassword(cred.Password)

	case IsFederated(cred.Provider):
		ext, ok := p.external[cred.Provider][cred.Code]
		if !ok {
			return nil, autherr.ErrInvalidCredentials
		}
		key := linkKey{tag: cred.Provider, subject: ext.Subject}
		if owner, linked := p.links[key]; linked && owner != acc.ident.UID {
			return nil, autherr.ErrCredentialAlreadyInUse
		}
		p.links[key] = acc.ident.UID

	default:
		return nil, autherr.New(autherr.CodeUnsupportedProvider, string(cred.Provider))
	}

	acc.ident.Providers = append(acc.ident.Providers, cred.Provider)
	return acc.ident.Clone(), nil
}

func (p *MemoryProvider) Reauthenticate(ctx context.Context, cred Credential) error {
	cred, err := p.resolveCode(ctx, cred)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.enter(OpReauthenticate); err != nil {
		return err
	}
	acc, err := p.sessionLocked()
	if err != nil {
		return err
	}

	switch {
	case cred.Provider == ProviderPassword:
		email, _ := NormalizeEmail(cred.Email)
		if email != acc.ident.Email || !cryptox.CheckPassword(cred.Password, acc.salt, acc.verifier) {
			return autherr.ErrInvalidCredentials
		}
	case IsFederated(cred.Provider):
		ext, ok := p.external[cred.Provider][cred.Code]
		if !ok || p.links[linkKey{tag: cred.Provider, subject: ext.Subject}] != acc.ident.UID {
			return autherr.ErrInvalidCredentials
		}
	default:
		return autherr.New(autherr.CodeUnsupportedProvider, string(cred.Provider))
	}

	p.authTime = p.now().UTC()
	return nil
}

func (p *MemoryProvider) DeleteUser(ctx context.Context) error {
	p.mu.Lock()
	if err := p.enter(OpDeleteUser); err != nil {
		p.mu.Unlock()
		return err
	}
	acc, err := p.sessionLocked()
	if err != nil {
		p.mu.Unlock()
		return err
	}
	if err := p.recentLocked(); err != nil {
		p.mu.Unlock()
		return err
	}

	uid := acc.ident.UID
	delete(p.accounts, uid)
	if acc.ident.Email != "" {
		delete(p.byEmail, acc.ident.Email)
	}
	for k, owner := range p.links {
		if owner == uid {
			delete(p.links, k)
		}
	}
	p.current = ""
	p.authTime = time.Time{}
	p.mu.Unlock()

	p.notify()
	return nil
}
