// Package session holds the session manager: the single source of truth for
// who is signed in and what they may do.
//
// The Manager subscribes to an identity.Provider, reads the matching
// profiles.Record for every identity it sees and publishes a merged State.
// Consumers read it with Snapshot or follow it with Watch; they never write
// it. Every identity-changing operation goes through the Manager, which
// reconciles the state again once the backends have answered.
//
// A Manager is an ordinary value: tests build one per case.
//
//	m := session.NewManager(provider, store, session.LogNotifier{Logger: log}, log)
//	stop := m.Start(ctx)
//	defer stop()
//
//	if err := m.SignIn(ctx, email, password); err != nil {
//	    fmt.Println(autherr.Message(err))
//	}
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
)

// ProfileUnavailableWarning is put into State.Error when an identity is
// present but its profile could not be read.
const ProfileUnavailableWarning = "Signed in, but your profile could not be loaded. Some features may be unavailable."

// touchTimeout bounds the background last-login update.
const touchTimeout = 10 * time.Second

// Manager owns the session State.
type Manager struct {
	provider identity.Provider
	store    profiles.Store
	notifier Notifier
	logger   logging.Logger

	mu       sync.Mutex
	state    State
	settled  bool
	inflight int
	// warned is set while State.Error holds the profile warning, so that a
	// later successful reconcile can clear it.
	warned     bool
	touchedUID string
	watchers   map[int]chan State
	nextWatch  int
	// provisioning counts operations that have created an identity but not
	// yet written its profile record.
	provisioning int
	// closed stops new last-login writes once Close has started waiting.
	closed bool

	// ticket is the last reconcile ticket handed out; applied is the
	// highest one whose result has been committed.
	ticket  uint64
	applied uint64

	subMu sync.Mutex
	sub   *subscription

	touches sync.WaitGroup
}

// NewManager builds a manager. store may be nil, which is treated as an
// unreachable profile store. notifier and logger may be nil.
func NewManager(provider identity.Provider, store profiles.Store, notifier Notifier, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	if notifier == nil {
		notifier = LogNotifier{Logger: logger}
	}
	return &Manager{
		provider: provider,
		store:    store,
		notifier: notifier,
		logger:   logger.With("module", "session"),
		state:    initialState(),
		watchers: make(map[int]chan State),
	}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// Watch returns a channel that always holds the most recent state and a
// function that stops watching and closes the channel. Slow readers skip
// intermediate states but never miss the latest one.
func (m *Manager) Watch() (<-chan State, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan State, 1)
	id := m.nextWatch
	m.nextWatch++
	m.watchers[id] = ch
	ch <- m.state.Clone()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.watchers, id)
			close(ch)
		})
	}
}

// publishLocked recomputes derived fields and hands the state to watchers.
// m.mu must be held.
func (m *Manager) publishLocked() {
	m.state.IsLoading = !m.settled || m.inflight > 0
	if m.state.MergedUser == nil {
		m.state.IsAdmin = false
	}
	for _, ch := range m.watchers {
		select {
		case <-ch:
		default:
		}
		ch <- m.state.Clone()
	}
}

// subscription is one generation of the provider subscription. Notifications
// are coalesced: the consumer only ever sees the latest one.
type subscription struct {
	mu     sync.Mutex
	latest *identity.Identity
	fresh  bool
	signal chan struct{}

	unsubscribe func()
	cancel      context.CancelFunc
	done        chan struct{}
}

func (s *subscription) offer(ident *identity.Identity) {
	s.mu.Lock()
	s.latest = ident
	s.fresh = true
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *subscription) take() (*identity.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.fresh {
		return nil, false
	}
	s.fresh = false
	return s.latest, true
}

// Start subscribes to the provider and processes its notifications on one
// goroutine until ctx is done or the returned function is called. Calling
// Start again first cancels the previous subscription.
func (m *Manager) Start(ctx context.Context) (stop func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	m.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		signal: make(chan struct{}, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	m.sub = sub

	go m.consume(runCtx, sub)
	sub.unsubscribe = m.provider.Subscribe(sub.offer)

	m.logger.Debug(ctx, "subscribed to identity provider")

	return func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		if m.sub == sub {
			m.stopLocked()
		}
	}
}

// stopLocked tears down the current subscription. m.subMu must be held.
func (m *Manager) stopLocked() {
	sub := m.sub
	if sub == nil {
		return
	}
	m.sub = nil
	if sub.unsubscribe != nil {
		sub.unsubscribe()
	}
	sub.cancel()
	<-sub.done
}

func (m *Manager) consume(ctx context.Context, sub *subscription) {
	defer close(sub.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.signal:
			ticket := m.nextTicket()
			ident, ok := sub.take()
			if !ok {
				continue
			}
			m.reconcile(ctx, ticket, ident, true)
		}
	}
}

// Close stops the subscription and waits for background profile writes.
// No last-login write is started after Close.
func (m *Manager) Close() error {
	m.subMu.Lock()
	m.stopLocked()
	m.subMu.Unlock()

	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.touches.Wait()
	return nil
}

// Reload reconciles against the provider's current identity.
func (m *Manager) Reload(ctx context.Context) {
	ticket := m.nextTicket()
	m.reconcile(ctx, ticket, m.provider.CurrentIdentity(), false)
}

func (m *Manager) nextTicket() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticket++
	return m.ticket
}

// reconcile rebuilds the state for ident. The ticket must be taken before
// ident is read. A run that finishes after a run with a newer ticket has
// committed is discarded, and so are subscription runs that finish after
// the subscription was cancelled.
func (m *Manager) reconcile(ctx context.Context, ticket uint64, ident *identity.Identity, fromSubscription bool) {
	commit := func(fn func(*State) bool) {
		if fromSubscription && ctx.Err() != nil {
			return
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		if ticket <= m.applied {
			m.logger.Debug(ctx, "dropping stale reconcile", "ticket", ticket, "applied", m.applied)
			return
		}
		m.applied = ticket
		m.settled = true
		touch := fn(&m.state)
		if touch && ident != nil && ident.UID != m.touchedUID && !m.closed {
			m.touchedUID = ident.UID
			m.touchLastLogin(ctx, ident.UID)
		}
		m.publishLocked()
	}

	if ident == nil {
		commit(func(s *State) bool {
			s.CurrentIdentity = nil
			s.MergedUser = nil
			s.IsAdmin = false
			m.touchedUID = ""
			m.clearWarningLocked()
			return false
		})
		return
	}

	if m.store == nil {
		m.logger.Warn(ctx, "profile store not configured", "uid", ident.UID)
		m.commitWithoutProfile(commit, ident, true)
		return
	}

	provisioning := m.isProvisioning()
	rec, err := m.store.Get(ctx, ident.UID)
	switch {
	case err == nil:
		merged := Merge(ident, rec)
		commit(func(s *State) bool {
			s.CurrentIdentity = ident.Clone()
			s.MergedUser = merged
			s.IsAdmin = merged.IsAdmin
			m.clearWarningLocked()
			return true
		})
	case isNotFound(err):
		if provisioning {
			m.logger.Debug(ctx, "profile record not written yet", "uid", ident.UID)
			m.commitWithoutProfile(commit, ident, false)
			return
		}
		m.logger.Warn(ctx, "identity has no profile record", "uid", ident.UID, "collection", common.ProfilesCollection)
		m.commitWithoutProfile(commit, ident, true)
	default:
		m.logger.Warn(ctx, "profile store unreachable", "uid", ident.UID, "error", err)
		m.commitWithoutProfile(commit, ident, true)
	}
}

func (m *Manager) isProvisioning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.provisioning > 0
}

// provision marks an identity-creating operation as running until the
// returned function is called.
func (m *Manager) provision() (done func()) {
	m.mu.Lock()
	m.provisioning++
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			m.provisioning--
			m.mu.Unlock()
		})
	}
}

// forgetTouch makes the next reconcile of a signed-in identity write its
// last-login time again.
func (m *Manager) forgetTouch() {
	m.mu.Lock()
	m.touchedUID = ""
	m.mu.Unlock()
}

func (m *Manager) commitWithoutProfile(commit func(func(*State) bool), ident *identity.Identity, warn bool) {
	merged := Merge(ident, nil)
	notified := false
	commit(func(s *State) bool {
		s.CurrentIdentity = ident.Clone()
		s.MergedUser = merged
		s.IsAdmin = false
		if warn {
			notified = !m.warned
			s.Error = ProfileUnavailableWarning
			m.warned = true
		} else {
			m.clearWarningLocked()
		}
		return false
	})
	if notified {
		m.notifier.Notify(context.Background(), LevelWarning, ProfileUnavailableWarning)
	}
}

// clearWarningLocked removes the profile warning if it is what State.Error
// currently shows. m.mu must be held.
func (m *Manager) clearWarningLocked() {
	if m.warned {
		m.state.Error = ""
		m.warned = false
	}
}

// touchLastLogin refreshes the record's last-login time in the background.
// Failures are only logged. m.mu must be held.
func (m *Manager) touchLastLogin(ctx context.Context, uid string) {
	store := m.store
	m.touches.Add(1)
	go func() {
		defer m.touches.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), touchTimeout)
		defer cancel()
		if err := store.TouchLastLogin(ctx, uid); err != nil {
			m.logger.Warn(ctx, "last login update failed", "uid", uid, "error", err)
		}
	}()
}

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrorNotFound) || errors.Is(err, autherr.ErrUserNotFound)
}
