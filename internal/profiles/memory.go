package profiles

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/common"
)

// Operation names accepted by MemoryStore.FailWith and Calls.
const (
	OpGet            = "Get"
	OpCreate         = "Create"
	OpUpdate         = "Update"
	OpTouchLastLogin = "TouchLastLogin"
	OpDelete         = "Delete"
	OpSetAdmin       = "SetAdmin"
)

// MemoryStore is a map-backed Store with failure injection, used by tests and
// the CLI memory mode.
type MemoryStore struct {
	mu       sync.Mutex
	records  map[string]*Record
	failures map[string]error
	calls    map[string]int
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:  make(map[string]*Record),
		failures: make(map[string]error),
		calls:    make(map[string]int),
		now:      time.Now,
	}
}

// SetClock replaces the time source used for server-assigned timestamps.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// FailWith makes every following call of op return err. A nil err clears it.
func (s *MemoryStore) FailWith(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// FailAll makes every operation return err, as an unreachable store would.
// A nil err clears all injected failures.
func (s *MemoryStore) FailAll(err error) {
	for _, op := range []string{OpGet, OpCreate, OpUpdate, OpTouchLastLogin, OpDelete, OpSetAdmin} {
		s.FailWith(op, err)
	}
}

// Calls returns how many times op has been invoked.
func (s *MemoryStore) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Writes returns the number of mutating calls made so far.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[OpCreate] + s.calls[OpUpdate] + s.calls[OpTouchLastLogin] + s.calls[OpDelete] + s.calls[OpSetAdmin]
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Put stores rec as is, bypassing the API rules. Test helper.
func (s *MemoryStore) Put(rec *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.UID] = rec.Clone()
}

func (s *MemoryStore) enter(op string) error {
	s.calls[op]++
	return s.failures[op]
}

func (s *MemoryStore) Get(ctx context.Context, uid string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpGet); err != nil {
		return nil, err
	}
	rec, ok := s.records[uid]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rec.Clone(), nil
}

func (s *MemoryStore) Create(ctx context.Context, rec *Record) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpCreate); err != nil {
		return nil, err
	}
	if rec == nil || rec.UID == "" {
		return nil, common.ErrorValidation
	}
	if _, ok := s.records[rec.UID]; ok {
		return nil, common.ErrorAlreadyExists
	}

	now := s.now().UTC()
	c := rec.Clone()
	c.Roles = NormalizeRoles(c.Roles)
	c.CreatedAt, c.UpdatedAt, c.LastLoginAt = now, now, now
	s.records[c.UID] = c
	return c.Clone(), nil
}

func (s *MemoryStore) Update(ctx context.Context, uid string, patch Patch) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpUpdate); err != nil {
		return nil, err
	}
	rec, ok := s.records[uid]
	if !ok {
		return nil, common.ErrorNotFound
	}
	patch.Apply(rec)
	rec.UpdatedAt = s.now().UTC()
	return rec.Clone(), nil
}

func (s *MemoryStore) TouchLastLogin(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpTouchLastLogin); err != nil {
		return err
	}
	rec, ok := s.records[uid]
	if !ok {
		return common.ErrorNotFound
	}
	now := s.now().UTC()
	rec.LastLoginAt, rec.UpdatedAt = now, now
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpDelete); err != nil {
		return err
	}
	delete(s.records, uid)
	return nil
}

func (s *MemoryStore) SetAdmin(ctx context.Context, uid string, admin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpSetAdmin); err != nil {
		return err
	}
	rec, ok := s.records[uid]
	if !ok {
		return common.ErrorNotFound
	}
	rec.IsAdmin = admin
	rec.Roles = adminRoles(rec.Roles, admin)
	rec.UpdatedAt = s.now().UTC()
	return nil
}

// adminRoles adds or removes the admin role.
func adminRoles(roles []string, admin bool) []string {
	out := slices.DeleteFunc(slices.Clone(roles), func(r string) bool { return r == common.AdminRole })
	if admin {
		out = append(out, common.AdminRole)
	}
	return NormalizeRoles(out)
}
