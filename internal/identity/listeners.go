package identity

import "sync"

// Listeners is a registry of session-change callbacks shared by Provider
// implementations. The zero value is ready to use.
type Listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(*Identity)
}

// Add registers fn and returns a function removing it. Removing twice is a
// no-op.
func (l *Listeners) Add(fn func(*Identity)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[int]func(*Identity))
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.fns, id)
	}
}

// Emit calls every registered listener with its own copy of ident.
func (l *Listeners) Emit(ident *Identity) {
	l.mu.Lock()
	fns := make([]func(*Identity), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(ident.Clone())
	}
}

// Len returns the number of registered listeners.
func (l *Listeners) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}
