package shared

import (
	"sync"
	"time"

	"boxoffice/internal/domain/order"
	"boxoffice/internal/pkg/clock"
	"boxoffice/internal/pkg/errs"
)

// Session owns the live order for one spot terminal. All mutations run
// under the session lock; a checkout in flight blocks every other mutation
// on the same terminal until it settles.
type Session struct {
	mu              sync.Mutex
	order           *order.Order
	checkoutPending bool
	lastTouched     time.Time
}

// Mutate runs fn against the order with exclusive access. It refuses to run
// while a checkout is pending.
func (s *Session) Mutate(fn func(*order.Order) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkoutPending {
		return errs.ErrCheckoutInProgress
	}
	return fn(s.order)
}

// Checkout marks the session as checking out for the duration of fn, which
// may block on the booking store. Re-entrant checkouts and concurrent
// mutations are rejected until fn returns.
func (s *Session) Checkout(fn func(*order.Order) error) error {
	s.mu.Lock()
	if s.checkoutPending {
		s.mu.Unlock()
		return errs.ErrCheckoutInProgress
	}
	s.checkoutPending = true
	s.mu.Unlock()

	err := fn(s.order)

	s.mu.Lock()
	s.checkoutPending = false
	s.mu.Unlock()
	return err
}

// SessionStore hands out terminal sessions, creating them on first touch.
// Sessions are process-local and vanish on restart, like the order they
// hold.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	clock    clock.Clock
}

func NewSessionStore(ttl time.Duration, clk clock.Clock) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		clock:    clk,
	}
}

func (st *SessionStore) Get(terminalID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.clock.Now()
	st.pruneLocked(now)

	s, ok := st.sessions[terminalID]
	if !ok {
		s = &Session{order: order.NewOrder()}
		st.sessions[terminalID] = s
	}
	s.lastTouched = now
	return s
}

func (st *SessionStore) pruneLocked(now time.Time) {
	if st.ttl <= 0 {
		return
	}
	for id, s := range st.sessions {
		if now.Sub(s.lastTouched) <= st.ttl {
			continue
		}
		// Never drop a session mid-checkout.
		if !s.mu.TryLock() {
			continue
		}
		pending := s.checkoutPending
		s.mu.Unlock()
		if !pending {
			delete(st.sessions, id)
		}
	}
}
