package wizard

import (
	"context"
	"sync"
	"time"
)

// Kind identifies which wizard a session is running.
type Kind string

const (
	KindPrestation Kind = "prestation"
	KindClient     Kind = "client"
	KindEmployee   Kind = "employee"
	KindBooking    Kind = "booking"
)

// Record accumulates validated field values, one entry per completed step.
type Record map[string]any

func (r Record) str(key string) string {
	v, _ := r[key].(string)
	return v
}

func (r Record) int(key string) int {
	v, _ := r[key].(int)
	return v
}

func (r Record) int64(key string) int64 {
	v, _ := r[key].(int64)
	return v
}

func (r Record) float(key string) float64 {
	v, _ := r[key].(float64)
	return v
}

// Session is one in-flight wizard for one chat. A chat has at most one
// session regardless of kind; starting a wizard replaces whatever was
// active. Sessions are owned by the SessionStore and must only be touched
// inside SessionStore.Do.
type Session struct {
	ChatID  int64
	Kind    Kind
	Index   int
	Record  Record
	touched time.Time
}

// SessionStore holds at most one session per chat and serializes all
// access to a chat's session through a per-chat mutex, so two events for
// the same chat can never interleave a step/record update.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	locks    map[int64]*sync.Mutex
	ttl      time.Duration
	now      func() time.Time
}

// DefaultTTL is the idle lifetime of a session before it is abandoned.
const DefaultTTL = 30 * time.Minute

// NewSessionStore creates a store with the given idle TTL.
// ttl <= 0 falls back to DefaultTTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionStore{
		sessions: make(map[int64]*Session),
		locks:    make(map[int64]*sync.Mutex),
		ttl:      ttl,
		now:      time.Now,
	}
}

// chatLock returns the mutex for a chat, creating it on first use.
// Locks are kept for the process lifetime; the admin allow-set bounds
// the key space.
func (st *SessionStore) chatLock(chatID int64) *sync.Mutex {
	st.mu.Lock()
	defer st.mu.Unlock()
	l, ok := st.locks[chatID]
	if !ok {
		l = &sync.Mutex{}
		st.locks[chatID] = l
	}
	return l
}

// Do runs fn while holding the chat's mutex. All session reads and writes
// for a chat happen inside Do.
func (st *SessionStore) Do(chatID int64, fn func()) {
	l := st.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	fn()
}

// Get returns the chat's session, or nil if there is none or it has sat
// idle past the TTL (expired sessions are dropped on access).
func (st *SessionStore) Get(chatID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[chatID]
	if !ok {
		return nil
	}
	if st.now().Sub(s.touched) > st.ttl {
		delete(st.sessions, chatID)
		return nil
	}
	return s
}

// Start creates a fresh session for the chat, replacing any active one.
func (st *SessionStore) Start(chatID int64, kind Kind) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := &Session{
		ChatID:  chatID,
		Kind:    kind,
		Record:  make(Record),
		touched: st.now(),
	}
	st.sessions[chatID] = s
	return s
}

// Touch refreshes the session's idle timer.
func (st *SessionStore) Touch(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s.touched = st.now()
}

// Clear destroys the chat's session, if any.
func (st *SessionStore) Clear(chatID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, chatID)
}

// StartJanitor sweeps expired sessions every interval until ctx is done.
func (st *SessionStore) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.sweep()
			}
		}
	}()
}

func (st *SessionStore) sweep() {
	st.mu.Lock()
	defer st.mu.Unlock()
	cutoff := st.now().Add(-st.ttl)
	for chatID, s := range st.sessions {
		if s.touched.Before(cutoff) {
			delete(st.sessions, chatID)
		}
	}
}
