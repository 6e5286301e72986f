package repository

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Session owns the state of one PassForge session: its history and the
// password currently shown to the user.
type Session struct {
	ID        string
	CreatedAt time.Time
	History   *HistoryRepository

	mu       sync.Mutex
	current  string
	lastSeen time.Time
}

// NewSession creates a session with a random ID and an empty history.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		History:   NewHistoryRepository(),
		lastSeen:  now,
	}
}

// Current returns the displayed password, if any.
func (s *Session) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current, s.current != ""
}

// SetCurrent replaces the displayed password.
func (s *Session) SetCurrent(password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = password
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return now.Sub(s.lastSeen)
}

// SessionRepository keeps open sessions in memory and evicts idle ones.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewSessionRepository creates a SessionRepository. Sessions idle for longer
// than ttl are removed by Sweep.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create opens and stores a new session.
func (r *SessionRepository) Create() *Session {
	s := NewSession()

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return s
}

// Get returns the session with the given ID and marks it as used.
func (r *SessionRepository) Get(id string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(time.Now())
	return s, nil
}

// Delete removes a session. Unknown IDs are ignored.
func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

// Len returns the number of open sessions.
func (r *SessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many were removed.
func (r *SessionRepository) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.idleSince(now) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartCleanup sweeps idle sessions every interval until stop is closed.
func (r *SessionRepository) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				if n := r.Sweep(now); n > 0 {
					slog.Debug("expired idle sessions", "count", n)
				}
			}
		}
	}()
}
