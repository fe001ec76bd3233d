package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-agent/internal/agent"
)

var ErrNotFound = errors.New("session not found")

// Session is one live agent game. The player (and its engine) processes one
// observation at a time; callers must hold the session lock around any
// access to Player.
type Session struct {
	mu sync.Mutex

	ID        string
	Player    *agent.Player
	StartedAt time.Time
	EndedAt   *time.Time
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Finish stamps the end time once. Callers must hold the session lock.
func (s *Session) Finish() {
	if s.EndedAt == nil {
		now := time.Now().UTC()
		s.EndedAt = &now
	}
}

// Sessions is an in-memory session registry. Games live only as long as the
// process; there is deliberately no persistent backing.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[string]*Session)}
}

func (r *Sessions) Create(player *agent.Player) *Session {
	session := &Session{
		ID:        uuid.NewString(),
		Player:    player,
		StartedAt: time.Now().UTC(),
	}
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

func (r *Sessions) Get(id string) (*Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

func (r *Sessions) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Sessions) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
