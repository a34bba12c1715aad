package storage

import (
	"sync"

	"github.com/davletovm/quizmaster-bot/internal/domain/entities"
)

// SessionStore provides in-memory storage for quiz sessions keyed by
// owner. Each owner has at most one session; creating a new one
// replaces the previous session outright. The store exclusively owns
// the stored sessions: Get hands out snapshots and all updates go
// through Mutate, so no caller ever holds a live reference.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// Create stores a fresh session for the owner, overwriting any
// existing one, and returns a snapshot of it.
func (s *SessionStore) Create(owner int64, topic string, questions []entities.Question) entities.QuizSession {
	session := entities.NewQuizSession(owner, topic, questions)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[owner] = session

	return *session
}

// Get returns a snapshot of the owner's session. Absence is a normal
// outcome reported via the bool, not an error.
func (s *SessionStore) Get(owner int64) (entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[owner]
	if !ok {
		return entities.QuizSession{}, false
	}
	return *session, true
}

// Mutate atomically applies fn to the owner's session if one exists
// and reports whether it did. Concurrent calls for the same owner are
// serialized, so fn always sees a fully applied previous update.
func (s *SessionStore) Mutate(owner int64, fn func(*entities.QuizSession)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[owner]
	if !ok {
		return false
	}
	fn(session)
	return true
}

// RemoveCompleted deletes the owner's session only if every question
// has been answered, returning a snapshot of the removed session. The
// check and the delete happen under one lock, so a quiz started for
// the same owner in the meantime is never swept away, and two
// concurrent finalizations cannot both succeed.
func (s *SessionStore) RemoveCompleted(owner int64) (entities.QuizSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[owner]
	if !ok || !session.Completed() {
		return entities.QuizSession{}, false
	}
	delete(s.sessions, owner)
	return *session, true
}
