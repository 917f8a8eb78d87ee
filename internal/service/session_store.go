package service

import (
	"sync"

	"github.com/Mrvatsan/APTITUDE-AI/internal/models"
)

// SessionStore holds live practice sessions. The scoring logic only sees
// this interface, so the in-memory map could be swapped for a shared cache
// without touching it.
type SessionStore interface {
	Get(id string) (*models.PracticeSession, bool)
	Put(session *models.PracticeSession)
	Delete(id string)
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.PracticeSession
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]*models.PracticeSession)}
}

func (s *memorySessionStore) Get(id string) (*models.PracticeSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *memorySessionStore) Put(session *models.PracticeSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

func (s *memorySessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
