// File: services/chatbot/store.go
package chatbot

import (
	"context"
	"sync"

	"befixed/models"
)

// SessionStore abstracts where conversation state lives so the backend
// (memory, Redis) is swappable without touching engine logic. Get returns
// nil, nil for an unseen session id; the engine treats that as a fresh start.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ChatSession, error)
	Set(ctx context.Context, sessionID string, session *models.ChatSession) error
	Delete(ctx context.Context, sessionID string) error
}

// MemorySessionStore keeps sessions in a process-local map. Used in tests and
// single-instance deployments.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.ChatSession
}

// NewMemorySessionStore returns an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.ChatSession)}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	// Return a copy so callers cannot mutate stored state outside Set.
	cp := *sess
	cp.History = append([]models.ChatMessage(nil), sess.History...)
	return &cp, nil
}

func (s *MemorySessionStore) Set(_ context.Context, sessionID string, session *models.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	cp.History = append([]models.ChatMessage(nil), session.History...)
	s.sessions[sessionID] = &cp
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
