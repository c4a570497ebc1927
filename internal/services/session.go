package services

import (
	"sync"

	"github.com/google/uuid"

	"cv-analyzer/internal/models"
)

// SessionStore holds the latest AnalysisResult per user session. Each session
// owns its result exclusively: a new analysis replaces the previous result
// wholesale, and concurrent sessions never observe each other's state.
type SessionStore interface {
	NewSession() string
	SetResult(sessionID string, result *models.AnalysisResult)
	GetResult(sessionID string) (*models.AnalysisResult, bool)
	Clear(sessionID string)
}

type sessionStore struct {
	mu      sync.RWMutex
	results map[string]*models.AnalysisResult
}

func NewSessionStore() SessionStore {
	return &sessionStore{
		results: make(map[string]*models.AnalysisResult),
	}
}

// NewSession implements SessionStore.
func (s *sessionStore) NewSession() string {
	return uuid.New().String()
}

// SetResult implements SessionStore.
func (s *sessionStore) SetResult(sessionID string, result *models.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[sessionID] = result
}

// GetResult implements SessionStore.
func (s *sessionStore) GetResult(sessionID string) (*models.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[sessionID]
	return result, ok
}

// Clear implements SessionStore.
func (s *sessionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.results, sessionID)
}
