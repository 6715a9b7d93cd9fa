package service

import (
	"sync"
	"time"
)

// clarificationTTL bounds how long a clarification question stays open.
const clarificationTTL = 90 * time.Second

// ClarificationStore holds the one-turn pending-question context, keyed per
// session so concurrent users never see each other's state.
type ClarificationStore struct {
	mu      sync.Mutex
	pending map[string]clarificationEntry
	now     func() time.Time
}

type clarificationEntry struct {
	topic   string
	expires time.Time
}

func NewClarificationStore() *ClarificationStore {
	return &ClarificationStore{
		pending: make(map[string]clarificationEntry),
		now:     time.Now,
	}
}

// Set opens (or replaces) the pending topic for the session.
func (s *ClarificationStore) Set(sessionID, topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[sessionID] = clarificationEntry{
		topic:   topic,
		expires: s.now().Add(clarificationTTL),
	}
	s.sweep()
}

// Take consumes and returns the pending topic for the session, or "".
func (s *ClarificationStore) Take(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.pending[sessionID]
	if !ok {
		return ""
	}
	delete(s.pending, sessionID)
	if s.now().After(entry.expires) {
		return ""
	}
	return entry.topic
}

// sweep drops expired entries; called with the lock held.
func (s *ClarificationStore) sweep() {
	now := s.now()
	for key, entry := range s.pending {
		if now.After(entry.expires) {
			delete(s.pending, key)
		}
	}
}
