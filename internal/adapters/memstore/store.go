package memstore

// Package memstore provides an in-memory session store for development and
// tests. It upholds the same contract as the Redis store: per-key atomicity
// and read-your-writes, no cross-session visibility.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/lumenlab/auth-gateway/internal/domain/auth"
	"github.com/lumenlab/auth-gateway/internal/ports"
)

// Store is a map-backed session store guarded by a mutex.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
}

// New creates an empty in-memory session store.
func New() *Store {
	return &Store{sessions: make(map[string]domainauth.Session)}
}

func (s *Store) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return copySession(sess), nil
}

func (s *Store) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = copySession(sess)
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Len reports the number of stored sessions. Test helper.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// copySession detaches the identity pointer so callers cannot mutate stored
// state through a returned or retained session.
func copySession(sess domainauth.Session) domainauth.Session {
	if sess.Identity != nil {
		id := *sess.Identity
		sess.Identity = &id
	}
	return sess
}

var errEmptyID = errors.New("session ID cannot be empty")
