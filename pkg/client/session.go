package client

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
)

type (
	// SessionStore persists the auth token and the cached user profile
	// between runs so a client can resume without signing in again.
	SessionStore interface {
		SetToken(token string) error
		Token() string
		SetUser(user *domain.UserResponse) error
		User() *domain.UserResponse
		Clear() error
	}

	sessionState struct {
		Token string               `json:"token,omitempty"`
		User  *domain.UserResponse `json:"user,omitempty"`
	}

	fileSessionStore struct {
		mu    sync.Mutex
		path  string
		state sessionState
	}

	memorySessionStore struct {
		mu    sync.Mutex
		state sessionState
	}
)

// NewFileSessionStore loads any previously persisted session from path.
// A missing or unreadable file starts an empty session.
func NewFileSessionStore(path string) SessionStore {
	store := &fileSessionStore{path: path}
	if raw, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(raw, &store.state)
	}
	return store
}

func (s *fileSessionStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return s.persist()
}

func (s *fileSessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

func (s *fileSessionStore) SetUser(user *domain.UserResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = user
	return s.persist()
}

func (s *fileSessionStore) User() *domain.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

func (s *fileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionState{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *fileSessionStore) persist() error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0600)
}

// NewMemorySessionStore holds the session for the lifetime of the process.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{}
}

func (s *memorySessionStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return nil
}

func (s *memorySessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

func (s *memorySessionStore) SetUser(user *domain.UserResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = user
	return nil
}

func (s *memorySessionStore) User() *domain.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

func (s *memorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionState{}
	return nil
}
