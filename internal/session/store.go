// Package session is the single source of truth for the logged-in user.
// It replaces the ad hoc per-screen reads of the original client with one
// store instance injected wherever the current user is needed.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/google/uuid"
)

// Store persists the session to a single JSON file: the current user
// record, the auth token, and a device identifier generated on first use.
// Logout clears user and token but keeps the device ID stable.
type Store struct {
	mu   sync.Mutex
	path string
	data sessionData
}

type sessionData struct {
	User     *domain.User `json:"user,omitempty"`
	Token    string       `json:"token,omitempty"`
	DeviceID string       `json:"device_id"`
}

func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.data = sessionData{DeviceID: uuid.New().String()}
		return s.flush()
	}
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return fmt.Errorf("parse session file: %w", err)
	}
	if s.data.DeviceID == "" {
		s.data.DeviceID = uuid.New().String()
		return s.flush()
	}
	return nil
}

func (s *Store) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.User == nil {
		return nil
	}
	u := *s.data.User
	return &u
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Token
}

// DeviceID is a stable per-install identifier, registered with the backend
// as the push token.
func (s *Store) DeviceID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.DeviceID
}

func (s *Store) IsLoggedIn() bool {
	return s.User() != nil
}

func (s *Store) SaveUser(u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.User = u
	return s.flush()
}

func (s *Store) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = token
	return s.flush()
}

// Clear logs the user out.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.User = nil
	s.data.Token = ""
	return s.flush()
}
