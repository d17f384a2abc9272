package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gamiclient/internal/domain"
	"gamiclient/internal/util/memzero"
)

const sessionFilename = "session.enc"

// SessionFileStore persists the established play session to disk.
type SessionFileStore struct {
	dir string
	kdf kdfParams
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir, kdf: defaultKDFParams()}
}

// SaveSession seals session with passphrase and writes it.
func (s *SessionFileStore) SaveSession(passphrase string, session domain.Session) error {
	if passphrase == "" {
		return errors.New("passphrase required to store session")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	sealed, err := seal(passphrase, raw, s.kdf)
	memzero.Zero(raw)
	if err != nil {
		return fmt.Errorf("seal session: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, sessionFilename), sealed, 0o600)
}

// LoadSession reads the stored session. ok is false when none was saved.
func (s *SessionFileStore) LoadSession(passphrase string) (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(filepath.Join(s.dir, sessionFilename))
	if err != nil {
		return domain.Session{}, false, err
	}
	if b == nil {
		return domain.Session{}, false, nil
	}
	raw, err := open(passphrase, b)
	if err != nil {
		return domain.Session{}, false, err
	}
	defer memzero.Zero(raw)
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return session, true, nil
}

// DeleteSession removes the stored session; a missing file is not an error.
func (s *SessionFileStore) DeleteSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, sessionFilename))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
