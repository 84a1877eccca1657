package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store is the durable local store of the credential.
type Store interface {
	Load() (Credentials, bool, error)
	Save(Credentials) error
	Clear() error
}

// FileStore keeps the credential as a JSON file readable by the owner only.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (Credentials, bool, error) {
	const op = "session.FileStore.Load"

	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Credentials{}, false, nil
	}
	if err != nil {
		return Credentials{}, false, fmt.Errorf("%s: %w", op, err)
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		// a corrupt file is treated as no session
		return Credentials{}, false, nil
	}
	return creds, true, nil
}

// Save writes through a temporary file so a crash never leaves half a token.
func (f *FileStore) Save(creds Credentials) error {
	const op = "session.FileStore.Save"

	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (f *FileStore) Clear() error {
	const op = "session.FileStore.Clear"

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type MemoryStore struct {
	mu    sync.Mutex
	creds *Credentials
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (Credentials, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.creds == nil {
		return Credentials{}, false, nil
	}
	return *m.creds, true, nil
}

func (m *MemoryStore) Save(creds Credentials) error {
	m.mu.Lock()
	m.creds = &creds
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	m.creds = nil
	m.mu.Unlock()
	return nil
}
