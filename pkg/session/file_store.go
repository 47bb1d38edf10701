package session

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implements Store with a JSON document on disk, the
// client-local equivalent of browser storage. Writes go through a
// temp file and rename so readers never observe a partial session.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed session store at the given path.
// The file is created on first Set; a missing file means no session.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}
	return &FileStore{path: path}, nil
}

// Get retrieves the current session from disk.
func (f *FileStore) Get(ctx context.Context) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, ErrNoSession
		}
		return Session{}, errors.Join(ErrStoreUnavailable, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// A corrupt file is indistinguishable from no session for
		// callers; they will re-authenticate and overwrite it.
		return Session{}, ErrNoSession
	}

	if sess.IsZero() {
		return Session{}, ErrNoSession
	}
	return sess, nil
}

// Set writes both credentials in one atomic replace of the file.
func (f *FileStore) Set(ctx context.Context, token, walletAddress string) error {
	if token == "" || walletAddress == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(Session{Token: token, WalletAddress: walletAddress})
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Join(ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrStoreUnavailable, err)
	}

	// Tokens are credentials; keep the file owner-readable only.
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrStoreUnavailable, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Clear removes the session file. A file that is already gone is not an error.
func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
