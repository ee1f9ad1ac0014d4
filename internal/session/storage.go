package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/vendalink/vendalink/internal/domain"
	"github.com/vendalink/vendalink/internal/errors"
)

// Credentials is the persisted shape of a session: the bearer token plus a
// cached copy of the user record it belonged to. The cache only speeds up
// display; the token is always re-validated before being trusted.
type Credentials struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user,omitempty"`
}

// Storage persists session credentials between runs. The session store is
// the only writer; everything else reads through the store's accessors.
type Storage interface {
	// Load reads the persisted credentials.
	// Returns (nil, nil) when no credentials are stored.
	Load() (*Credentials, error)

	// Save writes the credentials, replacing any previous ones.
	Save(*Credentials) error

	// Clear removes the persisted credentials. Clearing an empty storage
	// is not an error.
	Clear() error
}

// FileStorage stores credentials as a JSON file with owner-only permissions,
// the CLI analog of the browser's localStorage token/user keys.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage writing to the given path
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads and parses the credentials file
func (s *FileStorage) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeSessionStorageRead, "could not read credentials file", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSessionRecordCorrupt, "stored credentials are not valid JSON", err).
			WithSuggestion("Run 'vendalink auth login' to create a fresh session")
	}

	return &creds, nil
}

// Save writes the credentials file, creating the directory if needed
func (s *FileStorage) Save(creds *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed, "could not create config directory", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionStorageWrite, "could not encode credentials", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionStorageWrite, "could not write credentials file", err)
	}

	return nil
}

// Clear removes the credentials file
func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionStorageWrite, "could not remove credentials file", err)
	}
	return nil
}
