package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendalink/vendalink/internal/domain"
)

func TestFileStorage_LoadAbsent(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "credentials.json"))

	creds, err := storage.Load()
	require.NoError(t, err, "an absent credentials file is not an error")
	assert.Nil(t, creds)
}

func TestFileStorage_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	storage := NewFileStorage(path)

	user := domain.User{ID: 3, Name: "Bob", Email: "bob@example.com", Role: domain.RoleStandardUser}
	require.NoError(t, storage.Save(&Credentials{Token: "tok-1", User: &user}))

	creds, err := storage.Load()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "tok-1", creds.Token)
	require.NotNil(t, creds.User)
	assert.Equal(t, "bob@example.com", creds.User.Email)
}

func TestFileStorage_OwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}

	path := filepath.Join(t.TempDir(), "credentials.json")
	storage := NewFileStorage(path)
	require.NoError(t, storage.Save(&Credentials{Token: "tok-1"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStorage_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStorage(path).Load()
	require.Error(t, err)
}

func TestFileStorage_ClearIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	storage := NewFileStorage(path)

	require.NoError(t, storage.Save(&Credentials{Token: "tok-1"}))
	require.NoError(t, storage.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, storage.Clear(), "clearing an empty storage is not an error")
}
