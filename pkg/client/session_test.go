package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
)

func TestFileSessionStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewFileSessionStore(path)
	assert.NoError(t, store.SetToken("token-abc"))
	assert.NoError(t, store.SetUser(&domain.UserResponse{ID: "user-1", Email: "alina@example.com"}))

	// a fresh store rereads what the first one persisted
	reloaded := NewFileSessionStore(path)
	assert.Equal(t, "token-abc", reloaded.Token())
	assert.Equal(t, "alina@example.com", reloaded.User().Email)
}

func TestFileSessionStore_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewFileSessionStore(path)
	assert.NoError(t, store.SetToken("token-abc"))
	assert.NoError(t, store.Clear())

	assert.Empty(t, store.Token())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// clearing an already-empty session is not an error
	assert.NoError(t, store.Clear())
}

func TestFileSessionStore_MissingFileStartsEmpty(t *testing.T) {
	store := NewFileSessionStore(filepath.Join(t.TempDir(), "absent.json"))
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	assert.NoError(t, store.SetToken("token-abc"))
	assert.NoError(t, store.SetUser(&domain.UserResponse{ID: "user-1"}))
	assert.Equal(t, "token-abc", store.Token())
	assert.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}
