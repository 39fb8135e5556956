package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trading-auto-pilot/astra-web-sub001/identity"
	"github.com/Trading-auto-pilot/astra-web-sub001/session"
)

func newStore(t *testing.T) (*session.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return session.NewFileStore(path, zerolog.Nop()), path
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, path := newStore(t)

	store.SetToken("tok-1")
	store.SetUserName("ana")
	store.SetRememberedName("ana")
	store.SetNavigation(session.NavigationCache{
		Fetched: true,
		Entries: []identity.NavigationEntry{{Page: "dashboard", Label: "Dashboard"}},
	})

	assert.Equal(t, "tok-1", store.Token())
	assert.Equal(t, "ana", store.UserName())
	assert.Equal(t, "ana", store.RememberedName())
	assert.True(t, store.Navigation().Fetched)
	require.Len(t, store.Navigation().Entries, 1)
	assert.Equal(t, "dashboard", store.Navigation().Entries[0].Page)

	// A fresh store over the same file sees the persisted session.
	reloaded := session.NewFileStore(path, zerolog.Nop())
	assert.Equal(t, "tok-1", reloaded.Token())
	assert.Equal(t, "ana", reloaded.UserName())
	assert.True(t, reloaded.Navigation().Fetched)
}

func TestFileStoreTeardownIsAtomic(t *testing.T) {
	store, path := newStore(t)

	store.SetToken("tok-1")
	store.SetUserName("ana")
	store.SetRememberedName("ana")
	store.SetNavigation(session.NavigationCache{Fetched: true, Entries: []identity.NavigationEntry{{Page: "dashboard"}}})

	store.ClearToken()

	assert.Empty(t, store.Token())
	assert.Empty(t, store.UserName())
	assert.False(t, store.Navigation().Fetched)
	assert.Empty(t, store.Navigation().Entries)
	// The remember-me slot is login-form convenience and survives logout.
	assert.Equal(t, "ana", store.RememberedName())

	reloaded := session.NewFileStore(path, zerolog.Nop())
	assert.Empty(t, reloaded.Token())
	assert.Empty(t, reloaded.UserName())
	assert.False(t, reloaded.Navigation().Fetched)
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := session.NewFileStore(path, zerolog.Nop())
	assert.Empty(t, store.Token())
	assert.Empty(t, store.UserName())
	assert.False(t, store.Navigation().Fetched)

	// Writes still work after recovery.
	store.SetToken("tok-2")
	assert.Equal(t, "tok-2", store.Token())
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	store, _ := newStore(t)
	assert.Empty(t, store.Token())
	assert.Empty(t, store.RememberedName())
}

func TestFileStoreWriteFailureIsSwallowed(t *testing.T) {
	// A path whose parent cannot be created: writes must not panic or
	// surface, and the in-memory session keeps working.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := session.NewFileStore(filepath.Join(blocker, "nested", "session.json"), zerolog.Nop())
	store.SetToken("tok-3")
	assert.Equal(t, "tok-3", store.Token())
}

func TestFileStoreClearNavigationOnly(t *testing.T) {
	store, _ := newStore(t)
	store.SetToken("tok-1")
	store.SetNavigation(session.NavigationCache{Fetched: true})

	store.ClearNavigation()

	assert.Equal(t, "tok-1", store.Token())
	assert.False(t, store.Navigation().Fetched)
}
