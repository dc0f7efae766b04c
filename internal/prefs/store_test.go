package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/authkit/internal/theme"
	apperrors "github.com/alexisbeaulieu97/authkit/pkg/errors"
)

var (
	_ theme.Store = (*MemoryStore)(nil)
	_ theme.Store = (*FileStore)(nil)
	_ theme.Store = (*SQLiteStore)(nil)
	_ theme.Store = (*ConfigStore)(nil)
)

func exerciseStore(t *testing.T, store theme.Store) {
	t.Helper()

	_, ok, err := store.Get(theme.StoreKey)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(theme.StoreKey, "dark"))
	value, ok, err := store.Get(theme.StoreKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", value)

	require.NoError(t, store.Set(theme.StoreKey, "system"))
	value, _, err = store.Get(theme.StoreKey)
	require.NoError(t, err)
	require.Equal(t, "system", value)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	exerciseStore(t, store)

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	value, ok, err := reopened.Get(theme.StoreKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "system", value)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "theme: system")
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("values: [unterminated"), 0o644))

	_, err := NewFileStore(path)
	var storeErr *apperrors.StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, BackendFile, storeErr.Backend)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	exerciseStore(t, store)
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, ok, err := reopened.Get(theme.StoreKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "system", value)
}

func TestConfigStorePreservesOtherSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	store := NewConfigStore(path)
	exerciseStoreWithExisting(t, store)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "level: debug")
	require.Contains(t, string(data), "theme: system")
}

func exerciseStoreWithExisting(t *testing.T, store theme.Store) {
	t.Helper()
	require.NoError(t, store.Set(theme.StoreKey, "system"))
	value, ok, err := store.Get(theme.StoreKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "system", value)
}

func TestConfigStoreLeavesUnparsableFileAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := []byte("log:\n  level: debug\n\tbad: [\n")
	require.NoError(t, os.WriteFile(path, original, 0o644))

	store := NewConfigStore(path)
	err := store.Set(theme.StoreKey, "dark")
	var storeErr *apperrors.StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, BackendConfig, storeErr.Backend)

	_, _, err = store.Get(theme.StoreKey)
	require.ErrorAs(t, err, &storeErr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, original, data)
}

func TestConfigStoreMissingFile(t *testing.T) {
	store := NewConfigStore(filepath.Join(t.TempDir(), "sub", "config.yaml"))
	exerciseStore(t, store)
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		BackendFile:   "prefs.yaml",
		BackendSQLite: "prefs.db",
		BackendConfig: "config.yaml",
		BackendMemory: "",
	}

	for backend, name := range files {
		t.Run(backend, func(t *testing.T) {
			store, closer, err := Open(backend, filepath.Join(dir, name))
			require.NoError(t, err)
			require.NotNil(t, store)
			require.NotNil(t, closer)
			t.Cleanup(func() { _ = closer.Close() })
			require.NoError(t, store.Set(theme.StoreKey, "light"))
		})
	}

	store, closer, err := Open(BackendNone, "")
	require.NoError(t, err)
	require.Nil(t, store)
	require.NoError(t, closer.Close())

	_, _, err = Open("redis", "")
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestResolverPersistsThroughFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	r := theme.New(theme.Options{Store: store, IncludeSystem: true})
	r.Mount()
	r.Toggle()
	r.Close()

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	next := theme.New(theme.Options{Store: reopened})
	require.Equal(t, theme.Light, next.Initialize())
}
