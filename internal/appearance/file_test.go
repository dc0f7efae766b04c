package appearance

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/authkit/pkg/errors"
)

func TestFileSignalReadsPreference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appearance")
	s := NewFileSignal(path, nil)
	require.False(t, s.PrefersDark())

	require.NoError(t, os.WriteFile(path, []byte("Dark\n"), 0o644))
	require.True(t, s.PrefersDark())

	require.NoError(t, os.WriteFile(path, []byte("light"), 0o644))
	require.False(t, s.PrefersDark())
}

func TestFileSignalRefreshNotifiesOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appearance")
	require.NoError(t, os.WriteFile(path, []byte("light"), 0o644))

	s := NewFileSignal(path, nil)
	rec := &recorder{}
	unsubscribe := s.Subscribe(rec.record)
	require.True(t, s.Watching())

	require.NoError(t, os.WriteFile(path, []byte("dark"), 0o644))
	require.Eventually(t, func() bool {
		s.Refresh()
		return len(rec.snapshot()) == 1
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, []bool{true}, rec.snapshot())

	unsubscribe()
	unsubscribe()
	require.False(t, s.Watching())
	require.False(t, s.Refresh())
}

func TestFileSignalWatchesWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appearance")
	require.NoError(t, os.WriteFile(path, []byte("light"), 0o644))

	s := NewFileSignal(path, nil)
	rec := &recorder{}
	unsubscribe := s.Subscribe(rec.record)
	defer unsubscribe()

	require.NoError(t, os.WriteFile(path, []byte("dark"), 0o644))
	require.Eventually(t, func() bool {
		values := rec.snapshot()
		return len(values) > 0 && values[len(values)-1]
	}, 2*time.Second, 10*time.Millisecond)
}

func TestOpenSources(t *testing.T) {
	notTTY, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer notTTY.Close()

	signal, err := Open(Options{Source: SourceTerminal, Output: notTTY})
	require.NoError(t, err)
	require.Nil(t, signal)

	signal, err = Open(Options{Source: SourceNone})
	require.NoError(t, err)
	require.Nil(t, signal)

	signal, err = Open(Options{Source: SourceFile, File: filepath.Join(t.TempDir(), "appearance")})
	require.NoError(t, err)
	require.IsType(t, &FileSignal{}, signal)

	_, err = Open(Options{Source: SourceFile})
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "appearance.file", validationErr.Field)

	_, err = Open(Options{Source: "dbus"})
	require.ErrorAs(t, err, &validationErr)
}

func TestTerminalQueryWithoutTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	q := NewTerminalQuery(f)
	require.False(t, q.Available())
	require.False(t, q.PrefersDark())
}
