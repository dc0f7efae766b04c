package prefs

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/authkit/internal/theme"
	apperrors "github.com/alexisbeaulieu97/authkit/pkg/errors"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendConfig = "config"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Backends lists every accepted backend name.
var Backends = []string{BackendFile, BackendSQLite, BackendConfig, BackendMemory, BackendNone}

// Open builds the store for backend. BackendNone yields a nil store, which
// the resolver treats as persistence being unavailable. The returned closer
// is never nil.
func Open(backend, path string) (theme.Store, io.Closer, error) {
	switch backend {
	case BackendFile:
		store, err := NewFileStore(path)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return store, nopCloser{}, nil
	case BackendSQLite:
		store, err := NewSQLiteStore(path)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return store, store, nil
	case BackendConfig:
		return NewConfigStore(path), nopCloser{}, nil
	case BackendMemory:
		return NewMemoryStore(), nopCloser{}, nil
	case BackendNone:
		return nil, nopCloser{}, nil
	default:
		return nil, nopCloser{}, apperrors.NewValidationError("store.backend", fmt.Sprintf("unknown backend %q", backend), nil)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
