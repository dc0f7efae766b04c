package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	apperrors "github.com/alexisbeaulieu97/authkit/pkg/errors"
)

// ConfigStore keeps preferences as top-level keys of a YAML config file,
// leaving every other setting in that file untouched.
type ConfigStore struct {
	path string
	mu   sync.Mutex
}

// NewConfigStore returns a store writing to the config file at path.
func NewConfigStore(path string) *ConfigStore {
	return &ConfigStore{path: path}
}

// read loads the config file. A missing file reads as empty; any other
// failure is returned so Set never rewrites a file it could not parse.
func (s *ConfigStore) read() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(s.path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// Get returns the value stored under key.
func (s *ConfigStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.read()
	if err != nil {
		return "", false, apperrors.NewStoreError(BackendConfig, key, err)
	}
	if !v.IsSet(key) {
		return "", false, nil
	}
	return v.GetString(key), true, nil
}

// Set writes value under key.
func (s *ConfigStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.read()
	if err != nil {
		return apperrors.NewStoreError(BackendConfig, key, err)
	}
	v.Set(key, value)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperrors.NewStoreError(BackendConfig, key, fmt.Errorf("create config directory: %w", err))
	}
	if err := v.WriteConfigAs(s.path); err != nil {
		return apperrors.NewStoreError(BackendConfig, key, fmt.Errorf("write config: %w", err))
	}
	return nil
}
