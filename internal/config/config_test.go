package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/authkit/pkg/errors"
)

type fixture struct {
	home    string
	work    string
	userCfg string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{
		home: filepath.Join(root, "home"),
		work: filepath.Join(root, "work"),
	}
	f.userCfg = filepath.Join(f.home, ".authkit", "config.yaml")
	require.NoError(t, os.MkdirAll(f.work, 0o755))
	return f
}

func (f fixture) load(t *testing.T, opts ...Option) (*Config, error) {
	t.Helper()
	base := []Option{WithWorkingDir(f.work), WithUserConfig(f.userCfg)}
	return Load(append(base, opts...)...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	f := newFixture(t)
	cfg, err := f.load(t)
	require.NoError(t, err)

	require.Equal(t, "file", cfg.Store.Backend)
	require.Equal(t, filepath.Join(f.home, ".authkit", "preferences.yaml"), cfg.Store.Path)
	require.Equal(t, "terminal", cfg.Appearance.Source)
	require.Equal(t, time.Duration(0), cfg.Appearance.PollInterval)
	require.False(t, cfg.Theme.IncludeSystem)
	require.Equal(t, 4, cfg.Strength.Segments)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Empty(t, cfg.Sources)
}

func TestProjectConfigOverridesUserConfig(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.userCfg, "store:\n  backend: sqlite\ntheme:\n  include-system: true\n")
	project := filepath.Join(f.work, ".authkit", "config.yaml")
	writeFile(t, project, "store:\n  backend: memory\nappearance:\n  poll-interval: 2s\n")

	nested := filepath.Join(f.work, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(WithWorkingDir(nested), WithUserConfig(f.userCfg))
	require.NoError(t, err)
	require.Equal(t, "memory", cfg.Store.Backend)
	require.True(t, cfg.Theme.IncludeSystem)
	require.Equal(t, 2*time.Second, cfg.Appearance.PollInterval)
	require.Equal(t, []string{f.userCfg, project}, cfg.Sources)
}

func TestEnvironmentOverridesFiles(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.userCfg, "store:\n  backend: sqlite\n")
	t.Setenv("AUTHKIT_STORE_BACKEND", "config")
	t.Setenv("AUTHKIT_THEME_INCLUDE_SYSTEM", "true")

	cfg, err := f.load(t)
	require.NoError(t, err)
	require.Equal(t, "config", cfg.Store.Backend)
	require.Equal(t, f.userCfg, cfg.Store.Path)
	require.True(t, cfg.Theme.IncludeSystem)
}

func TestDotEnvFileIsLoaded(t *testing.T) {
	f := newFixture(t)
	writeFile(t, filepath.Join(f.work, ".env"), "AUTHKIT_STRENGTH_SEGMENTS=5\n")
	t.Cleanup(func() { _ = os.Unsetenv("AUTHKIT_STRENGTH_SEGMENTS") })

	cfg, err := f.load(t)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Strength.Segments)
}

func TestOverridesWinAndSkipEmptyStrings(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.userCfg, "store:\n  backend: sqlite\n  path: /tmp/custom.db\n")

	cfg, err := f.load(t, WithOverrides(map[string]any{
		KeyStoreBackend:       "",
		KeyAppearanceSource:   "none",
		KeyThemeIncludeSystem: true,
	}))
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Store.Backend)
	require.Equal(t, "/tmp/custom.db", cfg.Store.Path)
	require.Equal(t, "none", cfg.Appearance.Source)
	require.True(t, cfg.Theme.IncludeSystem)
}

func TestValidationFailures(t *testing.T) {
	cases := map[string]struct {
		overrides map[string]any
		field     string
	}{
		"unknown backend":     {map[string]any{KeyStoreBackend: "redis"}, "store.backend"},
		"unknown source":      {map[string]any{KeyAppearanceSource: "dbus"}, "appearance.source"},
		"file source no path": {map[string]any{KeyAppearanceSource: "file"}, "appearance.file"},
		"segments":            {map[string]any{KeyStrengthSegments: 0}, "strength.segments"},
		"log level":           {map[string]any{KeyLogLevel: "loud"}, "log.level"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.load(t, WithOverrides(tc.overrides))
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestMalformedConfigFile(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.userCfg, "store: [unterminated")

	_, err := f.load(t)
	var configErr *apperrors.ConfigError
	require.ErrorAs(t, err, &configErr)
	require.Equal(t, f.userCfg, configErr.Path)
}

func TestDefaultStorePath(t *testing.T) {
	user := filepath.Join("/home/me", ".authkit", "config.yaml")
	require.Equal(t, filepath.Join("/home/me", ".authkit", "preferences.db"), DefaultStorePath("sqlite", user))
	require.Equal(t, user, DefaultStorePath("config", user))
	require.Equal(t, filepath.Join("/home/me", ".authkit", "preferences.yaml"), DefaultStorePath("file", user))
}

func TestValidateNil(t *testing.T) {
	require.Error(t, Validate(nil))
}
