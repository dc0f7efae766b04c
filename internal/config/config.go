// Package config loads authkit settings with the precedence
// defaults < user config < project config < .env < environment < overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/alexisbeaulieu97/authkit/pkg/errors"
)

const (
	KeyStoreBackend          = "store.backend"
	KeyStorePath             = "store.path"
	KeyAppearanceSource      = "appearance.source"
	KeyAppearanceFile        = "appearance.file"
	KeyAppearancePoll        = "appearance.poll-interval"
	KeyThemeIncludeSystem    = "theme.include-system"
	KeyStrengthSegments      = "strength.segments"
	KeyLogLevel              = "log.level"
	KeyLogHuman              = "log.human"
	envPrefix                = "AUTHKIT"
	dirName                  = ".authkit"
	configFileName           = "config.yaml"
	defaultStrengthSegments  = 4
	defaultAppearanceBackend = "terminal"
)

// Config is the typed view over the merged settings.
type Config struct {
	Store      StoreConfig      `mapstructure:"store"`
	Appearance AppearanceConfig `mapstructure:"appearance"`
	Theme      ThemeConfig      `mapstructure:"theme"`
	Strength   StrengthConfig   `mapstructure:"strength"`
	Log        LogConfig        `mapstructure:"log"`

	// UserConfigPath is where user-level settings live; the config store
	// backend writes there by default.
	UserConfigPath string `mapstructure:"-"`
	// Sources lists the config files that were merged, in order.
	Sources []string `mapstructure:"-"`
}

// StoreConfig selects the preference persistence backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=file sqlite config memory none"`
	Path    string `mapstructure:"path"`
}

// AppearanceConfig selects the OS dark-mode signal source.
type AppearanceConfig struct {
	Source       string        `mapstructure:"source" validate:"required,oneof=terminal file none"`
	File         string        `mapstructure:"file" validate:"required_if=Source file"`
	PollInterval time.Duration `mapstructure:"poll-interval" validate:"gte=0"`
}

// ThemeConfig holds theme switch behaviour.
type ThemeConfig struct {
	IncludeSystem bool `mapstructure:"include-system"`
}

// StrengthConfig holds strength indicator presentation.
type StrengthConfig struct {
	Segments int `mapstructure:"segments" validate:"gte=1,lte=10"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"log_level"`
	Human bool   `mapstructure:"human"`
}

type loadSettings struct {
	workingDir        string
	userConfigPath    string
	projectConfigPath string
	envFile           string
	overrides         map[string]any
}

// Option configures Load.
type Option func(*loadSettings)

// WithWorkingDir overrides the directory used for project config and .env discovery.
func WithWorkingDir(dir string) Option {
	return func(s *loadSettings) {
		s.workingDir = dir
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(s *loadSettings) {
		s.userConfigPath = path
	}
}

// WithProjectConfig sets the project config path instead of discovering it.
func WithProjectConfig(path string) Option {
	return func(s *loadSettings) {
		s.projectConfigPath = path
	}
}

// WithEnvFile loads the given dotenv file instead of <workdir>/.env.
func WithEnvFile(path string) Option {
	return func(s *loadSettings) {
		s.envFile = path
	}
}

// WithOverrides injects values typically coming from CLI flags. Empty
// strings are ignored so unset flags do not mask lower layers.
func WithOverrides(overrides map[string]any) Option {
	return func(s *loadSettings) {
		if s.overrides == nil {
			s.overrides = make(map[string]any)
		}
		for k, v := range overrides {
			if str, ok := v.(string); ok && str == "" {
				continue
			}
			s.overrides[k] = v
		}
	}
}

// Load merges every configuration layer and validates the result.
func Load(opts ...Option) (*Config, error) {
	settings := loadSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := DefaultUserConfigPath()
		if err != nil {
			return nil, err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return nil, err
		}
		projectConfigPath = path
	}

	envFile := settings.envFile
	if envFile == "" {
		envFile = filepath.Join(workingDir, ".env")
	}
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfg := &Config{UserConfigPath: userConfigPath}
	for _, path := range []string{userConfigPath, projectConfigPath} {
		merged, err := mergeConfigFile(v, path)
		if err != nil {
			return nil, err
		}
		if merged {
			cfg.Sources = append(cfg.Sources, path)
		}
	}

	for k, val := range settings.overrides {
		v.Set(k, val)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.NewConfigError("", fmt.Errorf("decode: %w", err))
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = DefaultStorePath(cfg.Store.Backend, userConfigPath)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyStoreBackend, "file")
	v.SetDefault(KeyStorePath, "")
	v.SetDefault(KeyAppearanceSource, defaultAppearanceBackend)
	v.SetDefault(KeyAppearanceFile, "")
	v.SetDefault(KeyAppearancePoll, "0s")
	v.SetDefault(KeyThemeIncludeSystem, false)
	v.SetDefault(KeyStrengthSegments, defaultStrengthSegments)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogHuman, true)
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(path); err != nil {
		return apperrors.NewConfigError(path, err)
	}
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewConfigError(path, err)
	}
	if info.IsDir() {
		return false, apperrors.NewConfigError(path, errors.New("is a directory"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, apperrors.NewConfigError(path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return false, apperrors.NewConfigError(path, err)
	}
	return true, nil
}

// DefaultUserConfigPath is ~/.authkit/config.yaml.
func DefaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, dirName, configFileName), nil
}

// DefaultStorePath places backend files next to the user config.
func DefaultStorePath(backend, userConfigPath string) string {
	dir := filepath.Dir(userConfigPath)
	switch backend {
	case "sqlite":
		return filepath.Join(dir, "preferences.db")
	case "config":
		return userConfigPath
	default:
		return filepath.Join(dir, "preferences.yaml")
	}
}

func findProjectConfig(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, dirName, configFileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", apperrors.NewConfigError(candidate, errors.New("is a directory"))
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", apperrors.NewConfigError(candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
