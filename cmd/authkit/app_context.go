package main

import (
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/authkit/internal/appearance"
	"github.com/alexisbeaulieu97/authkit/internal/config"
	"github.com/alexisbeaulieu97/authkit/internal/logger"
	"github.com/alexisbeaulieu97/authkit/internal/prefs"
	"github.com/alexisbeaulieu97/authkit/internal/theme"
)

// appContext bundles the services a command needs. Build it with
// newAppContext and release it with Close.
type appContext struct {
	cfg    *config.Config
	log    *logger.Logger
	store  theme.Store
	closer io.Closer
	signal theme.Signal
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	name := cmd.Name()

	cfg, err := config.Load(
		config.WithUserConfig(flags.configPath),
		config.WithOverrides(flags.overrides()),
	)
	if err != nil {
		return nil, newCommandError(name, "loading configuration", err, "Check ~/.authkit/config.yaml, .authkit/config.yaml and AUTHKIT_* variables.")
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(name, "creating logger", err, "")
	}
	log = log.WithFields(map[string]any{
		"correlation_id": uuid.NewString(),
		"command":        cmd.CommandPath(),
	})
	log.WithField("sources", cfg.Sources).Debug("configuration loaded")

	return &appContext{cfg: cfg, log: log}, nil
}

// openStore opens the configured preference store.
func (a *appContext) openStore() error {
	store, closer, err := prefs.Open(a.cfg.Store.Backend, a.cfg.Store.Path)
	if err != nil {
		return newCommandError("open store", a.cfg.Store.Backend+" backend", err, "Pick another backend with --store or fix --store-path.")
	}
	a.store = store
	a.closer = closer
	a.log.Component("prefs").WithFields(map[string]any{"backend": a.cfg.Store.Backend, "path": a.cfg.Store.Path}).Debug("preference store opened")
	return nil
}

// openSignal opens the configured OS appearance source. A nil signal means
// none is available.
func (a *appContext) openSignal() error {
	signal, err := appearance.Open(appearance.Options{
		Source:       a.cfg.Appearance.Source,
		File:         a.cfg.Appearance.File,
		PollInterval: a.cfg.Appearance.PollInterval,
		Logger:       a.log.Component("appearance"),
	})
	if err != nil {
		return newCommandError("open appearance source", a.cfg.Appearance.Source, err, "Set appearance.source to terminal, file or none.")
	}
	a.signal = signal
	return nil
}

// open opens the store and the signal.
func (a *appContext) open() error {
	if err := a.openStore(); err != nil {
		return err
	}
	return a.openSignal()
}

// newResolver wires the opened store and signal into a resolver that drives
// lipgloss' background flag. Fields already set in opts are kept.
func (a *appContext) newResolver(opts theme.Options) *theme.Resolver {
	opts.Store = a.store
	opts.Signal = a.signal
	if opts.Attribute == nil {
		opts.Attribute = theme.LipglossAttribute{}
	}
	opts.IncludeSystem = opts.IncludeSystem || a.cfg.Theme.IncludeSystem
	opts.Logger = a.log.Component("theme")
	return theme.New(opts)
}

// Close releases the store.
func (a *appContext) Close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.log.Warn(err, "closing preference store")
	}
}
