package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/authkit/internal/config"
)

type rootFlags struct {
	verbose    bool
	configPath string
	store      string
	storePath  string
}

// overrides maps flags onto config keys. Unset flags stay empty and are
// ignored by config.Load.
func (f *rootFlags) overrides() map[string]any {
	o := map[string]any{
		config.KeyStoreBackend: f.store,
		config.KeyStorePath:    f.storePath,
	}
	if f.verbose {
		o[config.KeyLogLevel] = "debug"
	}
	return o
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "authkit",
		Short:         "Terminal authentication UI kit: password strength, theme preference and a sign-in demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "User config file (default ~/.authkit/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.store, "store", "", "Preference store backend: file, sqlite, config, memory or none")
	cmd.PersistentFlags().StringVar(&flags.storePath, "store-path", "", "Location of the preference store")

	cmd.AddCommand(newStrengthCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
