package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/authkit/internal/theme"
	apperrors "github.com/alexisbeaulieu97/authkit/pkg/errors"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and change the persisted theme preference",
	}

	cmd.AddCommand(newThemeShowCmd(flags))
	cmd.AddCommand(newThemeToggleCmd(flags))
	cmd.AddCommand(newThemeSetCmd(flags))
	cmd.AddCommand(newThemeWatchCmd(flags))

	return cmd
}

// withResolver opens the app, mounts a resolver and runs fn with it.
func withResolver(cmd *cobra.Command, flags *rootFlags, opts theme.Options, fn func(*appContext, *theme.Resolver) error) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.open(); err != nil {
		return err
	}

	resolver := app.newResolver(opts)
	resolver.Mount()
	defer resolver.Close()

	return fn(app, resolver)
}

func printThemeState(w io.Writer, r *theme.Resolver) {
	fmt.Fprintf(w, "Preference: %s\n", r.Current())
	fmt.Fprintf(w, "Appearance: %s\n", r.Effective())
	fmt.Fprintf(w, "Next:       %s\n", r.Next())
}

func newThemeShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current preference and resolved appearance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withResolver(cmd, flags, theme.Options{}, func(app *appContext, r *theme.Resolver) error {
				printThemeState(cmd.OutOrStdout(), r)
				fmt.Fprintf(cmd.OutOrStdout(), "Store:      %s\n", describeStore(app))
				return nil
			})
		},
	}
}

func describeStore(app *appContext) string {
	if app.store == nil || app.cfg.Store.Path == "" {
		return app.cfg.Store.Backend
	}
	return fmt.Sprintf("%s (%s)", app.cfg.Store.Backend, app.cfg.Store.Path)
}

func newThemeToggleCmd(flags *rootFlags) *cobra.Command {
	var includeSystem bool

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Advance to the next preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := theme.Options{IncludeSystem: includeSystem}
			return withResolver(cmd, flags, opts, func(app *appContext, r *theme.Resolver) error {
				prev := r.Current()
				next := r.Toggle()
				app.log.WithFields(map[string]any{"from": string(prev), "to": string(next)}).Info("theme toggled")
				fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s -> %s (appearance %s)\n", prev, next, r.Effective())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&includeSystem, "system", false, "Include system in the toggle cycle")

	return cmd
}

func newThemeSetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Set the preference explicitly",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark), string(theme.System)},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := theme.ParsePreference(strings.ToLower(strings.TrimSpace(args[0])))
			if !ok {
				err := apperrors.NewValidationError("preference", fmt.Sprintf("unknown preference %q", args[0]), nil)
				return newCommandError("theme set", "parsing the preference", err, "Use light, dark or system.")
			}
			return withResolver(cmd, flags, theme.Options{}, func(app *appContext, r *theme.Resolver) error {
				r.Set(p)
				app.log.WithField("preference", string(p)).Info("theme set")
				fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s (appearance %s)\n", p, r.Effective())
				return nil
			})
		},
	}
}

var errNoAppearanceSource = errors.New("no OS appearance source is available")

func newThemeWatchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print appearance changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			changes := make(chan theme.Appearance, 8)
			opts := theme.Options{
				OnAppearance: func(a theme.Appearance) {
					select {
					case changes <- a:
					default:
					}
				},
			}

			return withResolver(cmd, flags, opts, func(app *appContext, r *theme.Resolver) error {
				if app.signal == nil {
					return newCommandError("theme watch", "opening the appearance source", errNoAppearanceSource, "Set appearance.source to file, or run inside a terminal.")
				}

				ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
				defer stop()

				// Mount already reported the initial appearance.
				for len(changes) > 0 {
					<-changes
				}
				printThemeState(out, r)
				if r.Current() != theme.System {
					fmt.Fprintln(out, "Preference is not system; OS changes are ignored until it is.")
				}
				for {
					select {
					case <-ctx.Done():
						return nil
					case a := <-changes:
						fmt.Fprintf(out, "appearance: %s\n", a)
					}
				}
			})
		},
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
