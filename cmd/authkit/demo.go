package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/authkit/internal/theme"
	"github.com/alexisbeaulieu97/authkit/internal/tui"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive sign-in demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// One forwarder keeps changes in order. Send blocks while Update
			// runs and toggles fire from Update, so the callback never sends.
			changes := make(chan theme.Appearance, 16)
			opts := theme.Options{
				OnAppearance: func(a theme.Appearance) {
					select {
					case changes <- a:
					default:
						// the model re-reads the resolver on the next message
					}
				},
			}

			return withResolver(cmd, flags, opts, func(app *appContext, r *theme.Resolver) error {
				model := tui.NewModel(tui.Options{
					Resolver: r,
					Segments: app.cfg.Strength.Segments,
					Logger:   app.log.Component("tui"),
				})

				p := tea.NewProgram(model,
					tea.WithAltScreen(),
					tea.WithInput(cmd.InOrStdin()),
					tea.WithOutput(cmd.OutOrStdout()),
				)
				done := make(chan struct{})
				defer close(done)
				go forwardAppearance(p, changes, done)

				app.log.Info("demo started")
				if _, err := p.Run(); err != nil {
					return newCommandError("demo", "running the interface", err, "Run the demo from an interactive terminal.")
				}
				app.log.Info("demo closed")
				return nil
			})
		},
	}
}

func forwardAppearance(p *tea.Program, changes <-chan theme.Appearance, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case a := <-changes:
			p.Send(tui.AppearanceMsg{Appearance: a})
		}
	}
}
