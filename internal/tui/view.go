package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/authkit/internal/ui/components"
	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

var (
	markerStyle = lipgloss.NewStyle().Bold(true)
	pageStyle   = lipgloss.NewStyle().Padding(1, 1)
)

// View renders the sign-in card.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.DefaultContext().
		WithTheme(components.ThemeFor(m.appearance)).
		WithWidth(m.cardWidth())

	card := components.NewAuthCard("Welcome back", headless.Text(m.body(ctx))).
		WithSubtitle("Sign in to your account to continue").
		WithFooter(headless.Text(m.help.View(m.keys)))

	return pageStyle.Render(card.ViewWithContext(ctx))
}

func (m Model) body(outer components.RenderContext) string {
	ctx := outer.WithWidth(components.InnerWidth(outer.Width))

	rows := []string{
		m.emailField.ViewWithContext(ctx),
		m.passwordField.ViewWithContext(ctx),
		m.submit.ViewWithContext(ctx),
	}

	if m.submitting {
		rows = append(rows, m.spinner.ViewWithContext(ctx))
	} else if status := components.WrapErrorMessage(m.status).ViewWithContext(ctx); status != "" {
		rows = append(rows, status)
	}

	if len(m.oauth) > 0 {
		rows = append(rows, m.divider.ViewWithContext(ctx))
		for _, b := range m.oauth {
			rows = append(rows, b.ViewWithContext(ctx))
		}
	}

	if m.themeSwitch != nil {
		marker := "  "
		if m.themeFocused() {
			marker = markerStyle.Render("› ")
		}
		rows = append(rows, marker+"Theme "+m.themeSwitch.ViewWithContext(ctx))
	}

	return strings.Join(rows, "\n")
}
