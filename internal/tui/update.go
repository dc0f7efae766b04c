package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

// Update handles bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - 2
		m.help.Width = m.cardWidth()
		m.layout()
		return m, nil
	case AppearanceMsg:
		// Messages may arrive out of order; the resolver holds the latest value.
		if m.resolver != nil {
			m.appearance = m.resolver.Effective()
		} else {
			m.appearance = msg.Appearance
		}
		return m, nil
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		return m, m.spinner.Update(msg)
	case submitDoneMsg:
		m.submitting = false
		m.submit.Headless().SetLoading(false)
		m.status = headless.ErrorMessage{Message: "Signed in as " + msg.email, Variant: headless.MessageInfo}
		m.log.WithField("email", msg.email).Info("demo sign-in completed")
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Reveal):
		m.password.Headless().ToggleVisibility()
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.activate()
	}

	switch m.focus {
	case focusEmail:
		_, cmd := m.email.Headless().Update(msg)
		if m.emailField.Error() != "" {
			m.emailField.SetError("")
			m.email.Headless().SetError(false)
		}
		return m, cmd
	case focusPassword:
		cmd := m.password.Update(msg)
		if m.passwordField.Error() != "" {
			m.passwordField.SetError("")
			m.password.Headless().Input().SetError(false)
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) toggleTheme() {
	if m.resolver == nil {
		return
	}
	m.resolver.Toggle()
	m.appearance = m.resolver.Effective()
}

// activate runs the action of the focused control.
func (m Model) activate() (tea.Model, tea.Cmd) {
	if m.themeFocused() {
		m.toggleTheme()
		return m, nil
	}
	if b, ok := m.focusedOAuth(); ok {
		provider := b.Headless().Provider().DisplayName()
		m.status = headless.ErrorMessage{
			Message: provider + " sign-in is not available in this demo",
			Variant: headless.MessageWarning,
		}
		return m, nil
	}
	return m.signIn()
}

func (m Model) signIn() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	email := strings.TrimSpace(m.email.Headless().Value())
	emailErr := validateEmail(email)
	passwordErr := ""
	if m.password.Headless().Value() == "" {
		passwordErr = "Password is required"
	}

	m.emailField.SetError(emailErr)
	m.email.Headless().SetError(emailErr != "")
	m.passwordField.SetError(passwordErr)
	m.password.Headless().Input().SetError(passwordErr != "")

	if emailErr != "" || passwordErr != "" {
		m.status = headless.NewErrorMessage("Please fix the highlighted fields")
		return m, nil
	}

	m.status = headless.ErrorMessage{}
	m.submitting = true
	m.submit.Headless().SetLoading(true)
	delay := m.submitDelay
	done := tea.Tick(delay, func(time.Time) tea.Msg { return submitDoneMsg{email: email} })
	return m, tea.Batch(m.spinner.Tick, done)
}

func validateEmail(email string) string {
	switch {
	case email == "":
		return "Email is required"
	case !strings.Contains(email, "@"):
		return "Enter a valid email address"
	default:
		return ""
	}
}
