package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/authkit/internal/logger"
	"github.com/alexisbeaulieu97/authkit/internal/strength"
	"github.com/alexisbeaulieu97/authkit/internal/theme"
	"github.com/alexisbeaulieu97/authkit/internal/ui/components"
	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

const (
	defaultCardWidth   = 52
	minCardWidth       = 32
	defaultSubmitDelay = 600 * time.Millisecond
)

// AppearanceMsg reports an appearance change driven by the OS signal. With a
// resolver attached the model re-reads the resolver instead of trusting the
// payload.
type AppearanceMsg struct {
	Appearance theme.Appearance
}

type submitDoneMsg struct {
	email string
}

// Options configures the demo.
type Options struct {
	// Resolver drives the theme switch. Without it the switch is hidden and
	// the light theme is used.
	Resolver *theme.Resolver
	// Segments is the number of strength meter bars.
	Segments int
	// Providers lists the OAuth buttons; every provider by default.
	Providers   []headless.Provider
	SubmitDelay time.Duration
	Logger      *logger.Logger
}

// Model is the bubbletea model of the sign-in demo.
type Model struct {
	keys KeyMap
	help help.Model
	log  *logger.Logger

	resolver   *theme.Resolver
	appearance theme.Appearance

	email         *components.Input
	emailField    *components.FormField
	password      *components.PasswordInput
	passwordField *components.FormField
	submit        *components.Button
	divider       *components.AuthDivider
	oauth         []*components.OAuthButton
	themeSwitch   *components.ThemeSwitch
	spinner       *components.LoadingSpinner
	status        headless.ErrorMessage

	focus       int
	width       int
	submitDelay time.Duration
	submitting  bool
	quitting    bool
}

// NewModel builds the demo with the email field focused.
func NewModel(opts Options) Model {
	providers := opts.Providers
	if len(providers) == 0 {
		providers = headless.Providers
	}
	delay := opts.SubmitDelay
	if delay <= 0 {
		delay = defaultSubmitDelay
	}

	m := Model{
		keys:        DefaultKeyMap(),
		help:        help.New(),
		log:         opts.Logger,
		resolver:    opts.Resolver,
		appearance:  theme.AppearanceLight,
		divider:     components.NewAuthDivider(),
		spinner:     components.NewLoadingSpinner(headless.SizeSmall),
		submitDelay: delay,
		width:       defaultCardWidth,
	}

	m.email = components.NewInput(headless.InputOptions{
		Name:        "email",
		Type:        headless.InputEmail,
		Placeholder: "you@example.com",
		FullWidth:   true,
	})
	m.emailField = components.NewFormField("email", "Email", m.email).WithRequired(true)

	m.password = components.NewPasswordInput(headless.PasswordInputOptions{
		Name:         "password",
		Placeholder:  "Password",
		ShowStrength: true,
		Segments:     opts.Segments,
		OnStrengthChange: func(v strength.Verdict) {
			opts.Logger.WithField("score", v.Score).Debug("password strength changed")
		},
	})
	m.passwordField = components.NewFormField("password", "Password", m.password).WithRequired(true)

	m.submit = components.NewButton("Sign in", headless.ButtonOptions{FullWidth: true})

	for _, p := range providers {
		m.oauth = append(m.oauth, components.NewOAuthButton(p, headless.OAuthButtonOptions{FullWidth: true}))
	}

	if m.resolver != nil {
		m.themeSwitch = components.NewThemeSwitch(m.resolver, headless.SizeMedium).WithLabel(true)
		m.appearance = m.resolver.Effective()
	}

	m.layout()
	m.setFocus(0)
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Appearance is the appearance the model renders with.
func (m Model) Appearance() theme.Appearance {
	return m.appearance
}

// Status is the message shown under the form.
func (m Model) Status() headless.ErrorMessage {
	return m.status
}

// Submitting reports whether a sign-in is in flight.
func (m Model) Submitting() bool {
	return m.submitting
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Strength is the latest password verdict.
func (m Model) Strength() strength.Verdict {
	return m.password.Headless().Strength()
}

// focusables: email, password, submit, oauth buttons, then the theme switch.
const (
	focusEmail = iota
	focusPassword
	focusSubmit
	focusOAuth
)

func (m Model) focusCount() int {
	n := focusOAuth + len(m.oauth)
	if m.themeSwitch != nil {
		n++
	}
	return n
}

func (m Model) focusedOAuth() (*components.OAuthButton, bool) {
	i := m.focus - focusOAuth
	if i < 0 || i >= len(m.oauth) {
		return nil, false
	}
	return m.oauth[i], true
}

func (m Model) themeFocused() bool {
	return m.themeSwitch != nil && m.focus == m.focusCount()-1
}

func (m *Model) setFocus(i int) tea.Cmd {
	n := m.focusCount()
	m.focus = ((i % n) + n) % n

	m.email.Headless().Blur()
	m.password.Headless().Input().Blur()
	m.submit.Headless().SetFocused(m.focus == focusSubmit)
	for j, b := range m.oauth {
		b.Headless().SetFocused(m.focus == focusOAuth+j)
	}

	switch m.focus {
	case focusEmail:
		return m.email.Headless().Focus()
	case focusPassword:
		return m.password.Headless().Input().Focus()
	default:
		return nil
	}
}

func (m *Model) layout() {
	inner := components.InnerWidth(m.cardWidth())
	// Frames take four cells and the cursor one more; the password field also
	// shows its toggle hint.
	m.email.Headless().SetWidth(inner - 5)
	m.password.Headless().Input().SetWidth(inner - 5 - len(" show"))
}

func (m Model) cardWidth() int {
	if m.width < minCardWidth {
		return minCardWidth
	}
	if m.width > defaultCardWidth {
		return defaultCardWidth
	}
	return m.width
}
