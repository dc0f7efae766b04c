package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/authkit/internal/prefs"
	"github.com/alexisbeaulieu97/authkit/internal/strength"
	"github.com/alexisbeaulieu97/authkit/internal/theme"
	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func mountedResolver(t *testing.T, stored theme.Preference) (*theme.Resolver, *prefs.MemoryStore) {
	t.Helper()
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(theme.StoreKey, string(stored)))
	r := theme.New(theme.Options{Store: store})
	r.Mount()
	t.Cleanup(r.Close)
	return r, store
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	assert.True(t, key.Matches(keyPress(tea.KeyTab), km.Next))
	assert.True(t, key.Matches(keyPress(tea.KeyShiftTab), km.Prev))
	assert.True(t, key.Matches(keyPress(tea.KeyCtrlR), km.Reveal))
	assert.True(t, key.Matches(keyPress(tea.KeyCtrlT), km.Theme))
	assert.True(t, key.Matches(keyPress(tea.KeyEsc), km.Quit))
	assert.True(t, key.Matches(keyPress(tea.KeyCtrlC), km.Quit))
	assert.Len(t, km.FullHelp(), 2)
}

func TestTypingGoesToFocusedField(t *testing.T) {
	m := NewModel(Options{})
	m = typeText(t, m, "ada@example.com")
	assert.Equal(t, "ada@example.com", m.email.Headless().Value())

	m, _ = send(t, m, keyPress(tea.KeyTab))
	m = typeText(t, m, "Ab1!efgh")
	assert.Equal(t, "Ab1!efgh", m.password.Headless().Value())
	assert.Equal(t, strength.MaxScore, m.Strength().Score)
	assert.Equal(t, "ada@example.com", m.email.Headless().Value())
}

func TestSubmitValidatesLocally(t *testing.T) {
	m := NewModel(Options{})
	m, cmd := send(t, m, keyPress(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, "Email is required", m.emailField.Error())
	assert.Equal(t, "Password is required", m.passwordField.Error())
	assert.True(t, m.email.Headless().HasError())
	assert.Equal(t, headless.MessageError, m.Status().Severity())

	m = typeText(t, m, "not-an-email")
	assert.Empty(t, m.emailField.Error(), "typing clears the field error")

	m, _ = send(t, m, keyPress(tea.KeyEnter))
	assert.Equal(t, "Enter a valid email address", m.emailField.Error())
	assert.False(t, m.Submitting())
}

func TestSubmitSucceeds(t *testing.T) {
	m := NewModel(Options{})
	m = typeText(t, m, "ada@example.com")
	m, _ = send(t, m, keyPress(tea.KeyTab))
	m = typeText(t, m, "secret")

	m, cmd := send(t, m, keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, m.Submitting())
	assert.True(t, m.submit.Headless().Disabled())
	assert.False(t, m.Status().Visible())

	m, _ = send(t, m, submitDoneMsg{email: "ada@example.com"})
	assert.False(t, m.Submitting())
	assert.Equal(t, "Signed in as ada@example.com", m.Status().Message)
	assert.Equal(t, headless.MessageInfo, m.Status().Severity())
}

func TestRevealPassword(t *testing.T) {
	m := NewModel(Options{})
	assert.False(t, m.password.Headless().Revealed())
	m, _ = send(t, m, keyPress(tea.KeyCtrlR))
	assert.True(t, m.password.Headless().Revealed())
}

func TestFocusWrapsAround(t *testing.T) {
	m := NewModel(Options{Providers: []headless.Provider{headless.ProviderGitHub}})
	require.Equal(t, 4, m.focusCount())

	m, _ = send(t, m, keyPress(tea.KeyShiftTab))
	b, ok := m.focusedOAuth()
	require.True(t, ok)
	assert.True(t, b.Headless().Focused())

	m, _ = send(t, m, keyPress(tea.KeyTab))
	assert.Equal(t, focusEmail, m.focus)
	assert.True(t, m.email.Headless().Focused())
	assert.False(t, b.Headless().Focused())
}

func TestOAuthButtonsDoNotSignIn(t *testing.T) {
	m := NewModel(Options{Providers: []headless.Provider{headless.ProviderGitHub}})
	m, _ = send(t, m, keyPress(tea.KeyShiftTab))
	m, cmd := send(t, m, keyPress(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, headless.MessageWarning, m.Status().Severity())
	assert.Contains(t, m.Status().Message, "GitHub")
	assert.Empty(t, m.emailField.Error())
}

func TestThemeToggleKey(t *testing.T) {
	r, store := mountedResolver(t, theme.Light)
	m := NewModel(Options{Resolver: r})
	assert.Equal(t, theme.AppearanceLight, m.Appearance())

	m, _ = send(t, m, keyPress(tea.KeyCtrlT))
	assert.Equal(t, theme.AppearanceDark, m.Appearance())
	assert.Equal(t, theme.Dark, r.Current())

	value, ok, err := store.Get(theme.StoreKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestThemeSwitchIsLastFocusable(t *testing.T) {
	r, _ := mountedResolver(t, theme.Dark)
	m := NewModel(Options{Resolver: r, Providers: []headless.Provider{headless.ProviderApple}})

	m, _ = send(t, m, keyPress(tea.KeyShiftTab))
	require.True(t, m.themeFocused())
	m, _ = send(t, m, keyPress(tea.KeyEnter))
	assert.Equal(t, theme.Light, r.Current())
	assert.Equal(t, theme.AppearanceLight, m.Appearance())
}

func TestAppearanceMsg(t *testing.T) {
	m := NewModel(Options{})
	m, cmd := send(t, m, AppearanceMsg{Appearance: theme.AppearanceDark})
	assert.Nil(t, cmd)
	assert.Equal(t, theme.AppearanceDark, m.Appearance())
}

func TestStaleAppearanceMsgFollowsResolver(t *testing.T) {
	r, _ := mountedResolver(t, theme.Light)
	m := NewModel(Options{Resolver: r})
	require.Equal(t, theme.AppearanceLight, m.Appearance())

	// light -> dark, then a dark notification delivered after the resolver
	// has already moved on to light again
	r.Set(theme.Dark)
	r.Set(theme.Light)
	m, cmd := send(t, m, AppearanceMsg{Appearance: theme.AppearanceDark})
	assert.Nil(t, cmd)
	assert.Equal(t, theme.AppearanceLight, m.Appearance())
	assert.Equal(t, r.Effective(), m.Appearance())
}

func TestQuit(t *testing.T) {
	m := NewModel(Options{})
	m, cmd := send(t, m, keyPress(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestViewRendersCard(t *testing.T) {
	r, _ := mountedResolver(t, theme.Light)
	m := NewModel(Options{Resolver: r})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Welcome back")
	assert.Contains(t, view, "Email *")
	assert.Contains(t, view, "Sign in")
	assert.Contains(t, view, "Or continue with")
	assert.Contains(t, view, "Continue with GitHub")
	assert.Contains(t, view, "Theme")
	assert.Contains(t, view, "Light")
}

func TestViewShowsStrengthMeter(t *testing.T) {
	m := NewModel(Options{})
	m, _ = send(t, m, keyPress(tea.KeyTab))
	m = typeText(t, m, "abcdefghijkl")
	assert.Contains(t, ansi.Strip(m.View()), "Good")
}
