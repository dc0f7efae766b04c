package headless

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputType mirrors the HTML input types the auth forms use.
type InputType string

const (
	InputText     InputType = "text"
	InputEmail    InputType = "email"
	InputPassword InputType = "password"
)

// InputOptions configures an Input.
type InputOptions struct {
	Name        string
	Type        InputType
	Placeholder string
	HasError    bool
	FullWidth   bool
	CharLimit   int
}

// InputStyles lets a presentation layer style the text field.
type InputStyles struct {
	Prompt      lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
}

// Input is a single-line text field backed by a bubbles textinput.
type Input struct {
	options InputOptions
	model   textinput.Model
}

// NewInput creates an unfocused input.
func NewInput(opts InputOptions) *Input {
	if opts.Type == "" {
		opts.Type = InputText
	}

	model := textinput.New()
	model.Prompt = ""
	model.Placeholder = opts.Placeholder
	model.CharLimit = opts.CharLimit
	model.PlaceholderStyle = lipgloss.NewStyle()
	if opts.Type == InputPassword {
		model.EchoMode = textinput.EchoPassword
		model.EchoCharacter = '•'
	}

	return &Input{options: opts, model: model}
}

// Name identifies the input in forms.
func (i *Input) Name() string {
	return i.options.Name
}

// Type returns the input type.
func (i *Input) Type() InputType {
	return i.options.Type
}

// Value returns the current text.
func (i *Input) Value() string {
	return i.model.Value()
}

// SetValue replaces the current text.
func (i *Input) SetValue(value string) {
	i.model.SetValue(value)
}

// SetError toggles the error state.
func (i *Input) SetError(hasError bool) {
	i.options.HasError = hasError
}

// FullWidth reports whether the field stretches to the available width.
func (i *Input) FullWidth() bool {
	return i.options.FullWidth
}

// HasError reports the error state.
func (i *Input) HasError() bool {
	return i.options.HasError
}

// Focus gives the input keyboard focus.
func (i *Input) Focus() tea.Cmd {
	return i.model.Focus()
}

// Blur removes keyboard focus.
func (i *Input) Blur() {
	i.model.Blur()
}

// Focused reports keyboard focus.
func (i *Input) Focused() bool {
	return i.model.Focused()
}

// SetMasked switches between masked and plain echo.
func (i *Input) SetMasked(masked bool) {
	if masked {
		i.model.EchoMode = textinput.EchoPassword
		i.model.EchoCharacter = '•'
		return
	}
	i.model.EchoMode = textinput.EchoNormal
}

// Masked reports whether characters are hidden.
func (i *Input) Masked() bool {
	return i.model.EchoMode != textinput.EchoNormal
}

// SetWidth limits the visible width in cells.
func (i *Input) SetWidth(width int) {
	i.model.Width = width
}

// SetStyles applies presentation styles.
func (i *Input) SetStyles(s InputStyles) {
	i.model.PromptStyle = s.Prompt
	i.model.TextStyle = s.Text
	i.model.PlaceholderStyle = s.Placeholder
	i.model.Cursor.Style = s.Cursor
}

// Update forwards key and cursor messages. It reports whether the value changed.
func (i *Input) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := i.model.Value()
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	return before != i.model.Value(), cmd
}

// Attrs implements the attribute contract.
func (i *Input) Attrs() Attrs {
	a := Attrs{
		"type":            string(i.options.Type),
		"data-error":      boolAttr(i.options.HasError),
		"data-full-width": boolAttr(i.options.FullWidth),
		"aria-invalid":    boolAttr(i.options.HasError),
	}
	if i.options.Name != "" {
		a["name"] = i.options.Name
	}
	return a
}

// View renders the field text.
func (i *Input) View() string {
	return i.model.View()
}
