package headless

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/authkit/internal/strength"
)

// PasswordInputOptions configures a PasswordInput.
type PasswordInputOptions struct {
	Name        string
	Placeholder string
	HasError    bool
	FullWidth   bool
	// ShowStrength evaluates the secret on every change.
	ShowStrength bool
	// HideToggle removes the show/hide control.
	HideToggle bool
	// Segments is the number of indicator bars, strength.MaxScore by default.
	Segments int
	// OnStrengthChange receives every new verdict while ShowStrength is set.
	OnStrengthChange func(strength.Verdict)
}

// PasswordInput is a masked input with a visibility toggle and an optional
// strength indicator.
type PasswordInput struct {
	input    *Input
	options  PasswordInputOptions
	revealed bool
	verdict  strength.Verdict
}

// NewPasswordInput creates a masked, unfocused password field.
func NewPasswordInput(opts PasswordInputOptions) *PasswordInput {
	if opts.Segments <= 0 {
		opts.Segments = strength.MaxScore
	}
	return &PasswordInput{
		input: NewInput(InputOptions{
			Name:        opts.Name,
			Type:        InputPassword,
			Placeholder: opts.Placeholder,
			HasError:    opts.HasError,
			FullWidth:   opts.FullWidth,
		}),
		options: opts,
		verdict: strength.Evaluate(""),
	}
}

// Input exposes the underlying field for focus and styling.
func (p *PasswordInput) Input() *Input {
	return p.input
}

// Value returns the secret.
func (p *PasswordInput) Value() string {
	return p.input.Value()
}

// SetValue replaces the secret and re-evaluates it.
func (p *PasswordInput) SetValue(value string) {
	p.input.SetValue(value)
	p.evaluate()
}

// Update forwards messages to the field and re-evaluates on change.
func (p *PasswordInput) Update(msg tea.Msg) tea.Cmd {
	changed, cmd := p.input.Update(msg)
	if changed {
		p.evaluate()
	}
	return cmd
}

func (p *PasswordInput) evaluate() {
	if !p.options.ShowStrength {
		return
	}
	p.verdict = strength.Evaluate(p.input.Value())
	if p.options.OnStrengthChange != nil {
		p.options.OnStrengthChange(p.verdict)
	}
}

// ToggleVisibility flips between masked and revealed text. It does nothing
// when the toggle is hidden.
func (p *PasswordInput) ToggleVisibility() {
	if p.options.HideToggle {
		return
	}
	p.revealed = !p.revealed
	p.input.SetMasked(!p.revealed)
}

// Revealed reports whether the secret is shown in clear text.
func (p *PasswordInput) Revealed() bool {
	return p.revealed
}

// ToggleVisible reports whether the show/hide control is rendered.
func (p *PasswordInput) ToggleVisible() bool {
	return !p.options.HideToggle
}

// ToggleLabel is the accessible name of the show/hide control.
func (p *PasswordInput) ToggleLabel() string {
	if p.revealed {
		return "Hide password"
	}
	return "Show password"
}

// Strength is the latest verdict.
func (p *PasswordInput) Strength() strength.Verdict {
	return p.verdict
}

// StrengthVisible reports whether the indicator is rendered: strength is
// enabled and there is something to score.
func (p *PasswordInput) StrengthVisible() bool {
	return p.options.ShowStrength && p.input.Value() != ""
}

// Segments reports the lit state of each indicator bar.
func (p *PasswordInput) Segments() []bool {
	return p.verdict.Segments(p.options.Segments)
}

// Attrs implements the attribute contract.
func (p *PasswordInput) Attrs() Attrs {
	a := p.input.Attrs()
	a["data-component"] = "password-input"
	a["data-revealed"] = boolAttr(p.revealed)
	if p.ToggleVisible() {
		a["toggle-aria-label"] = p.ToggleLabel()
	}
	if p.StrengthVisible() {
		a["data-strength"] = itoa(p.verdict.Score)
		a["data-color"] = string(p.verdict.Color)
	}
	return a
}

// Indicator renders the strength bars and capitalised label as plain text.
func (p *PasswordInput) Indicator() string {
	if !p.StrengthVisible() {
		return ""
	}
	bars := make([]rune, 0, p.options.Segments)
	for _, lit := range p.Segments() {
		if lit {
			bars = append(bars, '■')
		} else {
			bars = append(bars, '□')
		}
	}
	return string(bars) + " " + p.verdict.Label.Title()
}

// View renders the field, toggle and indicator.
func (p *PasswordInput) View() string {
	line := p.input.View()
	if p.ToggleVisible() {
		toggle := "[show]"
		if p.revealed {
			toggle = "[hide]"
		}
		line += " " + toggle
	}
	return joinNonEmpty("\n", line, p.Indicator())
}
