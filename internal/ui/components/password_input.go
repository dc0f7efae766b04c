package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

// PasswordInput renders a framed password field, its visibility hint and a
// coloured strength meter.
type PasswordInput struct {
	Styled
	password *headless.PasswordInput
	field    *Input
}

// NewPasswordInput creates a styled password input.
func NewPasswordInput(opts headless.PasswordInputOptions) *PasswordInput {
	p := headless.NewPasswordInput(opts)
	return &PasswordInput{password: p, field: WrapInput(p.Input())}
}

// Headless exposes the behaviour component.
func (p *PasswordInput) Headless() *headless.PasswordInput {
	return p.password
}

// Update forwards messages to the headless component.
func (p *PasswordInput) Update(msg tea.Msg) tea.Cmd {
	return p.password.Update(msg)
}

// View renders with the default context.
func (p *PasswordInput) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the field, then the meter when strength is shown.
func (p *PasswordInput) ViewWithContext(ctx RenderContext) string {
	t := ctx.Theme
	field := p.field.ViewWithContext(ctx)
	if p.password.ToggleVisible() {
		hint := "show"
		if p.password.Revealed() {
			hint = "hide"
		}
		field = lipgloss.JoinHorizontal(lipgloss.Center, field, " ", t.Typography.Hint.Render(hint))
	}

	meter := p.Meter(ctx)
	if meter == "" {
		return p.finish(lipgloss.NewStyle(), t).Render(field)
	}
	return p.finish(lipgloss.NewStyle(), t).Render(lipgloss.JoinVertical(lipgloss.Left, field, meter))
}

// Meter renders the lit segments in the verdict colour followed by the label,
// or "" while the indicator is hidden.
func (p *PasswordInput) Meter(ctx RenderContext) string {
	if !p.password.StrengthVisible() {
		return ""
	}
	t := ctx.Theme
	verdict := p.password.Strength()
	lit := Foreground(StrengthSlot(verdict.Color))(t.Typography.Body, t)
	off := Foreground(PaletteNeutral)(t.Typography.Body, t).Faint(true)

	var b strings.Builder
	for i, on := range p.password.Segments() {
		if i > 0 {
			b.WriteString(" ")
		}
		if on {
			b.WriteString(lit.Render(t.Glyphs.SegmentOn))
		} else {
			b.WriteString(off.Render(t.Glyphs.SegmentOff))
		}
	}
	b.WriteString(" ")
	b.WriteString(lit.Bold(true).Render(verdict.Label.Title()))
	return b.String()
}
