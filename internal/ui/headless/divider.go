package headless

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// DefaultDividerText separates password sign-in from OAuth buttons.
const DefaultDividerText = "Or continue with"

// AuthDivider is a horizontal rule with centred text.
type AuthDivider struct {
	Text string
}

// NewAuthDivider creates a divider with the default text.
func NewAuthDivider() AuthDivider {
	return AuthDivider{Text: DefaultDividerText}
}

// Attrs implements the attribute contract.
func (d AuthDivider) Attrs() Attrs {
	return Attrs{"data-component": "auth-divider"}
}

// Rules returns the left and right rule lengths for a total width.
func (d AuthDivider) Rules(width int) (int, int) {
	textWidth := ansi.StringWidth(d.Text)
	if d.Text != "" {
		textWidth += 2
	}
	remaining := width - textWidth
	if remaining < 2 {
		return 1, 1
	}
	return remaining / 2, remaining - remaining/2
}

// Render draws the divider using rule as the line glyph.
func (d AuthDivider) Render(width int, rule string) string {
	left, right := d.Rules(width)
	if d.Text == "" {
		return strings.Repeat(rule, left+right)
	}
	return strings.Repeat(rule, left) + " " + d.Text + " " + strings.Repeat(rule, right)
}

// View renders a 40 column divider.
func (d AuthDivider) View() string {
	return d.Render(40, "-")
}
