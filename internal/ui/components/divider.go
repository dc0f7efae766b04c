package components

import (
	"strings"

	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

const defaultDividerWidth = 40

// AuthDivider draws a muted rule with the divider text centred in it.
type AuthDivider struct {
	Styled
	divider headless.AuthDivider
}

// NewAuthDivider creates a divider with the default text.
func NewAuthDivider() *AuthDivider {
	return &AuthDivider{divider: headless.NewAuthDivider()}
}

// NewAuthDividerText creates a divider with custom text; "" draws a plain rule.
func NewAuthDividerText(text string) *AuthDivider {
	return &AuthDivider{divider: headless.AuthDivider{Text: text}}
}

// Headless exposes the behaviour component.
func (d *AuthDivider) Headless() headless.AuthDivider {
	return d.divider
}

// View renders with the default context.
func (d *AuthDivider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext spans the context width, or 40 cells when unconstrained.
func (d *AuthDivider) ViewWithContext(ctx RenderContext) string {
	t := ctx.Theme
	width := ctx.Width
	if width <= 0 {
		width = defaultDividerWidth
	}

	rule := d.finish(Foreground(PaletteNeutral)(t.Typography.Body, t), t)
	left, right := d.divider.Rules(width)
	if d.divider.Text == "" {
		return rule.Render(strings.Repeat(t.Glyphs.Rule, left+right))
	}
	return rule.Render(strings.Repeat(t.Glyphs.Rule, left)) +
		" " + t.Typography.Hint.Render(d.divider.Text) + " " +
		rule.Render(strings.Repeat(t.Glyphs.Rule, right))
}
