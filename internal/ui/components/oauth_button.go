package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

// ProviderIcons are the default glyphs drawn before each provider label.
var ProviderIcons = map[headless.Provider]string{
	headless.ProviderGoogle:    "🔍",
	headless.ProviderGitHub:    "🐙",
	headless.ProviderFacebook:  "📘",
	headless.ProviderApple:     "🍎",
	headless.ProviderTwitter:   "🐦",
	headless.ProviderMicrosoft: "🪟",
}

// OAuthButton is an outlined provider button.
type OAuthButton struct {
	Styled
	button *headless.OAuthButton
}

// NewOAuthButton creates a styled provider button; the provider icon is used
// unless opts sets one.
func NewOAuthButton(provider headless.Provider, opts headless.OAuthButtonOptions) *OAuthButton {
	if opts.Icon == "" {
		opts.Icon = ProviderIcons[provider]
	}
	return &OAuthButton{button: headless.NewOAuthButton(provider, opts)}
}

// Headless exposes the behaviour component.
func (b *OAuthButton) Headless() *headless.OAuthButton {
	return b.button
}

// WithAppliers appends style functions.
func (b *OAuthButton) WithAppliers(funcs ...StyleFunc) *OAuthButton {
	b.AddAppliers(funcs...)
	return b
}

// View renders with the default context.
func (b *OAuthButton) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the outlined button.
func (b *OAuthButton) ViewWithContext(ctx RenderContext) string {
	t := ctx.Theme
	outline := PaletteNeutral
	if b.button.Focused() {
		outline = PalettePrimary
	}
	style := NewCompositeStrategy(Outline(outline), PaddingX(SpacingMedium)).Apply(t.Typography.Body, t)
	if b.button.Attrs().Bool("data-full-width") && ctx.Width > 2 {
		style = style.Width(ctx.Width - 2).Align(lipgloss.Center)
	}
	if b.button.Disabled() {
		style = style.Faint(true)
	}

	content := b.button.Label()
	if icon := b.button.Icon(); icon != "" {
		content = icon + " " + content
	}
	return b.finish(style, t).Render(content)
}
