package components

import (
	"github.com/alexisbeaulieu97/authkit/internal/theme"
	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

// ThemeIcons are drawn for each preference.
var ThemeIcons = map[theme.Preference]string{
	theme.Light:  "☀",
	theme.Dark:   "☾",
	theme.System: "◐",
}

// ThemeSwitch shows the current preference as an icon, optionally with its name.
type ThemeSwitch struct {
	Styled
	toggle    *headless.ThemeSwitch
	ShowLabel bool
}

// NewThemeSwitch binds a styled switch to resolver.
func NewThemeSwitch(resolver *theme.Resolver, size headless.Size) *ThemeSwitch {
	return &ThemeSwitch{toggle: headless.NewThemeSwitch(resolver, size)}
}

// Headless exposes the behaviour component.
func (s *ThemeSwitch) Headless() *headless.ThemeSwitch {
	return s.toggle
}

// WithLabel shows the preference name next to the icon.
func (s *ThemeSwitch) WithLabel(show bool) *ThemeSwitch {
	s.ShowLabel = show
	return s
}

// Toggle advances the bound resolver.
func (s *ThemeSwitch) Toggle() theme.Preference {
	return s.toggle.Toggle()
}

// View renders with the default context.
func (s *ThemeSwitch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the switch.
func (s *ThemeSwitch) ViewWithContext(ctx RenderContext) string {
	t := ctx.Theme
	current := s.toggle.Current()
	content := ThemeIcons[current]
	if s.ShowLabel {
		content += " " + current.DisplayName()
	}
	style := NewCompositeStrategy(Foreground(PalettePrimary), PaddingX(SpacingSmall)).Apply(t.Typography.Body, t)
	return s.finish(style, t).Render(content)
}
