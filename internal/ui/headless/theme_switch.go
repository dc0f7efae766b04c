package headless

import "github.com/alexisbeaulieu97/authkit/internal/theme"

// ThemeSwitch is the control bound to a theme resolver.
type ThemeSwitch struct {
	resolver *theme.Resolver
	size     Size
}

// NewThemeSwitch binds a switch to resolver.
func NewThemeSwitch(resolver *theme.Resolver, size Size) *ThemeSwitch {
	return &ThemeSwitch{resolver: resolver, size: sizeOrDefault(size)}
}

// Resolver returns the bound resolver.
func (s *ThemeSwitch) Resolver() *theme.Resolver {
	return s.resolver
}

// Current is the active preference.
func (s *ThemeSwitch) Current() theme.Preference {
	return s.resolver.Current()
}

// Toggle advances to the next preference.
func (s *ThemeSwitch) Toggle() theme.Preference {
	return s.resolver.Toggle()
}

// AccessibleLabel names the action the switch performs.
func (s *ThemeSwitch) AccessibleLabel() string {
	return s.resolver.AccessibleLabel()
}

// Attrs implements the attribute contract.
func (s *ThemeSwitch) Attrs() Attrs {
	return Attrs{
		"data-component":  "theme-switch",
		"data-theme":      string(s.resolver.Current()),
		"data-appearance": string(s.resolver.Effective()),
		"data-size":       string(s.size),
		"aria-label":      s.resolver.AccessibleLabel(),
	}
}

// View renders the current preference as plain text.
func (s *ThemeSwitch) View() string {
	return "[" + s.resolver.Current().DisplayName() + "]"
}
