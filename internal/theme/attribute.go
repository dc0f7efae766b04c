package theme

import "github.com/charmbracelet/lipgloss"

// LipglossAttribute flips lipgloss' global dark-background flag, which every
// lipgloss.AdaptiveColor reads when rendering.
type LipglossAttribute struct {
	// Renderer is updated instead of the default renderer when set.
	Renderer *lipgloss.Renderer
}

// SetAppearance implements Attribute.
func (l LipglossAttribute) SetAppearance(a Appearance) {
	if l.Renderer != nil {
		l.Renderer.SetHasDarkBackground(a.IsDark())
		return
	}
	lipgloss.SetHasDarkBackground(a.IsDark())
}

// CurrentAppearance reads the appearance lipgloss currently renders with.
func CurrentAppearance() Appearance {
	if lipgloss.HasDarkBackground() {
		return AppearanceDark
	}
	return AppearanceLight
}
