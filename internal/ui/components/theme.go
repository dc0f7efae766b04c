package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/authkit/internal/strength"
	"github.com/alexisbeaulieu97/authkit/internal/theme"
)

// ColourSet is a semantic colour group. Every colour is adaptive: lipgloss
// picks Light or Dark depending on the renderer's background, which the theme
// resolver keeps in sync with the user's preference.
//
//   - Base: fill or brand colour
//   - OnBase: text drawn on top of Base
//   - Muted: subdued variant for borders and hints
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

func (c ColourSet) pin(dark bool) ColourSet {
	return ColourSet{Base: pinColor(c.Base, dark), OnBase: pinColor(c.OnBase, dark), Muted: pinColor(c.Muted, dark)}
}

func pinColor(c lipgloss.AdaptiveColor, dark bool) lipgloss.AdaptiveColor {
	if dark {
		return lipgloss.AdaptiveColor{Light: c.Dark, Dark: c.Dark}
	}
	return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Light}
}

// Palette holds the semantic slots used by the auth components. Danger,
// Caution, Warning, Info and Success double as the strength scale.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Neutral   ColourSet
	Danger    ColourSet
	Caution   ColourSet
	Warning   ColourSet
	Info      ColourSet
	Success   ColourSet
}

func (p Palette) pin(dark bool) Palette {
	return Palette{
		Primary:   p.Primary.pin(dark),
		Secondary: p.Secondary.pin(dark),
		Surface:   p.Surface.pin(dark),
		Neutral:   p.Neutral.pin(dark),
		Danger:    p.Danger.pin(dark),
		Caution:   p.Caution.pin(dark),
		Warning:   p.Warning.pin(dark),
		Info:      p.Info.pin(dark),
		Success:   p.Success.pin(dark),
	}
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteCaution   PaletteSlot = func(p Palette) ColourSet { return p.Caution }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
)

// StrengthSlot maps a strength colour hint onto the palette.
func StrengthSlot(c strength.Color) PaletteSlot {
	switch c {
	case strength.ColorOrange:
		return PaletteCaution
	case strength.ColorYellow:
		return PaletteWarning
	case strength.ColorBlue:
		return PaletteInfo
	case strength.ColorGreen:
		return PaletteSuccess
	default:
		return PaletteDanger
	}
}

// SpacingSize is a spacing token.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingSmall
	SpacingMedium
	SpacingLarge
)

var spacingScale = [...]int{SpacingNone: 0, SpacingSmall: 1, SpacingMedium: 2, SpacingLarge: 3}

func spacingValue(size SpacingSize) int {
	if size < 0 || int(size) >= len(spacingScale) {
		return spacingScale[SpacingMedium]
	}
	return spacingScale[size]
}

// Typography contains the text presets used across components.
type Typography struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Label    lipgloss.Style
	Hint     lipgloss.Style
	Emphasis lipgloss.Style
}

// InputState selects an input frame style.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateError
)

// InputStyles are the frames drawn around text fields.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Error   lipgloss.Style
}

// Theme is an immutable set of design tokens. Build new themes with the
// constructors instead of mutating a shared one.
type Theme struct {
	Palette    Palette
	Typography Typography
	Input      InputStyles
	Border     lipgloss.Border
	Glyphs     Glyphs
}

// Glyphs are the characters the components draw with.
type Glyphs struct {
	Rule         string
	SegmentOn    string
	SegmentOff   string
	RequiredMark string
}

func defaultPalette() Palette {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}
	return Palette{
		Primary:   ColourSet{Base: ac("#2563eb", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#93c5fd", "#1d4ed8")},
		Secondary: ColourSet{Base: ac("#475569", "#cbd5e1"), OnBase: ac("#f8fafc", "#0f172a"), Muted: ac("#cbd5e1", "#334155")},
		Surface:   ColourSet{Base: ac("#ffffff", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#e2e8f0", "#1f2937")},
		Neutral:   ColourSet{Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#94a3b8", "#475569")},
		Danger:    ColourSet{Base: ac("#dc2626", "#f87171"), OnBase: ac("#fef2f2", "#450a0a"), Muted: ac("#fecaca", "#7f1d1d")},
		Caution:   ColourSet{Base: ac("#ea580c", "#fb923c"), OnBase: ac("#fff7ed", "#431407"), Muted: ac("#fed7aa", "#7c2d12")},
		Warning:   ColourSet{Base: ac("#ca8a04", "#facc15"), OnBase: ac("#422006", "#422006"), Muted: ac("#fde68a", "#713f12")},
		Info:      ColourSet{Base: ac("#2563eb", "#60a5fa"), OnBase: ac("#eff6ff", "#172554"), Muted: ac("#bfdbfe", "#1e3a8a")},
		Success:   ColourSet{Base: ac("#16a34a", "#4ade80"), OnBase: ac("#f0fdf4", "#052e16"), Muted: ac("#bbf7d0", "#14532d")},
	}
}

func buildTheme(p Palette) Theme {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	border := lipgloss.RoundedBorder()

	frame := lipgloss.NewStyle().
		Border(border).
		Padding(0, 1).
		Foreground(p.Surface.OnBase)

	return Theme{
		Palette: p,
		Typography: Typography{
			Title:    base.Bold(true),
			Subtitle: base.Foreground(p.Neutral.Base),
			Body:     base,
			Label:    base.Bold(true),
			Hint:     base.Foreground(p.Neutral.Base).Faint(true),
			Emphasis: base.Foreground(p.Primary.Base).Bold(true),
		},
		Input: InputStyles{
			Default: frame.BorderForeground(p.Neutral.Muted),
			Focus:   frame.BorderForeground(p.Primary.Base),
			Error:   frame.BorderForeground(p.Danger.Base),
		},
		Border: border,
		Glyphs: Glyphs{
			Rule:         "─",
			SegmentOn:    "━━",
			SegmentOff:   "──",
			RequiredMark: "*",
		},
	}
}

// DefaultTheme follows whatever background lipgloss currently assumes.
func DefaultTheme() Theme {
	return buildTheme(defaultPalette())
}

// ThemeFor returns the theme pinned to one appearance, independent of the
// renderer's background detection.
func ThemeFor(a theme.Appearance) Theme {
	return buildTheme(defaultPalette().pin(a.IsDark()))
}

// LightTheme is ThemeFor(light).
func LightTheme() Theme {
	return ThemeFor(theme.AppearanceLight)
}

// DarkTheme is ThemeFor(dark).
func DarkTheme() Theme {
	return ThemeFor(theme.AppearanceDark)
}

// InputStyle returns the frame for state.
func InputStyle(t Theme, state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return t.Input.Focus
	case InputStateError:
		return t.Input.Error
	default:
		return t.Input.Default
	}
}
