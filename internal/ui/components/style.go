package components

import "github.com/charmbracelet/lipgloss"

// StyleFunc transforms a style using theme tokens.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy applies styling to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, t Theme) lipgloss.Style
}

// CompositeStrategy applies StyleFuncs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// NewCompositeStrategy builds a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) CompositeStrategy {
	return CompositeStrategy{funcs: funcs}
}

// Apply implements StyleStrategy.
func (c CompositeStrategy) Apply(base lipgloss.Style, t Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, t)
	}
	return base
}

// With returns a copy with more functions appended.
func (c CompositeStrategy) With(funcs ...StyleFunc) CompositeStrategy {
	merged := make([]StyleFunc, 0, len(c.funcs)+len(funcs))
	merged = append(merged, c.funcs...)
	merged = append(merged, funcs...)
	return CompositeStrategy{funcs: merged}
}

// Styled is embedded by every styled component. User appliers run after the
// component's own styling so they always win.
type Styled struct {
	appliers CompositeStrategy
}

// AddAppliers appends user style functions.
func (s *Styled) AddAppliers(funcs ...StyleFunc) {
	s.appliers = s.appliers.With(funcs...)
}

func (s *Styled) finish(style lipgloss.Style, t Theme) lipgloss.Style {
	return s.appliers.Apply(style, t)
}

// RenderContext carries the theme and available width into rendering.
type RenderContext struct {
	Theme Theme
	// Width is the number of cells available; 0 means unconstrained.
	Width int
}

// DefaultContext renders with DefaultTheme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy using t.
func (r RenderContext) WithTheme(t Theme) RenderContext {
	r.Theme = t
	return r
}

// WithWidth returns a copy constrained to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// Renderable renders with the default context.
type Renderable interface {
	View() string
}

// ContextualRenderable renders with an explicit context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

func render(ctx RenderContext, r Renderable) string {
	if r == nil {
		return ""
	}
	if cr, ok := r.(ContextualRenderable); ok {
		return cr.ViewWithContext(ctx)
	}
	return r.View()
}

// Background fills with the slot's base colour and uses its on-base text colour.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		cs := slot(t.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground colours text with the slot's base colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Foreground(slot(t.Palette).Base)
	}
}

// Outline draws the theme border in the slot's base colour.
func Outline(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Border(t.Border).BorderForeground(slot(t.Palette).Base)
	}
}

// PaddingX pads left and right.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		v := spacingValue(size)
		return base.PaddingLeft(v).PaddingRight(v)
	}
}

// PaddingY pads top and bottom.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		v := spacingValue(size)
		return base.PaddingTop(v).PaddingBottom(v)
	}
}

// MarginY adds blank lines above and below.
func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		v := spacingValue(size)
		return base.MarginTop(v).MarginBottom(v)
	}
}

// Bold sets bold text.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}
