// Package components is the styled variant of the auth UI kit.
//
// Each component wraps its headless counterpart from internal/ui/headless and
// adds presentation only: colours, borders and spacing taken from a Theme.
// State and behaviour stay in the headless component, which is reachable
// through the Headless accessor of every styled component.
//
// Themes are immutable token sets passed explicitly through a RenderContext:
//
//	ctx := components.DefaultContext().WithWidth(48)
//	out := card.ViewWithContext(ctx)
//
// DefaultTheme uses adaptive colours, so output follows the renderer's dark
// background flag, which theme.LipglossAttribute drives. ThemeFor pins a theme
// to one appearance for previews and tests.
//
// Style functions (Background, Foreground, Outline, PaddingX, ...) compose
// into strategies and can be appended to any component with WithAppliers.
package components
