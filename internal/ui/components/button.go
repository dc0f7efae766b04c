package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

var buttonVariants = map[headless.ButtonVariant]CompositeStrategy{
	headless.ButtonPrimary:   NewCompositeStrategy(Background(PalettePrimary), Bold()),
	headless.ButtonSecondary: NewCompositeStrategy(Background(PaletteSecondary)),
	headless.ButtonOutline:   NewCompositeStrategy(Foreground(PalettePrimary), Outline(PalettePrimary)),
	headless.ButtonGhost:     NewCompositeStrategy(Foreground(PalettePrimary)),
	headless.ButtonDanger:    NewCompositeStrategy(Background(PaletteDanger), Bold()),
}

var buttonPadding = map[headless.Size]SpacingSize{
	headless.SizeSmall:  SpacingSmall,
	headless.SizeMedium: SpacingMedium,
	headless.SizeLarge:  SpacingLarge,
}

// Button is the themed headless.Button.
type Button struct {
	Styled
	button *headless.Button
}

// NewButton creates a styled button.
func NewButton(label string, opts headless.ButtonOptions) *Button {
	return &Button{button: headless.NewButton(label, opts)}
}

// Headless exposes the behaviour component.
func (b *Button) Headless() *headless.Button {
	return b.button
}

// WithAppliers appends style functions.
func (b *Button) WithAppliers(funcs ...StyleFunc) *Button {
	b.AddAppliers(funcs...)
	return b
}

// View renders with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx).Render(b.button.Content())
}

func (b *Button) computeStyle(ctx RenderContext) lipgloss.Style {
	opts := b.button.Options()
	style := buttonVariants[opts.Variant].Apply(lipgloss.NewStyle(), ctx.Theme)
	style = PaddingX(buttonPadding[opts.Size])(style, ctx.Theme)

	if opts.FullWidth && ctx.Width > 0 {
		width := ctx.Width
		if opts.Variant == headless.ButtonOutline {
			width -= 2
		}
		style = style.Width(width).Align(lipgloss.Center)
	}
	if opts.Focused {
		style = style.Underline(true)
	}
	if b.button.Disabled() {
		style = style.Faint(true)
	}
	return b.finish(style, ctx.Theme)
}
