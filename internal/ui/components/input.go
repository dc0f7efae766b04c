package components

import (
	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

// Input frames a headless.Input.
type Input struct {
	Styled
	input *headless.Input
}

// NewInput creates a styled input.
func NewInput(opts headless.InputOptions) *Input {
	return WrapInput(headless.NewInput(opts))
}

// WrapInput styles an existing headless input.
func WrapInput(in *headless.Input) *Input {
	return &Input{input: in}
}

// Headless exposes the behaviour component.
func (i *Input) Headless() *headless.Input {
	return i.input
}

// WithAppliers appends style functions.
func (i *Input) WithAppliers(funcs ...StyleFunc) *Input {
	i.AddAppliers(funcs...)
	return i
}

func (i *Input) state() InputState {
	switch {
	case i.input.HasError():
		return InputStateError
	case i.input.Focused():
		return InputStateFocus
	default:
		return InputStateDefault
	}
}

// View renders with the default context.
func (i *Input) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the field inside its frame.
func (i *Input) ViewWithContext(ctx RenderContext) string {
	t := ctx.Theme
	i.input.SetStyles(headless.InputStyles{
		Text:        t.Typography.Body,
		Placeholder: t.Typography.Hint,
		Cursor:      Foreground(PalettePrimary)(t.Typography.Body, t),
	})

	frame := InputStyle(t, i.state())
	if i.input.FullWidth() && ctx.Width > 2 {
		// The frame border takes one cell on each side.
		frame = frame.Width(ctx.Width - 2)
	}
	return i.finish(frame, t).Render(i.input.View())
}
