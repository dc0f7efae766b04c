package components

import (
	"github.com/muesli/reflow/wordwrap"

	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

var messageSlots = map[headless.MessageVariant]PaletteSlot{
	headless.MessageError:   PaletteDanger,
	headless.MessageWarning: PaletteWarning,
	headless.MessageInfo:    PaletteInfo,
}

var messageIcons = map[headless.MessageVariant]string{
	headless.MessageError:   "✖",
	headless.MessageWarning: "⚠",
	headless.MessageInfo:    "ℹ",
}

// ErrorMessage is the themed headless.ErrorMessage.
type ErrorMessage struct {
	Styled
	message headless.ErrorMessage
}

// NewErrorMessage creates an error-variant message.
func NewErrorMessage(text string) *ErrorMessage {
	return WrapErrorMessage(headless.NewErrorMessage(text))
}

// WrapErrorMessage styles an existing headless message.
func WrapErrorMessage(m headless.ErrorMessage) *ErrorMessage {
	return &ErrorMessage{message: m}
}

// Headless exposes the behaviour component.
func (m *ErrorMessage) Headless() headless.ErrorMessage {
	return m.message
}

// View renders with the default context.
func (m *ErrorMessage) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon and message, wrapped to the context width.
// An empty message renders nothing.
func (m *ErrorMessage) ViewWithContext(ctx RenderContext) string {
	if !m.message.Visible() {
		return ""
	}
	kind := m.message.Severity()

	text := messageIcons[kind] + " " + m.message.Message
	if ctx.Width > 0 {
		text = wordwrap.String(text, ctx.Width)
	}
	style := Foreground(messageSlots[kind])(ctx.Theme.Typography.Body, ctx.Theme)
	return m.finish(style, ctx.Theme).Render(text)
}
