package headless

// MessageVariant selects the severity of an ErrorMessage.
type MessageVariant string

const (
	MessageError   MessageVariant = "error"
	MessageWarning MessageVariant = "warning"
	MessageInfo    MessageVariant = "info"
)

// ErrorMessage shows a message to the user. An empty message renders nothing.
type ErrorMessage struct {
	Message string
	Variant MessageVariant
}

// NewErrorMessage creates an error-variant message.
func NewErrorMessage(message string) ErrorMessage {
	return ErrorMessage{Message: message, Variant: MessageError}
}

// Visible reports whether there is anything to render.
func (m ErrorMessage) Visible() bool {
	return m.Message != ""
}

// Severity is the variant, defaulting to MessageError.
func (m ErrorMessage) Severity() MessageVariant {
	if m.Variant == "" {
		return MessageError
	}
	return m.Variant
}

// Attrs implements the attribute contract.
func (m ErrorMessage) Attrs() Attrs {
	return Attrs{"role": "alert", "data-variant": string(m.Severity())}
}

// View renders the message, or "" when empty.
func (m ErrorMessage) View() string {
	return m.Message
}
