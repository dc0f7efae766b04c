package headless

// ButtonVariant selects the visual intent of a button.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
	ButtonDanger    ButtonVariant = "danger"
)

// LoadingText replaces a button label while it is loading.
const LoadingText = "..."

// ButtonOptions configures a Button.
type ButtonOptions struct {
	Variant   ButtonVariant
	Size      Size
	Loading   bool
	Disabled  bool
	FullWidth bool
	Focused   bool
	StartIcon string
	EndIcon   string
}

// Button is a pressable control.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a button; zero options mean a medium primary button.
func NewButton(label string, opts ButtonOptions) *Button {
	if opts.Variant == "" {
		opts.Variant = ButtonPrimary
	}
	opts.Size = sizeOrDefault(opts.Size)
	return &Button{label: label, options: opts}
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// Options returns the current options.
func (b *Button) Options() ButtonOptions {
	return b.options
}

// SetLoading toggles the loading state.
func (b *Button) SetLoading(loading bool) *Button {
	b.options.Loading = loading
	return b
}

// SetFocused toggles keyboard focus.
func (b *Button) SetFocused(focused bool) *Button {
	b.options.Focused = focused
	return b
}

// Disabled is true while explicitly disabled or loading.
func (b *Button) Disabled() bool {
	return b.options.Disabled || b.options.Loading
}

// Press reports whether a press is accepted.
func (b *Button) Press() bool {
	return !b.Disabled()
}

// Content is the text inside the button.
func (b *Button) Content() string {
	if b.options.Loading {
		return LoadingText
	}
	return joinNonEmpty(" ", b.options.StartIcon, b.label, b.options.EndIcon)
}

// Attrs implements the attribute contract.
func (b *Button) Attrs() Attrs {
	return Attrs{
		"data-variant":    string(b.options.Variant),
		"data-size":       string(b.options.Size),
		"data-loading":    boolAttr(b.options.Loading),
		"data-full-width": boolAttr(b.options.FullWidth),
		"data-focused":    boolAttr(b.options.Focused),
		"aria-busy":       boolAttr(b.options.Loading),
		"disabled":        boolAttr(b.Disabled()),
	}
}

// View renders the button as plain text.
func (b *Button) View() string {
	return "[ " + b.Content() + " ]"
}
