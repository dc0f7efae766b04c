package theme

// Store persists string values by key. Implementations live in internal/prefs.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Signal is an OS-level dark-mode source. Subscribe returns a function that
// releases the subscription; calling it more than once must be harmless.
type Signal interface {
	PrefersDark() bool
	Subscribe(fn func(prefersDark bool)) (unsubscribe func())
}

// Attribute receives the resolved appearance. It plays the role of the
// root-level attribute read by the styling layer.
type Attribute interface {
	SetAppearance(Appearance)
}

// AttributeFunc adapts a function to Attribute.
type AttributeFunc func(Appearance)

// SetAppearance calls f(a).
func (f AttributeFunc) SetAppearance(a Appearance) {
	f(a)
}
