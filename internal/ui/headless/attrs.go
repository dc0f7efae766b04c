package headless

import (
	"sort"
	"strconv"
	"strings"
)

// Attrs describes component state as data-/aria- style attributes.
type Attrs map[string]string

// Get returns the value for key, or "" when absent.
func (a Attrs) Get(key string) string {
	return a[key]
}

// Bool reads a boolean attribute.
func (a Attrs) Bool(key string) bool {
	v, _ := strconv.ParseBool(a[key])
	return v
}

// String renders the attributes sorted by key: data-size="md" data-variant="primary".
func (a Attrs) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.Quote(a[k]))
	}
	return strings.Join(parts, " ")
}

func boolAttr(b bool) string {
	return strconv.FormatBool(b)
}

// Size is shared by buttons and spinners.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

func sizeOrDefault(s Size) Size {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return s
	default:
		return SizeMedium
	}
}

// Viewer is anything that renders to a string, typically another component.
type Viewer interface {
	View() string
}

// Text is a static Viewer.
type Text string

// View implements Viewer.
func (t Text) View() string {
	return string(t)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
