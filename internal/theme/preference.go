// Package theme resolves a light/dark/system preference into the appearance
// actually rendered, persists the preference and follows the OS signal while
// the preference is "system".
package theme

import "strings"

// StoreKey is the persistence key holding the preference.
const StoreKey = "theme"

// Preference is the user's stored choice.
type Preference string

const (
	Light  Preference = "light"
	Dark   Preference = "dark"
	System Preference = "system"
)

// Appearance is the resolved value applied to the UI.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// ParsePreference accepts exactly the three preference literals.
func ParsePreference(value string) (Preference, bool) {
	switch p := Preference(value); p {
	case Light, Dark, System:
		return p, true
	default:
		return "", false
	}
}

// Valid reports whether p is one of the three preference literals.
func (p Preference) Valid() bool {
	_, ok := ParsePreference(string(p))
	return ok
}

// DisplayName is the capitalised preference, e.g. "System".
func (p Preference) DisplayName() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// IsDark reports whether a is the dark appearance.
func (a Appearance) IsDark() bool {
	return a == AppearanceDark
}

// Resolve maps a preference to an appearance. Only System consults the OS
// signal; anything unrecognised is treated as System.
func Resolve(p Preference, osPrefersDark bool) Appearance {
	switch p {
	case Light:
		return AppearanceLight
	case Dark:
		return AppearanceDark
	default:
		if osPrefersDark {
			return AppearanceDark
		}
		return AppearanceLight
	}
}

// Advance returns the preference that follows current on a toggle. With
// includeSystem the cycle is light, dark, system; otherwise it is light, dark
// and System starts over at Light.
func Advance(current Preference, includeSystem bool) Preference {
	switch current {
	case Light:
		return Dark
	case Dark:
		if includeSystem {
			return System
		}
		return Light
	default:
		return Light
	}
}
