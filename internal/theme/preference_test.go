package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePreference(t *testing.T) {
	for _, valid := range []string{"light", "dark", "system"} {
		p, ok := ParsePreference(valid)
		require.True(t, ok, valid)
		require.Equal(t, Preference(valid), p)
	}

	for _, invalid := range []string{"", "purple", "Dark", " light"} {
		_, ok := ParsePreference(invalid)
		require.False(t, ok, invalid)
	}
}

func TestResolve(t *testing.T) {
	require.Equal(t, AppearanceDark, Resolve(System, true))
	require.Equal(t, AppearanceLight, Resolve(System, false))
	require.Equal(t, AppearanceDark, Resolve(Dark, true))
	require.Equal(t, AppearanceDark, Resolve(Dark, false))
	require.Equal(t, AppearanceLight, Resolve(Light, true))
	require.Equal(t, AppearanceLight, Resolve(Light, false))
}

func TestAdvanceThreeCycle(t *testing.T) {
	require.Equal(t, Dark, Advance(Light, true))
	require.Equal(t, System, Advance(Dark, true))
	require.Equal(t, Light, Advance(System, true))
}

func TestAdvanceTwoCycle(t *testing.T) {
	require.Equal(t, Dark, Advance(Light, false))
	require.Equal(t, Light, Advance(Dark, false))
	require.Equal(t, Light, Advance(System, false))
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "System", System.DisplayName())
	require.Equal(t, "Light", Light.DisplayName())
}
