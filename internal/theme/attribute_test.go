package theme

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestLipglossAttributeUpdatesRenderer(t *testing.T) {
	renderer := lipgloss.NewRenderer(io.Discard)
	attr := LipglossAttribute{Renderer: renderer}

	attr.SetAppearance(AppearanceDark)
	require.True(t, renderer.HasDarkBackground())

	attr.SetAppearance(AppearanceLight)
	require.False(t, renderer.HasDarkBackground())
}

func TestLipglossAttributeDefaultRenderer(t *testing.T) {
	original := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(original) })

	LipglossAttribute{}.SetAppearance(AppearanceDark)
	require.Equal(t, AppearanceDark, CurrentAppearance())

	LipglossAttribute{}.SetAppearance(AppearanceLight)
	require.Equal(t, AppearanceLight, CurrentAppearance())
}
