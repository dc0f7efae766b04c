package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

// LoadingSpinner colours the headless spinner frame with the primary colour.
type LoadingSpinner struct {
	Styled
	spinner *headless.LoadingSpinner
}

// NewLoadingSpinner creates a styled spinner.
func NewLoadingSpinner(size headless.Size) *LoadingSpinner {
	return &LoadingSpinner{spinner: headless.NewLoadingSpinner(size)}
}

// Headless exposes the behaviour component.
func (s *LoadingSpinner) Headless() *headless.LoadingSpinner {
	return s.spinner
}

// Tick starts the animation.
func (s *LoadingSpinner) Tick() tea.Msg {
	return s.spinner.Tick()
}

// Update advances the animation.
func (s *LoadingSpinner) Update(msg tea.Msg) tea.Cmd {
	return s.spinner.Update(msg)
}

// View renders with the default context.
func (s *LoadingSpinner) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the frame followed by the label.
func (s *LoadingSpinner) ViewWithContext(ctx RenderContext) string {
	t := ctx.Theme
	s.spinner.SetStyle(Foreground(PalettePrimary)(t.Typography.Body, t))
	label := s.finish(t.Typography.Hint, t).Render(s.spinner.Label)
	return s.spinner.Frame() + " " + label
}
