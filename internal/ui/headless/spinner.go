package headless

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultSpinnerLabel is announced by screen readers and shown beside the frame.
const DefaultSpinnerLabel = "Loading..."

// LoadingSpinner animates while work is pending.
type LoadingSpinner struct {
	Size  Size
	Label string
	model spinner.Model
}

// NewLoadingSpinner creates a spinner with the default label.
func NewLoadingSpinner(size Size) *LoadingSpinner {
	return &LoadingSpinner{
		Size:  sizeOrDefault(size),
		Label: DefaultSpinnerLabel,
		model: spinner.New(spinner.WithSpinner(spinnerFor(sizeOrDefault(size)))),
	}
}

func spinnerFor(size Size) spinner.Spinner {
	switch size {
	case SizeSmall:
		return spinner.Line
	case SizeLarge:
		return spinner.Points
	default:
		return spinner.Dot
	}
}

// Tick starts the animation.
func (s *LoadingSpinner) Tick() tea.Msg {
	return s.model.Tick()
}

// Update advances the animation on spinner ticks.
func (s *LoadingSpinner) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// SetStyle colours the animation frame.
func (s *LoadingSpinner) SetStyle(style lipgloss.Style) {
	s.model.Style = style
}

// Frame is the current animation frame without styling.
func (s *LoadingSpinner) Frame() string {
	frames := s.model.Spinner.Frames
	if len(frames) == 0 {
		return ""
	}
	return s.model.View()
}

// Attrs implements the attribute contract.
func (s *LoadingSpinner) Attrs() Attrs {
	return Attrs{"role": "status", "aria-label": s.Label, "data-size": string(s.Size)}
}

// View renders the frame and label.
func (s *LoadingSpinner) View() string {
	return joinNonEmpty(" ", s.Frame(), s.Label)
}
