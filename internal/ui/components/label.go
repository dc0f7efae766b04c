package components

import (
	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

// Label is the themed headless.Label; the required marker uses the danger colour.
type Label struct {
	Styled
	label headless.Label
}

// NewLabel creates a label.
func NewLabel(text string, required bool) *Label {
	return WrapLabel(headless.Label{Text: text, Required: required})
}

// WrapLabel styles an existing headless label.
func WrapLabel(l headless.Label) *Label {
	return &Label{label: l}
}

// Headless exposes the behaviour component.
func (l *Label) Headless() headless.Label {
	return l.label
}

// View renders with the default context.
func (l *Label) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label.
func (l *Label) ViewWithContext(ctx RenderContext) string {
	t := ctx.Theme
	text := l.finish(t.Typography.Label, t).Render(l.label.Text)
	if !l.label.Required {
		return text
	}
	marker := Foreground(PaletteDanger)(t.Typography.Label, t).Render(t.Glyphs.RequiredMark)
	return text + " " + marker
}
