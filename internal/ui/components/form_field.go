package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

// FormField stacks a styled label, a control and an error or helper line.
type FormField struct {
	Styled
	field   headless.FormField
	control Renderable
}

// NewFormField creates a field around control. Contextual controls receive
// the field's render context.
func NewFormField(name, label string, control Renderable) *FormField {
	return &FormField{
		field:   headless.FormField{Name: name, Label: label, Control: control},
		control: control,
	}
}

// Headless exposes the behaviour component.
func (f *FormField) Headless() headless.FormField {
	return f.field
}

// WithRequired marks the label as required.
func (f *FormField) WithRequired(required bool) *FormField {
	f.field.Required = required
	return f
}

// WithHelper sets the helper text.
func (f *FormField) WithHelper(helper string) *FormField {
	f.field.Helper = helper
	return f
}

// SetError sets or clears ("") the error text.
func (f *FormField) SetError(message string) {
	f.field.Error = message
}

// Error returns the error text.
func (f *FormField) Error() string {
	return f.field.Error
}

// View renders with the default context.
func (f *FormField) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the field.
func (f *FormField) ViewWithContext(ctx RenderContext) string {
	t := ctx.Theme
	var rows []string
	if f.field.Label != "" {
		rows = append(rows, WrapLabel(f.field.LabelComponent()).ViewWithContext(ctx))
	}
	if control := render(ctx, f.control); control != "" {
		rows = append(rows, control)
	}
	if msg := WrapErrorMessage(f.field.Message()).ViewWithContext(ctx); msg != "" {
		rows = append(rows, msg)
	}
	if f.field.HelperVisible() {
		rows = append(rows, t.Typography.Hint.Render(f.field.Helper))
	}
	return f.finish(lipgloss.NewStyle(), t).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
