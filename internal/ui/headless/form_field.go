package headless

// FormField groups a label, a control and either an error or a helper text.
type FormField struct {
	Name     string
	Label    string
	Required bool
	Error    string
	Helper   string
	Control  Viewer
}

// ErrorID is the id the control's description points at while an error is shown.
func (f FormField) ErrorID() string {
	return f.Name + "-error"
}

// HelperID is the id of the helper text.
func (f FormField) HelperID() string {
	return f.Name + "-helper"
}

// HelperVisible is true when a helper is set and no error hides it.
func (f FormField) HelperVisible() bool {
	return f.Helper != "" && f.Error == ""
}

// DescribedBy returns the id of whichever text currently describes the control.
func (f FormField) DescribedBy() string {
	switch {
	case f.Error != "":
		return f.ErrorID()
	case f.Helper != "":
		return f.HelperID()
	default:
		return ""
	}
}

// LabelComponent returns the label bound to the control.
func (f FormField) LabelComponent() Label {
	return Label{Text: f.Label, For: f.Name, Required: f.Required}
}

// Message returns the error message for the field.
func (f FormField) Message() ErrorMessage {
	return NewErrorMessage(f.Error)
}

// Attrs implements the attribute contract.
func (f FormField) Attrs() Attrs {
	a := Attrs{
		"data-component": "form-field",
		"aria-invalid":   boolAttr(f.Error != ""),
	}
	if id := f.DescribedBy(); id != "" {
		a["aria-describedby"] = id
	}
	return a
}

// View renders the field as label, control, then error or helper.
func (f FormField) View() string {
	var control, helper string
	if f.Control != nil {
		control = f.Control.View()
	}
	if f.HelperVisible() {
		helper = f.Helper
	}
	label := ""
	if f.Label != "" {
		label = f.LabelComponent().View()
	}
	return joinNonEmpty("\n", label, control, f.Message().View(), helper)
}
