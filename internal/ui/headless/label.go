package headless

// RequiredMarker follows the text of required labels.
const RequiredMarker = "*"

// Label names a form control.
type Label struct {
	Text     string
	For      string
	Required bool
}

// Marker returns RequiredMarker for required labels.
func (l Label) Marker() string {
	if l.Required {
		return RequiredMarker
	}
	return ""
}

// Attrs implements the attribute contract.
func (l Label) Attrs() Attrs {
	a := Attrs{"data-required": boolAttr(l.Required)}
	if l.For != "" {
		a["for"] = l.For
	}
	return a
}

// View renders the label as plain text.
func (l Label) View() string {
	return joinNonEmpty(" ", l.Text, l.Marker())
}
