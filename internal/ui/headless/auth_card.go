package headless

// AuthCard frames an authentication form.
type AuthCard struct {
	Title    string
	Subtitle string
	Body     Viewer
	Footer   Viewer
}

// HasHeader reports whether a title or subtitle is set.
func (c AuthCard) HasHeader() bool {
	return c.Title != "" || c.Subtitle != ""
}

// Header renders title and subtitle, or "" without either.
func (c AuthCard) Header() string {
	return joinNonEmpty("\n", c.Title, c.Subtitle)
}

// Attrs implements the attribute contract.
func (c AuthCard) Attrs() Attrs {
	return Attrs{
		"data-component": "auth-card",
		"data-header":    boolAttr(c.HasHeader()),
		"data-footer":    boolAttr(c.Footer != nil),
	}
}

// View stacks header, body and footer with blank lines between them.
func (c AuthCard) View() string {
	var body, footer string
	if c.Body != nil {
		body = c.Body.View()
	}
	if c.Footer != nil {
		footer = c.Footer.View()
	}
	return joinNonEmpty("\n\n", c.Header(), body, footer)
}
