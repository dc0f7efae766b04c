package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

const (
	cardPaddingX = 2
	cardPaddingY = 1
)

// AuthCard frames a form with a rounded border. Header text is word wrapped
// to the inner width and the body is rendered with that width as context.
type AuthCard struct {
	Styled
	Title    string
	Subtitle string
	Body     Renderable
	Footer   Renderable
}

// NewAuthCard creates a card with a title and body.
func NewAuthCard(title string, body Renderable) *AuthCard {
	return &AuthCard{Title: title, Body: body}
}

// Headless returns the behaviour component for the current fields.
func (c *AuthCard) Headless() headless.AuthCard {
	card := headless.AuthCard{Title: c.Title, Subtitle: c.Subtitle}
	if c.Body != nil {
		card.Body = c.Body
	}
	if c.Footer != nil {
		card.Footer = c.Footer
	}
	return card
}

// WithSubtitle sets the subtitle.
func (c *AuthCard) WithSubtitle(subtitle string) *AuthCard {
	c.Subtitle = subtitle
	return c
}

// WithFooter sets the footer.
func (c *AuthCard) WithFooter(footer Renderable) *AuthCard {
	c.Footer = footer
	return c
}

// WithAppliers appends style functions.
func (c *AuthCard) WithAppliers(funcs ...StyleFunc) *AuthCard {
	c.AddAppliers(funcs...)
	return c
}

// InnerWidth is the content width available inside a card of total width.
func InnerWidth(width int) int {
	if width <= 0 {
		return 0
	}
	inner := width - 2 - 2*cardPaddingX
	if inner < 1 {
		return 1
	}
	return inner
}

// View renders with the default context.
func (c *AuthCard) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card. ctx.Width is the outer width.
func (c *AuthCard) ViewWithContext(ctx RenderContext) string {
	t := ctx.Theme
	inner := InnerWidth(ctx.Width)
	innerCtx := ctx.WithWidth(inner)

	wrap := func(s string) string {
		if inner == 0 {
			return s
		}
		return wordwrap.String(s, inner)
	}

	var sections []string
	if c.Headless().HasHeader() {
		var header []string
		if c.Title != "" {
			header = append(header, t.Typography.Title.Render(wrap(c.Title)))
		}
		if c.Subtitle != "" {
			header = append(header, t.Typography.Subtitle.Render(wrap(c.Subtitle)))
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, header...))
	}
	if body := render(innerCtx, c.Body); body != "" {
		sections = append(sections, body)
	}
	if footer := render(innerCtx, c.Footer); footer != "" {
		sections = append(sections, t.Typography.Hint.Render(footer))
	}

	content := strings.Join(sections, "\n\n")

	frame := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.Palette.Neutral.Muted).
		Padding(cardPaddingY, cardPaddingX)
	if ctx.Width > 0 {
		frame = frame.Width(ctx.Width - 2)
	}
	return c.finish(frame, t).Render(content)
}
