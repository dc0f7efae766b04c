package appearance

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// TerminalQuery asks the terminal emulator for its background colour.
type TerminalQuery struct {
	file   *os.File
	output *termenv.Output
}

// NewTerminalQuery queries through f, normally os.Stdout.
func NewTerminalQuery(f *os.File) *TerminalQuery {
	return &TerminalQuery{file: f, output: termenv.NewOutput(f)}
}

// Available reports whether f is attached to a terminal.
func (q *TerminalQuery) Available() bool {
	return q.file != nil && term.IsTerminal(int(q.file.Fd()))
}

// PrefersDark reports a dark background. Without a terminal there is
// nothing to ask and the answer is false.
func (q *TerminalQuery) PrefersDark() bool {
	if !q.Available() {
		return false
	}
	return q.output.HasDarkBackground()
}
