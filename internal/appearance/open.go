package appearance

import (
	"fmt"
	"os"
	"time"

	"github.com/alexisbeaulieu97/authkit/internal/logger"
	"github.com/alexisbeaulieu97/authkit/internal/theme"
	apperrors "github.com/alexisbeaulieu97/authkit/pkg/errors"
)

// Source names accepted by Open.
const (
	SourceTerminal = "terminal"
	SourceFile     = "file"
	SourceNone     = "none"
)

// Sources lists every accepted source name.
var Sources = []string{SourceTerminal, SourceFile, SourceNone}

// Options selects and configures a signal source.
type Options struct {
	Source       string
	File         string
	PollInterval time.Duration
	// Output is the terminal queried by SourceTerminal. Defaults to os.Stdout.
	Output *os.File
	Logger *logger.Logger
}

// Open builds the signal for opts.Source. SourceNone yields a nil signal,
// which the resolver treats as the OS signal being unavailable.
func Open(opts Options) (theme.Signal, error) {
	switch opts.Source {
	case SourceTerminal:
		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		query := NewTerminalQuery(out)
		if !query.Available() {
			opts.Logger.Debug("no terminal attached, os appearance signal disabled")
			return nil, nil
		}
		return NewPoller(query.PrefersDark, opts.PollInterval), nil
	case SourceFile:
		if opts.File == "" {
			return nil, apperrors.NewValidationError("appearance.file", "required when source is file", nil)
		}
		return NewFileSignal(opts.File, opts.Logger), nil
	case SourceNone, "":
		return nil, nil
	default:
		return nil, apperrors.NewValidationError("appearance.source", fmt.Sprintf("unknown source %q", opts.Source), nil)
	}
}
