package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/authkit/internal/strength"
	"github.com/alexisbeaulieu97/authkit/internal/theme"
	"github.com/alexisbeaulieu97/authkit/internal/ui/components"
	"github.com/alexisbeaulieu97/authkit/internal/ui/headless"
)

const explainWidth = 72

type strengthOptions struct {
	jsonOutput bool
	explain    bool
}

func newStrengthCmd(flags *rootFlags) *cobra.Command {
	opts := &strengthOptions{}

	cmd := &cobra.Command{
		Use:   "strength [secret]",
		Short: "Score a password with the strength heuristic",
		Long: `Score a password. The secret is read from the argument, or from stdin
when omitted. Interactive terminals are read without echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}

			secret, err := readSecret(cmd, args)
			if err != nil {
				return newCommandError("strength", "reading the secret", err, "Pass the secret as an argument or pipe it on stdin.")
			}

			report := strength.Analyze(secret)
			app.log.WithField("score", report.Verdict.Score).Debug("secret scored")

			switch {
			case opts.jsonOutput:
				return renderStrengthJSON(cmd.OutOrStdout(), report)
			case opts.explain:
				return renderStrengthExplain(cmd.OutOrStdout(), report)
			default:
				return renderStrengthText(cmd.OutOrStdout(), secret, report, app.cfg.Strength.Segments)
			}
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the verdict as JSON")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Explain which checks passed")

	return cmd
}

func readSecret(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	secret := strings.TrimRight(string(data), "\r\n")
	if strings.Contains(secret, "\n") {
		return "", errors.New("expected a single line")
	}
	return secret, nil
}

func renderStrengthText(w io.Writer, secret string, report strength.Report, segments int) error {
	field := components.NewPasswordInput(headless.PasswordInputOptions{ShowStrength: true, Segments: segments})
	field.Headless().SetValue(secret)

	meter := field.Meter(components.DefaultContext())
	if meter == "" {
		meter = "(empty)"
	}
	fmt.Fprintf(w, "Score:    %d/%d\n", report.Verdict.Score, strength.MaxScore)
	fmt.Fprintf(w, "Strength: %s\n", report.Verdict.Label.Title())
	fmt.Fprintf(w, "Meter:    %s\n", meter)
	return nil
}

type strengthJSONPayload struct {
	Score  int            `json:"score"`
	Label  string         `json:"label"`
	Color  string         `json:"color"`
	Length int            `json:"length"`
	Checks strengthChecks `json:"checks"`
}

type strengthChecks struct {
	MinLength    bool `json:"min_length"`
	StrongLength bool `json:"strong_length"`
	MixedCase    bool `json:"mixed_case"`
	Digit        bool `json:"digit"`
	Symbol       bool `json:"symbol"`
}

func renderStrengthJSON(w io.Writer, report strength.Report) error {
	payload := strengthJSONPayload{
		Score:  report.Verdict.Score,
		Label:  string(report.Verdict.Label),
		Color:  string(report.Verdict.Color),
		Length: report.Length,
		Checks: strengthChecks{
			MinLength:    report.MinLength,
			StrongLength: report.StrongLength,
			MixedCase:    report.MixedCase,
			Digit:        report.Digit,
			Symbol:       report.Symbol,
		},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func explainMarkdown(report strength.Report) string {
	mark := func(ok bool) string {
		if ok {
			return "yes"
		}
		return "no"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Password strength: %s\n\n", report.Verdict.Label.Title())
	fmt.Fprintf(&b, "Score **%d** of %d from %d raw points.\n\n", report.Verdict.Score, strength.MaxScore, report.Raw)
	b.WriteString("| Check | Passed |\n|---|---|\n")
	fmt.Fprintf(&b, "| At least 8 characters | %s |\n", mark(report.MinLength))
	fmt.Fprintf(&b, "| At least 12 characters | %s |\n", mark(report.StrongLength))
	fmt.Fprintf(&b, "| Lower and upper case letters | %s |\n", mark(report.MixedCase))
	fmt.Fprintf(&b, "| A digit | %s |\n", mark(report.Digit))
	fmt.Fprintf(&b, "| A symbol | %s |\n", mark(report.Symbol))
	if report.Raw > strength.MaxScore {
		fmt.Fprintf(&b, "\nThe score is capped at %d.\n", strength.MaxScore)
	}
	return b.String()
}

func renderStrengthExplain(w io.Writer, report strength.Report) error {
	md := explainMarkdown(report)
	out, err := renderMarkdown(md, markdownStyle(w), explainWidth)
	if err != nil {
		_, err = io.WriteString(w, wordwrap.String(md, explainWidth))
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// markdownStyle picks a glamour style: plain when not writing to a terminal,
// otherwise matching the appearance lipgloss renders with.
func markdownStyle(w io.Writer) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "notty"
	}
	if theme.CurrentAppearance().IsDark() {
		return "dark"
	}
	return "light"
}

func renderMarkdown(md, style string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
