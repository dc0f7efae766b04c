// Package strength scores candidate secrets with a small additive heuristic.
package strength

import (
	"strings"
	"unicode/utf8"
)

// MaxScore is the ceiling applied to the raw point total.
const MaxScore = 4

const (
	minLength    = 8
	strongLength = 12
)

// Label names a strength class.
type Label string

const (
	LabelWeak       Label = "weak"
	LabelFair       Label = "fair"
	LabelGood       Label = "good"
	LabelStrong     Label = "strong"
	LabelVeryStrong Label = "very strong"
)

// Title returns the label with its first letter capitalised, as shown next to indicators.
func (l Label) Title() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// Color is a presentation hint paired with a score.
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
)

var (
	labels = [MaxScore + 1]Label{LabelWeak, LabelFair, LabelGood, LabelStrong, LabelVeryStrong}
	colors = [MaxScore + 1]Color{ColorRed, ColorOrange, ColorYellow, ColorBlue, ColorGreen}
)

// Verdict is the outcome of scoring a secret.
type Verdict struct {
	Score int
	Label Label
	Color Color
}

// VerdictFor returns the verdict for a score, clamping it into [0, MaxScore].
func VerdictFor(score int) Verdict {
	if score < 0 {
		score = 0
	}
	if score > MaxScore {
		score = MaxScore
	}
	return Verdict{Score: score, Label: labels[score], Color: colors[score]}
}

// Segments reports which of n indicator segments are lit. The score is scaled
// onto n segments rounding up, so any non-zero score lights at least one and
// MaxScore lights them all.
func (v Verdict) Segments(n int) []bool {
	if n <= 0 {
		return nil
	}
	on := (v.Score*n + MaxScore - 1) / MaxScore
	lit := make([]bool, n)
	for i := range lit {
		lit[i] = i < on
	}
	return lit
}

// Report breaks a verdict down into the individual checks that produced it.
type Report struct {
	Length       int
	MinLength    bool
	StrongLength bool
	MixedCase    bool
	Digit        bool
	Symbol       bool
	Raw          int
	Verdict      Verdict
}

// Analyze runs every check against secret. Checks are independent: the two
// length checks both fire for long secrets, so length alone can reach 2 points.
func Analyze(secret string) Report {
	var lower, upper bool
	r := Report{Length: utf8.RuneCountInString(secret)}

	for _, c := range secret {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			r.Digit = true
		default:
			r.Symbol = true
		}
	}

	r.MinLength = r.Length >= minLength
	r.StrongLength = r.Length >= strongLength
	r.MixedCase = lower && upper

	for _, hit := range []bool{r.MinLength, r.StrongLength, r.MixedCase, r.Digit, r.Symbol} {
		if hit {
			r.Raw++
		}
	}
	r.Verdict = VerdictFor(r.Raw)
	return r
}

// Evaluate scores secret. It is total: every input, including "", maps to a verdict.
func Evaluate(secret string) Verdict {
	return Analyze(secret).Verdict
}
