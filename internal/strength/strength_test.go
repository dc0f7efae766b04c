package strength

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateScores(t *testing.T) {
	cases := []struct {
		name   string
		secret string
		score  int
		label  Label
	}{
		{name: "empty", secret: "", score: 0, label: LabelWeak},
		{name: "short lowercase", secret: "abc", score: 0, label: LabelWeak},
		{name: "eight lowercase", secret: "abcdefgh", score: 1, label: LabelFair},
		{name: "twelve lowercase", secret: "abcdefghijkl", score: 2, label: LabelGood},
		{name: "mixed case with digit", secret: "Abcdefg1", score: 3, label: LabelStrong},
		{name: "all categories", secret: "Ab1!efgh", score: 4, label: LabelVeryStrong},
		{name: "clamped", secret: "Ab1!efghijklmnop", score: 4, label: LabelVeryStrong},
		{name: "single case only", secret: "ABCDEFGH", score: 1, label: LabelFair},
		{name: "symbol only", secret: "!", score: 1, label: LabelFair},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Evaluate(tc.secret)
			require.Equal(t, tc.score, v.Score)
			require.Equal(t, tc.label, v.Label)
		})
	}
}

// Length is counted twice for secrets of 12+ characters. A long single-class
// secret can therefore score close to a short diverse one.
func TestLengthIsDoubleCounted(t *testing.T) {
	long := Analyze("abcdefghijkl")
	require.True(t, long.MinLength)
	require.True(t, long.StrongLength)
	require.False(t, long.MixedCase)
	require.Equal(t, 2, long.Verdict.Score)

	diverse := Analyze("Abcdefg1")
	require.True(t, diverse.MinLength)
	require.False(t, diverse.StrongLength)
	require.Equal(t, 3, diverse.Verdict.Score)

	// 12 mixed-case letters with a digit matches the 8-character diverse secret
	// plus one more point from length alone.
	require.Equal(t, 4, Evaluate("Abcdefghijk1").Score)
}

func TestAnalyzeClampsRawTotal(t *testing.T) {
	r := Analyze("Ab1!efghijklmnop")
	require.Equal(t, 5, r.Raw)
	require.Equal(t, MaxScore, r.Verdict.Score)
}

func TestVerdictTableIsConsistent(t *testing.T) {
	expected := map[int]struct {
		label Label
		color Color
	}{
		0: {LabelWeak, ColorRed},
		1: {LabelFair, ColorOrange},
		2: {LabelGood, ColorYellow},
		3: {LabelStrong, ColorBlue},
		4: {LabelVeryStrong, ColorGreen},
	}

	inputs := []string{"", "a", "abcdefgh", "ABCdef", "12345678", "pass word", "Ab1!efghijklmnop", "ééééééééé", strings.Repeat("x", 100)}
	for _, in := range inputs {
		v := Evaluate(in)
		require.GreaterOrEqual(t, v.Score, 0)
		require.LessOrEqual(t, v.Score, MaxScore)
		assert.Equal(t, expected[v.Score].label, v.Label, in)
		assert.Equal(t, expected[v.Score].color, v.Color, in)
	}
}

func TestLengthCountsCharacters(t *testing.T) {
	// Length is in runes, not UTF-16 code units: an emoji outside the BMP
	// counts once here where a browser's string length would count two.
	// eight non-ASCII characters: +1 length, +1 non-alphanumeric
	r := Analyze("éééééééé")
	require.Equal(t, 8, r.Length)
	require.True(t, r.MinLength)
	require.True(t, r.Symbol)
	require.Equal(t, 2, r.Verdict.Score)

	require.Equal(t, 4, Analyze("😀😀😀😀").Length)
	require.False(t, Analyze("😀😀😀😀").MinLength)
}

func TestVerdictForClamps(t *testing.T) {
	require.Equal(t, LabelWeak, VerdictFor(-3).Label)
	require.Equal(t, LabelVeryStrong, VerdictFor(9).Label)
}

func TestLabelTitle(t *testing.T) {
	require.Equal(t, "Very strong", LabelVeryStrong.Title())
	require.Equal(t, "Weak", LabelWeak.Title())
	require.Equal(t, "", Label("").Title())
}

func TestSegments(t *testing.T) {
	require.Equal(t, []bool{true, true, false, false}, VerdictFor(2).Segments(MaxScore))
	require.Equal(t, []bool{false, false, false, false}, Evaluate("").Segments(MaxScore))
	require.Nil(t, VerdictFor(1).Segments(0))
}

func TestSegmentsScaleToCount(t *testing.T) {
	strongest := Evaluate("Ab1!efghijklmnop")
	require.Equal(t, []bool{true, true, true, true, true, true, true, true, true, true}, strongest.Segments(10))
	require.Equal(t, []bool{true, true}, strongest.Segments(2))

	// partial scores round up
	require.Equal(t, []bool{true, true, true, false, false, false, false, false, false, false}, VerdictFor(1).Segments(10))
	require.Equal(t, []bool{true, false}, VerdictFor(1).Segments(2))
	require.Equal(t, []bool{true, false}, VerdictFor(2).Segments(2))
	require.Equal(t, []bool{true, true}, VerdictFor(3).Segments(2))
	require.Equal(t, []bool{false, false}, VerdictFor(0).Segments(2))
}
