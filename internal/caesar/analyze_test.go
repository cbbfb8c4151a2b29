package caesar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeReturnsEveryShift(t *testing.T) {
	for _, input := range []string{"", "!!! ???", "KHOOR", "Mixed case 123\nnext line"} {
		res := Analyze(input)
		require.Len(t, res.Hypotheses, 25, "input %q", input)
		seen := map[int]bool{}
		for _, h := range res.Hypotheses {
			assert.GreaterOrEqual(t, h.Shift, MinShift)
			assert.LessOrEqual(t, h.Shift, MaxShift)
			seen[h.Shift] = true
		}
		assert.Len(t, seen, 25, "input %q", input)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	res := Analyze("")
	for _, h := range res.Hypotheses {
		assert.Equal(t, "", h.Decoded)
		assert.Equal(t, 0.0, h.Score)
		assert.Equal(t, 0, h.WordMatches)
	}
	assert.Equal(t, 1, res.BestGuess.Shift)
}

func TestAnalyzeKhoor(t *testing.T) {
	res := Analyze("KHOOR")

	h, ok := res.ForShift(3)
	require.True(t, ok)
	assert.Equal(t, "HELLO", h.Decoded)
	assert.Equal(t, 0, h.WordMatches)
	assert.InDelta(t, 2.0, h.Score, 1e-9)

	// EBIIL (6) and AXEEH (10) tie on vowels; the lower shift wins.
	assert.Equal(t, 6, res.BestGuess.Shift)
	assert.Equal(t, "EBIIL", res.BestGuess.Decoded)
	assert.Equal(t, 6, res.Hypotheses[0].Shift)
	assert.Equal(t, 10, res.Hypotheses[1].Shift)
}

func TestAnalyzeFindsDictionaryPlaintext(t *testing.T) {
	res := Analyze(Encode("the key and the cipher", 13))
	assert.Equal(t, 13, res.BestGuess.Shift)
	assert.Equal(t, "THE KEY AND THE CIPHER", res.BestGuess.Decoded)
	assert.Equal(t, 5, res.BestGuess.WordMatches)
	assert.InDelta(t, 50+5.0*6/22, res.BestGuess.Score, 1e-9)

	res = Analyze("AOL MSHN PZ OLYL")
	assert.Equal(t, 7, res.BestGuess.Shift)
	assert.Equal(t, "THE FLAG IS HERE", res.BestGuess.Decoded)
	assert.Equal(t, 2, res.BestGuess.WordMatches)
}

func TestAnalyzeRepeatedRunPenaltyAndTies(t *testing.T) {
	res := Analyze("AAAB")
	h, ok := res.ForShift(6)
	require.True(t, ok)
	assert.Equal(t, "UUUV", h.Decoded)
	assert.Equal(t, 2.75, h.Score)

	assert.Equal(t, 6, res.BestGuess.Shift)
	got := []int{}
	for _, h := range res.Hypotheses[:4] {
		got = append(got, h.Shift)
	}
	assert.Equal(t, []int{6, 12, 18, 22}, got)
}

func TestAnalyzeBestGuessMatchesRanking(t *testing.T) {
	inputs := []string{"", "KHOOR", "AAAB", "WKH NHB", "Uryyb, jbeyq! GUR SYNT VF PGS", "zzz zzz zzz"}
	for _, input := range inputs {
		first := Analyze(input)
		second := Analyze(input)
		assert.Equal(t, first, second, "input %q", input)

		maxScore := first.Hypotheses[0].Score
		lowest := MaxShift + 1
		for _, h := range first.Hypotheses {
			assert.LessOrEqual(t, h.Score, maxScore)
			if h.Score == maxScore && h.Shift < lowest {
				lowest = h.Shift
			}
		}
		assert.Equal(t, lowest, first.BestGuess.Shift, "input %q", input)
		assert.Equal(t, first.Hypotheses[0], first.BestGuess, "input %q", input)
	}
}

func TestAnalyzeRoundTrip(t *testing.T) {
	plaintext := "Meet me @ 10pm: bring the FLAG & the key."
	for shift := MinShift; shift <= MaxShift; shift++ {
		h, ok := Analyze(Encode(plaintext, shift)).ForShift(shift)
		require.True(t, ok)
		assert.Equal(t, "MEET ME @ 10PM: BRING THE FLAG & THE KEY.", h.Decoded, "shift %d", shift)
	}
}

func TestAnalyzerExtraWords(t *testing.T) {
	ciphertext := Encode("hello world", 3)

	assert.Equal(t, 0, mustForShift(t, Analyze(ciphertext), 3).WordMatches)

	res := NewAnalyzer("Hello", " world ", "").Analyze(ciphertext)
	assert.Equal(t, 2, mustForShift(t, res, 3).WordMatches)
	assert.Equal(t, 3, res.BestGuess.Shift)
}

func TestRepeatedRuns(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"", 0},
		{"AA", 0},
		{"AAA", 1},
		{"AAAAAAA", 1},
		{"AAAA BBB CC DDDDDDD", 3},
		{"   ", 1},
		{"A\nA\nA", 0},
		{"\n\n\n", 0},
		{"😀😀😀", 0},
		{"AAA😀😀😀", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, repeatedRuns(tt.text), "text %q", tt.text)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"the", "flag", "ctf"}, tokenize("THE FLAG, is:CTF!! a"))
	assert.Empty(t, tokenize(""))
}

func mustForShift(t *testing.T, res Result, shift int) Hypothesis {
	t.Helper()
	h, ok := res.ForShift(shift)
	require.True(t, ok)
	return h
}

func TestVowelRatioCountsUTF16Units(t *testing.T) {
	assert.Equal(t, 0.0, vowelRatio(""))
	assert.Equal(t, 0.5, vowelRatio("AB"))
	assert.InDelta(t, 1.0/3, vowelRatio("A😀"), 1e-9)
}

func TestAnalyzeOutsideBMP(t *testing.T) {
	res := Analyze("😀😀😀")
	for _, h := range res.Hypotheses {
		assert.Equal(t, "😀😀😀", h.Decoded)
		assert.Equal(t, 0.0, h.Score, "shift %d", h.Shift)
	}
}

func TestAnalyzeFullCaseMapping(t *testing.T) {
	h := mustForShift(t, Analyze("straße"), 1)
	assert.Equal(t, "RSQZRRD", h.Decoded)
	assert.Equal(t, 0.0, h.Score)
}
