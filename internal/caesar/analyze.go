package caesar

import (
	"sort"
	"unicode/utf16"
)

const (
	// MinShift and MaxShift bound the shifts tried by Analyze. Shift 0 is the
	// identity and is never a hypothesis.
	MinShift = 1
	MaxShift = alphabetSize - 1

	wordWeight  = 10.0
	vowelWeight = 5.0
	minRunLen   = 3
)

// Hypothesis is one candidate decryption.
type Hypothesis struct {
	Shift       int
	Decoded     string
	Score       float64
	WordMatches int
}

// Result holds every hypothesis ranked by descending score and the best guess.
type Result struct {
	Hypotheses []Hypothesis
	BestGuess  Hypothesis
}

// ForShift returns the hypothesis produced by the given shift.
func (r Result) ForShift(shift int) (Hypothesis, bool) {
	for _, h := range r.Hypotheses {
		if h.Shift == shift {
			return h, true
		}
	}
	return Hypothesis{}, false
}

// Analyzer scores Caesar hypotheses against a dictionary.
type Analyzer struct {
	dict dictionary
}

// NewAnalyzer returns an Analyzer using the built-in dictionary plus extraWords.
func NewAnalyzer(extraWords ...string) *Analyzer {
	return &Analyzer{dict: newDictionary(extraWords)}
}

var defaultAnalyzer = NewAnalyzer()

// Analyze cracks ciphertext with the built-in dictionary.
func Analyze(ciphertext string) Result {
	return defaultAnalyzer.Analyze(ciphertext)
}

// Analyze tries shifts 1..25 and ranks them as English plaintext.
//
// The best guess is tracked while iterating in shift order and only replaced
// on a strictly greater score, so the lowest shift wins ties.
func (a *Analyzer) Analyze(ciphertext string) Result {
	text := upper(ciphertext)
	hypotheses := make([]Hypothesis, 0, MaxShift)

	var best Hypothesis
	for shift := MinShift; shift <= MaxShift; shift++ {
		decoded := rotate(text, alphabetSize-shift)
		h := a.score(shift, decoded)
		if shift == MinShift || h.Score > best.Score {
			best = h
		}
		hypotheses = append(hypotheses, h)
	}

	sort.SliceStable(hypotheses, func(i, j int) bool {
		return hypotheses[i].Score > hypotheses[j].Score
	})
	return Result{Hypotheses: hypotheses, BestGuess: best}
}

func (a *Analyzer) score(shift int, decoded string) Hypothesis {
	matches := 0
	for _, tok := range tokenize(decoded) {
		if a.dict.contains(tok) {
			matches++
		}
	}
	score := float64(matches)*wordWeight + vowelRatio(decoded)*vowelWeight - float64(repeatedRuns(decoded))
	return Hypothesis{
		Shift:       shift,
		Decoded:     decoded,
		Score:       score,
		WordMatches: matches,
	}
}

// vowelRatio divides by the UTF-16 length of text, so a rune outside the
// BMP counts twice.
func vowelRatio(text string) float64 {
	total := 0
	vowels := 0
	for _, r := range text {
		total += utf16Len(r)
		switch r {
		case 'A', 'E', 'I', 'O', 'U':
			vowels++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(vowels) / float64(total)
}

func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

// repeatedRuns counts maximal runs of minRunLen or more identical characters.
// Line terminators never form a run, matching `(.)\1{2,}`. The pattern sees
// UTF-16 units, so a rune outside the BMP is a surrogate pair that can never
// repeat three times in a row.
func repeatedRuns(text string) int {
	runs := 0
	var prev rune
	length := 0
	flush := func() {
		if length >= minRunLen {
			runs++
		}
	}
	for _, r := range text {
		if isLineTerminator(r) || utf16Len(r) > 1 {
			flush()
			length = 0
			continue
		}
		if length > 0 && r == prev {
			length++
			continue
		}
		flush()
		prev = r
		length = 1
	}
	flush()
	return runs
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}
