// Package caesar encodes, decodes, and cracks Caesar shift ciphers.
package caesar

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const alphabetSize = 26

// Encode uppercases plaintext and shifts every A-Z letter forward by shift.
// Any integer shift is accepted and reduced mod 26.
func Encode(plaintext string, shift int) string {
	return rotate(upper(plaintext), normalizeShift(shift))
}

// Decode uppercases ciphertext and shifts every A-Z letter backward by shift.
func Decode(ciphertext string, shift int) string {
	return rotate(upper(ciphertext), normalizeShift(-shift))
}

// upper applies full Unicode case mapping, so "ß" becomes "SS".
// A Caser is stateful and is built per call.
func upper(text string) string {
	return cases.Upper(language.Und).String(text)
}

func normalizeShift(shift int) int {
	return ((shift % alphabetSize) + alphabetSize) % alphabetSize
}

// rotate moves A-Z forward by n (0 <= n < 26); everything else passes through.
func rotate(text string, n int) string {
	if n == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			r = 'A' + (r-'A'+rune(n))%alphabetSize
		}
		b.WriteRune(r)
	}
	return b.String()
}
