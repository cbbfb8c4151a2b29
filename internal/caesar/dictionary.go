package caesar

import "strings"

var commonWords = []string{
	"the", "and", "that", "have", "for", "not", "you", "with", "this", "but",
	"from", "they", "his", "her", "she", "will", "say", "can", "who", "get",
	"would", "make", "about", "flag", "ctf", "crypto", "cipher", "key", "encode", "decode",
}

// minTokenLen is the shortest token that is looked up in the dictionary.
const minTokenLen = 3

// CommonWords returns a copy of the built-in dictionary.
func CommonWords() []string {
	out := make([]string, len(commonWords))
	copy(out, commonWords)
	return out
}

type dictionary map[string]struct{}

func newDictionary(extra []string) dictionary {
	d := make(dictionary, len(commonWords)+len(extra))
	for _, w := range commonWords {
		d[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		d[w] = struct{}{}
	}
	return d
}

func (d dictionary) contains(word string) bool {
	_, ok := d[word]
	return ok
}

// tokenize lowercases text and splits it on runs of anything outside a-z,
// dropping tokens shorter than minTokenLen.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return r < 'a' || r > 'z'
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
