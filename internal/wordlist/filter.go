package wordlist

import "strings"

// minWordLen matches the shortest token the cracker looks up.
const minWordLen = 3

// DictionaryWords lowercases words and keeps only those the cracker can
// ever match: ASCII a-z, at least three letters. Duplicates are dropped.
func DictionaryWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) < minWordLen || !isASCIILower(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func isASCIILower(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
