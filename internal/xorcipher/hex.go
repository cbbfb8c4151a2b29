package xorcipher

import (
	"encoding/hex"
	"strings"
)

// ToHex renders each byte as two lowercase hex digits separated by spaces.
func ToHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b)*3 - 1)
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(hex.EncodeToString([]byte{v}))
	}
	return sb.String()
}

// FromHex parses whitespace-separated two-digit hex bytes.
func FromHex(s string) ([]byte, error) {
	tokens := strings.Fields(s)
	out := make([]byte, 0, len(tokens))
	for i, tok := range tokens {
		if len(tok) != 2 {
			return nil, &EncodingError{Token: tok, Position: i}
		}
		b, err := hex.DecodeString(tok)
		if err != nil {
			return nil, &EncodingError{Token: tok, Position: i}
		}
		out = append(out, b[0])
	}
	return out, nil
}
