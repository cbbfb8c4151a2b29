package rsakit

import (
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"
)

const pemLineLen = 64

// EncodePEM armours der under label. Lines are wrapped at 64 characters and
// the output has no trailing newline.
func EncodePEM(label string, der []byte) string {
	body := base64.StdEncoding.EncodeToString(der)
	lines := make([]string, 0, len(body)/pemLineLen+1)
	for len(body) > pemLineLen {
		lines = append(lines, body[:pemLineLen])
		body = body[pemLineLen:]
	}
	lines = append(lines, body)
	return fmt.Sprintf("-----BEGIN %s-----\n%s\n-----END %s-----", label, strings.Join(lines, "\n"), label)
}

// DecodePEM returns the DER bytes of the first block labelled label.
func DecodePEM(label, text string) ([]byte, error) {
	rest := []byte(strings.TrimSpace(text))
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return nil, fmt.Errorf("%w: no %s block found", ErrInvalidPEM, label)
		}
		if block.Type == label {
			return block.Bytes, nil
		}
	}
}
