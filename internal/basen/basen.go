// Package basen converts bytes to and from Base16, Base32, Base64 and Base85.
package basen

import (
	"bytes"
	"encoding/ascii85"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownBase is returned for a base name outside the supported set.
	ErrUnknownBase = errors.New("unknown base")
	// ErrInvalidEncoding is returned when input cannot be decoded.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// Base identifies one of the supported encodings.
type Base int

const (
	Base16 Base = iota + 1
	Base32
	Base64
	Base85
)

func (b Base) String() string {
	switch b {
	case Base16:
		return "base16"
	case Base32:
		return "base32"
	case Base64:
		return "base64"
	case Base85:
		return "base85"
	default:
		return fmt.Sprintf("base(%d)", int(b))
	}
}

// Codec pairs the encode and decode functions for one base.
type Codec struct {
	Encode func([]byte) string
	Decode func(string) ([]byte, error)
}

var codecs = map[Base]Codec{
	Base16: {
		Encode: hex.EncodeToString,
		Decode: hex.DecodeString,
	},
	Base32: {
		Encode: base32.StdEncoding.EncodeToString,
		Decode: base32.StdEncoding.DecodeString,
	},
	Base64: {
		Encode: base64.StdEncoding.EncodeToString,
		Decode: base64.StdEncoding.DecodeString,
	},
	Base85: {
		Encode: encodeASCII85,
		Decode: decodeASCII85,
	},
}

// ParseBase accepts "base64", "64", "b64" and similar spellings.
func ParseBase(name string) (Base, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "base")
	n = strings.TrimPrefix(n, "b")
	switch n {
	case "16", "hex":
		return Base16, nil
	case "32":
		return Base32, nil
	case "64":
		return Base64, nil
	case "85", "ascii85":
		return Base85, nil
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBase, name, strings.Join(Names(), ", "))
}

// Names lists the supported base names in ascending order.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for b := range codecs {
		names = append(names, b.String())
	}
	sort.Strings(names)
	return names
}

// Lookup returns the codec for b.
func Lookup(b Base) (Codec, error) {
	c, ok := codecs[b]
	if !ok {
		return Codec{}, fmt.Errorf("%w: %s", ErrUnknownBase, b)
	}
	return c, nil
}

// Encode renders data in the given base.
func Encode(b Base, data []byte) (string, error) {
	c, err := Lookup(b)
	if err != nil {
		return "", err
	}
	return c.Encode(data), nil
}

// Decode parses text in the given base. Surrounding whitespace is ignored.
func Decode(b Base, text string) ([]byte, error) {
	c, err := Lookup(b)
	if err != nil {
		return nil, err
	}
	out, err := c.Decode(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidEncoding, b, err)
	}
	return out, nil
}

func encodeASCII85(data []byte) string {
	buf := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(buf, data)
	return string(buf[:n])
}

func decodeASCII85(text string) ([]byte, error) {
	text = strings.TrimSuffix(strings.TrimPrefix(text, "<~"), "~>")
	buf := make([]byte, 4*len(text)+4)
	n, _, err := ascii85.Decode(buf, []byte(text), true)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(buf[:n]), nil
}
