// Package xorcipher implements a repeating-key XOR cipher with a hex
// transport form.
package xorcipher

import "strings"

// Transform XORs data with key applied cyclically. Applying it twice with
// the same key returns the original data.
func Transform(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, &KeyError{Reason: "key must not be empty"}
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out, nil
}

// Output is the result of one encode or decode call.
type Output struct {
	Hex   string
	ASCII string
}

// EncodeDecode XORs text with key and renders the result both raw and as hex.
func EncodeDecode(data, key string) (Output, error) {
	out, err := Transform([]byte(data), []byte(key))
	if err != nil {
		return Output{}, err
	}
	return Output{Hex: ToHex(out), ASCII: string(out)}, nil
}

// DecodeHex parses hexText and XORs the bytes with key. Output.Hex echoes
// the normalized input.
func DecodeHex(hexText, key string) (Output, error) {
	if key == "" {
		return Output{}, &KeyError{Reason: "key must not be empty"}
	}
	raw, err := FromHex(hexText)
	if err != nil {
		return Output{}, err
	}
	out, err := Transform(raw, []byte(key))
	if err != nil {
		return Output{}, err
	}
	return Output{Hex: strings.Join(strings.Fields(hexText), " "), ASCII: string(out)}, nil
}
