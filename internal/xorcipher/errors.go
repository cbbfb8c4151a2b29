package xorcipher

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned when a transform is requested with an empty key.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidEncoding is returned when a hex string cannot be parsed.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// KeyError describes a rejected key.
type KeyError struct {
	Reason string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidKey, e.Reason)
}

// Unwrap returns ErrInvalidKey.
func (e *KeyError) Unwrap() error {
	return ErrInvalidKey
}

// EncodingError reports the hex token that failed to parse.
type EncodingError struct {
	Token    string
	Position int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%v: token %d %q is not a two-digit hex byte", ErrInvalidEncoding, e.Position, e.Token)
}

// Unwrap returns ErrInvalidEncoding.
func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}
