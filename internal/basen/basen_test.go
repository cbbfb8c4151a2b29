package basen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKnownVectors(t *testing.T) {
	tests := []struct {
		base     Base
		input    string
		expected string
	}{
		{Base16, "Hi!", "486921"},
		{Base32, "foobar", "MZXW6YTBOI======"},
		{Base64, "hello", "aGVsbG8="},
		{Base85, "Man ", "9jqo^"},
	}
	for _, tt := range tests {
		t.Run(tt.base.String(), func(t *testing.T) {
			out, err := Encode(tt.base, []byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRoundTripAllBases(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("a"),
		[]byte("The quick brown fox jumps over the lazy dog"),
		{0x00, 0x00, 0x00, 0x00, 0xff, 0xfe},
	}
	for _, b := range []Base{Base16, Base32, Base64, Base85} {
		for _, in := range inputs {
			enc, err := Encode(b, in)
			require.NoError(t, err)
			dec, err := Decode(b, enc)
			require.NoError(t, err, "%s %q", b, enc)
			assert.Equal(t, string(in), string(dec), "%s", b)
		}
	}
}

func TestDecodeBase85Delimiters(t *testing.T) {
	out, err := Decode(Base85, "<~9jqo^~>")
	require.NoError(t, err)
	assert.Equal(t, "Man ", string(out))
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		base  Base
		input string
	}{
		{Base16, "xyz"},
		{Base32, "1!!"},
		{Base64, "not base64!"},
		{Base85, "abc{}"},
	}
	for _, tt := range tests {
		t.Run(tt.base.String(), func(t *testing.T) {
			out, err := Decode(tt.base, tt.input)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, ErrInvalidEncoding), "got %v", err)
		})
	}
}

func TestParseBase(t *testing.T) {
	for input, expected := range map[string]Base{
		"base64":   Base64,
		"B32":      Base32,
		"16":       Base16,
		"hex":      Base16,
		"ascii85":  Base85,
		" base85 ": Base85,
	} {
		got, err := ParseBase(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, got, input)
	}

	_, err := ParseBase("base58")
	assert.True(t, errors.Is(err, ErrUnknownBase))
}

func TestUnknownBase(t *testing.T) {
	_, err := Encode(Base(42), []byte("x"))
	assert.True(t, errors.Is(err, ErrUnknownBase))
	assert.Equal(t, []string{"base16", "base32", "base64", "base85"}, Names())
}
