package xorcipher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHex(t *testing.T) {
	assert.Equal(t, "ff 00 1a", ToHex([]byte{255, 0, 26}))
	assert.Equal(t, "0a", ToHex([]byte{10}))
	assert.Equal(t, "", ToHex(nil))
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"mixed bytes", "ff 00 1a", []byte{255, 0, 26}},
		{"uppercase digits", "FF A0", []byte{0xff, 0xa0}},
		{"mixed whitespace", " 01\t02\n03  ", []byte{1, 2, 3}},
		{"empty", "", []byte{}},
		{"only whitespace", "   ", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FromHex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFromHexInvalid(t *testing.T) {
	for _, input := range []string{"zz", "f", "fff", "ff 0g", "100", "ff,00", "-1"} {
		t.Run(input, func(t *testing.T) {
			out, err := FromHex(input)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, ErrInvalidEncoding))
		})
	}

	_, err := FromHex("00 11 xy")
	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, "xy", encErr.Token)
	assert.Equal(t, 2, encErr.Position)
}

func TestHexRoundTrip(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	out, err := FromHex(ToHex(data))
	require.NoError(t, err)
	assert.Equal(t, data, out)
}
