package xorcipher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStrength(t *testing.T) {
	tests := []struct {
		length   int
		expected Strength
	}{
		{0, Weak},
		{1, Weak},
		{5, Weak},
		{6, Moderate},
		{11, Moderate},
		{12, Strong},
		{40, Strong},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyStrength(strings.Repeat("k", tt.length)), "length %d", tt.length)
	}
}

func TestStrengthString(t *testing.T) {
	assert.Equal(t, "weak", Weak.String())
	assert.Equal(t, "moderate", Moderate.String())
	assert.Equal(t, "strong", Strong.String())
}
