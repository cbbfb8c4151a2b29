package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Shift", "Score", "Decoded"}
	rows := [][]string{
		{"3", "21.43", "THE KEY"},
		{"13", "2.86", "JXU AUO"},
	}
	rightAlign := map[int]bool{0: true, 1: true}

	lines := formatTable(headers, rows, rightAlign)
	require.Len(t, lines, 3)
	assert.Equal(t, "Shift Score Decoded", lines[0])
	assert.Equal(t, "    3 21.43 THE KEY", lines[1])
	assert.Equal(t, "   13  2.86 JXU AUO", lines[2])
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"A", "B"}, [][]string{{"世界", "x"}}, nil)
	require.Len(t, lines, 2)
	assert.Equal(t, "A    B", lines[0])
	assert.Equal(t, "世界 x", lines[1])
}

func TestTruncateAndOneLine(t *testing.T) {
	assert.Equal(t, "abc...", truncate("abcdefghij", 6))
	assert.Equal(t, "abc", truncate("abc", 0))
	assert.Equal(t, "a b c", oneLine("a\nb\t c"))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil))
	assert.Equal(t, "+++", Sparkline([]float64{1, 1, 1}))
	assert.Equal(t, " @", Sparkline([]float64{0, 10}))
}
