package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/cybertoys/internal/caesar"
	"github.com/verte-zerg/cybertoys/internal/csr"
	"github.com/verte-zerg/cybertoys/internal/dtmf"
	"github.com/verte-zerg/cybertoys/internal/model"
)

func TestRenderCaesar(t *testing.T) {
	var buf bytes.Buffer
	res := caesar.Analyze("WKH NHB")
	require.NoError(t, RenderCaesar(&buf, res, CaesarOptions{Top: 3}))
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// title, text, blank, header, 3 rows, sparkline
	require.Len(t, lines, 8, out)
	assert.Equal(t, "Best guess (shift 3, score 21.43)", lines[0])
	assert.Equal(t, "THE KEY", lines[1])
	assert.True(t, strings.HasPrefix(lines[4], "   1     3 21.43     2 THE KEY"), "first row %q", lines[4])
	assert.True(t, strings.HasPrefix(lines[7], "Scores by shift 1-25: ["), "sparkline %q", lines[7])
}

func TestScoresByShift(t *testing.T) {
	res := caesar.Analyze("KHOOR")
	scores := ScoresByShift(res)
	require.Len(t, scores, 25)
	h, ok := res.ForShift(3)
	require.True(t, ok)
	assert.Equal(t, h.Score, scores[2])
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHistory(&buf, nil))
	assert.Equal(t, "No operations recorded.\n", buf.String())

	buf.Reset()
	ops := []model.Operation{{ID: 1, CreatedAt: time.Now(), Tool: "xor", Action: "encode", Input: "hi", Output: "03 0c"}}
	require.NoError(t, RenderHistory(&buf, ops))
	assert.Contains(t, buf.String(), "xor")
	assert.Contains(t, buf.String(), "03 0c")
}

func TestRenderCSR(t *testing.T) {
	var buf bytes.Buffer
	info := csr.Info{
		Subject:            []csr.Attribute{{OID: "2.5.4.3", Name: "CN", Value: "example.com"}},
		PublicKeyAlgorithm: "RSA",
		PublicKeyBits:      2048,
		SignatureAlgorithm: "SHA256-RSA",
		SignatureValid:     true,
	}
	require.NoError(t, RenderCSR(&buf, info))
	for _, want := range []string{"CN   example.com 2.5.4.3", "RSA (2048 bit)", "SHA256-RSA", "Signature:            valid"} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestRenderTones(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTones(&buf, dtmf.Tones("1#")))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1   697 Hz 1209 Hz", lines[1])
}
