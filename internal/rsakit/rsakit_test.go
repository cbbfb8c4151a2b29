package rsakit

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPairOnce sync.Once
	testPair     KeyPair
	testPairErr  error
)

func generatedPair(t *testing.T) KeyPair {
	t.Helper()
	testPairOnce.Do(func() {
		testPair, testPairErr = GenerateKeyPair(rand.Reader, DefaultBits)
	})
	require.NoError(t, testPairErr)
	return testPair
}

func TestGenerateKeyPairPEMFraming(t *testing.T) {
	pair := generatedPair(t)

	for label, text := range map[string]string{PublicKeyLabel: pair.PublicPEM, PrivateKeyLabel: pair.PrivatePEM} {
		lines := strings.Split(text, "\n")
		assert.Equal(t, "-----BEGIN "+label+"-----", lines[0])
		assert.Equal(t, "-----END "+label+"-----", lines[len(lines)-1])
		assert.False(t, strings.HasSuffix(text, "\n"))
		for _, line := range lines[1 : len(lines)-2] {
			assert.Len(t, line, 64)
		}
		assert.LessOrEqual(t, len(lines[len(lines)-2]), 64)
	}

	pub, err := ParsePublicKey(pair.PublicPEM)
	require.NoError(t, err)
	assert.Equal(t, DefaultBits, pub.N.BitLen())
}

func TestEncodePEMShortBody(t *testing.T) {
	assert.Equal(t, "-----BEGIN X-----\nAAEC\n-----END X-----", EncodePEM("X", []byte{0, 1, 2}))

	der, err := DecodePEM("X", "-----BEGIN X-----\nAAEC\n-----END X-----")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2}, der)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	pair := generatedPair(t)

	ct, err := Encrypt(rand.Reader, pair.PublicPEM, "meet at the usual place")
	require.NoError(t, err)
	assert.NotContains(t, ct, "meet")

	pt, err := Decrypt(pair.PrivatePEM, ct)
	require.NoError(t, err)
	assert.Equal(t, "meet at the usual place", pt)
}

func TestDecryptFailures(t *testing.T) {
	pair := generatedPair(t)

	_, err := Decrypt(pair.PrivatePEM, "!!!not base64")
	assert.True(t, errors.Is(err, ErrDecryption))

	_, err = Decrypt(pair.PrivatePEM, "AAAA")
	assert.True(t, errors.Is(err, ErrDecryption))

	_, err = Decrypt(pair.PublicPEM, "AAAA")
	assert.True(t, errors.Is(err, ErrDecryption))
	assert.True(t, errors.Is(err, ErrInvalidPEM))
}

func TestEncryptRejectsLongMessage(t *testing.T) {
	pair := generatedPair(t)
	_, err := Encrypt(rand.Reader, pair.PublicPEM, strings.Repeat("x", 300))
	assert.Error(t, err)
}

func TestParseInvalidKey(t *testing.T) {
	_, err := ParsePublicKey("not a key")
	assert.True(t, errors.Is(err, ErrInvalidPEM))

	_, err = ParsePrivateKey(EncodePEM(PrivateKeyLabel, []byte("garbage")))
	assert.True(t, errors.Is(err, ErrInvalidPEM))
}

func TestFingerprint(t *testing.T) {
	pair := generatedPair(t)
	fp, err := Fingerprint(pair.PublicPEM)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(fp, "SHA256:"), fp)

	again, err := Fingerprint(pair.PublicPEM)
	require.NoError(t, err)
	assert.Equal(t, fp, again)
}
