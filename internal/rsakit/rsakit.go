// Package rsakit generates RSA key pairs and encrypts short messages with
// RSA-OAEP (SHA-256). Keys travel as PEM text; persistence is left to callers.
package rsakit

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/ssh"
)

// DefaultBits is the modulus size used when none is configured.
const DefaultBits = 2048

const (
	PublicKeyLabel  = "PUBLIC KEY"
	PrivateKeyLabel = "PRIVATE KEY"
)

var (
	// ErrInvalidPEM is returned when key text has no usable PEM block.
	ErrInvalidPEM = errors.New("invalid PEM")
	// ErrNotRSA is returned when a PEM block holds a non-RSA key.
	ErrNotRSA = errors.New("key is not RSA")
	// ErrDecryption wraps every decryption failure.
	ErrDecryption = errors.New("decryption failed")
)

// KeyPair holds a generated key pair as SPKI and PKCS#8 PEM.
type KeyPair struct {
	PublicPEM  string
	PrivatePEM string
}

// GenerateKeyPair creates an RSA key pair of the given size.
func GenerateKeyPair(random io.Reader, bits int) (KeyPair, error) {
	if bits <= 0 {
		bits = DefaultBits
	}
	key, err := rsa.GenerateKey(random, bits)
	if err != nil {
		return KeyPair{}, fmt.Errorf("failed to generate key: %w", err)
	}
	return MarshalKeyPair(key)
}

// MarshalKeyPair renders key as PEM text.
func MarshalKeyPair(key *rsa.PrivateKey) (KeyPair, error) {
	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return KeyPair{}, fmt.Errorf("failed to marshal public key: %w", err)
	}
	priv, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return KeyPair{}, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return KeyPair{
		PublicPEM:  EncodePEM(PublicKeyLabel, pub),
		PrivatePEM: EncodePEM(PrivateKeyLabel, priv),
	}, nil
}

// ParsePublicKey reads an SPKI "PUBLIC KEY" PEM.
func ParsePublicKey(publicPEM string) (*rsa.PublicKey, error) {
	der, err := DecodePEM(PublicKeyLabel, publicPEM)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPEM, err)
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotRSA, key)
	}
	return pub, nil
}

// ParsePrivateKey reads a PKCS#8 "PRIVATE KEY" PEM.
func ParsePrivateKey(privatePEM string) (*rsa.PrivateKey, error) {
	der, err := DecodePEM(PrivateKeyLabel, privatePEM)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPEM, err)
	}
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotRSA, key)
	}
	return priv, nil
}

// Encrypt encrypts message for publicPEM and returns standard base64.
func Encrypt(random io.Reader, publicPEM, message string) (string, error) {
	pub, err := ParsePublicKey(publicPEM)
	if err != nil {
		return "", err
	}
	ct, err := rsa.EncryptOAEP(sha256.New(), random, pub, []byte(message), nil)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ct), nil
}

// Decrypt reverses Encrypt with the matching private key.
func Decrypt(privatePEM, ciphertext string) (string, error) {
	priv, err := ParsePrivateKey(privatePEM)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	ct, err := base64.StdEncoding.DecodeString(strings.TrimSpace(ciphertext))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	pt, err := rsa.DecryptOAEP(sha256.New(), nil, priv, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return string(pt), nil
}

// Fingerprint returns the OpenSSH SHA256 fingerprint of publicPEM.
func Fingerprint(publicPEM string) (string, error) {
	pub, err := ParsePublicKey(publicPEM)
	if err != nil {
		return "", err
	}
	sshKey, err := ssh.NewPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("failed to convert key: %w", err)
	}
	return ssh.FingerprintSHA256(sshKey), nil
}
