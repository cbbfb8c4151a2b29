package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/cybertoys/internal/rsakit"
	"github.com/verte-zerg/cybertoys/internal/store"
)

var errNoStoredKey = errors.New("no stored private key; run: cybertoys rsa keygen")

var (
	rsaBits       int
	rsaPublicKey  string
	rsaPrivateKey string
	rsaPrivateOut string
)

func newRSACmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsa",
		Short: "RSA-OAEP key generation and encryption",
	}

	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and keep the private key",
		Args:  cobra.NoArgs,
		RunE:  runRSAKeygenCmd,
	}
	keygenCmd.Flags().IntVar(&rsaBits, "bits", rsakit.DefaultBits, "modulus size in bits")
	keygenCmd.Flags().StringVar(&rsaPrivateOut, "private-out", "", "also write the private key PEM to this file")

	encryptCmd := &cobra.Command{
		Use:   "encrypt [message]",
		Short: "Encrypt a message to base64",
		RunE:  runRSAEncryptCmd,
	}
	encryptCmd.Flags().StringVar(&rsaPublicKey, "pub", "", "public key PEM file (default: stored key)")

	decryptCmd := &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt a base64 ciphertext",
		RunE:  runRSADecryptCmd,
	}
	decryptCmd.Flags().StringVar(&rsaPrivateKey, "priv", "", "private key PEM file (default: stored key)")

	cmd.AddCommand(keygenCmd)
	cmd.AddCommand(encryptCmd)
	cmd.AddCommand(decryptCmd)
	return cmd
}

func runRSAKeygenCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "bits", &rsaBits, fileCfg.RSA.Bits)
	if rsaBits < 1024 {
		return fmt.Errorf("--bits must be >= 1024")
	}

	logrus.WithField("bits", rsaBits).Debug("generating RSA key")
	pair, err := rsakit.GenerateKeyPair(rand.Reader, rsaBits)
	if err != nil {
		return err
	}
	fingerprint, err := rsakit.Fingerprint(pair.PublicPEM)
	if err != nil {
		return fmt.Errorf("failed to fingerprint key: %w", err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	if err := st.Set(cmd.Context(), store.PrivateKeyKey, pair.PrivatePEM); err != nil {
		return fmt.Errorf("failed to store private key: %w", err)
	}
	if rsaPrivateOut != "" {
		if err := os.WriteFile(rsaPrivateOut, []byte(pair.PrivatePEM+"\n"), 0o600); err != nil {
			return fmt.Errorf("failed to write private key: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s\n%s\n", pair.PublicPEM, fingerprint); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	recordOperation(cmd.Context(), "rsa", "keygen", fmt.Sprintf("%d bits", rsaBits), fingerprint)
	return nil
}

func runRSAEncryptCmd(cmd *cobra.Command, args []string) error {
	publicPEM, err := resolvePublicKey(cmd.Context())
	if err != nil {
		return err
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	ct, err := rsakit.Encrypt(rand.Reader, publicPEM, input)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), ct); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	recordOperation(cmd.Context(), "rsa", "encrypt", redacted(input), ct)
	return nil
}

func runRSADecryptCmd(cmd *cobra.Command, args []string) error {
	privatePEM, err := resolvePrivateKey(cmd.Context())
	if err != nil {
		return err
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	pt, err := rsakit.Decrypt(privatePEM, input)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), pt); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	recordOperation(cmd.Context(), "rsa", "decrypt", input, redacted(pt))
	return nil
}

func resolvePublicKey(ctx context.Context) (string, error) {
	if rsaPublicKey != "" {
		return readKeyFile(rsaPublicKey)
	}
	privatePEM, err := storedPrivateKey(ctx)
	if err != nil {
		return "", err
	}
	priv, err := rsakit.ParsePrivateKey(privatePEM)
	if err != nil {
		return "", fmt.Errorf("failed to parse stored key: %w", err)
	}
	pair, err := rsakit.MarshalKeyPair(priv)
	if err != nil {
		return "", err
	}
	return pair.PublicPEM, nil
}

func resolvePrivateKey(ctx context.Context) (string, error) {
	if rsaPrivateKey != "" {
		return readKeyFile(rsaPrivateKey)
	}
	return storedPrivateKey(ctx)
}

func storedPrivateKey(ctx context.Context) (string, error) {
	st, err := openStore()
	if err != nil {
		return "", err
	}
	defer closeStore(st)
	value, ok, err := st.Get(ctx, store.PrivateKeyKey)
	if err != nil {
		return "", fmt.Errorf("failed to load private key: %w", err)
	}
	if !ok {
		return "", errNoStoredKey
	}
	return value, nil
}

func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
