package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/cybertoys/internal/csr"
	"github.com/verte-zerg/cybertoys/internal/report"
)

var (
	csrSubject csr.Subject
	csrKeyOut  string
)

func newCSRCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csr",
		Short: "PKCS#10 certificate signing requests",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an RSA-2048 key and a signed request",
		Args:  cobra.NoArgs,
		RunE:  runCSRGenerateCmd,
	}
	generateCmd.Flags().StringVar(&csrSubject.CN, "cn", "", "common name")
	generateCmd.Flags().StringVar(&csrSubject.O, "o", "", "organization")
	generateCmd.Flags().StringVar(&csrSubject.OU, "ou", "", "organizational unit")
	generateCmd.Flags().StringVar(&csrSubject.C, "c", "", "two-letter country code")
	generateCmd.Flags().StringVar(&csrKeyOut, "key-out", "", "write the private key here instead of stdout")

	cmd.AddCommand(generateCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "decode [pem]",
		Short: "Show the subject and algorithms of a request",
		RunE:  runCSRDecodeCmd,
	})
	return cmd
}

func runCSRGenerateCmd(cmd *cobra.Command, _ []string) error {
	req, err := csr.Generate(rand.Reader, csrSubject)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, req.PEM); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if csrKeyOut != "" {
		if err := os.WriteFile(csrKeyOut, []byte(req.PrivateKeyPEM+"\n"), 0o600); err != nil {
			return fmt.Errorf("failed to write private key: %w", err)
		}
	} else if _, err := fmt.Fprintln(out, req.PrivateKeyPEM); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	recordOperation(cmd.Context(), "csr", "generate",
		fmt.Sprintf("CN=%s O=%s OU=%s C=%s", csrSubject.CN, csrSubject.O, csrSubject.OU, csrSubject.C),
		"CERTIFICATE REQUEST")
	return nil
}

func runCSRDecodeCmd(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	info, err := csr.Decode(input)
	if err != nil {
		return err
	}
	if err := report.RenderCSR(cmd.OutOrStdout(), info); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	recordOperation(cmd.Context(), "csr", "decode", input, info.SignatureAlgorithm)
	return nil
}
