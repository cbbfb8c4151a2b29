package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/cybertoys/internal/basen"
)

var baseName string

func newBaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base",
		Short: "Base16/32/64/85 conversion",
	}
	cmd.PersistentFlags().StringVarP(&baseName, "base", "b", "base64",
		"encoding ("+strings.Join(basen.Names(), ", ")+")")
	cmd.AddCommand(&cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text",
		RunE:  runBaseEncodeCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "decode [text]",
		Short: "Decode text",
		RunE:  runBaseDecodeCmd,
	})
	return cmd
}

func runBaseEncodeCmd(cmd *cobra.Command, args []string) error {
	b, err := basen.ParseBase(baseName)
	if err != nil {
		return fmt.Errorf("invalid --base value: %w", err)
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out, err := basen.Encode(b, []byte(input))
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	recordOperation(cmd.Context(), "base", "encode "+b.String(), input, out)
	return nil
}

func runBaseDecodeCmd(cmd *cobra.Command, args []string) error {
	b, err := basen.ParseBase(baseName)
	if err != nil {
		return fmt.Errorf("invalid --base value: %w", err)
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out, err := basen.Decode(b, input)
	if err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(append(out, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	recordOperation(cmd.Context(), "base", "decode "+b.String(), input, string(out))
	return nil
}
