package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/cybertoys/internal/xorcipher"
)

var (
	xorKey      string
	xorWarnWeak bool
	xorRaw      bool
)

func newXORCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xor",
		Short: "Repeating-key XOR cipher with hex transport",
	}
	cmd.PersistentFlags().StringVarP(&xorKey, "key", "k", "", "XOR key")
	cmd.PersistentFlags().BoolVar(&xorWarnWeak, "warn-weak", true, "warn when the key is weak")

	encodeCmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "XOR text with the key and print hex",
		RunE:  runXOREncodeCmd,
	}
	encodeCmd.Flags().BoolVar(&xorRaw, "raw", false, "also print the raw XORed text")

	cmd.AddCommand(encodeCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "decode [hex]",
		Short: "Parse space-separated hex and XOR it with the key",
		RunE:  runXORDecodeCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "strength [key]",
		Short: "Classify key strength by length",
		RunE:  runXORStrengthCmd,
	})
	return cmd
}

func prepareXOR(cmd *cobra.Command) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyBoolConfig(cmd, "warn-weak", &xorWarnWeak, fileCfg.XOR.WarnWeak)
	if xorWarnWeak && xorKey != "" && xorcipher.ClassifyStrength(xorKey) == xorcipher.Weak {
		logrus.WithField("bytes", len(xorKey)).Warn("weak XOR key; use at least 6 characters")
	}
	return nil
}

func runXOREncodeCmd(cmd *cobra.Command, args []string) error {
	if err := prepareXOR(cmd); err != nil {
		return err
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out, err := xorcipher.EncodeDecode(input, xorKey)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out.Hex); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if xorRaw {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%q\n", out.ASCII); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	recordOperation(cmd.Context(), "xor", "encode", redacted(input), out.Hex)
	return nil
}

func runXORDecodeCmd(cmd *cobra.Command, args []string) error {
	if err := prepareXOR(cmd); err != nil {
		return err
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out, err := xorcipher.DecodeHex(input, xorKey)
	if err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out.ASCII); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	recordOperation(cmd.Context(), "xor", "decode", out.Hex, redacted(out.ASCII))
	return nil
}

func runXORStrengthCmd(cmd *cobra.Command, args []string) error {
	key := xorKey
	if len(args) > 0 {
		var err error
		if key, err = readInput(cmd, args); err != nil {
			return err
		}
	}
	strength := xorcipher.ClassifyStrength(key)
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", strength, len(key))
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
