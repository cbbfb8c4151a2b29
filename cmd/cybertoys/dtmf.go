package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/cybertoys/internal/dtmf"
	"github.com/verte-zerg/cybertoys/internal/model"
	"github.com/verte-zerg/cybertoys/internal/report"
)

const defaultDTMFOutput = "dtmf.wav"

var (
	dtmfSpeed      string
	dtmfSampleRate int
	dtmfOutput     string
)

func newDTMFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dtmf",
		Short: "DTMF keypad tone synthesis",
	}

	encodeCmd := &cobra.Command{
		Use:   "encode [keys]",
		Short: "Render keypad symbols to a WAV file",
		RunE:  runDTMFEncodeCmd,
	}
	encodeCmd.Flags().StringVar(&dtmfSpeed, "speed", dtmf.Normal.String(), "fast, normal or slow")
	encodeCmd.Flags().IntVar(&dtmfSampleRate, "sample-rate", dtmf.DefaultSampleRate, "sample rate in Hz")
	encodeCmd.Flags().StringVarP(&dtmfOutput, "output", "o", defaultDTMFOutput, "WAV path, '-' for stdout")

	cmd.AddCommand(encodeCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "tones [keys]",
		Short: "List the frequency pair of each key",
		RunE:  runDTMFTonesCmd,
	})
	return cmd
}

func runDTMFEncodeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "speed", &dtmfSpeed, fileCfg.DTMF.Speed)
	applyIntConfig(cmd, "sample-rate", &dtmfSampleRate, fileCfg.DTMF.SampleRate)

	cfg := model.DTMFConfig{Speed: dtmfSpeed, SampleRate: dtmfSampleRate, Output: dtmfOutput}
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("--sample-rate must be > 0")
	}
	speed, err := dtmf.ParseSpeed(cfg.Speed)
	if err != nil {
		return fmt.Errorf("invalid --speed value: %w", err)
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if len(dtmf.Tones(input)) == 0 {
		logrus.WithField("input", report.Preview(input)).Warn("no keypad symbols; output is silent")
	}
	samples := dtmf.Synthesize(input, speed, cfg.SampleRate)

	written, err := writeWAVOutput(cmd, cfg.Output, samples, cfg.SampleRate)
	if err != nil {
		return err
	}
	seconds := dtmf.Duration(input, speed)
	if cfg.Output != "-" {
		logErrf("Wrote %s (%s, %s)\n", cfg.Output, humanize.Bytes(uint64(written)),
			time.Duration(seconds*float64(time.Second)).Round(time.Millisecond))
	}
	recordOperation(cmd.Context(), "dtmf", "encode", input,
		fmt.Sprintf("%s %s", cfg.Output, humanize.Bytes(uint64(written))))
	return nil
}

func writeWAVOutput(cmd *cobra.Command, path string, samples []float64, rate int) (int64, error) {
	if path == "-" {
		cw := &countingWriter{w: cmd.OutOrStdout()}
		if err := dtmf.WriteWAV(cw, samples, rate); err != nil {
			return 0, fmt.Errorf("failed to write WAV: %w", err)
		}
		return cw.n, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	buf := bufio.NewWriter(file)
	cw := &countingWriter{w: buf}
	if err := dtmf.WriteWAV(cw, samples, rate); err != nil {
		_ = file.Close()
		return 0, fmt.Errorf("failed to write WAV: %w", err)
	}
	if err := buf.Flush(); err != nil {
		_ = file.Close()
		return 0, fmt.Errorf("failed to write WAV: %w", err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func runDTMFTonesCmd(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if err := report.RenderTones(cmd.OutOrStdout(), dtmf.Tones(input)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
