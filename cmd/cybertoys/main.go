// Package main provides the CLI entrypoint for cybertoys.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/cybertoys/internal/config"
	"github.com/verte-zerg/cybertoys/internal/dtmf"
	"github.com/verte-zerg/cybertoys/internal/model"
	"github.com/verte-zerg/cybertoys/internal/report"
	"github.com/verte-zerg/cybertoys/internal/rsakit"
	"github.com/verte-zerg/cybertoys/internal/store"
)

const (
	defaultShift = 3
	defaultTop   = 10
)

var (
	verbose bool

	historyTool  string
	historySince string
	historyLast  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Debug("command failed")
		logErrln(userMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cybertoys",
		Short:         "Small cryptography toys for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogging(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newCaesarCmd())
	rootCmd.AddCommand(newXORCmd())
	rootCmd.AddCommand(newBaseCmd())
	rootCmd.AddCommand(newRSACmd())
	rootCmd.AddCommand(newCSRCmd())
	rootCmd.AddCommand(newDTMFCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func configureLogging(debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.WarnLevel)
}

func loadFileConfig() (config.FileConfig, error) {
	path := config.DefaultConfigPath()
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	logrus.WithField("path", path).Debug("config loaded")
	return cfg, nil
}

// readInput joins positional args, or reads stdin when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func openStore() (*store.Store, error) {
	path := config.DefaultDBPath()
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logrus.WithError(cerr).Warn("failed to close db")
	}
}

// recordOperation appends a history entry. History is best-effort: failures
// are logged and never fail the command.
func recordOperation(ctx context.Context, tool, action, input, output string) {
	st, err := openStore()
	if err != nil {
		logrus.WithError(err).Warn("history disabled")
		return
	}
	defer closeStore(st)
	op := model.Operation{
		Tool:   tool,
		Action: action,
		Input:  report.Preview(input),
		Output: report.Preview(output),
	}
	id, err := st.RecordOperation(ctx, op)
	if err != nil {
		logrus.WithError(err).Warn("failed to record operation")
		return
	}
	logrus.WithFields(logrus.Fields{
		"id":     id,
		"tool":   tool,
		"action": action,
	}).Debug("operation recorded")
}

// redacted stands in for plaintext in history entries.
func redacted(plaintext string) string {
	return fmt.Sprintf("<%d bytes>", len(plaintext))
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent operations",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyTool, "tool", "", "tool filter (caesar, xor, base, rsa, csr, dtmf)")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 20, "limit to last N operations (0 = all)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	filter := model.HistoryFilter{Tool: historyTool, Last: historyLast}
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &parsed
	}
	if filter.Last < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ops, err := st.ListOperations(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("failed to list operations: %w", err)
	}
	return report.RenderHistory(cmd.OutOrStdout(), ops)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		logrus.WithField("path", path).Info("config created")
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# cybertoys configuration
# Uncomment a value to enable it. CLI flags override config values.

[caesar]
# shift = %d               # Shift for caesar encode/decode
# top = %d                # Hypotheses shown by caesar crack (0 = all)
# dict = %q   # Extra dictionary words, one per line

[xor]
# warn-weak = true         # Warn when the key classifies as weak

[dtmf]
# speed = %q         # fast, normal or slow
# sample-rate = %d     # WAV sample rate in Hz

[rsa]
# bits = %d             # Modulus size for rsa keygen
`,
		defaultShift,
		defaultTop,
		config.DefaultDictPath(),
		dtmf.Normal.String(),
		dtmf.DefaultSampleRate,
		rsakit.DefaultBits,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
