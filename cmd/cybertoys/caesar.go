package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/cybertoys/internal/caesar"
	"github.com/verte-zerg/cybertoys/internal/config"
	"github.com/verte-zerg/cybertoys/internal/crackui"
	"github.com/verte-zerg/cybertoys/internal/model"
	"github.com/verte-zerg/cybertoys/internal/report"
	"github.com/verte-zerg/cybertoys/internal/wordlist"
)

var (
	caesarShift int

	crackTop   int
	crackDict  string
	crackTUI   bool
	crackColor bool
)

func newCaesarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "Caesar cipher encoder, decoder and cracker",
	}
	cmd.AddCommand(newCaesarShiftCmd("encode", "Shift plaintext forward", caesar.Encode))
	cmd.AddCommand(newCaesarShiftCmd("decode", "Shift ciphertext backward", caesar.Decode))
	cmd.AddCommand(newCaesarCrackCmd())
	return cmd
}

func newCaesarShiftCmd(action, short string, fn func(string, int) string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   action + " [text]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := loadFileConfig()
			if err != nil {
				return err
			}
			applyIntConfig(cmd, "shift", &caesarShift, fileCfg.Caesar.Shift)

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := fn(input, caesarShift)
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			recordOperation(cmd.Context(), "caesar", action, input, out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&caesarShift, "shift", "s", defaultShift, "shift amount (any integer, reduced mod 26)")
	return cmd
}

func newCaesarCrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack [ciphertext]",
		Short: "Rank all 25 shifts as English plaintext",
		RunE:  runCaesarCrackCmd,
	}
	cmd.Flags().IntVar(&crackTop, "top", defaultTop, "hypotheses to print (0 = all)")
	cmd.Flags().StringVar(&crackDict, "dict", "", "extra dictionary file, one word per line")
	cmd.Flags().BoolVar(&crackTUI, "tui", false, "browse hypotheses interactively")
	cmd.Flags().BoolVar(&crackColor, "color", false, "force colored output")
	return cmd
}

func runCaesarCrackCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "top", &crackTop, fileCfg.Caesar.Top)
	applyStringConfig(cmd, "dict", &crackDict, fileCfg.Caesar.Dict)

	cfg := model.CrackConfig{Top: crackTop, DictPath: crackDict, TUI: crackTUI}
	if cfg.Top < 0 {
		return fmt.Errorf("--top must be >= 0")
	}

	words, err := loadDictionary(cfg.DictPath)
	if err != nil {
		return err
	}
	analyzer := caesar.NewAnalyzer(words...)

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	if cfg.TUI {
		return runCrackTUI(cmd, analyzer, input, len(args) == 0)
	}

	res := analyzer.Analyze(input)
	opts := report.CaesarOptions{
		Top:      cfg.Top,
		Width:    report.TerminalWidth(0),
		UseColor: report.ShouldUseColor(cmd.OutOrStdout(), crackColor),
	}
	if err := report.RenderCaesar(cmd.OutOrStdout(), res, opts); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	recordOperation(cmd.Context(), "caesar", "crack", input,
		fmt.Sprintf("shift %d: %s", res.BestGuess.Shift, res.BestGuess.Decoded))
	return nil
}

func runCrackTUI(cmd *cobra.Command, analyzer *caesar.Analyzer, input string, piped bool) error {
	m := crackui.NewModel(analyzer, input)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if piped {
		// stdin was consumed by the ciphertext
		opts = append(opts, tea.WithInputTTY())
	}
	program := tea.NewProgram(m, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run crack TUI: %w", err)
	}
	h, ok := m.Selected()
	if !ok {
		return nil
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), h.Decoded); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	recordOperation(cmd.Context(), "caesar", "crack", input, fmt.Sprintf("shift %d: %s", h.Shift, h.Decoded))
	return nil
}

// loadDictionary returns extra cracker words from path. An empty path falls
// back to the default dictionary file, which may be absent.
func loadDictionary(path string) ([]string, error) {
	explicit := path != ""
	if !explicit {
		path = config.DefaultDictPath()
	}
	words, err := wordlist.LoadWords(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load dictionary %s: %w", path, err)
	}
	words = wordlist.DictionaryWords(words)
	logrus.WithFields(logrus.Fields{
		"path":  path,
		"words": len(words),
	}).Debug("extra dictionary loaded")
	return words, nil
}
