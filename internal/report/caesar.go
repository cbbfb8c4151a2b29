package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/cybertoys/internal/caesar"
)

var (
	bestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// CaesarOptions controls RenderCaesar.
type CaesarOptions struct {
	// Top limits the table to the N highest-ranked hypotheses; 0 shows all.
	Top int
	// Width truncates decoded text to fit; 0 disables truncation.
	Width    int
	UseColor bool
}

// RenderCaesar prints the best guess, the ranked hypotheses and a score
// sparkline ordered by shift.
func RenderCaesar(w io.Writer, res caesar.Result, opts CaesarOptions) error {
	best := res.BestGuess
	title := fmt.Sprintf("Best guess (shift %d, score %.2f)", best.Shift, best.Score)
	if opts.UseColor {
		title = bestStyle.Render(title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, best.Decoded); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	rows := res.Hypotheses
	if opts.Top > 0 && opts.Top < len(rows) {
		rows = rows[:opts.Top]
	}
	headers := []string{"Rank", "Shift", "Score", "Words", "Decoded"}
	decodedWidth := 0
	if opts.Width > 0 {
		decodedWidth = opts.Width - 32
		if decodedWidth < 10 {
			decodedWidth = 10
		}
	}
	tableRows := make([][]string, 0, len(rows))
	for i, h := range rows {
		tableRows = append(tableRows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", h.Shift),
			fmt.Sprintf("%.2f", h.Score),
			fmt.Sprintf("%d", h.WordMatches),
			truncate(oneLine(h.Decoded), decodedWidth),
		})
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true, 3: true}
	for i, line := range formatTable(headers, tableRows, rightAlign) {
		if opts.UseColor && i > 0 && rows[i-1].Shift == best.Shift {
			line = bestStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	spark := fmt.Sprintf("Scores by shift 1-25: [%s]", Sparkline(ScoresByShift(res)))
	if opts.UseColor {
		spark = mutedStyle.Render(spark)
	}
	_, err := fmt.Fprintln(w, spark)
	return err
}

// ScoresByShift returns hypothesis scores indexed by shift order.
func ScoresByShift(res caesar.Result) []float64 {
	byShift := make([]caesar.Hypothesis, len(res.Hypotheses))
	copy(byShift, res.Hypotheses)
	sort.Slice(byShift, func(i, j int) bool {
		return byShift[i].Shift < byShift[j].Shift
	})
	scores := make([]float64, len(byShift))
	for i, h := range byShift {
		scores[i] = h.Score
	}
	return scores
}
