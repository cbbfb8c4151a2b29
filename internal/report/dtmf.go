package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/cybertoys/internal/dtmf"
)

// RenderTones prints the frequency pair of each keypad symbol.
func RenderTones(w io.Writer, tones []dtmf.Tone) error {
	if len(tones) == 0 {
		_, err := fmt.Fprintln(w, "No keypad symbols found.")
		return err
	}
	rows := make([][]string, 0, len(tones))
	for _, t := range tones {
		rows = append(rows, []string{
			string(t.Key),
			fmt.Sprintf("%d Hz", t.Low),
			fmt.Sprintf("%d Hz", t.High),
		})
	}
	for _, line := range formatTable([]string{"Key", "Low", "High"}, rows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
