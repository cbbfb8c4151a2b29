package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/cybertoys/internal/model"
)

const previewWidth = 32

// RenderHistory prints recorded operations, oldest first.
func RenderHistory(w io.Writer, ops []model.Operation) error {
	if len(ops) == 0 {
		_, err := fmt.Fprintln(w, "No operations recorded.")
		return err
	}
	headers := []string{"ID", "When", "Tool", "Action", "Input", "Output"}
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, []string{
			fmt.Sprintf("%d", op.ID),
			op.CreatedAt.Local().Format("2006-01-02 15:04"),
			op.Tool,
			op.Action,
			truncate(oneLine(op.Input), previewWidth),
			truncate(oneLine(op.Output), previewWidth),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Preview shortens value for storage in the history table.
func Preview(value string) string {
	return truncate(oneLine(value), previewWidth)
}
