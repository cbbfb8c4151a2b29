// Package crackui provides the Bubble Tea browser for Caesar crack results.
package crackui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/cybertoys/internal/caesar"
	"github.com/verte-zerg/cybertoys/internal/report"
)

const detailHeight = 6

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	detailStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// Model implements the Bubble Tea crack browser.
type Model struct {
	analyzer   *caesar.Analyzer
	ciphertext string
	result     caesar.Result
	byShift    bool

	table  table.Model
	detail viewport.Model
	input  textinput.Model

	editing  bool
	selected *caesar.Hypothesis

	width  int
	height int
}

// NewModel analyzes ciphertext and builds the browser.
func NewModel(analyzer *caesar.Analyzer, ciphertext string) *Model {
	if analyzer == nil {
		analyzer = caesar.NewAnalyzer()
	}
	input := textinput.New()
	input.Prompt = "Ciphertext: "
	input.CharLimit = 0
	input.Placeholder = "WKH TXLFN EURZQ IRA"

	m := &Model{
		analyzer: analyzer,
		detail:   viewport.New(0, detailHeight),
		input:    input,
	}
	m.table = table.New(
		table.WithColumns(columns(0)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	m.table.SetStyles(tableStyles())
	m.setCiphertext(ciphertext)
	return m
}

// Selected returns the hypothesis chosen with enter, if any.
func (m *Model) Selected() (caesar.Hypothesis, bool) {
	if m.selected == nil {
		return caesar.Hypothesis{}, false
	}
	return *m.selected, true
}

// Result returns the current analysis.
func (m *Model) Result() caesar.Result {
	return m.result
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateInput(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter":
			if h, ok := m.current(); ok {
				m.selected = &h
			}
			return m, tea.Quit
		case "s":
			h, _ := m.current()
			m.byShift = !m.byShift
			m.refreshRows()
			m.gotoShift(h.Shift)
			return m, nil
		case "b":
			m.gotoShift(m.result.BestGuess.Shift)
			return m, nil
		case "e", "/":
			m.editing = true
			m.input.SetValue(m.ciphertext)
			m.input.CursorEnd()
			return m, m.input.Focus()
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.refreshDetail()
	return m, cmd
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		m.setCiphertext(m.input.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	parts := []string{
		titleStyle.Render("Caesar cracker"),
		m.renderSummary(),
		m.table.View(),
		detailStyle.Render(m.detail.View()),
	}
	if m.editing {
		parts = append(parts, m.input.View())
	}
	parts = append(parts, m.renderHelp())
	return strings.Join(parts, "\n")
}

func (m *Model) setCiphertext(ciphertext string) {
	m.ciphertext = ciphertext
	m.result = m.analyzer.Analyze(ciphertext)
	m.refreshRows()
	m.gotoShift(m.result.BestGuess.Shift)
}

func (m *Model) ordered() []caesar.Hypothesis {
	if !m.byShift {
		return m.result.Hypotheses
	}
	out := make([]caesar.Hypothesis, len(m.result.Hypotheses))
	for _, h := range m.result.Hypotheses {
		out[h.Shift-caesar.MinShift] = h
	}
	return out
}

func (m *Model) refreshRows() {
	hyps := m.ordered()
	rows := make([]table.Row, 0, len(hyps))
	for i, h := range hyps {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", h.Shift),
			fmt.Sprintf("%.2f", h.Score),
			fmt.Sprintf("%d", h.WordMatches),
			oneLine(h.Decoded),
		})
	}
	m.table.SetRows(rows)
}

func (m *Model) gotoShift(shift int) {
	for i, h := range m.ordered() {
		if h.Shift == shift {
			m.table.SetCursor(i)
			break
		}
	}
	m.refreshDetail()
}

func (m *Model) current() (caesar.Hypothesis, bool) {
	hyps := m.ordered()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(hyps) {
		return caesar.Hypothesis{}, false
	}
	return hyps[idx], true
}

func (m *Model) refreshDetail() {
	h, ok := m.current()
	if !ok {
		m.detail.SetContent("")
		return
	}
	header := fmt.Sprintf("Shift %d  score %.2f  words %d", h.Shift, h.Score, h.WordMatches)
	if h.Shift == m.result.BestGuess.Shift {
		header = bestStyle.Render(header + "  (best guess)")
	}
	body := h.Decoded
	if w := m.detail.Width; w > 0 {
		body = lipgloss.NewStyle().Width(w).Render(body)
	}
	m.detail.SetContent(header + "\n" + body)
	m.detail.GotoTop()
}

func (m *Model) renderSummary() string {
	order := "score"
	if m.byShift {
		order = "shift"
	}
	spark := report.Sparkline(report.ScoresByShift(m.result))
	summary := fmt.Sprintf("Best: shift %d (%.2f)  order=%s  scores [%s]",
		m.result.BestGuess.Shift, m.result.BestGuess.Score, order, spark)
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderHelp() string {
	if m.editing {
		return headerStyle.Render("enter: analyze  esc: cancel")
	}
	return headerStyle.Render("up/down: move  b: best  s: sort by score/shift  e: edit  enter: pick  q: quit")
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.table.SetColumns(columns(m.width))
	m.table.SetWidth(m.width)
	// title (3) + summary + detail box (detailHeight + 2) + help + input
	reserved := 3 + 1 + detailHeight + 2 + 1 + 1
	m.table.SetHeight(maxInt(3, m.height-reserved))
	m.detail.Width = maxInt(10, m.width-4)
	m.input.Width = maxInt(10, m.width-lipgloss.Width(m.input.Prompt)-2)
	m.refreshDetail()
}

func columns(width int) []table.Column {
	decoded := 40
	if width > 0 {
		decoded = maxInt(10, width-4-5-7-5-6)
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Shift", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Words", Width: 5},
		{Title: "Decoded", Width: decoded},
	}
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
