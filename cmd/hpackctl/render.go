package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle       = lipgloss.NewStyle().Faint(true)
)

// table is a minimal fixed-width renderer for hpackctl inspect output,
// grounded on the column-width/pad-right approach used across the pack's
// lipgloss-based CLI tables.
type table struct {
	headers []string
	rows    [][]string
}

func newRenderTable(headers []string) *table {
	return &table{headers: headers}
}

func (t *table) addRow(row []string) {
	t.rows = append(t.rows, row)
}

func (t *table) render() string {
	if len(t.rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var out strings.Builder

	headerParts := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerParts[i] = padRight(tableHeaderStyle.Render(h), widths[i])
	}
	out.WriteString(strings.Join(headerParts, "  "))
	out.WriteByte('\n')

	sepParts := make([]string, len(t.headers))
	for i := range t.headers {
		sepParts[i] = mutedStyle.Render(strings.Repeat("-", widths[i]))
	}
	out.WriteString(strings.Join(sepParts, "  "))
	out.WriteByte('\n')

	for _, row := range t.rows {
		rowParts := make([]string, len(t.headers))
		for i, cell := range row {
			if i < len(widths) {
				rowParts[i] = padRight(cell, widths[i])
			}
		}
		out.WriteString(strings.Join(rowParts, "  "))
		out.WriteByte('\n')
	}

	return out.String()
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
