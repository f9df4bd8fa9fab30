package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableGap = "  "

// RenderTable renders headers over a dim rule and the rows below, each column
// padded to its widest visible cell. The last column is never padded.
// Missing cells render empty.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	widths := columnWidths(headers, rows)

	var b strings.Builder
	writeTableRow(&b, headers, widths, StyleHeader.Render)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	writeTableRow(&b, rule, widths, StyleDim.Render)

	for _, row := range rows {
		writeTableRow(&b, row, widths, nil)
	}
	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}

func writeTableRow(b *strings.Builder, cells []string, widths []int, style func(...string) string) {
	last := len(widths) - 1
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if style != nil {
			b.WriteString(style(cell))
		} else {
			b.WriteString(cell)
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", max(0, w-lipgloss.Width(cell))) + tableGap)
		}
	}
	b.WriteString("\n")
}
