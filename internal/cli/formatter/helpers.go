package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RenderCard renders a compact metric card: a dim label over a bold value.
func RenderCard(label, value string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorNavy).
		Width(width).
		PaddingLeft(1).
		PaddingRight(1).
		Render(Dim(label) + "\n" + Bold(value))
}

// Score renders a game score, or "TBD" when it was not recorded.
func Score(v *int) string {
	if v == nil {
		return "TBD"
	}
	return fmt.Sprintf("%d", *v)
}

// Count renders an integer with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// SignedEPA renders an EPA value with an explicit sign.
func SignedEPA(v float64) string {
	return fmt.Sprintf("%+.3f", v)
}
