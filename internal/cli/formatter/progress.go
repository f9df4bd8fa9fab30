package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a fixed-width horizontal bar filled to frac (clamped to
// [0,1]) in the given style. The empty remainder is dimmed.
func RenderBar(frac float64, width int, style lipgloss.Style) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(frac*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	empty := width - filled

	return style.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, empty))
}
