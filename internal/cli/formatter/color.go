package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette. NFL red and navy for chrome, muted greens and yellows for the
// above/below-league signal.
var (
	ColorNFLRed = lipgloss.Color("#D50A0A")
	ColorNavy   = lipgloss.Color("#013369")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

var (
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)

	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)

	// StyleYards fills the yardage distribution bars.
	StyleYards = lipgloss.NewStyle().Foreground(ColorNFLRed)
)

// DeltaStyle colors a comparison: green above the league, yellow otherwise.
func DeltaStyle(above bool) lipgloss.Style {
	if above {
		return StyleGreen
	}
	return StyleYellow
}

// Header renders text upper-cased over a dim rule.
func Header(text string) string {
	return Heading(strings.ToUpper(text))
}

// Heading renders text over a dim rule of the same visible width.
func Heading(text string) string {
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(text), StyleDim.Render(strings.Repeat("─", lipgloss.Width(text))))
}

func Dim(text string) string  { return StyleDim.Render(text) }
func Bold(text string) string { return StyleBold.Render(text) }
