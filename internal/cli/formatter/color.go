package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/danielgrube/chronostaff/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// FlagLabel renders one compliance flag as a colored marker.
func FlagLabel(flag domain.ComplianceFlag) string {
	switch flag {
	case domain.FlagExceedsMaxDaily:
		return StyleRed.Render("● OVER DAILY MAX")
	case domain.FlagInsufficientBreak:
		return StyleYellow.Render("● SHORT BREAK")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(flag)))
	}
}

// FlagList renders all flags of a day, or a dim dash when the day is clean.
func FlagList(flags []domain.ComplianceFlag) string {
	if len(flags) == 0 {
		return StyleDim.Render("-")
	}
	parts := make([]string, 0, len(flags))
	for _, f := range flags {
		parts = append(parts, FlagLabel(f))
	}
	return strings.Join(parts, " ")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
