package cli

import (
	"strings"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleClock  = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleErr    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleTip    = lipgloss.NewStyle().Foreground(ColorPurple).Italic(true)
	StylePaused = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleDone   = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
)

var categoryStyles = map[domain.Category]lipgloss.Style{
	domain.CategoryFocus:    lipgloss.NewStyle().Foreground(ColorBlue).Bold(true),
	domain.CategoryCreative: lipgloss.NewStyle().Foreground(ColorPurple).Bold(true),
	domain.CategoryChore:    lipgloss.NewStyle().Foreground(ColorYellow).Bold(true),
	domain.CategoryLearning: lipgloss.NewStyle().Foreground(ColorGreen).Bold(true),
	domain.CategoryRest:     lipgloss.NewStyle().Foreground(ColorDim).Bold(true),
}

// CategoryLabel renders a category as its colored uppercase display name.
func CategoryLabel(c domain.Category) string {
	style, ok := categoryStyles[c]
	if !ok {
		style = StyleDim
	}
	return style.Render(strings.ToUpper(string(c)))
}
