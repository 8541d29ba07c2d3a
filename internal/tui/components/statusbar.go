package components

import (
	"fmt"

	"cardworth/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width, cardCount int, dataAge string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [R]eload  [q]uit"
	right := ""
	if cardCount > 0 {
		right = fmt.Sprintf("%d cards", cardCount)
	}
	if dataAge != "" {
		right += fmt.Sprintf("  Loaded: %s ", dataAge)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
