// Package components provides render-only Bubbletea building blocks shared by
// the fleetenv full-screen views.
package components

import (
	"strings"

	"fleetworks/fleetenv/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the application header bar.
//
//	┌──────────────────────────────────────────┐
//	│  fleetenv > config        ~/.config/...  │
//	└──────────────────────────────────────────┘
func Header(width int, breadcrumb string, hint string) string {
	if width < 10 {
		return ""
	}

	left := styles.Title.Foreground(styles.Blue).Render("fleetenv")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	right := ""
	if hint != "" {
		right = styles.MutedText.Render(hint)
	}

	innerWidth := width - 4
	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(left + strings.Repeat(" ", gap) + right)
}
