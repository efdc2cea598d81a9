package cli

import "github.com/charmbracelet/lipgloss"

// Semantic colors, matching the alert palette of the web storefront.
var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorInfo    = lipgloss.Color("#2196F3")
	colorError   = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("#8a8f98")
	colorBadge   = lipgloss.Color("#101F38")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorBadge).
			Padding(0, 1)
	itemNameStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	subtotalStyle = lipgloss.NewStyle().Bold(true)
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
)
