package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles used around the simulation view.
type Theme struct {
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDDanger    lipgloss.Style

	OverlayBorder lipgloss.Style
	OverlayWin    lipgloss.Style
	OverlayLose   lipgloss.Style
	OverlayText   lipgloss.Style

	Help lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDDanger:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(0, 2),
		OverlayWin:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		OverlayLose: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		OverlayText: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
