package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Tree items
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("8")).
			Foreground(lipgloss.Color("15")).
			Bold(true)

	sessionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	paneItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	editorIconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	editorIconSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("2")).
				Background(lipgloss.Color("8"))

	plainIconSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("8"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	// Process tree, used by the tree command
	editorLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	// Separator
	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	// Help / status
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	// Error
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
)
