package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the run monitor.
var styles = struct {
	Container lipgloss.Style
	Title     lipgloss.Style
	Section   lipgloss.Style
	Spinner   lipgloss.Style
	Progress  lipgloss.Style
	Station   lipgloss.Style
	Bar       lipgloss.Style
	Done      lipgloss.Style
	Canceled  lipgloss.Style
	Error     lipgloss.Style
	Footer    lipgloss.Style
}{
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),

	Spinner: lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")),

	Progress: lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")),

	Station: lipgloss.NewStyle().
		Foreground(lipgloss.Color("114")),

	Bar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")),

	Done: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82")),

	Canceled: lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")),

	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),
}
