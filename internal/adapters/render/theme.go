// Package render formats command results and person listings for the terminal.
package render

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Accent    = lipgloss.Color("#60A5FA") // Blue
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	IndexStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(4).
			Align(lipgloss.Right)

	NameStyle = lipgloss.NewStyle().
			Bold(true)

	Label = lipgloss.NewStyle().
		Foreground(Secondary)

	TagStyle = lipgloss.NewStyle().
			Background(Accent).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	RemarkStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
