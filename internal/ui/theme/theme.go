package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — cool blues over a dark slate background
var (
	Primary   = lipgloss.Color("#64B5F6") // Sky Blue
	Secondary = lipgloss.Color("#9B59B6") // Violet
	Accent    = lipgloss.Color("#F1C40F") // Gold
	Success   = lipgloss.Color("#2ECC71") // Green
	Error     = lipgloss.Color("#E74C3C") // Red
	Text      = lipgloss.Color("#ECF0F1") // Off-white
	TextDim   = lipgloss.Color("#7F8C8D") // Grey
	BgCard    = lipgloss.Color("#1B2A3A") // Dark Slate
	Border    = lipgloss.Color("#34495E") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
