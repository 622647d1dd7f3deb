// Package ui implements the terminal chat screen for guided sessions.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the chat screen.
type Styles struct {
	Header    lipgloss.Style
	BotBubble lipgloss.Style
	UserLabel lipgloss.Style
	Chip      lipgloss.Style
	ChipIndex lipgloss.Style
	Typing    lipgloss.Style
	Notice    lipgloss.Style
	Help      lipgloss.Style
	Prompt    lipgloss.Style
}

// DefaultStyles returns styles for the given settings theme. The auto
// theme renders like light; terminals don't report their background
// reliably enough to guess.
func DefaultStyles(theme string) Styles {
	accent := lipgloss.Color("33")
	soft := lipgloss.Color("245")
	warm := lipgloss.Color("170")
	if theme == "dark" {
		accent = lipgloss.Color("45")
		soft = lipgloss.Color("243")
		warm = lipgloss.Color("213")
	}

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1),
		BotBubble: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"}).
			PaddingLeft(2),
		UserLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(warm).
			PaddingLeft(2),
		Chip: lipgloss.NewStyle().
			Foreground(accent).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		ChipIndex: lipgloss.NewStyle().
			Faint(true),
		Typing: lipgloss.NewStyle().
			Italic(true).
			Foreground(soft).
			PaddingLeft(2),
		Notice: lipgloss.NewStyle().
			Bold(true).
			Foreground(warm).
			PaddingLeft(2),
		Help: lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(1),
		Prompt: lipgloss.NewStyle().
			Foreground(accent),
	}
}
