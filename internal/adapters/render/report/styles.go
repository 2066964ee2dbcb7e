package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	session  lipgloss.Style
	kept     lipgloss.Style
	removed  lipgloss.Style
	failed   lipgloss.Style
	skipped  lipgloss.Style
	detail   lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	dryRun   lipgloss.Style
	fileMeta lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		session:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		kept:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		removed:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		failed:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		skipped:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		dryRun:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		fileMeta: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
