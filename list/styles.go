package list

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the list chrome. Item
// styling lives with the delegate (see DefaultItemStyles).
type Styles struct {
	Title        lipgloss.Style
	Spinner      lipgloss.Style
	FilterPrompt lipgloss.Style
	FilterCursor lipgloss.Style

	StatusBar     lipgloss.Style
	StatusEmpty   lipgloss.Style
	NoItems       lipgloss.Style
	Pagination    lipgloss.Style
	Help          lipgloss.Style

	ActivePaginationDot   lipgloss.Style
	InactivePaginationDot lipgloss.Style
}

// DefaultStyles returns a new Styles instance with default values.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1),
		Spinner:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")), // pink
		FilterPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		FilterCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 2),
		StatusEmpty: lipgloss.NewStyle().Faint(true),
		NoItems: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 2),
		Pagination: lipgloss.NewStyle().PaddingLeft(2),
		Help:       lipgloss.NewStyle().Faint(true).PaddingLeft(2),
		ActivePaginationDot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			SetString("•"),
		InactivePaginationDot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			SetString("•"),
	}
}
