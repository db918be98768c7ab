package list

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// DefaultItem is a basic item with a title and an optional description. The
// title is what the filter searches.
type DefaultItem struct {
	title string
	desc  string
}

// NewDefaultItem creates a DefaultItem.
func NewDefaultItem(title, desc string) DefaultItem {
	return DefaultItem{title: title, desc: desc}
}

// Title returns the item's main text.
func (i DefaultItem) Title() string { return i.title }

// Description returns the item's secondary text.
func (i DefaultItem) Description() string { return i.desc }

// FilterValue returns the text matched by the filter.
func (i DefaultItem) FilterValue() string { return i.title }

// DefaultItemStyles holds the styles used by DefaultDelegate for each visual
// state an item can be in.
type DefaultItemStyles struct {
	NormalTitle lipgloss.Style
	NormalDesc  lipgloss.Style

	SelectedTitle lipgloss.Style
	SelectedDesc  lipgloss.Style

	// Dimmed styles apply while the user is filtering with an empty query.
	DimmedTitle lipgloss.Style
	DimmedDesc  lipgloss.Style

	// FilterMatch is layered onto the title/description style for matched
	// characters.
	FilterMatch lipgloss.Style
}

// NewDefaultItemStyles returns the default item styling.
func NewDefaultItemStyles() DefaultItemStyles {
	s := DefaultItemStyles{}

	s.NormalTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#dddddd")).
		Padding(0, 0, 0, 2)
	s.NormalDesc = s.NormalTitle.
		Foreground(lipgloss.Color("#777777"))

	s.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("#AD58B4")).
		Foreground(lipgloss.Color("#EE6FF8")).
		Padding(0, 0, 0, 1)
	s.SelectedDesc = s.SelectedTitle.
		Foreground(lipgloss.Color("#AD58B4"))

	s.DimmedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#777777")).
		Padding(0, 0, 0, 2)
	s.DimmedDesc = s.DimmedTitle.
		Foreground(lipgloss.Color("#4D4D4D"))

	s.FilterMatch = lipgloss.NewStyle().Underline(true)

	return s
}

// DefaultDelegate renders DefaultItem values (or anything exposing Title and
// Description methods) as a one- or two-line row with selection and filter
// match styling.
type DefaultDelegate struct {
	// ShowDescription toggles the second line.
	ShowDescription bool
	Styles          DefaultItemStyles
	height          int
	spacing         int
}

// NewDefaultDelegate creates a delegate with the standard two-line layout.
func NewDefaultDelegate() DefaultDelegate {
	return DefaultDelegate{
		ShowDescription: true,
		Styles:          NewDefaultItemStyles(),
		height:          2,
		spacing:         1,
	}
}

// SetHeight sets the rendered height per item.
func (d *DefaultDelegate) SetHeight(h int) { d.height = h }

// Height returns the rendered height per item.
func (d DefaultDelegate) Height() int {
	if d.ShowDescription {
		return d.height
	}
	return 1
}

// SetSpacing sets the blank lines between items.
func (d *DefaultDelegate) SetSpacing(s int) { d.spacing = s }

// Spacing returns the blank lines between items.
func (d DefaultDelegate) Spacing() int { return d.spacing }

// Update is a no-op; DefaultDelegate has no message handling of its own.
func (d DefaultDelegate) Update(msg tea.Msg, m *Model) tea.Cmd { return nil }

// Render draws one item. The index is the item's original position in the
// unfiltered collection, which is what both the selection comparison and the
// match lookup require.
func (d DefaultDelegate) Render(m *Model, index int, item Item) string {
	if m.Width() <= 0 {
		return ""
	}

	title := item.FilterValue()
	desc := ""
	if di, ok := item.(interface{ Title() string }); ok {
		title = di.Title()
	}
	if di, ok := item.(interface{ Description() string }); ok {
		desc = di.Description()
	}

	// Leave room for the selection border and padding.
	textWidth := m.Width() - 4
	if textWidth < 0 {
		textWidth = 0
	}
	title = runewidth.Truncate(title, textWidth, ellipsis)
	desc = runewidth.Truncate(desc, textWidth, ellipsis)

	s := d.Styles
	isSelected := index == m.SelectedOriginalIndex()
	emptyFilter := m.FilterState() == Filtering && m.FilterValue() == ""
	isFiltered := m.IsFiltering()

	var matches []int
	if isFiltered && !emptyFilter {
		matches = m.MatchesForItem(index)
	}

	switch {
	case emptyFilter:
		title = s.DimmedTitle.Render(title)
		desc = s.DimmedDesc.Render(desc)

	case isSelected:
		if len(matches) > 0 {
			unmatched := s.SelectedTitle.Inline(true)
			matched := unmatched.Inherit(s.FilterMatch)
			title = HighlightRuns(title, matches, matched, unmatched)
		}
		title = s.SelectedTitle.Render(title)
		desc = s.SelectedDesc.Render(desc)

	default:
		if len(matches) > 0 {
			unmatched := s.NormalTitle.Inline(true)
			matched := unmatched.Inherit(s.FilterMatch)
			title = HighlightRuns(title, matches, matched, unmatched)
		}
		title = s.NormalTitle.Render(title)
		desc = s.NormalDesc.Render(desc)
	}

	if d.ShowDescription {
		return title + "\n" + desc
	}
	return title
}
