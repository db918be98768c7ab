package list

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// View renders the complete list: header, windowed items, then the footer
// elements. Exactly the chrome elements counted by headerHeight and
// footerHeight are emitted, one line each, so the items always get the space
// the windowing math reserved for them.
func (m Model) View() string {
	sections := make([]string, 0, 5)

	if m.showTitle || m.filterState == Filtering {
		sections = append(sections, m.headerView())
	}

	sections = append(sections, m.itemsView())

	if m.showStatusBar {
		sections = append(sections, m.statusView())
	}
	if m.showPagination {
		sections = append(sections, m.paginationView())
	}
	if m.showHelp {
		sections = append(sections, m.helpView())
	}

	return strings.Join(sections, "\n")
}

// headerView renders the filter input while filtering, the title otherwise.
func (m Model) headerView() string {
	if m.filterState == Filtering {
		view := m.FilterInput.View()
		if m.showSpinner {
			view = m.spinner.View() + " " + view
		}
		return view
	}

	title := m.Title
	if m.filterState == FilterApplied {
		title += fmt.Sprintf(" (filtered: %d)", m.Len())
	}
	if m.width > 0 {
		title = runewidth.Truncate(title, m.width, ellipsis)
	}
	view := m.Styles.Title.Render(title)
	if m.showSpinner {
		view = m.spinner.View() + " " + view
	}
	return view
}

// itemsView renders the visible window of items, or a placeholder when there
// is nothing to show. An empty collection and a filter with zero hits get
// distinct messages.
func (m Model) itemsView() string {
	if m.TotalItems() == 0 {
		return m.Styles.NoItems.Render("No items.")
	}
	if m.Len() == 0 {
		return m.Styles.NoItems.Render("Nothing matched.")
	}

	if m.itemHeight() == 0 {
		return ""
	}

	start := m.viewportStart
	end := start + m.perPage
	if n := m.Len(); end > n {
		end = n
	}
	if start < 0 || start >= end {
		return ""
	}

	spacing := m.delegate.Spacing()
	lines := make([]string, 0, (end-start)*(1+spacing))
	for i := start; i < end; i++ {
		originalIndex, item := m.visibleAt(i)
		rendered := m.delegate.Render(&m, originalIndex, item)
		if rendered == "" {
			continue
		}
		lines = append(lines, rendered)
		if i < end-1 {
			for s := 0; s < spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// statusView renders the "X/Y items" line, or the current status message
// while one is live.
func (m Model) statusView() string {
	if m.statusMessage != "" {
		msg := m.statusMessage
		if m.width > 0 {
			msg = runewidth.Truncate(msg, m.width, ellipsis)
		}
		return m.Styles.StatusBar.Render(msg)
	}

	singular, plural := m.StatusBarItemName()
	if m.IsEmpty() {
		return m.Styles.StatusBar.Inherit(m.Styles.StatusEmpty).
			Render(fmt.Sprintf("0 %s", plural))
	}

	noun := plural
	if m.Len() == 1 {
		noun = singular
	}
	return m.Styles.StatusBar.Render(
		fmt.Sprintf("%d/%d %s", m.cursor+1, m.Len(), noun))
}

// paginationView renders the page dots (or arabic indicator).
func (m Model) paginationView() string {
	return m.Styles.Pagination.Render(m.Paginator.View())
}

// helpView renders the contextual key help.
func (m Model) helpView() string {
	return m.Styles.Help.Render(m.Help.View(m))
}
