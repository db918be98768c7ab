package list

import "github.com/charmbracelet/lipgloss"

// This file owns the windowing math: how many items fit on screen, and where
// the visible window starts. Chrome reservations are computed here and only
// here; the view composition in view.go consumes the same headerHeight and
// footerHeight so sizing and rendering can never disagree about how many
// lines the chrome takes.

// itemHeight is the number of lines one item occupies, inter-item spacing
// included.
func (m *Model) itemHeight() int {
	if m.delegate == nil {
		return 0
	}
	return m.delegate.Height() + m.delegate.Spacing()
}

// headerHeight is the number of lines reserved above the items.
func (m *Model) headerHeight() int {
	if m.showTitle || m.filterState == Filtering {
		return 1
	}
	return 0
}

// footerHeight is the number of lines reserved below the items. Each enabled
// element takes one line; the expanded help view takes its real height.
func (m *Model) footerHeight() int {
	h := 0
	if m.showStatusBar {
		h++
	}
	if m.showPagination {
		h++
	}
	if m.showHelp {
		if m.Help.ShowAll {
			h += lipgloss.Height(m.helpView())
		} else {
			h++
		}
	}
	return h
}

// availableHeight is the number of lines left for items after chrome.
func (m *Model) availableHeight() int {
	avail := m.height - m.headerHeight() - m.footerHeight()
	if avail < 0 {
		return 0
	}
	return avail
}

// ItemsPerPage returns how many items fit in the current viewport.
func (m *Model) ItemsPerPage() int {
	return m.perPage
}

// TotalPages returns the number of pages the visible items span.
func (m *Model) TotalPages() int {
	return m.Paginator.TotalPages
}

// updatePagination recomputes how many items fit per page from the current
// dimensions and item height, then refreshes the paginator. A zero item
// height leaves the page size untouched so we never divide by zero; the view
// simply renders no items in that case.
func (m *Model) updatePagination() {
	ih := m.itemHeight()
	if m.height > 0 && ih > 0 {
		perPage := m.availableHeight() / ih
		if perPage < 1 {
			perPage = 1
		}
		m.perPage = perPage
		m.Paginator.PerPage = perPage
	}

	m.Paginator.SetTotalPages(m.Len())
	m.syncViewport()
}

// syncViewport moves viewportStart the minimum amount needed to keep the
// cursor inside the visible window, then clamps it to the list bounds. It
// also clamps the cursor itself, so the cursor-bounds invariant holds after
// any operation that shrank the visible set.
func (m *Model) syncViewport() {
	n := m.Len()
	if n == 0 {
		m.cursor = 0
		m.viewportStart = 0
		m.syncPaginator()
		return
	}

	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	if m.itemHeight() == 0 || m.perPage <= 0 {
		return
	}

	// Scroll down: keep the cursor as the last visible row.
	if m.cursor >= m.viewportStart+m.perPage {
		m.viewportStart = m.cursor - m.perPage + 1
	}
	// Scroll up: keep the cursor as the first visible row.
	if m.cursor < m.viewportStart {
		m.viewportStart = m.cursor
	}

	maxStart := n - m.perPage
	if maxStart < 0 {
		maxStart = 0
	}
	if m.viewportStart > maxStart {
		m.viewportStart = maxStart
	}
	if m.viewportStart < 0 {
		m.viewportStart = 0
	}

	m.syncPaginator()
}

// syncPaginator keeps the page indicator in step with the cursor.
func (m *Model) syncPaginator() {
	if m.perPage <= 0 {
		return
	}
	page := m.cursor / m.perPage
	if max := m.Paginator.TotalPages - 1; page > max && max >= 0 {
		page = max
	}
	if page < 0 {
		page = 0
	}
	m.Paginator.Page = page
}
