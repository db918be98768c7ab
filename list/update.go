package list

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and returns the updated model. While the filter
// input is focused, key presses edit the query and every edit recomputes the
// filtered set from scratch; otherwise keys drive cursor movement and chrome
// toggles. Each operation runs to completion before the next message is
// processed, so a filter recomputation is never partially applied.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.showSpinner {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case statusMessageTimeoutMsg:
		if int(msg) == m.statusID {
			m.statusMessage = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.filterState == Filtering {
			return m.handleFiltering(msg)
		}
		return m.handleBrowsing(msg)
	}

	if m.delegate != nil {
		return m, m.delegate.Update(msg, &m)
	}
	return m, nil
}

// handleBrowsing processes keys while the user is navigating the list.
func (m Model) handleBrowsing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.CursorUp):
		m.CursorUp()

	case key.Matches(msg, m.KeyMap.CursorDown):
		m.CursorDown()

	case key.Matches(msg, m.KeyMap.PrevPage):
		m.PrevPage()

	case key.Matches(msg, m.KeyMap.NextPage):
		m.NextPage()

	case key.Matches(msg, m.KeyMap.GoToStart):
		m.GoToStart()

	case key.Matches(msg, m.KeyMap.GoToEnd):
		m.GoToEnd()

	case key.Matches(msg, m.KeyMap.Filter):
		m.filterState = Filtering
		m.FilterInput.CursorEnd()
		m.filterItems()
		m.updatePagination()
		return m, m.FilterInput.Focus()

	case key.Matches(msg, m.KeyMap.ClearFilter):
		if m.IsFiltering() {
			m.ClearFilter()
		}

	case key.Matches(msg, m.KeyMap.ShowFullHelp), key.Matches(msg, m.KeyMap.CloseFullHelp):
		m.Help.ShowAll = !m.Help.ShowAll
		m.updatePagination()

	case key.Matches(msg, m.KeyMap.Quit):
		return m, tea.Quit
	}

	if m.delegate != nil {
		return m, m.delegate.Update(msg, &m)
	}
	return m, nil
}

// handleFiltering processes keys while the filter input is focused. Every
// edit recomputes the filtered set live while the state stays Filtering;
// accepting freezes it under FilterApplied, cancelling returns to the
// unfiltered state.
func (m Model) handleFiltering(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.CancelWhileFiltering):
		m.resetFiltering()
		return m, nil

	case key.Matches(msg, m.KeyMap.AcceptWhileFiltering):
		m.FilterInput.Blur()
		m.ApplyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	m.filterItems()
	m.cursor = 0
	m.viewportStart = 0
	m.updatePagination()
	return m, cmd
}
