package list

import (
	"testing"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterStateString(t *testing.T) {
	assert.Equal(t, "unfiltered", Unfiltered.String())
	assert.Equal(t, "filtering", Filtering.String())
	assert.Equal(t, "filter applied", FilterApplied.String())
}

func TestApplyFilter(t *testing.T) {
	m := newTestList(20, "Apple", "Banana", "Cherry")

	m.SetFilterText("an")
	m.ApplyFilter()

	assert.Equal(t, FilterApplied, m.FilterState())
	require.Equal(t, 1, m.Len())
	assert.Equal(t, "Banana", m.VisibleItems()[0].FilterValue())
	assert.Equal(t, 3, m.TotalItems(), "the full collection is untouched")
	assert.Equal(t, 0, m.Cursor())
}

func TestApplyFilterIdempotent(t *testing.T) {
	m := newTestList(20, "Apple", "Banana", "Cherry")
	m.SetFilterText("an")

	m.ApplyFilter()
	first := m.VisibleItems()
	m.ApplyFilter()

	assert.Equal(t, FilterApplied, m.FilterState())
	assert.Equal(t, first, m.VisibleItems())
}

func TestApplyEmptyFilterResets(t *testing.T) {
	m := newTestList(20, "Apple", "Banana", "Cherry")
	m.SetFilterText("an")
	m.ApplyFilter()
	require.Equal(t, 1, m.Len())

	m.SetFilterText("")
	m.ApplyFilter()

	assert.Equal(t, Unfiltered, m.FilterState())
	assert.Equal(t, 3, m.Len())
}

func TestClearFilter(t *testing.T) {
	m := newTestList(20, "Apple", "Banana", "Cherry")
	m.Select(2)
	m.SetFilterText("an")
	m.ApplyFilter()

	m.ClearFilter()

	assert.Equal(t, Unfiltered, m.FilterState())
	assert.Equal(t, "", m.FilterValue())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 0, m.Cursor())

	// Clearing again is a no-op.
	m.ClearFilter()
	assert.Equal(t, Unfiltered, m.FilterState())
}

func TestFilterPreservesOriginalOrder(t *testing.T) {
	// The fuzzy matcher ranks "a" highest, but results must keep the
	// collection order, never the score order.
	m := newTestList(20, "xaya", "ax", "a")

	m.SetFilterText("a")
	m.ApplyFilter()

	require.Equal(t, 3, m.Len())
	got := make([]string, 0, 3)
	for _, it := range m.VisibleItems() {
		got = append(got, it.FilterValue())
	}
	assert.Equal(t, []string{"xaya", "ax", "a"}, got)
}

func TestFilterEmptyCollection(t *testing.T) {
	m := newTestList(20)

	m.SetFilterText("anything")
	m.ApplyFilter()

	assert.Equal(t, FilterApplied, m.FilterState())
	assert.Equal(t, 0, m.Len())
	assert.True(t, m.IsEmpty())
	assert.Nil(t, m.SelectedItem())
}

func TestFilterNoMatches(t *testing.T) {
	m := newTestList(20, "Apple", "Banana")

	m.SetFilterText("zzz")
	m.ApplyFilter()

	assert.Equal(t, FilterApplied, m.FilterState())
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 2, m.TotalItems())
}

func TestMatchesForItem(t *testing.T) {
	m := newTestList(20, "Apple", "Banana", "Cherry")

	m.SetFilterText("an")
	m.ApplyFilter()

	matches := m.MatchesForItem(1)
	require.Len(t, matches, 2)
	assert.True(t, matches[0] < matches[1], "match positions are sorted")

	runes := []rune("Banana")
	assert.Equal(t, 'a', unicode.ToLower(runes[matches[0]]))
	assert.Equal(t, 'n', unicode.ToLower(runes[matches[1]]))

	assert.Nil(t, m.MatchesForItem(0), "non-matching item has no positions")
	assert.Nil(t, m.MatchesForItem(99))
}

func TestMatchesForItemUnfiltered(t *testing.T) {
	m := newTestList(20, "Apple")
	assert.Nil(t, m.MatchesForItem(0))
}

func TestFilteredSelection(t *testing.T) {
	m := newTestList(20, "Apple", "Banana", "Cherry", "Cranberry")

	m.SetFilterText("rr")
	m.ApplyFilter()
	require.Equal(t, 2, m.Len())

	m.Select(1)
	assert.Equal(t, "Cranberry", m.SelectedItem().FilterValue())
	assert.Equal(t, 3, m.SelectedOriginalIndex())
}

func TestFilterStateInfo(t *testing.T) {
	m := newTestList(20, "Apple", "Banana", "Cherry")

	info := m.FilterStateInfo()
	assert.Equal(t, Unfiltered, info.State)
	assert.False(t, info.IsFiltering)
	assert.Equal(t, 3, info.MatchCount)

	m.SetFilterText("an")
	m.ApplyFilter()

	info = m.FilterStateInfo()
	assert.Equal(t, FilterApplied, info.State)
	assert.Equal(t, "an", info.Query)
	assert.Equal(t, 1, info.MatchCount)
	assert.True(t, info.IsFiltering)
	assert.False(t, info.IsClearing)
}

func TestFilterKeyFlow(t *testing.T) {
	m := newTestList(20, "Apple", "Banana", "Cherry")

	// "/" opens the filter; with nothing typed yet everything stays visible.
	m, _ = m.Update(keyMsg("/"))
	assert.Equal(t, Filtering, m.FilterState())
	assert.Equal(t, 3, m.Len())

	// Live narrowing while typing.
	m, _ = m.Update(keyMsg("a"))
	m, _ = m.Update(keyMsg("n"))
	assert.Equal(t, Filtering, m.FilterState())
	assert.Equal(t, "an", m.FilterValue())
	assert.Equal(t, 1, m.Len())

	// Enter freezes the result set.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, FilterApplied, m.FilterState())
	assert.Equal(t, 1, m.Len())

	// Esc clears everything.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, Unfiltered, m.FilterState())
	assert.Equal(t, "", m.FilterValue())
	assert.Equal(t, 3, m.Len())
}

func TestFilterCancelWhileTyping(t *testing.T) {
	m := newTestList(20, "Apple", "Banana", "Cherry")

	m, _ = m.Update(keyMsg("/"))
	m, _ = m.Update(keyMsg("a"))
	require.Equal(t, Filtering, m.FilterState())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, Unfiltered, m.FilterState())
	assert.Equal(t, "", m.FilterValue())
	assert.Equal(t, 3, m.Len())
}

func TestFilterAcceptEmptyQuery(t *testing.T) {
	m := newTestList(20, "Apple", "Banana", "Cherry")

	m, _ = m.Update(keyMsg("/"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, Unfiltered, m.FilterState())
	assert.Equal(t, 3, m.Len())
}
