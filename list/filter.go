package list

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// FilterState describes the current phase of the filtering state machine.
type FilterState int

const (
	// Unfiltered means no filtering is active and all items are visible.
	Unfiltered FilterState = iota
	// Filtering means the user is editing the query and results update live.
	Filtering
	// FilterApplied means a query was accepted and the filtered set is
	// frozen until the filter is edited or cleared.
	FilterApplied
)

func (s FilterState) String() string {
	switch s {
	case Filtering:
		return "filtering"
	case FilterApplied:
		return "filter applied"
	default:
		return "unfiltered"
	}
}

// FilterStateInfo is a snapshot of the filtering state for callers that want
// to display or react to it without poking at list internals.
type FilterStateInfo struct {
	State       FilterState
	Query       string
	MatchCount  int
	IsFiltering bool
	// IsClearing is reserved for callers that animate filter teardown. The
	// list clears synchronously, so it always reports false here.
	IsClearing bool
}

// filteredItem pairs an item with its original position and the rune
// positions in its filter value that matched the query. Rebuilt wholesale on
// every (re-)filter; matches are kept sorted ascending.
type filteredItem struct {
	index   int
	item    Item
	matches []int
}

// itemSource adapts the item slice to the fuzzy matcher.
type itemSource []Item

func (s itemSource) String(i int) string { return s[i].FilterValue() }
func (s itemSource) Len() int            { return len(s) }

// SetFilterText replaces the filter query without applying it or moving the
// state machine.
func (m *Model) SetFilterText(s string) {
	m.FilterInput.SetValue(s)
}

// FilterValue returns the current filter query.
func (m *Model) FilterValue() string {
	return m.FilterInput.Value()
}

// FilterState returns the current filtering state.
func (m *Model) FilterState() FilterState {
	return m.filterState
}

// SetFilterState sets the filtering state directly without recomputing the
// filtered set. Intended for programmatic state management and tests.
func (m *Model) SetFilterState(st FilterState) {
	m.filterState = st
}

// IsFiltering reports whether any kind of filtering is active.
func (m *Model) IsFiltering() bool {
	return m.filterState == Filtering || m.filterState == FilterApplied
}

// FilterStateInfo returns a snapshot of the current filter state.
func (m *Model) FilterStateInfo() FilterStateInfo {
	return FilterStateInfo{
		State:       m.filterState,
		Query:       m.FilterInput.Value(),
		MatchCount:  m.Len(),
		IsFiltering: m.IsFiltering(),
		IsClearing:  false,
	}
}

// ApplyFilter applies the current filter query. An empty query resets the
// list to the unfiltered state; anything else recomputes the filtered set,
// freezes it under FilterApplied, and scrolls back to the top so results are
// guaranteed visible even if the previous scroll position is out of range.
func (m *Model) ApplyFilter() {
	if m.FilterInput.Value() == "" {
		m.resetFiltering()
		return
	}
	m.filterItems()
	m.filterState = FilterApplied
	m.cursor = 0
	m.viewportStart = 0
	m.updatePagination()
}

// ClearFilter drops any active filter, query text included, and shows the
// full item collection again. Calling it with no filter active is a no-op.
func (m *Model) ClearFilter() {
	m.resetFiltering()
}

// resetFiltering returns the list to the unfiltered state.
func (m *Model) resetFiltering() {
	m.FilterInput.Reset()
	m.FilterInput.Blur()
	m.filterState = Unfiltered
	m.filteredItems = nil
	m.cursor = 0
	m.viewportStart = 0
	m.updatePagination()
}

// filterItems recomputes the filtered set from scratch against the current
// query. With an empty query every item passes with no match positions, so a
// list in Filtering state still shows everything while the user has typed
// nothing yet. Items keep their original relative order; results are never
// re-sorted by match score.
func (m *Model) filterItems() {
	query := m.FilterInput.Value()

	if query == "" {
		fis := make([]filteredItem, len(m.items))
		for i, it := range m.items {
			fis[i] = filteredItem{index: i, item: it}
		}
		m.filteredItems = fis
		return
	}

	ranks := fuzzy.FindFrom(query, itemSource(m.items))
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Index < ranks[j].Index
	})

	fis := make([]filteredItem, 0, len(ranks))
	for _, r := range ranks {
		matches := append([]int(nil), r.MatchedIndexes...)
		sort.Ints(matches)
		fis = append(fis, filteredItem{
			index:   r.Index,
			item:    m.items[r.Index],
			matches: matches,
		})
	}
	m.filteredItems = fis
}

// MatchesForItem returns the matched rune positions of the item at the given
// original index, or nil when the item didn't match or no filter is active.
// Delegates use this for character-level highlighting.
func (m *Model) MatchesForItem(originalIndex int) []int {
	for i := range m.filteredItems {
		if m.filteredItems[i].index == originalIndex {
			return m.filteredItems[i].matches
		}
	}
	return nil
}
