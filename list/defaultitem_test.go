package list

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultItemAccessors(t *testing.T) {
	it := NewDefaultItem("Pocky", "Expensive")

	assert.Equal(t, "Pocky", it.Title())
	assert.Equal(t, "Expensive", it.Description())
	assert.Equal(t, "Pocky", it.FilterValue(), "the filter searches the title")
}

func TestDefaultDelegateHeight(t *testing.T) {
	d := NewDefaultDelegate()
	assert.Equal(t, 2, d.Height())
	assert.Equal(t, 1, d.Spacing())

	d.ShowDescription = false
	assert.Equal(t, 1, d.Height(), "a single line without the description")

	d.ShowDescription = true
	d.SetHeight(3)
	d.SetSpacing(0)
	assert.Equal(t, 3, d.Height())
	assert.Equal(t, 0, d.Spacing())
}

func TestDefaultDelegateRender(t *testing.T) {
	items := []Item{
		NewDefaultItem("Pocky", "Expensive"),
		NewDefaultItem("Ramen", "Cheap"),
	}
	d := NewDefaultDelegate()
	m := New(items, &d, 40, 20)

	out := d.Render(&m, 0, items[0])
	assert.Contains(t, out, "Pocky")
	assert.Contains(t, out, "Expensive")
	require.Len(t, strings.Split(out, "\n"), 2)

	d.ShowDescription = false
	out = d.Render(&m, 0, items[0])
	assert.Contains(t, out, "Pocky")
	assert.NotContains(t, out, "Expensive")
}

func TestDefaultDelegateRenderZeroWidth(t *testing.T) {
	d := NewDefaultDelegate()
	m := New(testItems("a"), &d, 0, 20)

	assert.Equal(t, "", d.Render(&m, 0, testItem("a")))
}

func TestDefaultDelegateTruncates(t *testing.T) {
	it := NewDefaultItem("a very long title that cannot possibly fit", "d")
	d := NewDefaultDelegate()
	m := New([]Item{it}, &d, 16, 20)

	out := d.Render(&m, 0, it)
	assert.Contains(t, out, ellipsis)
	assert.NotContains(t, out, "possibly")
}

func TestDefaultDelegateRendersPlainItems(t *testing.T) {
	// Items without Title/Description methods fall back to the filter value.
	d := NewDefaultDelegate()
	d.ShowDescription = false
	m := New(testItems("plain"), &d, 40, 20)

	assert.Contains(t, d.Render(&m, 0, testItem("plain")), "plain")
}

func TestDefaultDelegateHighlightKeepsText(t *testing.T) {
	items := []Item{
		NewDefaultItem("Apple", ""),
		NewDefaultItem("Banana", ""),
	}
	d := NewDefaultDelegate()
	m := New(items, &d, 40, 20)
	m.SetFilterText("an")
	m.ApplyFilter()
	require.Equal(t, 1, m.Len())

	// Highlighting restyles matched runes but never drops characters.
	out := d.Render(&m, 1, items[1])
	assert.Contains(t, stripRuns(out), "Banana")
}

// stripRuns removes ANSI escape sequences so tests can compare plain text.
func stripRuns(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
