package list

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Segment is a contiguous run of rune positions within a string that are
// either all matched or all unmatched by a filter query. Start is inclusive,
// End exclusive.
type Segment struct {
	Start   int
	End     int
	IsMatch bool
}

// Segments converts sparse matched-rune indexes into the minimal sequence of
// contiguous runs covering the whole of text. Indexes are sorted and
// de-duplicated first; positions outside [0, len(text)) are discarded. For
// any non-empty text the returned runs are contiguous, non-overlapping and
// jointly cover every rune position exactly once.
//
// Grouping adjacent matches into a single run means a renderer emits one
// style transition per run instead of one per character, which also avoids
// styled-run separator artifacts between adjacent matched characters.
func Segments(text string, indexes []int) []Segment {
	n := len([]rune(text))
	if n == 0 {
		return nil
	}

	matched := normalizeIndexes(indexes, n)
	if len(matched) == 0 {
		return []Segment{{Start: 0, End: n}}
	}

	segs := make([]Segment, 0, len(matched)*2+1)
	pos := 0
	for i := 0; i < len(matched); {
		start := matched[i]
		end := start + 1
		for i++; i < len(matched) && matched[i] == end; i++ {
			end++
		}
		if pos < start {
			segs = append(segs, Segment{Start: pos, End: start})
		}
		segs = append(segs, Segment{Start: start, End: end, IsMatch: true})
		pos = end
	}
	if pos < n {
		segs = append(segs, Segment{Start: pos, End: n})
	}
	return segs
}

// HighlightRuns renders text with the matched style applied to the rune
// positions in indexes and the unmatched style everywhere else, one style
// transition per contiguous run.
func HighlightRuns(text string, indexes []int, matched, unmatched lipgloss.Style) string {
	segs := Segments(text, indexes)
	if len(segs) == 0 {
		return ""
	}

	runes := []rune(text)
	var b strings.Builder
	for _, s := range segs {
		part := string(runes[s.Start:s.End])
		if s.IsMatch {
			b.WriteString(matched.Render(part))
		} else {
			b.WriteString(unmatched.Render(part))
		}
	}
	return b.String()
}

// normalizeIndexes sorts, de-duplicates and range-checks match positions.
func normalizeIndexes(indexes []int, n int) []int {
	out := make([]int, 0, len(indexes))
	for _, i := range indexes {
		if i >= 0 && i < n {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	j := 0
	for i := 0; i < len(out); i++ {
		if i > 0 && out[i] == out[i-1] {
			continue
		}
		out[j] = out[i]
		j++
	}
	return out[:j]
}
