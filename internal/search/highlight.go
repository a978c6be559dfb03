package search

import "sort"

// MergeMatchSpans joins overlapping and adjacent spans. The input need not be
// sorted.
func MergeMatchSpans(spans []MatchSpan) []MatchSpan {
	if len(spans) == 0 {
		return nil
	}
	sorted := append([]MatchSpan(nil), spans...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := make([]MatchSpan, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start <= current.End+1 {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// InSpans reports whether rune index idx falls inside any span. Spans must be
// merged.
func InSpans(spans []MatchSpan, idx int) bool {
	i := sort.Search(len(spans), func(i int) bool { return spans[i].End >= idx })
	return i < len(spans) && spans[i].Start <= idx
}
