// Package search scores candidate names against a typed query.
package search

import "github.com/sahilm/fuzzy"

// MatchSpan is an inclusive [Start, End] range of matched rune indexes.
type MatchSpan struct {
	Start int
	End   int
}

// Match is the result of scoring one text.
type Match struct {
	Score int
	Spans []MatchSpan
}

// Matcher scores texts against a pattern. Higher scores are better and a
// pattern matches only when all of its characters occur in order. Matching
// ignores case.
type Matcher struct{}

// NewMatcher returns a matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match scores text and reports which runes matched.
func (m *Matcher) Match(pattern, text string) (Match, bool) {
	if pattern == "" {
		return Match{}, true
	}
	found := fuzzy.Find(pattern, []string{text})
	if len(found) == 0 {
		return Match{}, false
	}
	return Match{
		Score: found[0].Score,
		Spans: spansFromByteIndexes(text, found[0].MatchedIndexes),
	}, true
}

func spansFromByteIndexes(text string, byteIdx []int) []MatchSpan {
	if len(byteIdx) == 0 {
		return nil
	}
	runeAt := make(map[int]int, len(byteIdx))
	for _, b := range byteIdx {
		runeAt[b] = -1
	}
	r := 0
	for b := range text {
		if _, ok := runeAt[b]; ok {
			runeAt[b] = r
		}
		r++
	}

	spans := make([]MatchSpan, 0, len(byteIdx))
	for _, b := range byteIdx {
		idx := runeAt[b]
		if idx < 0 {
			continue
		}
		spans = append(spans, MatchSpan{Start: idx, End: idx})
	}
	return MergeMatchSpans(spans)
}
