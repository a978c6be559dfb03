package state

import "sort"

type scoredCandidate struct {
	item  Candidate
	score int
	lower string
}

// refilter rebuilds FilteredItems from the query and resets the position.
func (s *FuzzyState) refilter() {
	s.Cursor = 0
	s.ScrollOffset = 0

	if s.Query == "" {
		s.FilteredItems = append(s.FilteredItems[:0:0], s.AllItems...)
		return
	}

	scored := make([]scoredCandidate, 0, len(s.AllItems)+len(s.bookmarks))
	children := make(map[string]struct{}, len(s.AllItems))
	for _, item := range s.AllItems {
		children[item.Path] = struct{}{}
		m, ok := s.scorer.Match(s.Query, item.Name)
		if !ok {
			continue
		}
		item.Spans = m.Spans
		scored = append(scored, scoredCandidate{item: item, score: m.Score, lower: lowerName(item.Name)})
	}

	for _, b := range s.bookmarks {
		if _, dup := children[b.Path]; dup {
			continue
		}
		children[b.Path] = struct{}{}
		if sc, ok := s.scoreBookmark(b); ok {
			scored = append(scored, sc)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].lower < scored[j].lower
	})

	s.FilteredItems = make([]Candidate, len(scored))
	for i, sc := range scored {
		s.FilteredItems[i] = sc.item
	}
}

// scoreBookmark matches a bookmark-only entry against its name and its key
// and keeps the better score.
func (s *FuzzyState) scoreBookmark(b Bookmark) (scoredCandidate, bool) {
	name := b.Name
	if name == "" {
		name = displayName(b.Path)
	}
	item := Candidate{Name: name, Path: b.Path, BookmarkKey: b.Key, FromOverlay: true}

	nameMatch, nameOK := s.scorer.Match(s.Query, name)
	keyMatch, keyOK := s.scorer.Match(s.Query, b.Key)
	if !nameOK && !keyOK {
		return scoredCandidate{}, false
	}

	score := nameMatch.Score
	if nameOK {
		item.Spans = nameMatch.Spans
	}
	if keyOK && (!nameOK || keyMatch.Score > score) {
		score = keyMatch.Score
		item.Spans = nil
	}
	return scoredCandidate{item: item, score: score, lower: lowerName(name)}, true
}
