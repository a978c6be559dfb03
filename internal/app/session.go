package app

import (
	"fmt"
	"path/filepath"

	fsutil "github.com/kk-code-lab/jump/internal/fs"
	"github.com/kk-code-lab/jump/internal/search"
	statepkg "github.com/kk-code-lab/jump/internal/state"
	"github.com/kk-code-lab/jump/internal/store"
)

// globalPoolFactor scales how many records number mode reads before dropping
// paths that no longer exist.
const globalPoolFactor = 4

// newInitialState builds the state for the requested mode.
func newInitialState(opts Options) (*statepkg.AppState, error) {
	if opts.Scanner == nil {
		opts.Scanner = statepkg.NewScanner(nil)
	}

	state := &statepkg.AppState{Mode: opts.Mode}
	switch opts.Mode {
	case statepkg.ModeBrowse:
		state.Browse = statepkg.NewBrowseState(opts.StartDir, statepkg.BrowseOptions{
			ShowHidden: opts.ShowHidden,
			Scanner:    opts.Scanner,
		})
		state.LastError = state.Browse.LastError

	case statepkg.ModeFuzzy:
		bookmarks, err := loadBookmarks(opts.Store)
		if err != nil {
			opts.Logger.WithError(err).Warn("bookmarks unavailable")
		}
		state.Fuzzy = statepkg.NewFuzzyState(opts.StartDir, statepkg.FuzzyOptions{
			ShowHidden: opts.ShowHidden,
			Height:     opts.VisibleRows,
			Scanner:    opts.Scanner,
			Scorer:     search.NewMatcher(),
			Bookmarks:  bookmarks,
		})
		if opts.Query != "" {
			state.Fuzzy.SetQuery(opts.Query)
			state.Fuzzy.TextEntry = true
		}
		state.LastError = state.Fuzzy.LastError

	case statepkg.ModeNumber:
		number, err := newNumberState(opts)
		if err != nil {
			return nil, err
		}
		state.Number = number

	case statepkg.ModeBookmarks:
		bookmarks, err := loadBookmarks(opts.Store)
		if err != nil {
			return nil, err
		}
		state.Bookmarks = statepkg.NewBookmarkState(bookmarks, opts.VisibleRows)

	default:
		return nil, fmt.Errorf("unsupported mode %v", opts.Mode)
	}

	if state.LastError != nil {
		opts.Logger.WithError(state.LastError).Warn("directory listing failed")
	}
	return state, nil
}

// newNumberState ranks the children of StartDir, or with Global the whole
// store, by stored score.
func newNumberState(opts Options) (*statepkg.NumberState, error) {
	if opts.Global {
		if opts.Store == nil {
			return nil, fmt.Errorf("global ranking needs a store")
		}
		records, err := opts.Store.Top(opts.NumberLimit * globalPoolFactor)
		if err != nil {
			return nil, fmt.Errorf("load ranking: %w", err)
		}
		ranked := make([]statepkg.RankedEntry, 0, len(records))
		for _, rec := range records {
			if !fsutil.Exists(rec.Path) {
				continue
			}
			ranked = append(ranked, statepkg.RankedEntry{
				FileEntry: statepkg.FileEntry{Name: rec.Name, Path: rec.Path},
				Score:     rec.Score.Raw(),
			})
		}
		return statepkg.NewNumberState("most used", ranked, opts.NumberLimit), nil
	}

	entries, err := statepkg.LoadDirectory(opts.Scanner, opts.StartDir, opts.ShowHidden)
	if err != nil {
		opts.Logger.WithError(err).Warn("directory listing failed")
	}
	scores := map[string]float64{}
	if opts.Store != nil && len(entries) > 0 {
		paths := make([]string, len(entries))
		for i, e := range entries {
			paths[i] = e.Path
		}
		if found, err := opts.Store.ScoresFor(paths); err != nil {
			opts.Logger.WithError(err).Warn("scores unavailable")
		} else {
			scores = found
		}
	}
	return statepkg.NewNumberState(opts.StartDir, statepkg.RankByScore(entries, scores), opts.NumberLimit), nil
}

func loadBookmarks(st VisitStore) ([]statepkg.Bookmark, error) {
	if st == nil {
		return nil, nil
	}
	records, err := st.ListBookmarks()
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	return toBookmarks(records), nil
}

func toBookmarks(records []store.Record) []statepkg.Bookmark {
	out := make([]statepkg.Bookmark, 0, len(records))
	for _, rec := range records {
		name := rec.Name
		if name == "" {
			name = filepath.Base(rec.Path)
		}
		out = append(out, statepkg.Bookmark{Key: rec.BookmarkKey, Name: name, Path: rec.Path})
	}
	return out
}
