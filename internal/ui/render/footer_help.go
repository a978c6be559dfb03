package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/jump/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles mode-specific help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	switch state.Mode {
	case statepkg.ModeBrowse:
		return []string{
			"label: enter",
			"↵: pick here",
			"⌫: up",
			".: hidden",
			"Esc: quit",
		}
	case statepkg.ModeFuzzy:
		if state.Fuzzy != nil && state.Fuzzy.TextEntry {
			return []string{
				"type: filter",
				"↵: pick",
				"Esc: clear",
				"↑↓: select",
			}
		}
		return []string{
			"/: filter",
			"j/k: move",
			"l/h: in/out",
			"g/G: ends",
			".: hidden",
			"↵: pick",
			"q: quit",
		}
	case statepkg.ModeNumber:
		return []string{
			"0-9: number",
			"↵: pick",
			"⌫: erase",
			"Esc: quit",
		}
	case statepkg.ModeBookmarks:
		return []string{
			"key: jump",
			"j/k: move",
			"↵: pick",
			"Esc: quit",
		}
	}
	return nil
}
