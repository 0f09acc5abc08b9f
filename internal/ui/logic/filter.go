package logic

import (
	"strings"

	"steamgrip/internal/domain"
)

// MatchesFilter checks if a game matches the filter query. Plain queries
// are case-insensitive substring matches on the game name. The prefixes
// "fav:" and "unplayed:" restrict the candidate set first; the remainder
// of the query, if any, is matched on the name as usual.
func MatchesFilter(game domain.Game, isFavorite bool, filterQuery string) bool {
	query := strings.ToLower(strings.TrimSpace(filterQuery))
	if query == "" {
		return true
	}

	if rest, ok := strings.CutPrefix(query, "fav:"); ok {
		if !isFavorite {
			return false
		}
		query = strings.TrimSpace(rest)
	} else if rest, ok := strings.CutPrefix(query, "unplayed:"); ok {
		if game.PlaytimeForever != 0 {
			return false
		}
		query = strings.TrimSpace(rest)
	}

	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(game.Name), query)
}

// NameQuery returns the part of a filter query that matches against game
// names, with any "fav:" or "unplayed:" prefix stripped. Renderers use it
// to highlight the matched substring.
func NameQuery(filterQuery string) string {
	query := strings.ToLower(strings.TrimSpace(filterQuery))
	if rest, ok := strings.CutPrefix(query, "fav:"); ok {
		return strings.TrimSpace(rest)
	}
	if rest, ok := strings.CutPrefix(query, "unplayed:"); ok {
		return strings.TrimSpace(rest)
	}
	return query
}
