package logic

import (
	"sort"
	"strings"

	"steamgrip/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortByName SortMode = iota
	SortByPlaytime
	SortByAppID
	SortByLastPlayed
)

// SortModeFromKey maps a config/sort-option key to a SortMode.
// Unknown keys fall back to name order.
func SortModeFromKey(key string) SortMode {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "playtime":
		return SortByPlaytime
	case "appid":
		return SortByAppID
	case "lastplayed", "last_played":
		return SortByLastPlayed
	default:
		return SortByName
	}
}

// Key returns the config/sort-option key for the mode.
func (m SortMode) Key() string {
	switch m {
	case SortByPlaytime:
		return "playtime"
	case SortByAppID:
		return "appid"
	case SortByLastPlayed:
		return "lastplayed"
	default:
		return "name"
	}
}

// Label returns the human-readable name of the mode.
func (m SortMode) Label() string {
	switch m {
	case SortByPlaytime:
		return "Playtime"
	case SortByAppID:
		return "App ID"
	case SortByLastPlayed:
		return "Last played"
	default:
		return "Name"
	}
}

// SortGames sorts the games in place. The base order is ascending;
// descending reverses it.
func SortGames(games []domain.Game, mode SortMode, descending bool) {
	sort.SliceStable(games, func(i, j int) bool {
		c := compareGames(games[i], games[j], mode)
		if c == 0 {
			return false
		}
		if descending {
			return c > 0
		}
		return c < 0
	})
}

// compareGames orders two games by the primary criterion, breaking ties
// by name and finally by appid so the order is total.
func compareGames(a, b domain.Game, mode SortMode) int {
	switch mode {
	case SortByPlaytime:
		if a.PlaytimeForever != b.PlaytimeForever {
			if a.PlaytimeForever < b.PlaytimeForever {
				return -1
			}
			return 1
		}
	case SortByAppID:
		if a.AppID != b.AppID {
			if a.AppID < b.AppID {
				return -1
			}
			return 1
		}
	case SortByLastPlayed:
		if a.RtimeLastPlayed != b.RtimeLastPlayed {
			if a.RtimeLastPlayed < b.RtimeLastPlayed {
				return -1
			}
			return 1
		}
	}

	nameA := strings.ToLower(a.Name)
	nameB := strings.ToLower(b.Name)
	if nameA != nameB {
		if nameA < nameB {
			return -1
		}
		return 1
	}
	if a.AppID != b.AppID {
		if a.AppID < b.AppID {
			return -1
		}
		return 1
	}
	return 0
}
