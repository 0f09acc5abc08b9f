package logic

import (
	"steamgrip/internal/domain"
)

// Playtime bucket names, in display order.
const (
	BucketFavorites = "Favorites"
	BucketUnplayed  = "Unplayed"
	BucketLight     = "Under 10 hours"
	BucketMedium    = "10-100 hours"
	BucketHeavy     = "100+ hours"
)

// BucketOrder is the fixed display order of playtime buckets.
var BucketOrder = []string{BucketFavorites, BucketUnplayed, BucketLight, BucketMedium, BucketHeavy}

// RowKind discriminates the rows of the library list.
type RowKind int

const (
	RowHeader RowKind = iota
	RowGame
)

// Row is one renderable line of the library list.
type Row struct {
	Kind   RowKind
	Bucket string // bucket name for headers; empty for ungrouped games
	Count  int    // games under this header (headers only)
	Game   domain.Game
}

// ListOptions control how the games list is turned into rows.
type ListOptions struct {
	Filter          string
	Favorites       map[uint32]bool
	GroupByPlaytime bool
	Collapsed       map[string]bool
	Sort            SortMode
	Descending      bool
}

// BucketFor assigns a game to its playtime bucket. Favorites win over
// playtime so a game never appears twice.
func BucketFor(game domain.Game, isFavorite bool) string {
	if isFavorite {
		return BucketFavorites
	}
	if game.PlaytimeForever == 0 {
		return BucketUnplayed
	}
	switch hours := game.Hours(); {
	case hours < 10:
		return BucketLight
	case hours < 100:
		return BucketMedium
	default:
		return BucketHeavy
	}
}

// BuildRows filters, sorts and optionally groups the games into display rows.
// Collapsed bucket headers keep their row but hide their games.
func BuildRows(games []domain.Game, opts ListOptions) []Row {
	visible := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if MatchesFilter(g, opts.Favorites[g.AppID], opts.Filter) {
			visible = append(visible, g)
		}
	}
	SortGames(visible, opts.Sort, opts.Descending)

	if !opts.GroupByPlaytime {
		rows := make([]Row, 0, len(visible))
		for _, g := range visible {
			rows = append(rows, Row{Kind: RowGame, Game: g})
		}
		return rows
	}

	buckets := make(map[string][]domain.Game)
	for _, g := range visible {
		name := BucketFor(g, opts.Favorites[g.AppID])
		buckets[name] = append(buckets[name], g)
	}

	var rows []Row
	for _, name := range BucketOrder {
		games := buckets[name]
		if len(games) == 0 {
			continue
		}
		rows = append(rows, Row{Kind: RowHeader, Bucket: name, Count: len(games)})
		if opts.Collapsed[name] {
			continue
		}
		for _, g := range games {
			rows = append(rows, Row{Kind: RowGame, Bucket: name, Game: g})
		}
	}
	return rows
}

// GameRowIndices returns the indices of all game rows, for cursor jumps.
func GameRowIndices(rows []Row) []int {
	var indices []int
	for i, row := range rows {
		if row.Kind == RowGame {
			indices = append(indices, i)
		}
	}
	return indices
}
