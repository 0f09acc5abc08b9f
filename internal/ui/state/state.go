package state

import (
	"steamgrip/internal/domain"
	"steamgrip/internal/ui/logic"
)

// AppState contains all the application state
type AppState struct {
	// Library data
	Player *domain.Player
	Games  []domain.Game

	// Derived display rows, rebuilt whenever games, filter, sort,
	// grouping, collapse state or favorites change
	Rows []logic.Row

	// Search lifecycle
	Searching   bool   // a search pipeline is in flight
	SearchPhase string // phase of the last Loading event
	LastTerm    string // term of the search in flight

	// List options
	FilterQuery     string
	SortBy          logic.SortMode
	SortDescending  bool
	GroupByPlaytime bool
	Collapsed       map[string]bool // collapsed bucket headers
	Favorites       map[uint32]bool

	// Popups
	ShowHelp         bool
	HelpScrollOffset int
	ShowDetail       bool
	DetailAppID      uint32 // game pinned in the detail popup

	// UI state
	SortOptionIndex int
	StatusMessage   string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Collapsed: make(map[string]bool),
		Favorites: make(map[uint32]bool),
	}
}

// RebuildRows recomputes the display rows from the games and list options.
func (s *AppState) RebuildRows() {
	s.Rows = logic.BuildRows(s.Games, logic.ListOptions{
		Filter:          s.FilterQuery,
		Favorites:       s.Favorites,
		GroupByPlaytime: s.GroupByPlaytime,
		Collapsed:       s.Collapsed,
		Sort:            s.SortBy,
		Descending:      s.SortDescending,
	})
}

// SetLibrary replaces the loaded library and resets per-library view state.
func (s *AppState) SetLibrary(player *domain.Player, games []domain.Game) {
	s.Player = player
	s.Games = games
	s.FilterQuery = ""
	s.Collapsed = make(map[string]bool)
	s.ShowDetail = false
	s.DetailAppID = 0
	s.RebuildRows()
}

// RowAt returns the row at the given index.
func (s *AppState) RowAt(index int) (logic.Row, bool) {
	if index < 0 || index >= len(s.Rows) {
		return logic.Row{}, false
	}
	return s.Rows[index], true
}

// GameAt returns the game at the given row index, if the row is a game.
func (s *AppState) GameAt(index int) (domain.Game, bool) {
	row, ok := s.RowAt(index)
	if !ok || row.Kind != logic.RowGame {
		return domain.Game{}, false
	}
	return row.Game, true
}

// ToggleCollapsed flips the collapse state of a bucket header.
func (s *AppState) ToggleCollapsed(bucket string) {
	if bucket == "" {
		return
	}
	s.Collapsed[bucket] = !s.Collapsed[bucket]
	s.RebuildRows()
}

// SetFavorites replaces the favorite set.
func (s *AppState) SetFavorites(appIDs []uint32) {
	favorites := make(map[uint32]bool, len(appIDs))
	for _, id := range appIDs {
		favorites[id] = true
	}
	s.Favorites = favorites
	s.RebuildRows()
}

// IsFavorite reports whether the given app is favorited.
func (s *AppState) IsFavorite(appID uint32) bool {
	return s.Favorites[appID]
}
