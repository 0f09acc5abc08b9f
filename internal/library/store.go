package library

import (
	"sync"

	"steamgrip/internal/domain"
)

// Store provides access to the currently loaded game library
type Store interface {
	SetLibrary(steamID string, player *domain.Player, games []domain.Game)
	SteamID() string
	Player() *domain.Player
	Games() []domain.Game
	Game(appID uint32) (domain.Game, bool)
	Len() int
}

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu      sync.RWMutex
	steamID string
	player  *domain.Player
	games   []domain.Game
	byAppID map[uint32]int
}

// NewMemoryStore creates a new memory-based library store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byAppID: make(map[uint32]int),
	}
}

// SetLibrary replaces the stored library. player may be nil when the
// resolution path never fetched a profile summary.
func (s *MemoryStore) SetLibrary(steamID string, player *domain.Player, games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.steamID = steamID
	s.player = nil
	if player != nil {
		p := *player
		s.player = &p
	}
	s.games = make([]domain.Game, len(games))
	copy(s.games, games)

	s.byAppID = make(map[uint32]int, len(games))
	for i, g := range s.games {
		s.byAppID[g.AppID] = i
	}
}

// SteamID returns the owner of the stored library, "" when none is loaded
func (s *MemoryStore) SteamID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.steamID
}

// Player returns the stored profile, nil when unknown
func (s *MemoryStore) Player() *domain.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.player == nil {
		return nil
	}
	p := *s.player
	return &p
}

// Games returns a copy of the stored games
func (s *MemoryStore) Games() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Game, len(s.games))
	copy(out, s.games)
	return out
}

// Game looks up a stored game by appid
func (s *MemoryStore) Game(appID uint32) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byAppID[appID]
	if !ok {
		return domain.Game{}, false
	}
	return s.games[i], true
}

// Len returns the number of stored games
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
