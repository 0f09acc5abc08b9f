package favorites

import (
	"sort"
	"sync"

	"steamgrip/internal/eventbus"
)

// Manager owns the set of favorite games
type Manager interface {
	Toggle(appID uint32) bool
	IsFavorite(appID uint32) bool
	All() []uint32
}

// manager is the concrete implementation
type manager struct {
	bus eventbus.EventBus
	mu  sync.RWMutex
	set map[uint32]struct{}
}

// NewManager creates a favorites manager seeded from config. It subscribes
// to toggle events and publishes the updated set after every change; the
// caller persists that set.
func NewManager(bus eventbus.EventBus, initial []uint32) Manager {
	m := &manager{
		bus: bus,
		set: make(map[uint32]struct{}, len(initial)),
	}

	for _, id := range initial {
		m.set[id] = struct{}{}
	}

	bus.Subscribe(eventbus.EventFavoriteToggled, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FavoriteToggledEvent); ok {
			m.Toggle(event.AppID)
		}
	})

	return m
}

// Toggle flips a game's favorite mark and reports the new state
func (m *manager) Toggle(appID uint32) bool {
	m.mu.Lock()
	_, exists := m.set[appID]
	if exists {
		delete(m.set, appID)
	} else {
		m.set[appID] = struct{}{}
	}
	ids := m.allLocked()
	m.mu.Unlock()

	m.bus.Publish(eventbus.FavoritesChangedEvent{AppIDs: ids})
	return !exists
}

// IsFavorite reports whether a game is marked
func (m *manager) IsFavorite(appID uint32) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.set[appID]
	return ok
}

// All returns the favorite appids in ascending order
func (m *manager) All() []uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.allLocked()
}

func (m *manager) allLocked() []uint32 {
	ids := make([]uint32, 0, len(m.set))
	for id := range m.set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
