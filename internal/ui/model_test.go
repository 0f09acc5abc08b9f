package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steamgrip/internal/config"
	"steamgrip/internal/domain"
	"steamgrip/internal/eventbus"
	"steamgrip/internal/library"
	inputtypes "steamgrip/internal/ui/input/types"
	"steamgrip/internal/ui/logic"
)

// recordingBus captures published events instead of dispatching them
type recordingBus struct {
	published []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.published = append(b.published, event)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

// fakeSearchControl records activation flips
type fakeSearchControl struct {
	calls []bool
}

func (f *fakeSearchControl) SetActive(active bool) {
	f.calls = append(f.calls, active)
}

func newTestModel(t *testing.T) (*Model, *recordingBus, *fakeSearchControl, *library.MemoryStore) {
	t.Helper()
	bus := &recordingBus{}
	ctl := &fakeSearchControl{}
	store := library.NewMemoryStore()
	m := NewModel(bus, config.DefaultConfig(), store, ctl)
	m.width = 80
	m.height = 24
	return m, bus, ctl, store
}

func loadTestLibrary(m *Model, store *library.MemoryStore) {
	games := []domain.Game{
		{AppID: 620, Name: "Portal 2", PlaytimeForever: 750},
		{AppID: 400, Name: "Portal", PlaytimeForever: 90},
		{AppID: 570, Name: "Dota 2", PlaytimeForever: 12000},
		{AppID: 220, Name: "Half-Life 2"},
	}
	player := &domain.Player{SteamID: "76561197960287930", PersonaName: "Rabscuttle"}
	store.SetLibrary("76561197960287930", player, games)
	m.state.SetLibrary(store.Player(), store.Games())
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSearchSubmitPublishesTrimmedTerm(t *testing.T) {
	m, bus, _, _ := newTestModel(t)

	m.processAction(inputtypes.SubmitTextAction{Text: "  gaben ", Mode: inputtypes.ModeSearch})

	require.Len(t, bus.published, 1)
	ev, ok := bus.published[0].(eventbus.SearchRequestedEvent)
	require.True(t, ok)
	assert.Equal(t, "gaben", ev.Term)
}

func TestSearchPromptTogglesActivation(t *testing.T) {
	m, _, ctl, _ := newTestModel(t)

	m.Update(keyRune('s'))
	assert.Equal(t, []bool{true}, ctl.calls)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []bool{true, false}, ctl.calls)
}

func TestSearchSubmitKeepsPromptActive(t *testing.T) {
	m, bus, ctl, _ := newTestModel(t)

	m.Update(keyRune('s'))
	m.Update(keyRune('g'))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Prompt stays open through the lookup, so no deactivation yet
	assert.Equal(t, []bool{true}, ctl.calls)
	require.NotEmpty(t, bus.published)
	ev, ok := bus.published[len(bus.published)-1].(eventbus.SearchRequestedEvent)
	require.True(t, ok)
	assert.Equal(t, "g", ev.Term)
}

func TestFavoriteToggleGoesThroughBus(t *testing.T) {
	m, bus, _, store := newTestModel(t)
	loadTestLibrary(m, store)
	m.navigator.SetCursor(0, len(m.state.Rows))

	game, ok := m.state.GameAt(0)
	require.True(t, ok)

	m.processAction(inputtypes.ToggleFavoriteAction{})

	require.Len(t, bus.published, 1)
	ev, isToggle := bus.published[0].(eventbus.FavoriteToggledEvent)
	require.True(t, isToggle)
	assert.Equal(t, game.AppID, ev.AppID)

	// State only changes once the round trip comes back
	assert.False(t, m.state.IsFavorite(game.AppID))
}

func TestGroupingToggleBuildsHeaders(t *testing.T) {
	m, _, _, store := newTestModel(t)
	loadTestLibrary(m, store)
	require.Len(t, m.state.Rows, 4)

	m.processAction(inputtypes.ToggleGroupingAction{})

	assert.True(t, m.state.GroupByPlaytime)
	headers := 0
	for _, row := range m.state.Rows {
		if row.Kind == logic.RowHeader {
			headers++
		}
	}
	assert.NotZero(t, headers)
	assert.Zero(t, m.navigator.Cursor())
}

func TestFilterTypedLiveAndCleared(t *testing.T) {
	m, _, _, store := newTestModel(t)
	loadTestLibrary(m, store)

	m.Update(keyRune('/'))
	m.Update(keyRune('p'))
	m.Update(keyRune('o'))
	m.Update(keyRune('r'))

	assert.Equal(t, "por", m.state.FilterQuery)
	require.Len(t, m.state.Rows, 2) // Portal and Portal 2

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.state.FilterQuery)
	assert.Len(t, m.state.Rows, 4)
}

func TestRandomGameLandsOnGameRow(t *testing.T) {
	m, _, _, store := newTestModel(t)
	loadTestLibrary(m, store)
	m.state.GroupByPlaytime = true
	m.state.RebuildRows()

	for i := 0; i < 10; i++ {
		m.processAction(inputtypes.RandomGameAction{})
		_, ok := m.state.GameAt(m.navigator.Cursor())
		assert.True(t, ok)
	}
}

func TestDetailPinsGameAcrossRebuilds(t *testing.T) {
	m, _, _, store := newTestModel(t)
	loadTestLibrary(m, store)
	m.navigator.SetCursor(1, len(m.state.Rows))
	game, ok := m.state.GameAt(1)
	require.True(t, ok)

	m.processAction(inputtypes.OpenDetailAction{})
	require.True(t, m.state.ShowDetail)
	assert.Equal(t, game.AppID, m.state.DetailAppID)

	// Regrouping moves rows around but the popup target stays pinned
	m.state.GroupByPlaytime = true
	m.state.RebuildRows()
	assert.Equal(t, game.AppID, m.state.DetailAppID)
}

func TestQuitActionQuits(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	cmd := m.processAction(inputtypes.QuitAction{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLibraryLoadMovesCursorHome(t *testing.T) {
	m, _, _, store := newTestModel(t)
	loadTestLibrary(m, store)
	m.navigator.SetCursor(3, len(m.state.Rows))

	games := store.Games()
	m.handleNonKeyboardMsg(EventMsg{Event: eventbus.SearchStatusEvent{
		State:   eventbus.StateSuccess,
		Phase:   eventbus.PhaseLibrary,
		SteamID: "76561197960287930",
		Games:   games,
	}})

	assert.Zero(t, m.navigator.Cursor())
	assert.Equal(t, "Loaded 4 games", m.state.StatusMessage)
}
