package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"steamgrip/internal/config"
	"steamgrip/internal/domain"
	"steamgrip/internal/eventbus"
	"steamgrip/internal/library"
	"steamgrip/internal/ui/handlers"
	"steamgrip/internal/ui/input"
	inputtypes "steamgrip/internal/ui/input/types"
	"steamgrip/internal/ui/logic"
	"steamgrip/internal/ui/state"
	"steamgrip/internal/ui/views"
)

// SearchControl gates result events of the search pipeline on whether the
// search prompt is open.
type SearchControl interface {
	SetActive(active bool)
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *logic.Navigator       // navigation and viewport handler
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	inputHandler *input.Handler         // input handling
	external     *ExternalOps           // browser and pager operations
	store        library.Store          // library store for data access
	searchCtl    SearchControl          // search activation toggle

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store library.Store, searchCtl SearchControl) *Model {
	appState := state.NewAppState()
	appState.SortBy = logic.SortModeFromKey(cfg.UI.SortBy)
	appState.SortDescending = cfg.UI.SortDescending
	appState.GroupByPlaytime = cfg.UI.GroupByPlaytime
	appState.SetFavorites(cfg.Favorites)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		store:        store,
		searchCtl:    searchCtl,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UI.ShowPlaytime),
		inputHandler: input.New(),
		external:     NewExternalOps(),
	}

	m.eventHandler = handlers.NewEventHandler(appState, store, func() {
		m.navigator.Clamp(len(m.state.Rows))
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.external != nil {
		m.external.SetProgram(p)
	}
}

// SyncConfig copies the runtime UI settings back onto the config so the
// caller can persist them
func (m *Model) SyncConfig() {
	m.config.UI.SortBy = m.state.SortBy.Key()
	m.config.UI.SortDescending = m.state.SortDescending
	m.config.UI.GroupByPlaytime = m.state.GroupByPlaytime
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.navigator.SetHeight(m.listHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		// Cursor blink and other text input messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// handleKey routes a key press, giving open popups the first shot
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.ShowDetail {
		switch msg.String() {
		case "esc", "enter", "q":
			m.state.ShowDetail = false
			m.state.DetailAppID = 0
		case "f":
			if m.state.DetailAppID != 0 {
				m.bus.Publish(eventbus.FavoriteToggledEvent{AppID: m.state.DetailAppID})
			}
		case "b":
			if game, ok := m.store.Game(m.state.DetailAppID); ok {
				return m, m.openStorePage(game)
			}
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.state.ShowHelp {
		switch msg.String() {
		case "esc", "?", "q":
			m.state.ShowHelp = false
			m.state.HelpScrollOffset = 0
		case "j", "down":
			m.state.HelpScrollOffset++
		case "k", "up":
			if m.state.HelpScrollOffset > 0 {
				m.state.HelpScrollOffset--
			}
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	prevMode := m.inputHandler.CurrentMode()
	actions, cmd := m.inputHandler.HandleKey(msg, modelContext{m})
	m.syncSearchActivation(prevMode)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// syncSearchActivation tells the search pipeline whether the prompt is
// open. Resolution results are only published while it is.
func (m *Model) syncSearchActivation(prevMode inputtypes.Mode) {
	if m.searchCtl == nil {
		return
	}
	newMode := m.inputHandler.CurrentMode()
	if newMode == prevMode {
		return
	}
	if newMode == inputtypes.ModeSearch {
		m.searchCtl.SetActive(true)
	} else if prevMode == inputtypes.ModeSearch {
		m.searchCtl.SetActive(false)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	listHeight := m.listHeight()
	m.navigator.SetHeight(listHeight)
	m.navigator.Clamp(len(m.state.Rows))

	vs := views.ViewState{
		Width:            m.width,
		Height:           m.height,
		Rows:             m.state.Rows,
		SelectedIndex:    m.navigator.Cursor(),
		ViewportOffset:   m.navigator.Offset(),
		ViewportHeight:   listHeight,
		Player:           m.state.Player,
		GameCount:        len(m.state.Games),
		HasLibrary:       m.store.SteamID() != "",
		Favorites:        m.state.Favorites,
		Collapsed:        m.state.Collapsed,
		GroupByPlaytime:  m.state.GroupByPlaytime,
		Searching:        m.state.Searching,
		SearchPhase:      m.state.SearchPhase,
		StatusMessage:    m.state.StatusMessage,
		FilterQuery:      m.state.FilterQuery,
		SortOptionIndex:  m.state.SortOptionIndex,
		ShowHelp:         m.state.ShowHelp,
		HelpScrollOffset: m.state.HelpScrollOffset,
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		vs.InputMode = "search"
	case inputtypes.ModeFilter:
		vs.InputMode = "filter"
	case inputtypes.ModeSort:
		vs.InputMode = "sort"
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.TextInput = ti.View()
	}

	if m.state.ShowDetail {
		if game, ok := m.store.Game(m.state.DetailAppID); ok {
			vs.ShowDetail = true
			vs.DetailGame = &game
		}
	}

	return m.renderer.Render(vs)
}

// listHeight computes the rows available to the game list once the chrome
// around it is accounted for
func (m *Model) listHeight() int {
	// Main container padding
	chrome := 2
	// Title line plus its bottom margin
	chrome += 2
	// Player summary
	if m.state.Player != nil {
		chrome++
	}
	// Input prompt plus trailing blank line
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch, inputtypes.ModeFilter:
		chrome += 2
	case inputtypes.ModeSort:
		chrome += 3
	}
	// Status line and help hint
	chrome += 3

	h := m.height - chrome
	if h < 1 {
		h = 1
	}
	return h
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	total := len(m.state.Rows)

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.navigator.MoveUp(total)
		case "down":
			m.navigator.MoveDown(total)
		case "pageup":
			m.navigator.PageUp(total)
		case "pagedown":
			m.navigator.PageDown(total)
		case "home":
			m.navigator.Home(total)
		case "end":
			m.navigator.End(total)
		case "left":
			// Collapse the bucket under the cursor
			if bucket := m.bucketAt(m.navigator.Cursor()); bucket != "" && !m.state.Collapsed[bucket] {
				m.state.ToggleCollapsed(bucket)
				m.moveCursorToBucket(bucket)
			}
		case "right":
			// Expand the bucket under the cursor
			if bucket := m.bucketAt(m.navigator.Cursor()); bucket != "" && m.state.Collapsed[bucket] {
				m.state.ToggleCollapsed(bucket)
			}
		}

	case inputtypes.ToggleBucketAction:
		if a.Bucket != "" {
			m.state.ToggleCollapsed(a.Bucket)
			m.navigator.Clamp(len(m.state.Rows))
		}

	case inputtypes.ToggleGroupingAction:
		m.state.GroupByPlaytime = !m.state.GroupByPlaytime
		m.state.RebuildRows()
		m.navigator.Home(len(m.state.Rows))

	case inputtypes.ClearFilterAction:
		m.state.FilterQuery = ""
		m.state.RebuildRows()
		m.navigator.Clamp(len(m.state.Rows))

	case inputtypes.RandomGameAction:
		m.jumpToRandomGame()

	case inputtypes.ToggleFavoriteAction:
		if game, ok := m.state.GameAt(m.navigator.Cursor()); ok {
			m.bus.Publish(eventbus.FavoriteToggledEvent{AppID: game.AppID})
		}

	case inputtypes.OpenDetailAction:
		if game, ok := m.state.GameAt(m.navigator.Cursor()); ok {
			m.state.ShowDetail = true
			m.state.DetailAppID = game.AppID
		}

	case inputtypes.OpenStoreAction:
		if game, ok := m.state.GameAt(m.navigator.Cursor()); ok {
			return m.openStorePage(game)
		}

	case inputtypes.OpenPagerAction:
		return m.openLibraryPager()

	case inputtypes.SortByAction:
		m.state.SortBy = logic.SortModeFromKey(a.Key)
		m.state.RebuildRows()
		m.navigator.Clamp(len(m.state.Rows))

	case inputtypes.UpdateSortIndexAction:
		m.state.SortOptionIndex = a.Index

	case inputtypes.ToggleSortDirectionAction:
		m.state.SortDescending = !m.state.SortDescending
		m.state.RebuildRows()
		m.navigator.Clamp(len(m.state.Rows))

	case inputtypes.UpdateTextAction:
		// Filtering applies live while typing
		if m.inputHandler.CurrentMode() == inputtypes.ModeFilter {
			m.state.FilterQuery = a.Text
			m.state.RebuildRows()
			m.navigator.Clamp(len(m.state.Rows))
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.bus.Publish(eventbus.SearchRequestedEvent{Term: strings.TrimSpace(a.Text)})
		case inputtypes.ModeFilter:
			m.state.FilterQuery = strings.TrimSpace(a.Text)
			m.state.RebuildRows()
			m.navigator.Clamp(len(m.state.Rows))
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.state.FilterQuery = ""
			m.state.RebuildRows()
			m.navigator.Clamp(len(m.state.Rows))
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// bucketAt finds the bucket the given row belongs to, "" in the flat list
func (m *Model) bucketAt(index int) string {
	for i := index; i >= 0; i-- {
		row, ok := m.state.RowAt(i)
		if !ok {
			return ""
		}
		if row.Kind == logic.RowHeader {
			return row.Bucket
		}
	}
	return ""
}

// moveCursorToBucket puts the cursor on the bucket's header row
func (m *Model) moveCursorToBucket(bucket string) {
	for i, row := range m.state.Rows {
		if row.Kind == logic.RowHeader && row.Bucket == bucket {
			m.navigator.SetCursor(i, len(m.state.Rows))
			return
		}
	}
	m.navigator.Clamp(len(m.state.Rows))
}

// jumpToRandomGame moves the cursor to a random visible game row
func (m *Model) jumpToRandomGame() {
	indices := logic.GameRowIndices(m.state.Rows)
	if len(indices) == 0 {
		return
	}
	m.navigator.SetCursor(indices[rand.Intn(len(indices))], len(m.state.Rows))
}

// openStorePage returns a command that opens the game's store page
func (m *Model) openStorePage(game domain.Game) tea.Cmd {
	return func() tea.Msg {
		err := m.external.OpenStorePage(game)
		return browserOpenedMsg{url: game.StoreURL(), err: err}
	}
}

// openLibraryPager returns a command that shows the library in the ov
// pager, pausing and resuming rendering around it
func (m *Model) openLibraryPager() tea.Cmd {
	content := m.buildLibraryText()
	if content == "" {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.external.ShowLibraryInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerClosedMsg{err: err}
	}
}

// buildLibraryText renders the full library as plain text for the pager
func (m *Model) buildLibraryText() string {
	if len(m.state.Games) == 0 {
		return ""
	}

	games := make([]domain.Game, len(m.state.Games))
	copy(games, m.state.Games)
	logic.SortGames(games, m.state.SortBy, m.state.SortDescending)

	var b strings.Builder
	if m.state.Player != nil {
		fmt.Fprintf(&b, "%s · %d games\n\n", m.state.Player.DisplayName(), len(games))
	}
	for _, g := range games {
		marker := " "
		if m.state.IsFavorite(g.AppID) {
			marker = "★"
		}
		playtime := "unplayed"
		if g.Played() {
			playtime = views.FormatHours(g.Hours())
		}
		fmt.Fprintf(&b, "%s %-52s %12s  %d\n", marker, g.Name, playtime, g.AppID)
	}
	return b.String()
}

// handleNonKeyboardMsg handles everything that is not a key press
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		// A fresh library starts at the top of the list
		if ev, ok := msg.Event.(eventbus.SearchStatusEvent); ok &&
			ev.State == eventbus.StateSuccess && ev.Phase == eventbus.PhaseLibrary {
			m.navigator.Home(len(m.state.Rows))
		}
		return m, cmd

	case tickMsg:
		// Don't continue the tick loop while an external pager owns the
		// terminal
		if m.inPagerMode {
			return m, nil
		}
		return m, tick()

	case browserOpenedMsg:
		if msg.err != nil {
			log.Error("failed to open browser", "url", msg.url, "error", msg.err)
			m.state.StatusMessage = "Error: could not open the browser"
			return m, clearStatusLater()
		}
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			log.Error("library pager failed", "error", msg.err)
			m.state.StatusMessage = "Error: pager failed"
			return m, clearStatusLater()
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, tick()

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}

// modelContext adapts the model to the input context interface
type modelContext struct {
	m *Model
}

func (c modelContext) CursorRow() int { return c.m.navigator.Cursor() }

func (c modelContext) TotalRows() int { return len(c.m.state.Rows) }

func (c modelContext) OnHeader() bool {
	row, ok := c.m.state.RowAt(c.m.navigator.Cursor())
	return ok && row.Kind == logic.RowHeader
}

func (c modelContext) CurrentBucket() string {
	row, ok := c.m.state.RowAt(c.m.navigator.Cursor())
	if !ok || row.Kind != logic.RowHeader {
		return ""
	}
	return row.Bucket
}

func (c modelContext) CurrentAppID() uint32 {
	game, ok := c.m.state.GameAt(c.m.navigator.Cursor())
	if !ok {
		return 0
	}
	return game.AppID
}

func (c modelContext) HasLibrary() bool { return len(c.m.state.Games) > 0 }

func (c modelContext) FilterQuery() string { return c.m.state.FilterQuery }

func (c modelContext) SortKey() string { return c.m.state.SortBy.Key() }

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// clearStatusLater clears the status line after a short delay
func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
