package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"steamgrip/internal/eventbus"
	"steamgrip/internal/library"
	"steamgrip/internal/ui/state"
)

// EventHandler maps domain events onto UI state.
type EventHandler struct {
	state   *state.AppState
	store   library.Store
	onReset func() // invoked after the library or favorites changed
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, store library.Store, onReset func()) *EventHandler {
	return &EventHandler{
		state:   appState,
		store:   store,
		onReset: onReset,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchStatusEvent:
		return h.handleSearchStatus(e)

	case eventbus.FavoritesChangedEvent:
		h.state.SetFavorites(e.AppIDs)
		if h.onReset != nil {
			h.onReset()
		}

	case eventbus.ConfigSavedEvent:
		log.Debug("config saved", "path", e.Path)

	case eventbus.ConfigLoadedEvent:
		log.Debug("config loaded", "path", e.Path)

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}

	return nil
}

// handleSearchStatus drives the search lifecycle. Loading events always
// arrive; resolve-phase outcomes are suppressed while the prompt is
// closed, so a search finished that way settles through the library
// phase alone. A suppressed resolution failure leaves the spinner
// running until the next search produces events.
func (h *EventHandler) handleSearchStatus(e eventbus.SearchStatusEvent) tea.Cmd {
	switch e.State {
	case eventbus.StateLoading:
		h.state.Searching = true
		h.state.SearchPhase = string(e.Phase)
		h.state.LastTerm = e.Term
		h.state.StatusMessage = ""

	case eventbus.StateSuccess:
		switch e.Phase {
		case eventbus.PhaseLibrary:
			h.state.Searching = false
			h.state.SearchPhase = ""
			h.state.SetLibrary(h.store.Player(), h.store.Games())
			h.state.StatusMessage = fmt.Sprintf("Loaded %d games", len(e.Games))
			if h.onReset != nil {
				h.onReset()
			}
		default:
			h.state.StatusMessage = fmt.Sprintf("Found player %s", e.SteamID)
		}

	case eventbus.StateFailure:
		h.state.Searching = false
		h.state.SearchPhase = ""
		if e.Err != nil {
			h.state.StatusMessage = fmt.Sprintf("Error: %v", e.Err)
		} else {
			h.state.StatusMessage = "Search failed"
		}
	}

	return nil
}
