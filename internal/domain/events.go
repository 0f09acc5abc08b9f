package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested  EventType = "SearchRequested"
	EventSearchStatus     EventType = "SearchStatus"
	EventFavoriteToggled  EventType = "FavoriteToggled"
	EventFavoritesChanged EventType = "FavoritesChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchState is the progress state carried by a search status event
type SearchState string

const (
	StateLoading SearchState = "loading"
	StateSuccess SearchState = "success"
	StateFailure SearchState = "failure"
)

// SearchPhase identifies which part of the search pipeline an event belongs to
type SearchPhase string

const (
	// PhaseResolve covers vanity-name resolution and the overall outcome
	// of turning a search term into a SteamID64.
	PhaseResolve SearchPhase = "resolve"
	// PhaseValidate covers player-summary lookups that confirm an ID exists.
	PhaseValidate SearchPhase = "validate"
	// PhaseLibrary covers the owned-games fetch for a resolved ID.
	PhaseLibrary SearchPhase = "library"
)

// SearchRequestedEvent is emitted to request a new search
type SearchRequestedEvent struct {
	Term string
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchStatusEvent is emitted as a search progresses through its phases.
// Term always carries the original search term; Input carries the argument
// handed to the remote call on loading events (a vanity slug can differ from
// the term it was cut from). SteamID is set on resolve success, Games on
// library success, Err on failures.
type SearchStatusEvent struct {
	State   SearchState
	Phase   SearchPhase
	Term    string
	Input   string
	SteamID string
	Games   []Game
	Err     error
}

func (e SearchStatusEvent) Type() EventType { return EventSearchStatus }

// FavoriteToggledEvent is emitted when the user toggles a game's favorite mark
type FavoriteToggledEvent struct {
	AppID uint32
}

func (e FavoriteToggledEvent) Type() EventType { return EventFavoriteToggled }

// FavoritesChangedEvent is emitted after the favorite set has been updated
type FavoritesChangedEvent struct {
	AppIDs []uint32 // sorted
}

func (e FavoritesChangedEvent) Type() EventType { return EventFavoritesChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs outside a search pipeline
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
