package search

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"steamgrip/internal/domain"
	"steamgrip/internal/eventbus"
	"steamgrip/internal/library"
)

// SteamAPI is the slice of the Web API the search pipeline needs
type SteamAPI interface {
	ResolveVanityURL(ctx context.Context, vanityName string) (string, error)
	GetPlayerSummaries(ctx context.Context, steamIDs ...string) ([]domain.Player, error)
	GetOwnedGames(ctx context.Context, steamID string) ([]domain.Game, error)
}

// Service resolves search terms to SteamID64s and loads their libraries.
// One Search call runs its stages strictly in sequence; concurrent Search
// calls are independent and share only the activation flag and the bus.
type Service struct {
	bus    eventbus.EventBus
	api    SteamAPI
	store  library.Store
	active atomic.Bool
}

// NewService creates a search service and subscribes it to search requests
func NewService(bus eventbus.EventBus, api SteamAPI, store library.Store) *Service {
	s := &Service{
		bus:   bus,
		api:   api,
		store: store,
	}

	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			go func() {
				if err := s.Search(context.Background(), event.Term); err != nil {
					log.Debug("search failed", "term", event.Term, "err", err)
				}
			}()
		}
	})

	return s
}

// SetActive toggles emission of resolve-phase outcome events. It never
// cancels an in-flight call; loading and library events are not gated.
func (s *Service) SetActive(active bool) {
	s.active.Store(active)
}

// Active reports whether resolve-phase outcome events are emitted
func (s *Service) Active() bool {
	return s.active.Load()
}

// Search runs the pipeline for one term: classify, resolve, fetch library.
// The returned error carries the outcome only; result payloads travel on
// the bus as SearchStatusEvents.
func (s *Service) Search(ctx context.Context, term string) error {
	q, ok := Classify(term)
	if !ok {
		// Empty and unrecognized input complete silently
		log.Debug("nothing to resolve", "term", term)
		return nil
	}

	log.Info("searching", "term", term, "kind", q.Kind.String())

	id, player, err := s.resolve(ctx, q)
	if err != nil {
		if s.active.Load() {
			s.bus.Publish(eventbus.SearchStatusEvent{
				State: domain.StateFailure,
				Phase: domain.PhaseResolve,
				Term:  term,
				Err:   err,
			})
		}
		return err
	}

	if s.active.Load() {
		s.bus.Publish(eventbus.SearchStatusEvent{
			State:   domain.StateSuccess,
			Phase:   domain.PhaseResolve,
			Term:    term,
			SteamID: id,
		})
	}

	return s.fetchLibrary(ctx, term, id, player)
}

// resolve turns a classified query into a canonical SteamID64. Paths that
// validate an existing ID also yield the player profile from the lookup.
func (s *Service) resolve(ctx context.Context, q Query) (string, *domain.Player, error) {
	switch q.Kind {
	case KindID64, KindPermalink:
		return s.validateID(ctx, q)
	default:
		id, err := s.resolveVanity(ctx, q)
		return id, nil, err
	}
}

// validateID confirms an ID exists via a player-summaries lookup
func (s *Service) validateID(ctx context.Context, q Query) (string, *domain.Player, error) {
	s.bus.Publish(eventbus.SearchStatusEvent{
		State: domain.StateLoading,
		Phase: domain.PhaseValidate,
		Term:  q.Term,
		Input: q.Arg,
	})

	players, err := s.api.GetPlayerSummaries(ctx, q.Arg)
	if err != nil {
		return "", nil, fmt.Errorf("looking up player summary: %w", err)
	}
	if len(players) == 0 {
		return "", nil, q.lookupError()
	}

	return q.Arg, &players[0], nil
}

// resolveVanity maps a vanity slug to a SteamID64
func (s *Service) resolveVanity(ctx context.Context, q Query) (string, error) {
	s.bus.Publish(eventbus.SearchStatusEvent{
		State: domain.StateLoading,
		Phase: domain.PhaseResolve,
		Term:  q.Term,
		Input: q.Arg,
	})

	id, err := s.api.ResolveVanityURL(ctx, q.Arg)
	if err != nil {
		return "", fmt.Errorf("resolving vanity name: %w", err)
	}
	if id == "" {
		return "", q.lookupError()
	}

	return id, nil
}

// fetchLibrary loads the owned games for a resolved ID and stores them.
// Its outcome events are emitted unconditionally; the activation flag has
// no say here.
func (s *Service) fetchLibrary(ctx context.Context, term, id string, player *domain.Player) error {
	games, err := s.api.GetOwnedGames(ctx, id)
	if err != nil {
		wrapped := fmt.Errorf("fetching owned games: %w", err)
		s.bus.Publish(eventbus.SearchStatusEvent{
			State: domain.StateFailure,
			Phase: domain.PhaseLibrary,
			Term:  term,
			Err:   wrapped,
		})
		return wrapped
	}

	s.store.SetLibrary(id, player, games)

	s.bus.Publish(eventbus.SearchStatusEvent{
		State:   domain.StateSuccess,
		Phase:   domain.PhaseLibrary,
		Term:    term,
		SteamID: id,
		Games:   games,
	})

	log.Info("library loaded", "steamid", id, "games", len(games))
	return nil
}
