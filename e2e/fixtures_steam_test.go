//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// GameFixture is one owned game served by the stub API. The JSON tags match
// the Steam Web API wire format.
type GameFixture struct {
	AppID   uint32 `json:"appid"`
	Name    string `json:"name"`
	Minutes int    `json:"playtime_forever"`
}

// SteamOption is a function that configures the stub API
type SteamOption func(*steamOptions)

type steamOptions struct {
	vanities     map[string]string        // vanity name -> steamid
	personas     map[string]string        // steamid -> persona name
	libraries    map[string][]GameFixture // steamid -> owned games
	resolveDelay time.Duration
	libraryFails bool
}

// WithVanity registers a vanity name that resolves to the given SteamID
func WithVanity(name, steamID string) SteamOption {
	return func(opts *steamOptions) {
		opts.vanities[name] = steamID
	}
}

// WithPlayer registers a profile so summary lookups for the ID succeed
func WithPlayer(steamID, persona string) SteamOption {
	return func(opts *steamOptions) {
		opts.personas[steamID] = persona
	}
}

// WithGames registers the owned-games list for a SteamID
func WithGames(steamID string, games ...GameFixture) SteamOption {
	return func(opts *steamOptions) {
		opts.libraries[steamID] = games
	}
}

// WithResolveDelay makes resolution and summary calls take this long, for
// tests that need to act while a search is in flight
func WithResolveDelay(d time.Duration) SteamOption {
	return func(opts *steamOptions) {
		opts.resolveDelay = d
	}
}

// WithLibraryFailure makes every owned-games call fail with a server error
func WithLibraryFailure() SteamOption {
	return func(opts *steamOptions) {
		opts.libraryFails = true
	}
}

// StubSteam serves the slice of the Steam Web API the app talks to
type StubSteam struct {
	opts   steamOptions
	server *httptest.Server

	mu    sync.Mutex
	calls []string
}

// StartStubSteam starts a stub API server and points the app under test at
// it via STEAMGRIP_API_URL. It is shut down with the test.
func (tf *TUITestFramework) StartStubSteam(options ...SteamOption) *StubSteam {
	tf.t.Helper()

	s := &StubSteam{
		opts: steamOptions{
			vanities:  make(map[string]string),
			personas:  make(map[string]string),
			libraries: make(map[string][]GameFixture),
		},
	}
	for _, opt := range options {
		opt(&s.opts)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ISteamUser/ResolveVanityURL/v0001/", s.handleResolveVanity)
	mux.HandleFunc("/ISteamUser/GetPlayerSummaries/v0002/", s.handlePlayerSummaries)
	mux.HandleFunc("/IPlayerService/GetOwnedGames/v0001/", s.handleOwnedGames)

	s.server = httptest.NewServer(mux)
	tf.t.Cleanup(s.server.Close)
	tf.apiURL = s.server.URL

	return s
}

// Calls returns the API paths hit so far, in order
func (s *StubSteam) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// record notes the call and rejects requests without an API key, like the
// real endpoint would
func (s *StubSteam) record(w http.ResponseWriter, r *http.Request) bool {
	s.mu.Lock()
	s.calls = append(s.calls, r.URL.Path)
	s.mu.Unlock()

	if r.URL.Query().Get("key") == "" {
		w.WriteHeader(http.StatusForbidden)
		return false
	}
	return true
}

func (s *StubSteam) handleResolveVanity(w http.ResponseWriter, r *http.Request) {
	if !s.record(w, r) {
		return
	}
	time.Sleep(s.opts.resolveDelay)

	response := map[string]any{"success": 42, "message": "No match"}
	if id, ok := s.opts.vanities[r.URL.Query().Get("vanityurl")]; ok {
		response = map[string]any{"success": 1, "steamid": id}
	}
	writeJSON(w, map[string]any{"response": response})
}

func (s *StubSteam) handlePlayerSummaries(w http.ResponseWriter, r *http.Request) {
	if !s.record(w, r) {
		return
	}
	time.Sleep(s.opts.resolveDelay)

	players := []map[string]any{}
	for _, id := range strings.Split(r.URL.Query().Get("steamids"), ",") {
		if persona, ok := s.opts.personas[id]; ok {
			players = append(players, map[string]any{
				"steamid":     id,
				"personaname": persona,
			})
		}
	}
	writeJSON(w, map[string]any{"response": map[string]any{"players": players}})
}

func (s *StubSteam) handleOwnedGames(w http.ResponseWriter, r *http.Request) {
	if !s.record(w, r) {
		return
	}

	if s.opts.libraryFails {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	games := s.opts.libraries[r.URL.Query().Get("steamid")]
	writeJSON(w, map[string]any{"response": map[string]any{
		"game_count": len(games),
		"games":      games,
	}})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// defaultLibrary is the standard fixture most scenarios start from: a
// resolvable vanity name with a small mixed library.
const (
	fixtureVanity  = "rabscuttle"
	fixtureSteamID = "76561197960287930"
	fixturePersona = "Rabscuttle"
)

func defaultLibrary() []SteamOption {
	return []SteamOption{
		WithVanity(fixtureVanity, fixtureSteamID),
		WithPlayer(fixtureSteamID, fixturePersona),
		WithGames(fixtureSteamID,
			GameFixture{AppID: 620, Name: "Portal 2", Minutes: 750},
			GameFixture{AppID: 400, Name: "Portal", Minutes: 90},
			GameFixture{AppID: 570, Name: "Dota 2", Minutes: 12000},
			GameFixture{AppID: 220, Name: "Half-Life 2", Minutes: 0},
		),
	}
}
