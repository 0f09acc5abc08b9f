package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"steamgrip/internal/config"
	"steamgrip/internal/eventbus"
	"steamgrip/internal/favorites"
	"steamgrip/internal/library"
	"steamgrip/internal/search"
	"steamgrip/internal/steam"
	"steamgrip/internal/ui"
)

func main() {
	flag.Parse()

	// Optional positional argument: search for this player on startup
	initialTerm := strings.TrimSpace(strings.Join(flag.Args(), " "))

	setupLogging()

	// Context cancelled on SIGINT/SIGTERM for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create event bus
	bus := eventbus.New()

	// Load configuration; environment overrides are applied on load
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Error("failed to load config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	// Steam Web API client
	client, err := steam.NewClient(steamConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "steamgrip: %v\n", err)
		os.Exit(1)
	}

	// Library store and services. The search service and favorites manager
	// subscribe to the bus themselves.
	store := library.NewMemoryStore()
	searchSvc := search.NewService(bus, client, store)
	_ = favorites.NewManager(bus, cfg.Favorites)

	// Persist the favorite set whenever it changes
	bus.Subscribe(eventbus.EventFavoritesChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FavoritesChangedEvent); ok {
			cfg.Favorites = event.AppIDs
			if err := configSvc.Save(cfg); err != nil {
				log.Error("failed to save favorites", "error", err)
			}
		}
	})

	// Create UI model and program
	model := ui.NewModel(bus, cfg, store, searchSvc)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Forward bus events to the UI through a buffered channel so a slow
	// consumer never blocks the dispatcher
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event", "type", e.Type())
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventSearchStatus,
		eventbus.EventFavoritesChanged,
		eventbus.EventError,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(eventType, forward)
	}

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// A signal quits the program; bubbletea only sees ctrl+c as a key
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Kick off the startup search. The prompt is closed, but the search was
	// asked for explicitly, so its resolution outcome should be visible.
	if initialTerm != "" {
		searchSvc.SetActive(true)
		bus.Publish(eventbus.SearchRequestedEvent{Term: initialTerm})
	}

	// Tell the e2e driver the program is about to take over the terminal
	if os.Getenv("STEAMGRIP_E2E") == "1" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "steamgrip: %v\n", err)
		os.Exit(1)
	}

	// Drain pending events, then persist the UI settings for the next run
	bus.Close()
	close(eventChan)

	model.SyncConfig()
	if err := configSvc.Save(cfg); err != nil {
		log.Error("failed to save config on exit", "error", err)
	}
}

// setupLogging sends logs to a file; the terminal belongs to the TUI
func setupLogging() {
	logFile, err := os.OpenFile("steamgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(logFile)
	log.SetReportTimestamp(true)

	if raw := os.Getenv("STEAMGRIP_LOG"); raw != "" {
		if level, err := log.ParseLevel(raw); err == nil {
			log.SetLevel(level)
		}
	}
}

// steamConfig maps the application config onto the API client config
func steamConfig(cfg *config.Config) *steam.Config {
	apiCfg := steam.DefaultConfig()
	apiCfg.APIKey = cfg.Steam.APIKey
	if cfg.Steam.BaseURL != "" {
		apiCfg.BaseURL = cfg.Steam.BaseURL
	}
	if cfg.Steam.TimeoutSeconds > 0 {
		apiCfg.Timeout = time.Duration(cfg.Steam.TimeoutSeconds) * time.Second
	}
	return apiCfg
}
