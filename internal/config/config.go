package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"steamgrip/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version   int           `toml:"version"`
	Steam     SteamSettings `toml:"steam"`
	UI        UISettings    `toml:"ui"`
	Favorites []uint32      `toml:"favorites"` // favorite appids
}

// SteamSettings holds Web API access settings. Environment variables
// override the file values on load.
type SteamSettings struct {
	APIKey         string `toml:"api_key" env:"STEAM_API_KEY"`
	BaseURL        string `toml:"base_url" env:"STEAMGRIP_API_URL"`
	TimeoutSeconds int    `toml:"timeout_seconds" env:"STEAMGRIP_TIMEOUT_SECONDS"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SortBy          string `toml:"sort_by"` // name, playtime, appid or lastplayed
	SortDescending  bool   `toml:"sort_descending"`
	GroupByPlaytime bool   `toml:"group_by_playtime"`
	ShowPlaytime    bool   `toml:"show_playtime"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	// Create steamgrip config directory
	steamgripDir := filepath.Join(configDir, "steamgrip")
	os.MkdirAll(steamgripDir, 0755)

	return &configService{
		filePath: filepath.Join(steamgripDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file, applying environment overrides
func (cs *configService) Load() (*Config, error) {
	// Return default config if file doesn't exist
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}

		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600: the file carries the API key
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv overlays environment variables onto the loaded values
func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Steam: SteamSettings{
			BaseURL:        "https://api.steampowered.com",
			TimeoutSeconds: 10,
		},
		UI: UISettings{
			SortBy:       "name",
			ShowPlaytime: true,
		},
		Favorites: []uint32{},
	}
}
