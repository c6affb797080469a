package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Party    PartyConfig    `toml:"party"`
	Database DatabaseConfig `toml:"database"`
	Server   ServerConfig   `toml:"server"`
	Search   SearchConfig   `toml:"search"`
}

// PartyConfig contains event-level settings.
type PartyConfig struct {
	Name       string `toml:"name"`
	EventDate  string `toml:"event_date"`
	AdminToken string `toml:"admin_token"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// SearchConfig selects and configures the song search provider.
//
// Provider is either "catalog" (built-in reference catalog with simulated
// latency) or "spotify" (Spotify Web API search).
type SearchConfig struct {
	Provider  string        `toml:"provider"`
	LatencyMS int           `toml:"latency_ms"`
	Spotify   SpotifyConfig `toml:"spotify"`
}

// SpotifyConfig contains Spotify API credentials for the search provider.
type SpotifyConfig struct {
	ClientID     string  `toml:"client_id"`
	ClientSecret string  `toml:"client_secret"`
	RequestsPerS float64 `toml:"requests_per_second"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
