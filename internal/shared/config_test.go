package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "mis18.db" {
			t.Errorf("expected database path mis18.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Search.Provider != "catalog" {
			t.Errorf("expected search provider catalog, got %s", config.Search.Provider)
		}

		if config.Party.AdminToken == "" {
			t.Error("expected a default admin token")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		content := `
[party]
name = "Cumple de Lu"
admin_token = "topsecret"

[database]
path = "party.db"

[search]
provider = "spotify"

[search.spotify]
client_id = "abc"
client_secret = "def"
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Party.Name != "Cumple de Lu" {
			t.Errorf("expected party name Cumple de Lu, got %s", config.Party.Name)
		}
		if config.Search.Spotify.ClientID != "abc" {
			t.Errorf("expected spotify client_id abc, got %s", config.Search.Spotify.ClientID)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error loading missing config")
		}
	})
}

func TestDatabase(t *testing.T) {
	t.Run("NewDatabase InMemory", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open in-memory database: %v", err)
		}
		defer db.Close()

		ConfigureDatabase(db, 2, 1)

		if err := db.Ping(); err != nil {
			t.Errorf("ping failed: %v", err)
		}
	})
}
