// Package config loads settings from a JSON file backend under
// $XDG_CONFIG_HOME/dronacharya, a .env file when present, and DRONA_*
// environment variables. Env overrides win over the file backend.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Google  GoogleConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port     int
	APIToken string
}

// GoogleConfig points at the spreadsheet host and its OAuth token endpoint.
// The base URLs are configurable so tests can target a local fake.
type GoogleConfig struct {
	DriveBaseURL  string
	SheetsBaseURL string
	TokenURL      string
	ClientID      string
	ClientSecret  string
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 4200,
		},
		Google: GoogleConfig{
			DriveBaseURL:  "https://www.googleapis.com",
			SheetsBaseURL: "https://sheets.googleapis.com",
			TokenURL:      "https://oauth2.googleapis.com/token",
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON file backend and environment.
// A .env file in the working directory is loaded first when present, so
// OAuth client secrets don't have to live in the shell profile.
func Load() (Config, error) {
	_ = godotenv.Load()
	return loadWith(newFileBackend())
}

func loadWith(b ConfigBackend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)

	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" {
		return Config{}, fmt.Errorf("missing required config: Google OAuth client. " +
			"Set DRONA_GOOGLE_CLIENT_ID and DRONA_GOOGLE_CLIENT_SECRET (a .env file works too)")
	}
	return cfg, nil
}
