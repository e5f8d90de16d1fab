package config

import (
	"fmt"
	"os"
	"strconv"
)

type keyType int

const (
	kString keyType = iota
	kInt
)

type keySpec struct {
	key     string
	typ     keyType
	env     string
	secret  bool
	apply   func(cfg *Config, v any)
	extract func(cfg Config) any
}

var specs = []keySpec{
	{
		key: "server.port", typ: kInt, env: "DRONA_SERVER_PORT",
		apply:   func(cfg *Config, v any) { cfg.Server.Port = v.(int) },
		extract: func(cfg Config) any { return cfg.Server.Port },
	},
	{
		key: "server.api_token", typ: kString, env: "DRONA_API_TOKEN",
		secret:  true,
		apply:   func(cfg *Config, v any) { cfg.Server.APIToken = v.(string) },
		extract: func(cfg Config) any { return cfg.Server.APIToken },
	},
	{
		key: "google.drive_base_url", typ: kString, env: "DRONA_GOOGLE_DRIVE_BASE_URL",
		apply:   func(cfg *Config, v any) { cfg.Google.DriveBaseURL = v.(string) },
		extract: func(cfg Config) any { return cfg.Google.DriveBaseURL },
	},
	{
		key: "google.sheets_base_url", typ: kString, env: "DRONA_GOOGLE_SHEETS_BASE_URL",
		apply:   func(cfg *Config, v any) { cfg.Google.SheetsBaseURL = v.(string) },
		extract: func(cfg Config) any { return cfg.Google.SheetsBaseURL },
	},
	{
		key: "google.token_url", typ: kString, env: "DRONA_GOOGLE_TOKEN_URL",
		apply:   func(cfg *Config, v any) { cfg.Google.TokenURL = v.(string) },
		extract: func(cfg Config) any { return cfg.Google.TokenURL },
	},
	{
		key: "google.client_id", typ: kString, env: "DRONA_GOOGLE_CLIENT_ID",
		secret:  true,
		apply:   func(cfg *Config, v any) { cfg.Google.ClientID = v.(string) },
		extract: func(cfg Config) any { return cfg.Google.ClientID },
	},
	{
		key: "google.client_secret", typ: kString, env: "DRONA_GOOGLE_CLIENT_SECRET",
		secret:  true,
		apply:   func(cfg *Config, v any) { cfg.Google.ClientSecret = v.(string) },
		extract: func(cfg Config) any { return cfg.Google.ClientSecret },
	},
	{
		key: "storage.data_dir", typ: kString, env: "DRONA_STORAGE_DATA_DIR",
		apply:   func(cfg *Config, v any) { cfg.Storage.DataDir = v.(string) },
		extract: func(cfg Config) any { return cfg.Storage.DataDir },
	},
	{
		key: "log.level", typ: kString, env: "DRONA_LOG_LEVEL",
		apply:   func(cfg *Config, v any) { cfg.Log.Level = v.(string) },
		extract: func(cfg Config) any { return cfg.Log.Level },
	},
}

func applyBackend(cfg *Config, b ConfigBackend) error {
	for _, s := range specs {
		switch s.typ {
		case kString:
			v, ok, err := b.GetString(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		case kInt:
			v, ok, err := b.GetInt(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	for _, s := range specs {
		raw := os.Getenv(s.env)
		if raw == "" {
			continue
		}
		switch s.typ {
		case kString:
			s.apply(cfg, raw)
		case kInt:
			if i, err := strconv.Atoi(raw); err == nil {
				s.apply(cfg, i)
			} else {
				fmt.Fprintf(os.Stderr, "[WARN] could not parse integer from env var %s=%q: %v. Using default value.\n", s.env, raw, err)
			}
		}
	}
}

// KeyValue is one config entry for display.
type KeyValue struct {
	Key   string
	Value string
}

// ShowAll renders every config key for the `config show` command. Secrets
// are masked.
func ShowAll(cfg Config) []KeyValue {
	out := make([]KeyValue, 0, len(specs))
	for _, s := range specs {
		v := fmt.Sprintf("%v", s.extract(cfg))
		if s.secret && v != "" {
			v = "********"
		}
		out = append(out, KeyValue{Key: s.key, Value: v})
	}
	return out
}

// SetKey persists one key into the file backend for the `config set` command.
func SetKey(key, value string) error {
	for _, s := range specs {
		if s.key != key {
			continue
		}
		b := newFileBackend()
		switch s.typ {
		case kInt:
			i, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("key %s expects an integer: %w", key, err)
			}
			return b.SetInt(key, i)
		default:
			return b.SetString(key, value)
		}
	}
	return fmt.Errorf("unknown config key %q", key)
}
