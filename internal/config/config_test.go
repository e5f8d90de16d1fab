package config

import (
	"strings"
	"testing"
)

// memBackend is an in-memory ConfigBackend for tests.
type memBackend struct {
	strings map[string]string
	ints    map[string]int
}

func newMemBackend() *memBackend {
	return &memBackend{strings: map[string]string{}, ints: map[string]int{}}
}

func (m *memBackend) GetString(key string) (string, bool, error) {
	v, ok := m.strings[key]
	return v, ok, nil
}

func (m *memBackend) GetInt(key string) (int, bool, error) {
	v, ok := m.ints[key]
	return v, ok, nil
}

func (m *memBackend) SetString(key, val string) error {
	m.strings[key] = val
	return nil
}

func (m *memBackend) SetInt(key string, val int) error {
	m.ints[key] = val
	return nil
}

func withOAuthEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DRONA_GOOGLE_CLIENT_ID", "cid")
	t.Setenv("DRONA_GOOGLE_CLIENT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	withOAuthEnv(t)

	cfg, err := loadWith(newMemBackend())
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.Server.Port != 4200 {
		t.Errorf("Port = %d, want 4200", cfg.Server.Port)
	}
	if cfg.Google.DriveBaseURL != "https://www.googleapis.com" {
		t.Errorf("DriveBaseURL = %q", cfg.Google.DriveBaseURL)
	}
	if cfg.Google.TokenURL != "https://oauth2.googleapis.com/token" {
		t.Errorf("TokenURL = %q", cfg.Google.TokenURL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoad_BackendValues(t *testing.T) {
	withOAuthEnv(t)

	b := newMemBackend()
	b.ints["server.port"] = 9999
	b.strings["server.api_token"] = "from-file"

	cfg, err := loadWith(b)
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Server.APIToken != "from-file" {
		t.Errorf("APIToken = %q", cfg.Server.APIToken)
	}
}

func TestLoad_EnvOverridesBackend(t *testing.T) {
	withOAuthEnv(t)
	t.Setenv("DRONA_SERVER_PORT", "5000")

	b := newMemBackend()
	b.ints["server.port"] = 9999

	cfg, err := loadWith(b)
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Port = %d, want the env override 5000", cfg.Server.Port)
	}
}

func TestLoad_RequiresOAuthClient(t *testing.T) {
	t.Setenv("DRONA_GOOGLE_CLIENT_ID", "")
	t.Setenv("DRONA_GOOGLE_CLIENT_SECRET", "")

	if _, err := loadWith(newMemBackend()); err == nil {
		t.Fatal("want error when OAuth client is unset")
	}
}

func TestShowAll_MasksSecrets(t *testing.T) {
	cfg := defaults()
	cfg.Server.APIToken = "super-secret"
	cfg.Google.ClientSecret = "also-secret"

	for _, kv := range ShowAll(cfg) {
		if strings.Contains(kv.Value, "secret") {
			t.Errorf("secret leaked for key %s: %q", kv.Key, kv.Value)
		}
		if kv.Key == "server.api_token" && kv.Value != "********" {
			t.Errorf("api_token shown as %q, want masked", kv.Value)
		}
	}
}
