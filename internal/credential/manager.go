// Package credential keeps the single active spreadsheet-access credential
// valid: it reads the stored record, refreshes the access token when it is
// close to expiry, and persists the refreshed token back.
package credential

import (
	"context"
	"log/slog"
	"time"

	"github.com/Theathiestmonk/dronacharya-sub001/internal/storage"
)

// A token within this window of its expiry is refreshed before use.
const expirySkew = 5 * time.Minute

// Refresher abstracts the OAuth token exchange for testing.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (accessToken string, expiresIn time.Duration, err error)
}

// CredentialStore abstracts the persistence layer for testing.
type CredentialStore interface {
	ActiveCredential() (storage.Credential, error)
	UpdateAccessToken(id, accessToken, expiresAt string) error
}

// Manager reads and conditionally refreshes the active credential.
type Manager struct {
	store CredentialStore
	oauth Refresher
	Now   func() time.Time
}

// NewManager wires a Manager to the credential store and token endpoint.
func NewManager(store CredentialStore, oauth Refresher) *Manager {
	return &Manager{store: store, oauth: oauth, Now: time.Now}
}

// Expiry timestamps arrive from the external OAuth flow in more than one
// encoding; try them in order.
var expiryLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseExpiry(s string) (time.Time, bool) {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EnsureValid returns a credential whose access token is safe to use for at
// least the skew window, refreshing and persisting it when needed. It returns
// nil when no credential exists, the record has no refresh token, or the
// refresh exchange fails — an unavailable-credential condition, never a panic.
func (m *Manager) EnsureValid(ctx context.Context) *storage.Credential {
	cred, err := m.store.ActiveCredential()
	if err != nil {
		slog.Warn("no active credential available", "error", err)
		return nil
	}

	expiresAt, ok := parseExpiry(cred.ExpiresAt)
	if ok && m.Now().Before(expiresAt.Add(-expirySkew)) {
		return &cred
	}
	if !ok {
		slog.Warn("unparseable credential expiry, forcing refresh", "expires_at", cred.ExpiresAt)
	}

	if cred.RefreshToken == "" {
		slog.Warn("credential expired and no refresh token present", "credential_id", cred.ID)
		return nil
	}

	accessToken, lifetime, err := m.oauth.Refresh(ctx, cred.RefreshToken)
	if err != nil {
		slog.Warn("credential refresh failed", "credential_id", cred.ID, "error", err)
		return nil
	}

	newExpiry := m.Now().Add(lifetime).UTC().Format(time.RFC3339)
	if err := m.store.UpdateAccessToken(cred.ID, accessToken, newExpiry); err != nil {
		// Last-write-wins is acceptable here; log and continue with the
		// fresh token even if the write lost a race.
		slog.Warn("persisting refreshed token failed", "credential_id", cred.ID, "error", err)
	}

	cred.AccessToken = accessToken
	cred.ExpiresAt = newExpiry
	slog.Info("credential refreshed", "credential_id", cred.ID, "expires_at", newExpiry)
	return &cred
}
