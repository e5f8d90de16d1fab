package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Credential is a stored spreadsheet-access credential produced by the
// external OAuth flow. The most recently created active row is the one used
// for all reads.
type Credential struct {
	ID           string
	AccessToken  string
	RefreshToken string
	ExpiresAt    string // stored verbatim; parsed leniently on use
	UserEmail    string
	IsActive     bool
	CreatedAt    time.Time
}
