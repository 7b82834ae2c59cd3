// Package store provides the persisted key-value state shared by the identity
// and usage packages. The layout mirrors a flat browser-profile store: plain
// string keys, plain string values, no schema and no cleanup of stale keys.
package store

import "fmt"

// Well-known keys.
const (
	// KeyTheme holds the UI theme preference, "dark" or "light".
	KeyTheme = "theme"
	// KeyUserEmail holds the raw identity string of the signed-in user.
	KeyUserEmail = "user_email"
)

// Store is a minimal persisted key-value abstraction. Implementations are not
// required to be safe against concurrent writers; read-modify-write sequences
// built on top of it are best-effort only.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Has(key string) (bool, error)
	Delete(key string) error
}

// UsageKey returns the daily counter key for the given identity and ISO date,
// e.g. "usage_a@b.co_2026-08-31". Keys for past dates are never removed.
func UsageKey(identity, date string) string {
	return fmt.Sprintf("usage_%s_%s", identity, date)
}
