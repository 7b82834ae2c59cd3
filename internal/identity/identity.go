// Package identity manages the unverified identity string gating feature
// access. The token is whatever the user typed at sign-in; nothing checks that
// the address exists or belongs to them. That looseness is part of the product
// contract, not an oversight.
package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/resumepilot/resumepilot/internal/store"
	"github.com/resumepilot/resumepilot/internal/utils"
)

// verifyDelay imitates the pause of a verification round-trip. No verification
// actually happens during it.
const verifyDelay = 800 * time.Millisecond

// ErrInvalidEmail is returned when the supplied address fails the loose
// client-side shape check.
var ErrInvalidEmail = errors.New("enter a valid email address")

// Manager reads and writes the current identity token.
type Manager struct {
	store store.Store
	delay time.Duration
}

// New returns a Manager bound to the given store.
func New(s store.Store) *Manager {
	return &Manager{store: s, delay: verifyDelay}
}

// WithDelay overrides the simulated verification delay. Used in tests.
func (m *Manager) WithDelay(d time.Duration) *Manager {
	m.delay = d
	return m
}

// Current returns the active identity token, or an empty string when nobody is
// signed in.
func (m *Manager) Current() (string, error) {
	return m.store.Get(store.KeyUserEmail)
}

// SignIn validates the address shape, waits out the simulated verification
// delay and persists the token. The only validation is "contains @ and is at
// least five characters long".
func (m *Manager) SignIn(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !Valid(email) {
		return ErrInvalidEmail
	}

	if err := utils.WaitFor(ctx, m.delay); err != nil {
		return err
	}

	return m.store.Set(store.KeyUserEmail, email)
}

// SignOut clears the active token. Usage counters are left behind, so signing
// back in on the same day resumes the already-spent quota.
func (m *Manager) SignOut() error {
	return m.store.Delete(store.KeyUserEmail)
}

// Valid reports whether the address passes the loose shape check.
func Valid(email string) bool {
	return len(email) >= 5 && strings.Contains(email, "@")
}
