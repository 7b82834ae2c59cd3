package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumepilot/resumepilot/internal/store"
)

func TestValid(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@b.co", true},
		{"x@y.z", true},
		{"a@b", false},   // shorter than five characters
		{"nope", false},  // no @
		{"", false},      // empty
		{"@@@@@", true},  // shape check only, nothing smarter
		{"12345", false}, // long enough but no @
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, Valid(tt.email), "email %q", tt.email)
	}
}

func TestSignInPersistsToken(t *testing.T) {
	s := store.NewMemory()
	m := New(s).WithDelay(0)

	require.NoError(t, m.SignIn(context.Background(), "  a@b.co  "))

	current, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", current)
}

func TestSignInRejectsInvalidEmail(t *testing.T) {
	m := New(store.NewMemory()).WithDelay(0)

	err := m.SignIn(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestSignInHonoursCancellation(t *testing.T) {
	m := New(store.NewMemory()) // real 800ms delay

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.SignIn(ctx, "a@b.co")
	require.Error(t, err)

	current, cerr := m.Current()
	require.NoError(t, cerr)
	assert.Empty(t, current, "cancelled sign-in must not persist a token")
}

func TestSignOutClearsTokenButKeepsCounters(t *testing.T) {
	s := store.NewMemory()
	m := New(s).WithDelay(0)

	require.NoError(t, m.SignIn(context.Background(), "a@b.co"))
	require.NoError(t, s.Set(store.UsageKey("a@b.co", "2026-08-31"), "4"))

	require.NoError(t, m.SignOut())

	current, err := m.Current()
	require.NoError(t, err)
	assert.Empty(t, current)

	count, err := s.Get(store.UsageKey("a@b.co", "2026-08-31"))
	require.NoError(t, err)
	assert.Equal(t, "4", count)
}
