// Package usage implements the daily usage-limiting policy that mediates every
// AI-backed action. Counters live in the shared key-value store under
// usage_{identity}_{date} keys; nothing enforces atomicity across concurrent
// callers, so the limit is best-effort rather than a security boundary.
package usage

import (
	"strconv"
	"time"

	"github.com/resumepilot/resumepilot/internal/store"
)

// DailyLimit is the number of gated actions an identity may perform per local
// calendar day.
const DailyLimit = 5

// DateLayout is the ISO-8601 calendar date used for counter keys. The boundary
// is the machine's local midnight, not UTC.
const DateLayout = "2006-01-02"

// Today returns the current local calendar date.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Ledger tracks per-identity, per-day action counts.
type Ledger struct {
	store KV
}

// KV is the subset of the store the ledger needs.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// NewLedger returns a Ledger over the given store.
func NewLedger(kv KV) *Ledger {
	return &Ledger{store: kv}
}

// CurrentCount returns the number of actions consumed by the identity on the
// given date. An absent or unparsable counter reads as zero.
func (l *Ledger) CurrentCount(identity, date string) (int, error) {
	raw, err := l.store.Get(store.UsageKey(identity, date))
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		return 0, nil
	}
	return count, nil
}

// Increment bumps the counter for (identity, date) and returns the new value.
// The read and the write are two separate store operations; two racing callers
// can both observe the same count and end up one past the limit. The limit is
// best-effort, not a hard ceiling.
func (l *Ledger) Increment(identity, date string) (int, error) {
	count, err := l.CurrentCount(identity, date)
	if err != nil {
		return 0, err
	}

	count++
	if err := l.store.Set(store.UsageKey(identity, date), strconv.Itoa(count)); err != nil {
		return 0, err
	}
	return count, nil
}
