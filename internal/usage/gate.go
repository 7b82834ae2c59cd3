package usage

// Gate reasons surfaced verbatim to the user.
const (
	ReasonSignInRequired    = "sign-in required"
	ReasonDailyLimitReached = "daily limit reached"
)

// Decision is the outcome of a gate check. It is a pure function of the
// current ledger state and is never persisted.
type Decision struct {
	Allowed bool
	Reason  string
}

// Gate is the single choke point every AI-backed action passes through.
// Callers check first, then consume on attempt: the unit is spent whether or
// not the provider call that follows succeeds.
type Gate struct {
	ledger *Ledger
	now    func() string
}

// NewGate returns a Gate over the given ledger, using the local calendar date.
func NewGate(ledger *Ledger) *Gate {
	return &Gate{ledger: ledger, now: Today}
}

// WithToday overrides the date source. Used in tests to simulate day rollover.
func (g *Gate) WithToday(now func() string) *Gate {
	g.now = now
	return g
}

// CheckAllowed decides whether the identity may perform another gated action
// today. An empty identity is denied before the ledger is consulted.
func (g *Gate) CheckAllowed(identity string) (Decision, error) {
	if identity == "" {
		return Decision{Allowed: false, Reason: ReasonSignInRequired}, nil
	}

	count, err := g.ledger.CurrentCount(identity, g.now())
	if err != nil {
		return Decision{}, err
	}

	if count >= DailyLimit {
		return Decision{Allowed: false, Reason: ReasonDailyLimitReached}, nil
	}

	return Decision{Allowed: true}, nil
}

// Consume charges one quota unit against the identity for today. It is called
// after a positive check and before the provider call; there is no refund path
// for failed attempts. The check-then-consume pair is not atomic, so the
// counter can legitimately end up past the limit under concurrent use.
func (g *Gate) Consume(identity string) error {
	if identity == "" {
		return nil
	}
	_, err := g.ledger.Increment(identity, g.now())
	return err
}

// Count returns today's usage for the identity, for display purposes.
func (g *Gate) Count(identity string) (int, error) {
	if identity == "" {
		return 0, nil
	}
	return g.ledger.CurrentCount(identity, g.now())
}
