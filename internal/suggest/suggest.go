// Package suggest drives the speculative quick-suggestion hints shown while
// the user composes a job description. A debounce collapses bursts of edits
// into a single provider call, and late responses for superseded input are
// discarded rather than applied.
package suggest

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"
)

// Defaults mirror the composer behaviour: fire 600ms after the last edit, and
// only for drafts between 6 and 199 characters.
const (
	DefaultDelay    = 600 * time.Millisecond
	DefaultMinRunes = 6
	DefaultMaxRunes = 199
)

// State of the loop, exposed for observability.
type State int

const (
	// Idle means no edit is pending and no request is in flight.
	Idle State = iota
	// Waiting means the debounce countdown is running.
	Waiting
	// InFlight means a suggestion request has been issued.
	InFlight
)

// Func issues one quick-suggestion request. It must follow the QuickSuggest
// discipline: best effort, empty string on any failure, never an error.
type Func func(ctx context.Context, input string, roles []string) string

// Loop is the debounce state machine. Edits arrive via OnInput; accepted
// suggestions (or empty strings, which clear a stale hint) are delivered
// through the deliver callback.
type Loop struct {
	delay    time.Duration
	minRunes int
	maxRunes int
	suggest  Func
	deliver  func(input, suggestion string)
	busy     func() bool

	mu    sync.Mutex
	state State
	input string
	roles []string
	timer *time.Timer
}

// Option configures a Loop.
type Option func(*Loop)

// WithDelay overrides the debounce delay.
func WithDelay(d time.Duration) Option {
	return func(l *Loop) { l.delay = d }
}

// WithBounds overrides the input length window.
func WithBounds(minRunes, maxRunes int) Option {
	return func(l *Loop) {
		l.minRunes = minRunes
		l.maxRunes = maxRunes
	}
}

// WithBusy installs a check that suppresses suggestions while a primary
// action is in flight.
func WithBusy(busy func() bool) Option {
	return func(l *Loop) { l.busy = busy }
}

// New returns a stopped loop. deliver is called from the loop's goroutine with
// the input the suggestion belongs to.
func New(suggest Func, deliver func(input, suggestion string), opts ...Option) *Loop {
	l := &Loop{
		delay:    DefaultDelay,
		minRunes: DefaultMinRunes,
		maxRunes: DefaultMaxRunes,
		suggest:  suggest,
		deliver:  deliver,
		busy:     func() bool { return false },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetRoles records the currently selected role names sent with each request.
func (l *Loop) SetRoles(roles []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.roles = append([]string(nil), roles...)
}

// OnInput registers an edit: any pending countdown restarts, so only the last
// edit in a burst triggers a request.
func (l *Loop) OnInput(ctx context.Context, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.input = text
	if l.timer != nil {
		l.timer.Stop()
	}

	l.state = Waiting
	l.timer = time.AfterFunc(l.delay, func() { l.fire(ctx) })
}

// Stop cancels any pending countdown. In-flight requests are not aborted;
// their responses are discarded on arrival if the input has moved on.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.state = Idle
}

// State returns the loop's current state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Loop) fire(ctx context.Context) {
	l.mu.Lock()

	text := l.input
	roles := append([]string(nil), l.roles...)
	length := utf8.RuneCountInString(text)

	if length < l.minRunes || length > l.maxRunes || l.busy() {
		l.state = Idle
		l.mu.Unlock()
		// Out-of-window edits clear whatever hint is showing.
		l.deliver(text, "")
		return
	}

	l.state = InFlight
	l.mu.Unlock()

	suggestion := l.suggest(ctx, text, roles)

	l.mu.Lock()
	stale := l.input != text
	if l.state == InFlight {
		l.state = Idle
	}
	l.mu.Unlock()

	if stale {
		return
	}
	l.deliver(text, suggestion)
}
