// Package circuit implements a two-state circuit breaker for calls to shared
// infrastructure that has an in-process fallback.
package circuit

import "sync"

type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// StateChange describes the transition caused by a recorded outcome, if any.
type StateChange struct {
	Opened bool
	Closed bool
}

// Breaker counts consecutive outcomes. FailureThreshold failures in a row
// open it; while open, SuccessThreshold successes in a row close it again.
// Callers keep trying the primary while open and use its outcome to decide.
type Breaker struct {
	mu               sync.Mutex
	name             string
	state            State
	failures         int
	successes        int
	failureThreshold int
	successThreshold int
	onChange         func(name string, open bool)
}

type Option func(*Breaker)

// WithFailureThreshold defaults to 5.
func WithFailureThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.failureThreshold = n
		}
	}
}

// WithSuccessThreshold defaults to 3.
func WithSuccessThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.successThreshold = n
		}
	}
}

// WithOnChange registers fn to run after every transition, outside the lock.
func WithOnChange(fn func(name string, open bool)) Option {
	return func(b *Breaker) {
		b.onChange = fn
	}
}

func New(name string, opts ...Option) *Breaker {
	b := &Breaker{
		name:             name,
		failureThreshold: 5,
		successThreshold: 3,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

func (b *Breaker) Name() string {
	return b.name
}

func (b *Breaker) IsOpen() bool {
	return b.State() == StateOpen
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// RecordFailure reports whether the caller should now serve from its
// fallback.
func (b *Breaker) RecordFailure() (useFallback bool, change StateChange) {
	b.mu.Lock()
	b.failures++
	b.successes = 0
	switch {
	case b.state == StateOpen:
		useFallback = true
	case b.failures >= b.failureThreshold:
		b.state = StateOpen
		useFallback = true
		change.Opened = true
	}
	b.mu.Unlock()

	b.notify(change)
	return useFallback, change
}

// RecordSuccess reports whether the primary's result may be used. While the
// breaker is still recovering it returns false.
func (b *Breaker) RecordSuccess() (usePrimary bool, change StateChange) {
	b.mu.Lock()
	if b.state == StateClosed {
		b.failures = 0
		b.mu.Unlock()
		return true, change
	}
	b.successes++
	if b.successes >= b.successThreshold {
		b.state = StateClosed
		b.failures = 0
		b.successes = 0
		usePrimary = true
		change.Closed = true
	}
	b.mu.Unlock()

	b.notify(change)
	return usePrimary, change
}

func (b *Breaker) Reset() {
	b.mu.Lock()
	wasOpen := b.state == StateOpen
	b.state = StateClosed
	b.failures = 0
	b.successes = 0
	b.mu.Unlock()

	if wasOpen {
		b.notify(StateChange{Closed: true})
	}
}

func (b *Breaker) notify(change StateChange) {
	if b.onChange == nil || (!change.Opened && !change.Closed) {
		return
	}
	b.onChange(b.name, change.Opened)
}
