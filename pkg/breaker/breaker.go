package breaker

import (
	"errors"
	"sync"
	"time"

	"github.com/tair/growshop/pkg/logger"
)

// ErrOpen is returned by Call while the breaker rejects calls
var ErrOpen = errors.New("circuit breaker is open")

// State represents the state of a circuit breaker
type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half-open"
)

// Settings tune a Breaker
type Settings struct {
	// MaxFailures consecutive failures open the circuit.
	MaxFailures int
	// OpenTimeout is how long the circuit stays open before a trial call.
	OpenTimeout time.Duration
	// HalfOpenSuccesses trial successes close the circuit again.
	HalfOpenSuccesses int
}

// DefaultSettings open after 5 failures for 30 seconds and close after 3
// successful trial calls
func DefaultSettings() Settings {
	return Settings{MaxFailures: 5, OpenTimeout: 30 * time.Second, HalfOpenSuccesses: 3}
}

// Breaker implements the circuit breaker pattern
type Breaker struct {
	name     string
	settings Settings
	now      func() time.Time

	mu              sync.Mutex
	state           State
	failures        int
	successes       int
	lastStateChange time.Time
}

// New creates a closed breaker
func New(name string, settings Settings) *Breaker {
	if settings.MaxFailures <= 0 {
		settings.MaxFailures = DefaultSettings().MaxFailures
	}
	if settings.HalfOpenSuccesses <= 0 {
		settings.HalfOpenSuccesses = DefaultSettings().HalfOpenSuccesses
	}
	b := &Breaker{name: name, settings: settings, now: time.Now, state: StateClosed}
	b.lastStateChange = b.now()
	return b
}

// Call runs fn unless the circuit is open, and records its outcome
func (b *Breaker) Call(fn func() error) error {
	if !b.allow() {
		return ErrOpen
	}

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.onFailure()
	} else {
		b.onSuccess()
	}
	return err
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refresh()
	return b.state
}

func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refresh()
	return b.state != StateOpen
}

// refresh moves an expired open circuit to half-open. Callers hold mu.
func (b *Breaker) refresh() {
	if b.state == StateOpen && b.now().Sub(b.lastStateChange) >= b.settings.OpenTimeout {
		b.setState(StateHalfOpen)
		b.successes = 0
		logger.Logger.Info().
			Str("circuit", b.name).
			Msg("Circuit breaker transitioning to half-open")
	}
}

func (b *Breaker) onFailure() {
	b.failures++

	switch {
	case b.state == StateHalfOpen:
		b.setState(StateOpen)
		logger.Logger.Warn().
			Str("circuit", b.name).
			Msg("Circuit breaker reopened after half-open failure")
	case b.state == StateClosed && b.failures >= b.settings.MaxFailures:
		b.setState(StateOpen)
		logger.Logger.Error().
			Str("circuit", b.name).
			Int("failures", b.failures).
			Int("threshold", b.settings.MaxFailures).
			Msg("Circuit breaker opened")
	}
}

func (b *Breaker) onSuccess() {
	switch b.state {
	case StateHalfOpen:
		b.successes++
		if b.successes >= b.settings.HalfOpenSuccesses {
			b.setState(StateClosed)
			b.failures = 0
			b.successes = 0
			logger.Logger.Info().
				Str("circuit", b.name).
				Msg("Circuit breaker closed after successful recovery")
		}
	case StateClosed:
		b.failures = 0
	}
}

func (b *Breaker) setState(s State) {
	b.state = s
	b.lastStateChange = b.now()
}
