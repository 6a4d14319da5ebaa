package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func newTestBreaker() (*Breaker, *time.Time) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := New("test", Settings{MaxFailures: 2, OpenTimeout: time.Minute, HalfOpenSuccesses: 2})
	b.now = func() time.Time { return clock }
	return b, &clock
}

func fail() error    { return errBoom }
func succeed() error { return nil }

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	b, _ := newTestBreaker()

	assert.ErrorIs(t, b.Call(fail), errBoom)
	assert.NoError(t, b.Call(succeed))
	assert.ErrorIs(t, b.Call(fail), errBoom)
	assert.Equal(t, StateClosed, b.State(), "a success resets the failure count")

	assert.ErrorIs(t, b.Call(fail), errBoom)
	assert.Equal(t, StateOpen, b.State())

	called := false
	err := b.Call(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestBreakerRecovers(t *testing.T) {
	b, clock := newTestBreaker()
	b.Call(fail)
	b.Call(fail)
	assert.Equal(t, StateOpen, b.State())

	*clock = clock.Add(time.Minute)
	assert.Equal(t, StateHalfOpen, b.State())

	assert.NoError(t, b.Call(succeed))
	assert.Equal(t, StateHalfOpen, b.State())
	assert.NoError(t, b.Call(succeed))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerReopensOnHalfOpenFailure(t *testing.T) {
	b, clock := newTestBreaker()
	b.Call(fail)
	b.Call(fail)

	*clock = clock.Add(time.Minute)
	assert.ErrorIs(t, b.Call(fail), errBoom)
	assert.Equal(t, StateOpen, b.State())

	*clock = clock.Add(30 * time.Second)
	assert.ErrorIs(t, b.Call(succeed), ErrOpen)
}
