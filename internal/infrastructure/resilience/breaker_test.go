package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFailed = errors.New("failed")

func succeed(context.Context) error { return nil }
func fail(context.Context) error    { return errFailed }

func tripAfter(n uint32) func(Counts) bool {
	return func(counts Counts) bool { return counts.ConsecutiveFailures >= n }
}

func TestBreakerStateTransitions(t *testing.T) {
	tests := []struct {
		name          string
		settings      Settings
		requests      []bool // true = success, false = failure
		expectedState State
	}{
		{
			name:          "stays closed on successes",
			settings:      Settings{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute},
			requests:      []bool{true, true, true},
			expectedState: StateClosed,
		},
		{
			name:          "opens after consecutive failures",
			settings:      Settings{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, ReadyToTrip: tripAfter(3)},
			requests:      []bool{false, false, false},
			expectedState: StateOpen,
		},
		{
			name:          "success resets the failure streak",
			settings:      Settings{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, ReadyToTrip: tripAfter(2)},
			requests:      []bool{false, true, false},
			expectedState: StateClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaker := New("test", tt.settings)

			for _, success := range tt.requests {
				req := fail
				if success {
					req = succeed
				}
				_ = breaker.Execute(context.Background(), req)
			}

			assert.Equal(t, tt.expectedState, breaker.State())
		})
	}
}

func TestBreakerCounts(t *testing.T) {
	breaker := New("test", Settings{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute})

	require.NoError(t, breaker.Execute(context.Background(), succeed))

	counts := breaker.Counts()
	assert.Equal(t, uint32(1), counts.Requests)
	assert.Equal(t, uint32(1), counts.TotalSuccesses)
	assert.Equal(t, uint32(1), counts.ConsecutiveSuccesses)
	assert.Equal(t, uint32(0), counts.TotalFailures)

	assert.ErrorIs(t, breaker.Execute(context.Background(), fail), errFailed)

	counts = breaker.Counts()
	assert.Equal(t, uint32(2), counts.Requests)
	assert.Equal(t, uint32(1), counts.TotalFailures)
	assert.Equal(t, uint32(1), counts.ConsecutiveFailures)
	assert.Equal(t, uint32(0), counts.ConsecutiveSuccesses)
}

func TestBreakerOpenState(t *testing.T) {
	breaker := New("test", Settings{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, ReadyToTrip: tripAfter(2)})

	for i := 0; i < 2; i++ {
		_ = breaker.Execute(context.Background(), fail)
	}
	assert.Equal(t, StateOpen, breaker.State())

	called := false
	err := breaker.Execute(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestBreakerHalfOpenState(t *testing.T) {
	breaker := New("test", Settings{MaxRequests: 2, Interval: time.Minute, Timeout: 50 * time.Millisecond, ReadyToTrip: tripAfter(2)})

	for i := 0; i < 2; i++ {
		_ = breaker.Execute(context.Background(), fail)
	}
	assert.Equal(t, StateOpen, breaker.State())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, StateHalfOpen, breaker.State())

	for i := 0; i < 2; i++ {
		require.NoError(t, breaker.Execute(context.Background(), succeed))
	}
	assert.Equal(t, StateClosed, breaker.State())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	breaker := New("test", Settings{MaxRequests: 1, Interval: time.Minute, Timeout: 20 * time.Millisecond, ReadyToTrip: tripAfter(1)})

	_ = breaker.Execute(context.Background(), fail)
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, StateHalfOpen, breaker.State())

	_ = breaker.Execute(context.Background(), fail)
	assert.Equal(t, StateOpen, breaker.State())
}

func TestBreakerIgnoresCancellation(t *testing.T) {
	breaker := New("test", Settings{ReadyToTrip: tripAfter(1)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := breaker.Execute(ctx, func(ctx context.Context) error { return ctx.Err() })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, breaker.State())
}

func TestBreakerCallbacks(t *testing.T) {
	var transitions []string

	breaker := New("test", Settings{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     10 * time.Millisecond,
		ReadyToTrip: tripAfter(2),
		OnStateChange: func(name string, from State, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})

	for i := 0; i < 2; i++ {
		_ = breaker.Execute(context.Background(), fail)
	}

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, StateHalfOpen, breaker.State())

	assert.Equal(t, []string{"closed->open", "open->half-open"}, transitions)
}
