package broker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// NewBreaker returns a circuit breaker for one downstream dependency (the
// projection store, an ML service). An open breaker sheds load: calls fail
// fast and handlers report them as transient, so the message rides the
// retry/backoff path instead of hammering a struggling dependency.
func NewBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})
}

// Guard runs fn through the breaker. Breaker-open and downstream errors are
// both returned as-is; callers classify them (typically Retry).
func Guard(ctx context.Context, cb *gobreaker.CircuitBreaker, fn func(ctx context.Context) error) error {
	_, err := cb.Execute(func() (any, error) {
		return nil, fn(ctx)
	})
	return err
}

// IsBreakerOpen reports whether the error came from an open or half-open
// breaker rejecting the call.
func IsBreakerOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
