package poster

import (
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"reelmatch/internal/logging"
)

// BreakerSettings controls when provider lookups stop being attempted.
type BreakerSettings struct {
	// Failures is the number of consecutive lookup failures that opens the breaker.
	Failures int
	// Cooldown is how long the breaker stays open before a trial request.
	Cooldown time.Duration
}

func newBreaker(name string, settings BreakerSettings, logger *slog.Logger) *gobreaker.CircuitBreaker[string] {
	failures := settings.Failures
	if failures <= 0 {
		failures = 5
	}
	cooldown := settings.Cooldown
	if cooldown <= 0 {
		cooldown = time.Minute
	}
	return gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failures)
		},
		// A title the provider does not know is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoResults) || errors.Is(err, ErrNoImage)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("poster provider circuit state changed",
				logging.String("provider", name),
				logging.String("from", from.String()),
				logging.String("to", to.String()),
			)
		},
	})
}

func breakerRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
