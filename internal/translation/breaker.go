package translation

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerTranslator wraps a Translator with a circuit breaker. While the
// breaker is open calls fail immediately with gobreaker.ErrOpenState instead
// of reaching the backend.
type BreakerTranslator struct {
	next Translator
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerTranslator opens the breaker after threshold consecutive
// failures and probes the backend again after cooldown
func NewBreakerTranslator(next Translator, name string, threshold uint32, cooldown time.Duration) *BreakerTranslator {
	if threshold == 0 {
		threshold = 1
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}

	return &BreakerTranslator{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate forwards to the wrapped translator unless the breaker is open
func (b *BreakerTranslator) Translate(ctx context.Context, text string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// State returns the current breaker state
func (b *BreakerTranslator) State() gobreaker.State {
	return b.cb.State()
}
