package resilient

import (
	"context"

	"picnic/internal/external/providers"
	"picnic/internal/picnic/ports"
	"picnic/pkg/platform/circuit"
	"picnic/pkg/requestcontext"
)

// Weather wraps a WeatherProvider with timeout, retries and a circuit breaker.
// While the breaker is open calls fail fast with ErrorCircuitOpen.
type Weather struct {
	caller
	next    ports.WeatherProvider
	breaker *circuit.Breaker
}

// NewWeather decorates next. A nil breaker disables short-circuiting.
func NewWeather(next ports.WeatherProvider, policy Policy, breaker *circuit.Breaker, opts ...Option) *Weather {
	return &Weather{caller: newCaller("weather", policy, opts), next: next, breaker: breaker}
}

func (w *Weather) CurrentWeather(ctx context.Context, city string) (string, error) {
	if w.breaker != nil && !w.breaker.Allow() {
		return "", providers.NewProviderError(providers.ErrorCircuitOpen, w.name, "circuit open", nil)
	}

	weather, err := call(ctx, &w.caller, "current", func(ctx context.Context) (string, error) {
		return w.next.CurrentWeather(ctx, city)
	})
	if w.breaker == nil {
		return weather, err
	}

	if err != nil {
		if _, change := w.breaker.RecordFailure(); change.Opened {
			w.stateChanged(ctx, true)
		}
		return "", err
	}
	if _, change := w.breaker.RecordSuccess(); change.Closed {
		w.stateChanged(ctx, false)
	}
	return weather, nil
}

func (w *Weather) stateChanged(ctx context.Context, open bool) {
	if w.metrics != nil {
		w.metrics.SetCircuitOpen(w.breaker.Name(), open)
	}
	if w.logger == nil {
		return
	}
	if open {
		w.logger.WarnContext(ctx, "circuit opened",
			"request_id", requestcontext.RequestID(ctx),
			"circuit", w.breaker.Name(),
		)
		return
	}
	w.logger.InfoContext(ctx, "circuit closed",
		"request_id", requestcontext.RequestID(ctx),
		"circuit", w.breaker.Name(),
	)
}
