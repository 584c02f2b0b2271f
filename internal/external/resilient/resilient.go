// Package resilient decorates the external ports with a per-attempt timeout,
// bounded retries of retryable failures, tracing and, for weather, a circuit
// breaker.
package resilient

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"picnic/internal/external/providers"
	"picnic/internal/platform/metrics"
	"picnic/pkg/requestcontext"
)

// Policy bounds a single logical call.
type Policy struct {
	Timeout         time.Duration // per attempt
	MaxRetries      uint          // attempts after the first
	InitialInterval time.Duration // first backoff delay
}

func (p Policy) withDefaults() Policy {
	if p.Timeout <= 0 {
		p.Timeout = 3 * time.Second
	}
	if p.InitialInterval <= 0 {
		p.InitialInterval = 100 * time.Millisecond
	}
	return p
}

type Option func(*caller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *caller) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *caller) {
		c.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *caller) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

type caller struct {
	name    string
	policy  Policy
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

func newCaller(name string, policy Policy, opts []Option) caller {
	c := caller{
		name:   name,
		policy: policy.withDefaults(),
		tracer: otel.Tracer("picnic/external"),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// call runs fn with retries. Non-retryable provider errors stop immediately.
func call[T any](ctx context.Context, c *caller, op string, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := c.tracer.Start(ctx, "external."+c.name+"."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("external.provider", c.name)),
	)
	defer span.End()

	start := time.Now()
	attempts := 0
	operation := func() (T, error) {
		attempts++
		attemptCtx, cancel := context.WithTimeout(ctx, c.policy.Timeout)
		defer cancel()

		v, err := fn(attemptCtx)
		if err == nil {
			return v, nil
		}
		if !providers.IsRetryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.policy.InitialInterval

	v, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(c.policy.MaxRetries+1),
		backoff.WithNotify(func(err error, next time.Duration) {
			if c.logger != nil {
				c.logger.WarnContext(ctx, "retrying external call",
					"request_id", requestcontext.RequestID(ctx),
					"provider", c.name,
					"operation", op,
					"error", err,
					"backoff_ms", next.Milliseconds(),
				)
			}
		}),
	)
	if err != nil {
		var pe *providers.ProviderError
		if !errors.As(err, &pe) {
			err = providers.FromTransportError(c.name, err)
		}
	}

	span.SetAttributes(attribute.Int("external.attempts", attempts))
	outcome := "ok"
	if err != nil {
		outcome = string(providers.GetCategory(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
	if c.metrics != nil {
		c.metrics.ObserveExternal(c.name, outcome, time.Since(start).Seconds())
	}
	return v, err
}
