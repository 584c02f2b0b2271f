// Package cache keeps city-existence answers so repeated onboarding of the
// same name does not reach the external registry. Weather is never cached.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"picnic/internal/picnic/ports"
	"picnic/internal/platform/metrics"
	"picnic/pkg/requestcontext"
)

// Store holds cached answers. Get reports found=false for missing or expired keys.
type Store interface {
	Get(ctx context.Context, key string) (exists, found bool, err error)
	Set(ctx context.Context, key string, exists bool, ttl time.Duration) error
}

// Validator is a read-through cache in front of a CityValidator. Both positive
// and negative answers are cached; errors are not. A failing cache store is
// bypassed rather than failing the lookup.
type Validator struct {
	next    ports.CityValidator
	store   Store
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Validator)

func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(v *Validator) {
		v.metrics = m
	}
}

func NewValidator(next ports.CityValidator, store Store, ttl time.Duration, opts ...Option) *Validator {
	v := &Validator{next: next, store: store, ttl: ttl}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Exists(ctx context.Context, name string) (bool, error) {
	key := Key(name)

	exists, found, err := v.store.Get(ctx, key)
	switch {
	case err != nil:
		v.record("error")
		v.warn(ctx, "validator cache read failed", name, err)
	case found:
		v.record("hit")
		return exists, nil
	default:
		v.record("miss")
	}

	exists, err = v.next.Exists(ctx, name)
	if err != nil {
		return false, err
	}
	if err := v.store.Set(ctx, key, exists, v.ttl); err != nil {
		v.warn(ctx, "validator cache write failed", name, err)
	}
	return exists, nil
}

// Key is the cache key for a city name. Lookups are case-insensitive.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (v *Validator) record(result string) {
	if v.metrics != nil {
		v.metrics.IncrementValidatorCache(result)
	}
}

func (v *Validator) warn(ctx context.Context, msg, name string, err error) {
	if v.logger == nil {
		return
	}
	v.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"city", name,
		"error", err,
	)
}
