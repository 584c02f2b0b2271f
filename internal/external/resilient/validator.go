package resilient

import (
	"context"

	"picnic/internal/picnic/ports"
)

// Validator wraps a CityValidator with timeout and retries.
type Validator struct {
	caller
	next ports.CityValidator
}

func NewValidator(next ports.CityValidator, policy Policy, opts ...Option) *Validator {
	return &Validator{caller: newCaller("city_validator", policy, opts), next: next}
}

func (v *Validator) Exists(ctx context.Context, name string) (bool, error) {
	return call(ctx, &v.caller, "exists", func(ctx context.Context) (bool, error) {
		return v.next.Exists(ctx, name)
	})
}
