package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"picnic/internal/picnic/models"
	dErrors "picnic/pkg/domain-errors"
	"picnic/pkg/platform/sentinel"
	"picnic/pkg/requestcontext"
)

// CreateCity onboards a city after confirming it exists in the external
// registry. Creating an existing city, under any casing, returns the stored row.
func (s *Service) CreateCity(ctx context.Context, name string) (*models.CityWithWeather, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "city name is required")
	}

	exists, err := s.validator.Exists(ctx, name)
	if err != nil {
		s.logger.WarnContext(ctx, "city validation failed",
			"request_id", requestcontext.RequestID(ctx),
			"city", name,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeExternalUnavailable, "city registry is unavailable")
	}
	if !exists {
		return nil, dErrors.New(dErrors.CodeUnknownCity, fmt.Sprintf("%q is not a known city", name))
	}

	candidate, err := models.NewCity(name)
	if err != nil {
		return nil, toValidation(err)
	}

	city, err := s.findOrCreateCity(ctx, candidate)
	if err != nil {
		return nil, err
	}

	result := s.withWeather(ctx, *city)
	return &result, nil
}

func (s *Service) findOrCreateCity(ctx context.Context, candidate *models.City) (*models.City, error) {
	existing, err := s.cities.FindCityByName(ctx, candidate.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up city")
	}

	err = s.cities.CreateCity(ctx, candidate)
	switch {
	case err == nil:
		s.logInfo(ctx, "city created", "city_id", candidate.ID, "city", candidate.Name)
		if s.metrics != nil {
			s.metrics.IncrementCitiesCreated()
		}
		return candidate, nil
	case errors.Is(err, sentinel.ErrAlreadyUsed):
		// Lost a race with a concurrent create; the winner's row is the result.
		winner, findErr := s.cities.FindCityByName(ctx, candidate.Name)
		if findErr != nil {
			return nil, dErrors.Wrap(findErr, dErrors.CodeConflict, "city was created concurrently")
		}
		return winner, nil
	default:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create city")
	}
}

// ListCities returns all cities, or the one matching name, each with current weather.
func (s *Service) ListCities(ctx context.Context, name string) ([]models.CityWithWeather, error) {
	cities, err := s.cities.ListCities(ctx, models.NormalizeCityName(name))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list cities")
	}

	result := make([]models.CityWithWeather, len(cities))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)
	for i, city := range cities {
		g.Go(func() error {
			result[i] = s.withWeather(gctx, *city)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load weather")
	}
	return result, nil
}

// GetCity returns stored city metadata without contacting the weather provider.
func (s *Service) GetCity(ctx context.Context, id int64) (*models.City, error) {
	city, err := s.cities.FindCityByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "city not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load city")
	}
	return city, nil
}

// GetCityWithWeather returns the city annotated with a live weather lookup.
func (s *Service) GetCityWithWeather(ctx context.Context, id int64) (*models.CityWithWeather, error) {
	city, err := s.GetCity(ctx, id)
	if err != nil {
		return nil, err
	}
	result := s.withWeather(ctx, *city)
	return &result, nil
}

// toValidation converts invariant violations raised by model constructors
// into validation errors for the API.
func toValidation(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		var de *dErrors.Error
		if errors.As(err, &de) {
			return dErrors.New(dErrors.CodeValidation, de.Message)
		}
	}
	return err
}
