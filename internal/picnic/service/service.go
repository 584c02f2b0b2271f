package service

import (
	"context"
	"log/slog"
	"time"

	"picnic/internal/external/providers"
	"picnic/internal/picnic/models"
	"picnic/internal/picnic/ports"
	"picnic/internal/platform/metrics"
	"picnic/pkg/requestcontext"
)

type CityStore interface {
	CreateCity(ctx context.Context, city *models.City) error
	FindCityByID(ctx context.Context, id int64) (*models.City, error)
	FindCityByName(ctx context.Context, name string) (*models.City, error)
	ListCities(ctx context.Context, name string) ([]*models.City, error)
	FindCitiesByIDs(ctx context.Context, ids []int64) (map[int64]*models.City, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, order models.UserOrder) ([]*models.User, error)
}

type PicnicStore interface {
	CreatePicnic(ctx context.Context, picnic *models.Picnic) error
	FindPicnicByID(ctx context.Context, id int64) (*models.Picnic, error)
	ListPicnics(ctx context.Context, filter models.PicnicFilter) ([]*models.Picnic, error)
	CreateRegistration(ctx context.Context, reg *models.Registration) error
	ListAttendees(ctx context.Context, picnicIDs []int64) (map[int64][]models.User, error)
}

// Service runs the city, user and picnic workflows. It owns all invariants and
// translates store and provider failures into domain errors.
type Service struct {
	cities    CityStore
	users     UserStore
	picnics   PicnicStore
	validator ports.CityValidator
	weather   ports.WeatherProvider
	logger    *slog.Logger
	metrics   *metrics.Metrics
	fanout    int
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithWeatherFanout bounds concurrent weather lookups when listing cities.
func WithWeatherFanout(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.fanout = n
		}
	}
}

// New constructs a Service.
func New(cities CityStore, users UserStore, picnics PicnicStore, validator ports.CityValidator, weather ports.WeatherProvider, opts ...Option) *Service {
	s := &Service{
		cities:    cities,
		users:     users,
		picnics:   picnics,
		validator: validator,
		weather:   weather,
		fanout:    8,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// withWeather annotates city with a live lookup. Failures degrade to the
// unavailable sentinel instead of failing the caller.
func (s *Service) withWeather(ctx context.Context, city models.City) models.CityWithWeather {
	start := time.Now()
	weather, err := s.weather.CurrentWeather(ctx, city.Name)
	if err != nil {
		s.logger.WarnContext(ctx, "weather unavailable",
			"request_id", requestcontext.RequestID(ctx),
			"city_id", city.ID,
			"city", city.Name,
			"category", providers.GetCategory(err),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.IncrementWeatherDegraded()
		}
		return city.WithWeather("")
	}
	return city.WithWeather(weather)
}

func (s *Service) logInfo(ctx context.Context, msg string, attributes ...any) {
	attributes = append(attributes, "request_id", requestcontext.RequestID(ctx))
	s.logger.InfoContext(ctx, msg, attributes...)
}
