package ports

//go:generate mockgen -source=external.go -destination=mocks/mocks.go -package=mocks

import "context"

// CityValidator reports whether a proposed name is a recognized real-world city.
// This port lets the domain service validate cities without depending on
// HTTP or a specific registry implementation.
//
// Failures to reach the registry are returned as errors and must never be
// read as "does not exist".
type CityValidator interface {
	Exists(ctx context.Context, name string) (bool, error)
}

// WeatherProvider returns a short, human-readable description of the current
// weather in a city. Lookups are best-effort.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (string, error)
}
