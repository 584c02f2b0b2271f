package models

import (
	"strings"

	dErrors "picnic/pkg/domain-errors"
	pstrings "picnic/pkg/platform/strings"
)

// WeatherUnavailable is reported in place of a weather description when the
// provider could not be reached.
const WeatherUnavailable = "unavailable"

// City is a real-world location validated against the external city registry.
//
// Invariants:
//   - Name is non-empty and normalized with NormalizeCityName
//   - Name is unique across all cities (enforced by the store)
//   - A city is immutable once created
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CityWithWeather is a city annotated with a live weather lookup. Weather is
// never persisted.
type CityWithWeather struct {
	City
	Weather          string `json:"weather"`
	WeatherAvailable bool   `json:"weather_available"`
}

// NormalizeCityName trims the name and capitalizes it so "kAZAN" and "Kazan"
// address the same city.
func NormalizeCityName(name string) string {
	return pstrings.Capitalize(strings.TrimSpace(name))
}

func NewCity(name string) (*City, error) {
	name = NormalizeCityName(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "city name cannot be empty")
	}
	return &City{Name: name}, nil
}

// WithWeather attaches a weather description. An empty description means the
// lookup failed and the sentinel value is used instead.
func (c City) WithWeather(weather string) CityWithWeather {
	if weather == "" {
		return CityWithWeather{City: c, Weather: WeatherUnavailable}
	}
	return CityWithWeather{City: c, Weather: weather, WeatherAvailable: true}
}
