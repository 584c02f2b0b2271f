// Package openweather adapts the OpenWeatherMap current-weather API to the
// city validator and weather provider ports.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"picnic/internal/external/providers"
	"picnic/internal/platform/config"
)

// ProviderID identifies this adapter in provider errors and metrics.
const ProviderID = "openweather"

const maxResponseBytes = 64 << 10

// Client calls GET /data/2.5/weather. A city is considered to exist when the
// API can resolve it by name.
type Client struct {
	baseURL    string
	apiKey     string
	units      string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

func New(cfg config.OpenWeatherConfig, opts ...Option) *Client {
	units := cfg.Units
	if units == "" {
		units = "metric"
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		units:      units,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exists reports whether name resolves to a known city. A 404 from the API
// means the city does not exist; every other failure is returned as an error.
func (c *Client) Exists(ctx context.Context, name string) (bool, error) {
	status, body, err := c.fetch(ctx, name)
	if err != nil {
		return false, err
	}
	if status == http.StatusNotFound {
		return false, nil
	}
	if _, err := parseWeatherResponse(status, body, c.units); err != nil {
		return false, err
	}
	return true, nil
}

// CurrentWeather returns a short description such as "clear sky, 21.5°C".
func (c *Client) CurrentWeather(ctx context.Context, city string) (string, error) {
	status, body, err := c.fetch(ctx, city)
	if err != nil {
		return "", err
	}
	return parseWeatherResponse(status, body, c.units)
}

func (c *Client) fetch(ctx context.Context, city string) (int, []byte, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", c.units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return 0, nil, providers.NewProviderError(providers.ErrorInternal, ProviderID, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, providers.FromTransportError(ProviderID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, providers.FromTransportError(ProviderID, err)
	}
	return resp.StatusCode, body, nil
}

type weatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

func parseWeatherResponse(status int, body []byte, units string) (string, error) {
	switch {
	case status == http.StatusOK:
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return "", providers.NewProviderError(providers.ErrorAuthentication, ProviderID,
			fmt.Sprintf("rejected credentials (status %d)", status), nil)
	case status == http.StatusTooManyRequests:
		return "", providers.NewProviderError(providers.ErrorRateLimited, ProviderID, "rate limited", nil)
	case status >= http.StatusInternalServerError:
		return "", providers.NewProviderError(providers.ErrorProviderOutage, ProviderID,
			fmt.Sprintf("unexpected status %d", status), nil)
	default:
		return "", providers.NewProviderError(providers.ErrorBadData, ProviderID,
			fmt.Sprintf("unexpected status %d", status), nil)
	}

	var parsed weatherResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", providers.NewProviderError(providers.ErrorBadData, ProviderID, "malformed response", err)
	}
	if parsed.Main == nil {
		return "", providers.NewProviderError(providers.ErrorBadData, ProviderID, "response has no temperature", nil)
	}

	temp := fmt.Sprintf("%.1f%s", parsed.Main.Temp, unitSymbol(units))
	if len(parsed.Weather) == 0 || parsed.Weather[0].Description == "" {
		return temp, nil
	}
	return parsed.Weather[0].Description + ", " + temp, nil
}

func unitSymbol(units string) string {
	switch units {
	case "imperial":
		return "°F"
	case "standard":
		return "K"
	default:
		return "°C"
	}
}
