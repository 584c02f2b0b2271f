package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picnic/internal/external/providers"
	"picnic/internal/platform/config"
)

const kazanBody = `{"name":"Kazan","weather":[{"main":"Clear","description":"clear sky"}],"main":{"temp":21.46}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.OpenWeatherConfig{APIKey: "key", BaseURL: srv.URL + "/", Units: "metric"})
}

func TestCurrentWeather(t *testing.T) {
	t.Run("formats description and temperature", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/data/2.5/weather", r.URL.Path)
			assert.Equal(t, "Kazan", r.URL.Query().Get("q"))
			assert.Equal(t, "key", r.URL.Query().Get("appid"))
			assert.Equal(t, "metric", r.URL.Query().Get("units"))
			_, _ = w.Write([]byte(kazanBody))
		})

		weather, err := client.CurrentWeather(context.Background(), "Kazan")
		require.NoError(t, err)
		assert.Equal(t, "clear sky, 21.5°C", weather)
	})

	t.Run("server error is a retryable outage", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.CurrentWeather(context.Background(), "Kazan")
		require.Error(t, err)
		assert.Equal(t, providers.ErrorProviderOutage, providers.GetCategory(err))
		assert.True(t, providers.IsRetryable(err))
	})

	t.Run("context deadline is a timeout", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := client.CurrentWeather(ctx, "Kazan")
		require.Error(t, err)
		assert.Equal(t, providers.ErrorTimeout, providers.GetCategory(err))
	})
}

func TestExists(t *testing.T) {
	t.Run("resolved city exists", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(kazanBody))
		})
		ok, err := client.Exists(context.Background(), "Kazan")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("404 means unknown city", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		})
		ok, err := client.Exists(context.Background(), "Atlantis")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalid key is an error, not a missing city", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		ok, err := client.Exists(context.Background(), "Kazan")
		require.Error(t, err)
		assert.False(t, ok)
		assert.Equal(t, providers.ErrorAuthentication, providers.GetCategory(err))
	})

	t.Run("unreachable server is an outage", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := New(config.OpenWeatherConfig{BaseURL: srv.URL})

		_, err := client.Exists(context.Background(), "Kazan")
		require.Error(t, err)
		assert.Equal(t, providers.ErrorProviderOutage, providers.GetCategory(err))
	})
}

func TestParseWeatherResponse(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		units    string
		want     string
		category providers.ErrorCategory
	}{
		{"imperial units", 200, `{"weather":[{"description":"rain"}],"main":{"temp":50}}`, "imperial", "rain, 50.0°F", ""},
		{"no description", 200, `{"weather":[],"main":{"temp":-3.04}}`, "metric", "-3.0°C", ""},
		{"malformed json", 200, `{"main":`, "metric", "", providers.ErrorBadData},
		{"missing main", 200, `{"weather":[{"description":"rain"}]}`, "metric", "", providers.ErrorBadData},
		{"rate limited", 429, ``, "metric", "", providers.ErrorRateLimited},
		{"bad request", 400, ``, "metric", "", providers.ErrorBadData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeatherResponse(tt.status, []byte(tt.body), tt.units)
			if tt.category != "" {
				require.Error(t, err)
				assert.Equal(t, tt.category, providers.GetCategory(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
