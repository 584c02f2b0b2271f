package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	CitiesCreated        prometheus.Counter
	UsersRegistered      prometheus.Counter
	PicnicsScheduled     prometheus.Counter
	PicnicRegistrations  prometheus.Counter
	WeatherDegraded      prometheus.Counter
	ExternalRequests     *prometheus.CounterVec
	ExternalDuration     *prometheus.HistogramVec
	CircuitOpen          *prometheus.GaugeVec
	ValidatorCacheLookup *prometheus.CounterVec
	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
}

// New creates all Prometheus metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CitiesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "picnic_cities_created_total",
			Help: "Total number of cities created",
		}),
		UsersRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "picnic_users_registered_total",
			Help: "Total number of users registered",
		}),
		PicnicsScheduled: f.NewCounter(prometheus.CounterOpts{
			Name: "picnic_picnics_scheduled_total",
			Help: "Total number of picnics scheduled",
		}),
		PicnicRegistrations: f.NewCounter(prometheus.CounterOpts{
			Name: "picnic_registrations_total",
			Help: "Total number of user registrations onto picnics",
		}),
		WeatherDegraded: f.NewCounter(prometheus.CounterOpts{
			Name: "picnic_weather_degraded_total",
			Help: "Weather lookups that failed and were reported as unavailable",
		}),
		ExternalRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "picnic_external_requests_total",
			Help: "Calls to external providers by outcome category",
		}, []string{"provider", "outcome"}),
		ExternalDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "picnic_external_request_duration_seconds",
			Help:    "Latency of external provider calls including retries",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10},
		}, []string{"provider"}),
		CircuitOpen: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "picnic_circuit_open",
			Help: "1 when the named circuit breaker is open",
		}, []string{"name"}),
		ValidatorCacheLookup: f.NewCounterVec(prometheus.CounterOpts{
			Name: "picnic_validator_cache_lookups_total",
			Help: "City validator cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "picnic_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "picnic_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) IncrementCitiesCreated() {
	m.CitiesCreated.Inc()
}

func (m *Metrics) IncrementUsersRegistered() {
	m.UsersRegistered.Inc()
}

func (m *Metrics) IncrementPicnicsScheduled() {
	m.PicnicsScheduled.Inc()
}

func (m *Metrics) IncrementPicnicRegistrations() {
	m.PicnicRegistrations.Inc()
}

func (m *Metrics) IncrementWeatherDegraded() {
	m.WeatherDegraded.Inc()
}

// ObserveExternal records one provider call with its outcome ("ok" or an
// error category) and total duration in seconds.
func (m *Metrics) ObserveExternal(provider, outcome string, seconds float64) {
	m.ExternalRequests.WithLabelValues(provider, outcome).Inc()
	m.ExternalDuration.WithLabelValues(provider).Observe(seconds)
}

func (m *Metrics) SetCircuitOpen(name string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	m.CircuitOpen.WithLabelValues(name).Set(v)
}

func (m *Metrics) IncrementValidatorCache(result string) {
	m.ValidatorCacheLookup.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}
