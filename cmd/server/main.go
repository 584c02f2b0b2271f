package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"picnic/internal/external/cache"
	"picnic/internal/external/openweather"
	"picnic/internal/external/resilient"
	"picnic/internal/picnic/handler"
	"picnic/internal/picnic/service"
	"picnic/internal/picnic/store"
	"picnic/internal/platform/config"
	"picnic/internal/platform/httpserver"
	"picnic/internal/platform/logger"
	"picnic/internal/platform/metrics"
	"picnic/internal/platform/postgres"
	"picnic/internal/platform/redis"
	httptransport "picnic/internal/transport/http"
	"picnic/pkg/platform/circuit"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

type picnicStore interface {
	service.CityStore
	service.UserStore
	service.PicnicStore
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	m := metrics.New(prometheus.DefaultRegisterer)
	checks := map[string]httptransport.HealthCheck{}

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	var entities picnicStore = store.NewInMemory()
	if db != nil {
		defer closeDB(db, log)
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		entities = store.NewPostgres(db)
		checks["postgres"] = db.PingContext
		log.Info("using postgres store")
	} else {
		log.Warn("DATABASE_URL not set, using in-memory store")
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	var cacheStore cache.Store = cache.NewInMemoryStore()
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		cacheStore = cache.NewRedisStore(redisClient.Client)
		checks["redis"] = redisClient.Health
		log.Info("using redis validator cache")
	}

	if cfg.OpenWeather.APIKey == "" {
		log.Warn("OPENWEATHER_API_KEY not set, city validation and weather will fail")
	}
	owm := openweather.New(cfg.OpenWeather)
	policy := resilient.Policy{
		Timeout:    cfg.External.Timeout,
		MaxRetries: cfg.External.MaxRetries,
	}
	validator := cache.NewValidator(
		resilient.NewValidator(owm, policy, resilient.WithLogger(log), resilient.WithMetrics(m)),
		cacheStore,
		cfg.External.ValidatorCacheTTL,
		cache.WithLogger(log),
		cache.WithMetrics(m),
	)
	weather := resilient.NewWeather(owm, policy,
		circuit.New("weather", circuit.WithCooldown(30*time.Second)),
		resilient.WithLogger(log),
		resilient.WithMetrics(m),
	)

	svc := service.New(entities, entities, entities, validator, weather,
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithWeatherFanout(cfg.External.WeatherFanout),
	)

	router := httptransport.NewRouter(httptransport.Config{
		Logger:       log,
		Metrics:      m,
		CORSOrigins:  cfg.Server.CORSAllowedOrigins,
		HealthChecks: checks,
		Routes:       []httptransport.RouteRegistrar{handler.New(svc, log)},
	})

	srv := httpserver.New(cfg.Server, router)
	return httpserver.Run(ctx, srv, cfg.Server.ShutdownTimeout, log)
}

func closeDB(db *sql.DB, log *slog.Logger) {
	if err := db.Close(); err != nil {
		log.Warn("failed to close database", "error", err)
	}
}
