package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	pstrings "picnic/pkg/platform/strings"
)

// Config is the full process configuration, loaded from the environment.
type Config struct {
	Server      Server
	Database    DatabaseConfig
	Redis       RedisConfig
	OpenWeather OpenWeatherConfig
	External    ExternalConfig
	Log         LogConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr               string        `env:"PICNIC_ADDR"             envDefault:":8080"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS"    envDefault:"*" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT"        envDefault:"10s"`
}

// DatabaseConfig configures PostgreSQL. An empty URL selects the in-memory store.
type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS"    envDefault:"10"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS"    envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// RedisConfig configures the validator cache backend. An empty URL selects
// the in-memory cache.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE"      envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT"   envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT"   envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT"  envDefault:"3s"`
}

// OpenWeatherConfig configures the OpenWeatherMap client.
type OpenWeatherConfig struct {
	APIKey  string `env:"OPENWEATHER_API_KEY"`
	BaseURL string `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org"`
	Units   string `env:"OPENWEATHER_UNITS"    envDefault:"metric"`
}

// ExternalConfig bounds calls to the city registry and weather provider.
type ExternalConfig struct {
	Timeout           time.Duration `env:"EXTERNAL_TIMEOUT"     envDefault:"3s"`
	MaxRetries        uint          `env:"EXTERNAL_MAX_RETRIES" envDefault:"2"`
	ValidatorCacheTTL time.Duration `env:"VALIDATOR_CACHE_TTL"  envDefault:"24h"`
	WeatherFanout     int           `env:"WEATHER_FANOUT"       envDefault:"8"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// FromEnv builds the configuration from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Server.CORSAllowedOrigins = pstrings.DedupeAndTrim(cfg.Server.CORSAllowedOrigins)
	if cfg.External.WeatherFanout <= 0 {
		cfg.External.WeatherFanout = 1
	}
	return cfg, nil
}
