package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, row-store endpoint,
//   credentials) and security settings
// - default: Values common across all environments (TTL, limits, timezone)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	RowStore  RowStoreConfig
	Cache     CacheConfig
	Guard     GuardConfig
	Booking   BookingConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port     string `envconfig:"PORT" required:"true"`
	TimeZone string `envconfig:"SERVICE_TIMEZONE" default:"America/New_York"`
}

type RowStoreConfig struct {
	// Driver selects the gateway implementation: "http" for the remote
	// row store, "memory" for a process-local store (dev/test only).
	Driver       string        `envconfig:"ROWSTORE_DRIVER" default:"http"`
	BaseURL      string        `envconfig:"ROWSTORE_BASE_URL" default:""`
	APIKey       string        `envconfig:"ROWSTORE_API_KEY" default:""`
	DocumentID   string        `envconfig:"ROWSTORE_DOCUMENT_ID" default:""`
	Timeout      time.Duration `envconfig:"ROWSTORE_TIMEOUT" default:"30s"`
	SlotsSheet   string        `envconfig:"ROWSTORE_SLOTS_SHEET" default:"slots"`
	SignupsSheet string        `envconfig:"ROWSTORE_SIGNUPS_SHEET" default:"signups"`
}

type CacheConfig struct {
	TTL time.Duration `envconfig:"AVAILABILITY_CACHE_TTL" default:"60s"`
}

type GuardConfig struct {
	MaxInflightPerPhone int `envconfig:"GUARD_MAX_INFLIGHT_PER_PHONE" default:"3"`
}

type BookingConfig struct {
	MaxSlotsPerRequest int `envconfig:"BOOKING_MAX_SLOTS_PER_REQUEST" default:"4"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/New_York"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type AuthConfig struct {
	// bcrypt hash of the admin password; login is disabled when empty.
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" default:""`
}

type CookieConfig struct {
	Domain   string
	Secure   bool
	SameSite string
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

func (c *Config) Cookie() CookieConfig {
	return CookieConfig{Domain: "", Secure: false, SameSite: "Lax"}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8889", // Test port
			TimeZone: "America/New_York",
		},
		RowStore: RowStoreConfig{
			Driver:       "memory",
			SlotsSheet:   "slots",
			SignupsSheet: "signups",
		},
		Cache:   CacheConfig{TTL: 60 * time.Second},
		Guard:   GuardConfig{MaxInflightPerPhone: 3},
		Booking: BookingConfig{MaxSlotsPerRequest: 4},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/New_York",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		JWT: JWTConfig{Secret: "test-secret", Duration: time.Hour},
	}
}
