package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, API base URL, secrets)
// - default: Values common across all environments (timeouts, fee rates, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Marketplace MarketplaceConfig
	Wizard      WizardConfig
	Events      EventsConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Lagos"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// Tokens are issued by the marketplace; this service only verifies them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type CookieConfig struct {
	AccessTokenName string `envconfig:"COOKIE_ACCESS_TOKEN_NAME" default:"access_token"`
	Domain          string `envconfig:"COOKIE_DOMAIN"`
	Secure          bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite        string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type MarketplaceConfig struct {
	BaseURL      string        `envconfig:"MARKETPLACE_BASE_URL" required:"true"`
	Timeout      time.Duration `envconfig:"MARKETPLACE_TIMEOUT" default:"10s"`
	RetryMax     int           `envconfig:"MARKETPLACE_RETRY_MAX" default:"2"`
	RetryBackoff time.Duration `envconfig:"MARKETPLACE_RETRY_BACKOFF" default:"200ms"`
}

type WizardConfig struct {
	LoginURL               string        `envconfig:"WIZARD_LOGIN_URL" default:"/login"`
	AvailabilityWindowDays int           `envconfig:"WIZARD_AVAILABILITY_WINDOW_DAYS" default:"90"`
	SessionTTL             time.Duration `envconfig:"WIZARD_SESSION_TTL" default:"30m"`
	SweepInterval          time.Duration `envconfig:"WIZARD_SWEEP_INTERVAL" default:"1m"`
	ServiceFeePercent      int64         `envconfig:"WIZARD_SERVICE_FEE_PERCENT" default:"10"`
	TaxPercent             int64         `envconfig:"WIZARD_TAX_PERCENT" default:"5"`
	TimeZone               string        `envconfig:"WIZARD_TIMEZONE" default:"Africa/Lagos"`
}

// Empty Brokers disables event publishing.
type EventsConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS"`
	BookingTopic string        `envconfig:"KAFKA_BOOKING_TOPIC" default:"booking.created"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

func (c EventsConfig) Enabled() bool {
	for _, b := range c.Brokers {
		if b != "" {
			return true
		}
	}
	return false
}

// Location resolves the wizard time zone used to decide "today"; falls back to UTC.
func (c WizardConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Wizard.AvailabilityWindowDays <= 0 {
		return Config{}, fmt.Errorf("WIZARD_AVAILABILITY_WINDOW_DAYS must be positive, got %d", cfg.Wizard.AvailabilityWindowDays)
	}
	if cfg.Marketplace.RetryMax < 0 {
		return Config{}, fmt.Errorf("MARKETPLACE_RETRY_MAX must not be negative, got %d", cfg.Marketplace.RetryMax)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Africa/Lagos",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Cookie: CookieConfig{
			AccessTokenName: "access_token",
			SameSite:        "Lax",
		},
		Marketplace: MarketplaceConfig{
			BaseURL:      "http://localhost:0",
			Timeout:      2 * time.Second,
			RetryMax:     0,
			RetryBackoff: time.Millisecond,
		},
		Wizard: WizardConfig{
			LoginURL:               "/login",
			AvailabilityWindowDays: 90,
			SessionTTL:             30 * time.Minute,
			SweepInterval:          time.Minute,
			ServiceFeePercent:      10,
			TaxPercent:             5,
			TimeZone:               "UTC",
		},
		Events: EventsConfig{
			BookingTopic: "booking.created",
			WriteTimeout: time.Second,
		},
	}
}
