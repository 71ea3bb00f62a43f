package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Tracking backends supported by the engagement recorder
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Census geocoder defaults
const (
	DefaultGeocoderBaseURL = "https://geocoding.geo.census.gov/geocoder/geographies/onelineaddress"
	DefaultBenchmark       = "Public_AR_Current"
	DefaultVintage         = "Current_Current"
	DefaultLayers          = "2024 State Legislative Districts - Upper,2024 State Legislative Districts - Lower"
	DefaultTrackingTable   = "sb36_engagement"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required"`
	LogLevel    string
	Geocoder    GeocoderConfig
	// Tracking is validated on first use so a bad store setting never
	// affects the geocode proxy
	Tracking    TrackingConfig `validate:"-"`
}

// GeocoderConfig holds the upstream geocoding service settings
type GeocoderConfig struct {
	BaseURL   string   `validate:"required,url"`
	Benchmark string   `validate:"required"`
	Vintage   string   `validate:"required"`
	Layers    []string `validate:"min=1,dive,required"`
	// Timeout of zero leaves the transport default in place.
	Timeout time.Duration
}

// TrackingConfig holds engagement store configuration
type TrackingConfig struct {
	Backend      string `validate:"oneof=supabase postgres sqlite"`
	Table        string `validate:"required"`
	SupabaseURL  string `validate:"omitempty,url"`
	SupabaseKey  string
	DatabaseURL  string
	SQLitePath   string
	EnsureSchema bool
}

// Configured reports whether the selected backend has the credentials it
// needs. An unconfigured backend is skipped rather than treated as an error.
func (t TrackingConfig) Configured() bool {
	switch t.Backend {
	case BackendSupabase:
		return t.SupabaseURL != "" && t.SupabaseKey != ""
	case BackendPostgres:
		return t.DatabaseURL != ""
	case BackendSQLite:
		return t.SQLitePath != ""
	default:
		return false
	}
}

// Validate checks the tracking settings
func (t TrackingConfig) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return fmt.Errorf("invalid tracking configuration: %w", err)
	}
	return nil
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8888")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GEOCODER_BASE_URL", DefaultGeocoderBaseURL)
	viper.SetDefault("GEOCODER_BENCHMARK", DefaultBenchmark)
	viper.SetDefault("GEOCODER_VINTAGE", DefaultVintage)
	viper.SetDefault("GEOCODER_LAYERS", DefaultLayers)
	viper.SetDefault("GEOCODER_TIMEOUT", "0s")
	viper.SetDefault("TRACKING_BACKEND", BackendSupabase)
	viper.SetDefault("TRACKING_TABLE", DefaultTrackingTable)
	viper.SetDefault("TRACKING_ENSURE_SCHEMA", false)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Geocoder: GeocoderConfig{
			BaseURL:   viper.GetString("GEOCODER_BASE_URL"),
			Benchmark: viper.GetString("GEOCODER_BENCHMARK"),
			Vintage:   viper.GetString("GEOCODER_VINTAGE"),
			Layers:    splitList(viper.GetString("GEOCODER_LAYERS")),
			Timeout:   viper.GetDuration("GEOCODER_TIMEOUT"),
		},
		Tracking: TrackingConfig{
			Backend:      strings.ToLower(viper.GetString("TRACKING_BACKEND")),
			Table:        viper.GetString("TRACKING_TABLE"),
			SupabaseURL:  viper.GetString("SUPABASE_URL"),
			SupabaseKey:  viper.GetString("SUPABASE_ANON_KEY"),
			DatabaseURL:  viper.GetString("DATABASE_URL"),
			SQLitePath:   viper.GetString("SQLITE_PATH"),
			EnsureSchema: viper.GetBool("TRACKING_ENSURE_SCHEMA"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration shared by both handlers. Tracking
// settings are checked separately by TrackingConfig.Validate.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the application runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
