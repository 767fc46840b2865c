// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env
// files, plus the routes file that defines what to scrape.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/awardscan/award-scraper/internal/domain"
	"github.com/awardscan/award-scraper/internal/infrastructure/logger"
)

// Config holds all application configuration.
type Config struct {
	Scrape  ScrapeConfig
	Pacing  PacingConfig
	Paths   PathConfig
	Drive   DriveConfig
	Logging logger.Config
	App     AppConfig
}

// ScrapeConfig holds the knobs for one acquisition run.
type ScrapeConfig struct {
	Headless          bool          `env:"SCRAPE_HEADLESS" envDefault:"true"`
	Timeout           time.Duration `env:"SCRAPE_TIMEOUT" envDefault:"30s"`
	UserAgent         string        `env:"SCRAPE_USER_AGENT"`
	Retries           int           `env:"SCRAPE_RETRIES" envDefault:"3"`
	SearchWindowDays  int           `env:"SCRAPE_SEARCH_WINDOW_DAYS" envDefault:"3"`
	DepartureDate     string        `env:"SCRAPE_DEPARTURE_DATE"`
	MaxOffersPerRoute int           `env:"SCRAPE_MAX_OFFERS_PER_ROUTE" envDefault:"10"`
}

// PacingConfig spaces outbound calls so the upstream is not hammered.
type PacingConfig struct {
	MinRequestInterval time.Duration `env:"PACE_MIN_REQUEST_INTERVAL" envDefault:"1s"`
	Burst              int           `env:"PACE_BURST" envDefault:"1"`
}

// PathConfig holds filesystem locations.
type PathConfig struct {
	RoutesFile       string `env:"ROUTES_FILE" envDefault:"config/routes.json"`
	OutputDir        string `env:"OUTPUT_DIR" envDefault:"output"`
	DataContractFile string `env:"DATA_CONTRACT_FILE" envDefault:"config/data_contract.json"`
}

// DriveConfig holds the optional storage mirror settings. Uploads are enabled
// only when both the credentials path and the folder ID are set.
type DriveConfig struct {
	CredentialsFile string `env:"DRIVE_CREDENTIALS_FILE"`
	FolderID        string `env:"DRIVE_FOLDER_ID"`
}

// Enabled reports whether uploads should be attempted.
func (d DriveConfig) Enabled() bool {
	return d.CredentialsFile != "" && d.FolderID != ""
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// ScrapeSettings converts the env-facing scrape block into the immutable
// settings value the acquisition engine consumes.
func (c *Config) ScrapeSettings() domain.ScrapeSettings {
	return domain.ScrapeSettings{
		Headless:          c.Scrape.Headless,
		Timeout:           c.Scrape.Timeout,
		UserAgent:         c.Scrape.UserAgent,
		Retries:           c.Scrape.Retries,
		SearchWindowDays:  c.Scrape.SearchWindowDays,
		DepartureDate:     c.Scrape.DepartureDate,
		MaxOffersPerRoute: c.Scrape.MaxOffersPerRoute,
	}
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Scrape.Retries < 1 {
		return fmt.Errorf("SCRAPE_RETRIES must be at least 1, got %d", cfg.Scrape.Retries)
	}
	if cfg.Scrape.Timeout <= 0 {
		return fmt.Errorf("SCRAPE_TIMEOUT must be positive")
	}
	if cfg.Scrape.SearchWindowDays < 0 {
		return fmt.Errorf("SCRAPE_SEARCH_WINDOW_DAYS must not be negative, got %d", cfg.Scrape.SearchWindowDays)
	}
	if cfg.Scrape.MaxOffersPerRoute < 0 {
		return fmt.Errorf("SCRAPE_MAX_OFFERS_PER_ROUTE must not be negative, got %d", cfg.Scrape.MaxOffersPerRoute)
	}

	if cfg.Scrape.DepartureDate != "" {
		if _, err := time.Parse("2006-01-02", cfg.Scrape.DepartureDate); err != nil {
			return fmt.Errorf("SCRAPE_DEPARTURE_DATE must be YYYY-MM-DD, got %q", cfg.Scrape.DepartureDate)
		}
	}

	if cfg.Pacing.MinRequestInterval < 0 {
		return fmt.Errorf("PACE_MIN_REQUEST_INTERVAL must not be negative")
	}

	if cfg.Paths.RoutesFile == "" {
		return fmt.Errorf("ROUTES_FILE must not be empty")
	}
	if cfg.Paths.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR must not be empty")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
