package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/GoliathBritton/flyfox-ai-platform/pkg/branding"
)

var Module = fx.Module("config",
	fx.Provide(
		NewConfig,
		ProvideBrand,
	),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002" validate:"gte=1,lte=65535"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`

	// Landing page copy and colors
	Branding BrandingConfig
	Theme    ThemeConfig

	RateLimit RateLimitConfig
	Otel      OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// BrandingConfig holds the four display strings. Non-empty values from
// File replace the env values.
type BrandingConfig struct {
	File    string `env:"BRANDING_FILE"`
	Name    string `env:"BRAND_NAME" envDefault:"FLYFOX AI"`
	Company string `env:"BRAND_COMPANY" envDefault:"Goliath of All Trade Inc."`
	Mission string `env:"BRAND_MISSION" envDefault:"SOLVE PROBLEMS & PROVIDE DYNAMIC AI SOLUTIONS"`
	Contact string `env:"BRAND_CONTACT" envDefault:"john.britton@goliathomniedge.com"`
}

// Info converts the config into the branding record.
func (b BrandingConfig) Info() branding.Info {
	return branding.Info{
		Name:    b.Name,
		Company: b.Company,
		Mission: b.Mission,
		Contact: b.Contact,
	}
}

// ThemeConfig holds the brand colors as #RRGGBB.
type ThemeConfig struct {
	Primary   string `env:"THEME_PRIMARY" envDefault:"#FF6B35"`
	Secondary string `env:"THEME_SECONDARY" envDefault:"#2C3E50"`
	Accent    string `env:"THEME_ACCENT" envDefault:"#E74C3C"`
}

func (t ThemeConfig) Palette() branding.Palette {
	return branding.Palette{
		Primary:   t.Primary,
		Secondary: t.Secondary,
		Accent:    t.Accent,
	}
}

// RateLimitConfig is the per-client request budget. RPS 0 disables limiting.
type RateLimitConfig struct {
	RPS       float64       `env:"RATE_LIMIT_RPS" envDefault:"20" validate:"gte=0"`
	Burst     int           `env:"RATE_LIMIT_BURST" envDefault:"40" validate:"gte=0"`
	ExpiresIn time.Duration `env:"RATE_LIMIT_EXPIRES_IN" envDefault:"3m"`
}

func (r RateLimitConfig) Enabled() bool {
	return r.RPS > 0
}

// IsProduction reports whether debug-only endpoints must stay hidden.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// Brand validates and returns the branding record and palette.
func (c *Config) Brand() (branding.Brand, error) {
	return branding.New(c.Branding.Info(), c.Theme.Palette())
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks server settings and the brand. An invalid brand stops start-up.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Brand(); err != nil {
		return err
	}
	return nil
}

// LoadDotEnv loads .env then lets .env.local override it. Missing files are ignored.
func LoadDotEnv(dir string) {
	_ = godotenv.Load(dir + "/.env")
	_ = godotenv.Overload(dir + "/.env.local")
}

// Load reads the environment, applies BRANDING_FILE and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Branding.File != "" {
		if err := cfg.applyBrandingFile(cfg.Branding.File); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("brand", cfg.Branding.Name),
		slog.String("branding_file", cfg.Branding.File),
	)

	return cfg, nil
}

// ProvideBrand exposes the validated brand to fx consumers.
func ProvideBrand(cfg *Config) (branding.Brand, error) {
	return cfg.Brand()
}
