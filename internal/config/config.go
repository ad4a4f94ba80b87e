package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"devkwon.dev/internal/content"
	"devkwon.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"PORTFOLIO_ADDR" envDefault:":8080"`
	TemplatesDir    string        `env:"PORTFOLIO_TEMPLATES_DIR"` // set in development to reload templates per request
	RequestTimeout  time.Duration `env:"PORTFOLIO_REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"PORTFOLIO_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Page  *models.Page     `env:"-"`
	Clock func() time.Time `env:"-"`
}

// Load reads the environment and the embedded page content
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	page, err := content.Default()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	cfg.Page = page
	cfg.Clock = time.Now

	return &cfg, nil
}

// Projects returns the project entries in the shape the JSON API serves
func (c *Config) Projects() *models.ProjectList {
	return &models.ProjectList{Projects: c.Page.Projects.Items}
}
