// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	MongoURI      string `env:"SOCAL_MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"SOCAL_MONGODB_DB" envDefault:"socal"`
	SessionSecret string `env:"SOCAL_SESSION_SECRET,required"`
	SiteURL       string `env:"SOCAL_SITE_URL" envDefault:"https://socal-steel.vercel.app"`
	ServerHost    string `env:"SOCAL_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"SOCAL_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"SOCAL_ENV" envDefault:"development"`
	LogLevel      string `env:"SOCAL_LOG_LEVEL" envDefault:"info"`

	// Login rate limiting
	LoginRPS   float64 `env:"SOCAL_LOGIN_RPS" envDefault:"1"`
	LoginBurst int     `env:"SOCAL_LOGIN_BURST" envDefault:"5"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MinSessionSecretLength is the minimum required length for the session
// secret, which also keys the CSRF protection.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("SOCAL_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	u, err := url.Parse(cfg.SiteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("SOCAL_SITE_URL must be an absolute URL, got %q", cfg.SiteURL)
	}

	return cfg, nil
}
