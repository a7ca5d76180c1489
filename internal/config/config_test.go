package config

import (
	"strings"
	"testing"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SOCAL_SESSION_SECRET", strings.Repeat("s", 32))
}

func TestLoadDefaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "socal" {
		t.Errorf("MongoDatabase = %q", cfg.MongoDatabase)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d", cfg.ServerPort)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env must be development")
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr() = %q", cfg.ServerAddr())
	}
}

func TestLoadMissingSessionSecret(t *testing.T) {
	t.Setenv("SOCAL_SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Load() must fail without a session secret")
	}
}

func TestLoadShortSessionSecret(t *testing.T) {
	t.Setenv("SOCAL_SESSION_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Error("Load() must reject a session secret under 32 bytes")
	}
}

func TestLoadRelativeSiteURL(t *testing.T) {
	setValidEnv(t)
	t.Setenv("SOCAL_SITE_URL", "/not-absolute")

	if _, err := Load(); err == nil {
		t.Error("Load() must reject a relative site URL")
	}
}

func TestLoadProductionEnv(t *testing.T) {
	setValidEnv(t)
	t.Setenv("SOCAL_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
}
