package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Env != "dev" {
		t.Errorf("Expected dev env, got %q", cfg.Env)
	}
	if cfg.HTTP.Address != ":8080" {
		t.Errorf("Expected :8080, got %q", cfg.HTTP.Address)
	}
	if cfg.Contact.Driver != DriverRelay {
		t.Errorf("Expected relay driver, got %q", cfg.Contact.Driver)
	}
	if cfg.Contact.Timeout != 15*time.Second {
		t.Errorf("Expected 15s timeout, got %v", cfg.Contact.Timeout)
	}
	if cfg.Analytics.Retention != 365*24*time.Hour {
		t.Errorf("Expected one year retention, got %v", cfg.Analytics.Retention)
	}
}

func TestLoadFileAndPortOverride(t *testing.T) {
	t.Setenv("PORT", "9090")

	path := writeConfig(t, `
env: prod
site:
  origin: https://example.com
contact:
  access_key: abc
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.IsProd() {
		t.Error("Expected prod env")
	}
	if cfg.Site.Origin != "https://example.com" {
		t.Errorf("Unexpected origin %q", cfg.Site.Origin)
	}
	if cfg.HTTP.Address != ":9090" {
		t.Errorf("Expected PORT to win, got %q", cfg.HTTP.Address)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:     "dev",
			Contact: Contact{Driver: DriverRelay},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "dev relay without key", mutate: func(c *Config) {}},
		{name: "bad env", mutate: func(c *Config) { c.Env = "qa" }, wantErr: "env must be"},
		{name: "relative origin", mutate: func(c *Config) { c.Site.Origin = "example.com" }, wantErr: "site.origin"},
		{name: "prod relay without key", mutate: func(c *Config) { c.Env = "prod" }, wantErr: "access_key"},
		{name: "smtp without credentials", mutate: func(c *Config) { c.Contact.Driver = DriverSMTP }, wantErr: "smtp.user"},
		{name: "unknown driver", mutate: func(c *Config) { c.Contact.Driver = "carrier-pigeon" }, wantErr: "contact.driver"},
		{
			name: "prod analytics without admin",
			mutate: func(c *Config) {
				c.Env = "prod"
				c.Contact.AccessKey = "k"
				c.Analytics.DBPath = "visits.db"
			},
			wantErr: "admin.username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
