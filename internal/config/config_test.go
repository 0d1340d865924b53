package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "APP_ENV", "NODE_ENV", "JWT_SECRET", "JWT_TOKEN_SCHEME", "PORT",
		"CORS_ORIGINS", "FRONTEND_URL", "REPORTS_REQUIRE_AUTH", "LIST_INCLUDE_DESCRIPTION",
		"RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected development env, got %q", cfg.Env)
	}
	if cfg.JWTTokenScheme != TokenSchemeBearer {
		t.Fatalf("expected bearer scheme, got %q", cfg.JWTTokenScheme)
	}
	if !cfg.ReportsRequireAuth || !cfg.ListIncludeDescription {
		t.Fatalf("expected auth and description enabled by default")
	}
	if cfg.RateLimitMax != 100 || cfg.RateLimitWindow != time.Hour {
		t.Fatalf("unexpected rate limit defaults: %d per %s", cfg.RateLimitMax, cfg.RateLimitWindow)
	}
	if cfg.CORSOrigins != "*" {
		t.Fatalf("expected wildcard CORS origins, got %q", cfg.CORSOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("PORT", "8081")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("FRONTEND_URL", "https://front.example/")
	t.Setenv("JWT_TOKEN_SCHEME", "RAW")
	t.Setenv("LIST_INCLUDE_DESCRIPTION", "false")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "10m")
	t.Setenv("REPORTS_REQUIRE_AUTH", "not-a-bool")

	cfg := Load()
	if cfg.Env != "production" || !cfg.IsProduction() {
		t.Fatalf("expected NODE_ENV fallback to production, got %q", cfg.Env)
	}
	if cfg.Port != "8081" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.CORSOrigins != "https://a.example,https://b.example,https://front.example" {
		t.Fatalf("unexpected CORS origins %q", cfg.CORSOrigins)
	}
	if cfg.JWTTokenScheme != TokenSchemeRaw {
		t.Fatalf("expected raw scheme, got %q", cfg.JWTTokenScheme)
	}
	if cfg.ListIncludeDescription {
		t.Fatalf("expected description excluded")
	}
	if !cfg.ReportsRequireAuth {
		t.Fatalf("unparseable bool should fall back to true")
	}
	if cfg.RateLimitMax != 5 || cfg.RateLimitWindow != 10*time.Minute {
		t.Fatalf("unexpected rate limit: %d per %s", cfg.RateLimitMax, cfg.RateLimitWindow)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DatabaseURL:        "file:test.db",
			JWTSecret:          "secret",
			JWTTokenScheme:     TokenSchemeBearer,
			ReportsRequireAuth: true,
			RateLimitMax:       100,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing database url", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: "DATABASE_URL"},
		{name: "missing secret when gated", mutate: func(c *Config) { c.JWTSecret = "" }, wantErr: "JWT_SECRET"},
		{name: "secret optional when ungated", mutate: func(c *Config) { c.JWTSecret = ""; c.ReportsRequireAuth = false }},
		{name: "unknown scheme", mutate: func(c *Config) { c.JWTTokenScheme = "basic" }, wantErr: "JWT_TOKEN_SCHEME"},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimitMax = 0 }, wantErr: "RATE_LIMIT_MAX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %s", tt.wantErr)
			}
			if !errors.Is(err, ErrStartupConfig) {
				t.Fatalf("expected ErrStartupConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected %q in error, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUsesSQLite(t *testing.T) {
	cases := map[string]bool{
		"sqlite:abuse_reports.db":                   true,
		"file:reports?mode=memory&cache=shared":     true,
		"./abuse_reports.db":                        true,
		"postgres://user:pw@localhost:5432/reports": false,
		"host=localhost user=postgres dbname=x":     false,
	}
	for url, want := range cases {
		cfg := &Config{DatabaseURL: url}
		if got := cfg.UsesSQLite(); got != want {
			t.Fatalf("UsesSQLite(%q) = %v, want %v", url, got, want)
		}
	}

	cfg := &Config{DatabaseURL: "sqlite:abuse_reports.db"}
	if cfg.SQLitePath() != "abuse_reports.db" {
		t.Fatalf("unexpected sqlite path %q", cfg.SQLitePath())
	}
}

func TestPostgresDSN(t *testing.T) {
	dev := &Config{DatabaseURL: "postgres://u:p@db:5432/reports", Env: "development"}
	if got := dev.PostgresDSN(); !strings.Contains(got, "sslmode=disable") {
		t.Fatalf("expected sslmode=disable, got %q", got)
	}

	prod := &Config{DatabaseURL: "postgres://u:p@db:5432/reports", Env: "production"}
	if got := prod.PostgresDSN(); !strings.Contains(got, "sslmode=require") {
		t.Fatalf("expected sslmode=require, got %q", got)
	}

	explicit := &Config{DatabaseURL: "postgres://u:p@db:5432/reports?sslmode=verify-full", Env: "production"}
	if got := explicit.PostgresDSN(); got != explicit.DatabaseURL {
		t.Fatalf("explicit sslmode should be kept, got %q", got)
	}

	kv := &Config{DatabaseURL: "host=db user=u dbname=reports", Env: "production"}
	if got := kv.PostgresDSN(); got != "host=db user=u dbname=reports sslmode=require" {
		t.Fatalf("unexpected key/value dsn %q", got)
	}
}
