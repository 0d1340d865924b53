package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrStartupConfig marks configuration that must abort the process before it listens.
var ErrStartupConfig = errors.New("invalid startup configuration")

// Token extraction strategies for the Authorization header.
const (
	TokenSchemeBearer = "bearer"
	TokenSchemeRaw    = "raw"
)

type Config struct {
	// Database
	DatabaseURL string
	Env         string

	// JWT
	JWTSecret      string
	JWTTokenScheme string
	JWTTokenTTL    time.Duration

	// Reports
	ReportsRequireAuth     bool
	ListIncludeDescription bool

	// Server
	Port        string
	CORSOrigins string
	StaticDir   string

	// Rate limiting
	RateLimitMax    int
	RateLimitWindow time.Duration

	// Observability
	LogLevel     string
	LogRetention time.Duration
	SentryDSN    string
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Env:         getEnv("APP_ENV", getEnv("NODE_ENV", "development")),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTTokenScheme: strings.ToLower(getEnv("JWT_TOKEN_SCHEME", TokenSchemeBearer)),
		JWTTokenTTL:    getDuration("JWT_TOKEN_TTL", 24*time.Hour),

		ReportsRequireAuth:     getBool("REPORTS_REQUIRE_AUTH", true),
		ListIncludeDescription: getBool("LIST_INCLUDE_DESCRIPTION", true),

		Port:        getEnv("PORT", "5000"),
		CORSOrigins: corsOrigins(getEnv("CORS_ORIGINS", ""), getEnv("FRONTEND_URL", "")),
		StaticDir:   getEnv("STATIC_DIR", ""),

		RateLimitMax:    getInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", time.Hour),

		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogRetention: getDuration("LOG_RETENTION", 30*24*time.Hour),
		SentryDSN:    getEnv("SENTRY_DSN", ""),
	}
}

// Validate reports configuration the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%w: DATABASE_URL environment variable is required", ErrStartupConfig)
	}
	if c.ReportsRequireAuth && c.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET environment variable is required when REPORTS_REQUIRE_AUTH is enabled", ErrStartupConfig)
	}
	switch c.JWTTokenScheme {
	case TokenSchemeBearer, TokenSchemeRaw:
	default:
		return fmt.Errorf("%w: JWT_TOKEN_SCHEME must be %q or %q, got %q", ErrStartupConfig, TokenSchemeBearer, TokenSchemeRaw, c.JWTTokenScheme)
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("%w: RATE_LIMIT_MAX must be positive", ErrStartupConfig)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesSQLite reports whether DatabaseURL points at an embedded database file.
func (c *Config) UsesSQLite() bool {
	u := c.DatabaseURL
	return strings.HasPrefix(u, "sqlite:") || strings.HasPrefix(u, "file:") || strings.HasSuffix(u, ".db")
}

// SQLitePath strips the optional sqlite: prefix.
func (c *Config) SQLitePath() string {
	return strings.TrimPrefix(strings.TrimPrefix(c.DatabaseURL, "sqlite://"), "sqlite:")
}

// PostgresDSN returns DatabaseURL with an sslmode matching the environment,
// unless the URL already chooses one.
func (c *Config) PostgresDSN() string {
	mode := "disable"
	if c.IsProduction() {
		mode = "require"
	}

	dsn := c.DatabaseURL
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return dsn
		}
		q := u.Query()
		q.Set("sslmode", mode)
		u.RawQuery = q.Encode()
		return u.String()
	}
	return dsn + " sslmode=" + mode
}

func corsOrigins(list, frontend string) string {
	origins := parseCSV(list)
	if frontend != "" {
		origins = append(origins, strings.TrimRight(frontend, "/"))
	}
	if len(origins) == 0 {
		return "*"
	}
	return strings.Join(origins, ",")
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}
