// Package config provides centralized configuration management for the catalog browser.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Covers   CoversConfig
	View     ViewConfig
	Session  SessionConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// CatalogConfig describes where the record collection is read from.
type CatalogConfig struct {
	// Source is a spreadsheet path (.xlsx, .csv, .tsv) or a postgres:// URL.
	// A postgres URL may name its table in the fragment: postgres://host/db#records
	Source string `env:"CATALOG_SOURCE" envAlt:"DATABASE_URL" default:"data/record_collection.xlsx"`

	// Sheet selects a worksheet by name; empty means the first sheet.
	Sheet string `env:"CATALOG_SHEET"`
}

// CoversConfig controls how cover art references are built.
type CoversConfig struct {
	// Dir is the local covers directory (default: covers)
	Dir string `env:"COVERS_DIR" default:"covers"`

	// BaseURL, when set, makes cover references point at a remote store instead of Dir.
	BaseURL string `env:"COVERS_BASE_URL"`

	// Ext is the preferred image extension (default: jpg)
	Ext string `env:"COVERS_EXT" default:"jpg"`

	// FallbackExts are tried in order when the preferred file is missing locally.
	FallbackExts []string `env:"COVERS_FALLBACK_EXTS" default:"jpeg,png,webp"`

	// FoldDiacritics strips accents when deriving cover identifiers, so
	// "Motörhead" maps to motorhead_... instead of mot_rhead_... (default: false)
	FoldDiacritics bool `env:"COVERS_FOLD_DIACRITICS" default:"false"`

	// MaxThumbWidth caps the ?w= thumbnail width (default: 1200)
	MaxThumbWidth int `env:"COVERS_MAX_THUMB_WIDTH" default:"1200"`
}

// ViewConfig holds presentation defaults.
type ViewConfig struct {
	// CardsPerRow is the card grid group size (default: 3)
	CardsPerRow int `env:"CARDS_PER_ROW" default:"3"`

	// DefaultView is "table" or "cards" (default: table)
	DefaultView string `env:"DEFAULT_VIEW" default:"table"`
}

// SessionConfig holds browser session settings.
type SessionConfig struct {
	// TTL is how long an idle session keeps its loaded collection (default: 30m)
	TTL time.Duration `env:"SESSION_TTL" default:"30m"`

	// CookieName is the session cookie name (default: vinyl_session)
	CookieName string `env:"SESSION_COOKIE" default:"vinyl_session"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 300)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"300"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
