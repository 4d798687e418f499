package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends selectable through STORAGE.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const day = 24 * time.Hour

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port             string
	Env              string
	Storage          string
	DatabaseURL      string
	JWTSecret        string
	JWTIssuer        string
	JWTTTL           time.Duration
	CookieTTL        time.Duration
	AllowAdminSignup bool
	CORSOrigins      []string
	MaxFileUpload    int64
	FileUploadPath   string
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:           fallback(os.Getenv("PORT"), "5000"),
		Env:            strings.ToLower(fallback(os.Getenv("APP_ENV"), "development")),
		Storage:        strings.ToLower(fallback(os.Getenv("STORAGE"), StoragePostgres)),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:      fallback(os.Getenv("JWT_ISSUER"), "devcamper-api"),
		CORSOrigins:    parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		FileUploadPath: fallback(os.Getenv("FILE_UPLOAD_PATH"), "./public/uploads"),
	}

	cfg.JWTTTL = time.Duration(positiveInt(os.Getenv("JWT_EXPIRE_DAYS"), 30)) * day
	cfg.CookieTTL = cfg.JWTTTL
	if cookieDays := positiveInt(os.Getenv("JWT_COOKIE_EXPIRE_DAYS"), 0); cookieDays > 0 {
		cfg.CookieTTL = time.Duration(cookieDays) * day
	}
	cfg.MaxFileUpload = int64(positiveInt(os.Getenv("MAX_FILE_UPLOAD"), 1_000_000))

	if raw := strings.TrimSpace(os.Getenv("ALLOW_ADMIN_SIGNUP")); raw != "" {
		allow, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("ALLOW_ADMIN_SIGNUP: %w", err)
		}
		cfg.AllowAdminSignup = allow
	}

	switch cfg.Storage {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required")
		}
	case StorageMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func positiveInt(value string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
