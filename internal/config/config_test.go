package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "APP_ENV", "STORAGE", "DATABASE_URL", "JWT_SECRET", "JWT_ISSUER", "JWT_EXPIRE_DAYS",
	"JWT_COOKIE_EXPIRE_DAYS", "ALLOW_ADMIN_SIGNUP", "CORS_ALLOWED_ORIGINS", "MAX_FILE_UPLOAD", "FILE_UPLOAD_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/devcamper")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.HTTPAddress())
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "devcamper-api", cfg.JWTIssuer)
	assert.Equal(t, 30*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, cfg.JWTTTL, cfg.CookieTTL)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.AllowAdminSignup)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, int64(1_000_000), cfg.MaxFileUpload)
	assert.Equal(t, "./public/uploads", cfg.FileUploadPath)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("STORAGE", "memory")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRE_DAYS", "7")
	t.Setenv("JWT_COOKIE_EXPIRE_DAYS", "1")
	t.Setenv("ALLOW_ADMIN_SIGNUP", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.com, https://b.com,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 24*time.Hour, cfg.CookieTTL)
	assert.True(t, cfg.AllowAdminSignup)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.CORSOrigins)
}

func TestLoadInvalidExpiryFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "memory")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRE_DAYS", "-3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, cfg.JWTTTL)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing database url", map[string]string{"JWT_SECRET": "s"}, "DATABASE_URL is required"},
		{"missing secret", map[string]string{"STORAGE": "memory"}, "JWT_SECRET is required"},
		{"unknown storage", map[string]string{"STORAGE": "mongo", "JWT_SECRET": "s"}, `unknown STORAGE "mongo"`},
		{"bad admin flag", map[string]string{"STORAGE": "memory", "JWT_SECRET": "s", "ALLOW_ADMIN_SIGNUP": "maybe"}, "ALLOW_ADMIN_SIGNUP"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
