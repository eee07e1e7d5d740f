package console

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"CONSOLE_API_BASE_URL",
		"CONSOLE_CREDENTIAL_FILE",
		"CONSOLE_CREDENTIAL_SECRET",
		"CONSOLE_MENU_FROM_SERVER",
		"CONSOLE_REFETCH_AFTER_LOGIN",
		"CONSOLE_HTTP_TIMEOUT",
		"CONSOLE_RATE_RPS",
		"CONSOLE_RATE_BURST",
		"ENV",
		"LOG_LEVEL",
		"LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, "console.db", cfg.CredentialFile)
	assert.Equal(t, "console-local", cfg.CredentialSecret)
	assert.False(t, cfg.MenuFromServer)
	assert.False(t, cfg.RefetchAfterLogin)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Zero(t, cfg.RateRPS)
	assert.Equal(t, 10, cfg.RateBurst)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CONSOLE_API_BASE_URL", "https://admin.example.com")
	t.Setenv("CONSOLE_CREDENTIAL_FILE", "/var/lib/console/cred.db")
	t.Setenv("CONSOLE_CREDENTIAL_SECRET", "prod-secret")
	t.Setenv("CONSOLE_MENU_FROM_SERVER", "true")
	t.Setenv("CONSOLE_REFETCH_AFTER_LOGIN", "true")
	t.Setenv("CONSOLE_HTTP_TIMEOUT", "5s")
	t.Setenv("CONSOLE_RATE_RPS", "2.5")
	t.Setenv("CONSOLE_RATE_BURST", "4")
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg := LoadConfig()

	assert.Equal(t, "https://admin.example.com", cfg.BaseURL)
	assert.Equal(t, "/var/lib/console/cred.db", cfg.CredentialFile)
	assert.Equal(t, "prod-secret", cfg.CredentialSecret)
	assert.True(t, cfg.MenuFromServer)
	assert.True(t, cfg.RefetchAfterLogin)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 2.5, cfg.RateRPS)
	assert.Equal(t, 4, cfg.RateBurst)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfigIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("CONSOLE_MENU_FROM_SERVER", "definitely")
	t.Setenv("CONSOLE_HTTP_TIMEOUT", "soon")
	t.Setenv("CONSOLE_RATE_BURST", "lots")

	cfg := LoadConfig()

	assert.False(t, cfg.MenuFromServer)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 10, cfg.RateBurst)
}
