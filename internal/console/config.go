package console

import (
	"os"
	"strconv"
	"time"
)

// Config is the console shell's environment-derived configuration.
type Config struct {
	BaseURL string // API origin, e.g. http://localhost:8000

	CredentialFile   string // SQLite file for the durable credential; empty selects the in-memory store
	CredentialSecret string // seals the credential at rest; must be stable across restarts

	MenuFromServer    bool // source the menu from GET /user/menu instead of the static table
	RefetchAfterLogin bool // re-fetch /user/info after login instead of trusting the login response

	HTTPTimeout time.Duration
	RateRPS     float64 // outbound request rate limit; 0 disables
	RateBurst   int

	Env       string // dev, staging, prod
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

func LoadConfig() Config {
	return Config{
		BaseURL:        getEnvOrDefault("CONSOLE_API_BASE_URL", "http://localhost:8000"),
		CredentialFile: getEnvOrDefault("CONSOLE_CREDENTIAL_FILE", "console.db"),
		CredentialSecret: getEnvOrDefault(
			"CONSOLE_CREDENTIAL_SECRET",
			"console-local", // dev fallback; deployments must set their own
		),
		MenuFromServer:    getEnvBoolOrDefault("CONSOLE_MENU_FROM_SERVER", false),
		RefetchAfterLogin: getEnvBoolOrDefault("CONSOLE_REFETCH_AFTER_LOGIN", false),
		HTTPTimeout:       getEnvDurationOrDefault("CONSOLE_HTTP_TIMEOUT", 30*time.Second),
		RateRPS:           getEnvFloatOrDefault("CONSOLE_RATE_RPS", 0),
		RateBurst:         getEnvIntOrDefault("CONSOLE_RATE_BURST", 10),
		Env:               getEnvOrDefault("ENV", "dev"),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:         getEnvOrDefault("LOG_FORMAT", "json"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
