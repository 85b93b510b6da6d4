package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server
	Port               int `validate:"min=1,max=65535"`
	CORSAllowedOrigins []string
	ControlAPIKey      string // empty leaves the control surface open
	TrustedProxies     []string

	// Logging
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// Backend
	APIBaseURL    string        `validate:"required,url"`
	APITimeout    time.Duration `validate:"gt=0"`
	APIMaxRetries int           `validate:"min=0,max=10"`

	// Local state
	StorePath        string        `validate:"required"`
	CatalogCacheTTL  time.Duration `validate:"gt=0"`
	CatalogCacheSize int           `validate:"min=1"`

	// Combo timing
	ComboFlushDelay   time.Duration `validate:"gt=0"`
	ComboFlushRetries int           `validate:"min=0,max=5"`
	DisplayTick       time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ControlAPIKey:      getEnv("CONTROL_API_KEY", ""),
		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES", nil),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		LogDir:             getEnv("LOG_DIR", ""),
		Environment:        getEnv("ENVIRONMENT", "dev"),
		ServiceName:        getEnv("SERVICE_NAME", DefaultServiceName),
		Version:            getEnv("VERSION", "dev"),
		APIBaseURL:         strings.TrimRight(getEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
		APITimeout:         getEnvAsDuration("API_TIMEOUT", DefaultAPITimeout),
		APIMaxRetries:      getEnvAsInt("API_MAX_RETRIES", DefaultAPIMaxRetries),
		StorePath:          getEnv("STORE_PATH", DefaultStorePath),
		CatalogCacheTTL:    getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogCacheTTL),
		CatalogCacheSize:   getEnvAsInt("CATALOG_CACHE_SIZE", DefaultCatalogCacheSize),
		ComboFlushDelay:    getEnvAsDuration("COMBO_FLUSH_DELAY", DefaultComboFlushDelay),
		ComboFlushRetries:  getEnvAsInt("COMBO_FLUSH_RETRIES", 0),
		DisplayTick:        getEnvAsDuration("DISPLAY_TICK", DefaultDisplayTick),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// Validate checks field constraints after Load
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment reports whether the daemon runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.Duration variable, falling back to the default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if strings.TrimSpace(raw) == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
