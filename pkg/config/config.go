package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Artifacts ArtifactsConfig
	Premium   PremiumConfig
	Cache     CacheConfig
	Redis     RedisConfig
	OTEL      OTELConfig
	Env       string
	LogLevel  string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// ArtifactsConfig holds the locations of the trained model and scaler files
type ArtifactsConfig struct {
	Dir             string
	ModelYoungPath  string
	ModelRestPath   string
	ScalerYoungPath string
	ScalerRestPath  string
}

// PremiumConfig holds model dispatch and presentation settings
type PremiumConfig struct {
	AgeThreshold    int
	Currency        string
	GoldenCasesPath string
}

// CacheConfig controls the HTTP response cache
type CacheConfig struct {
	Enabled    bool
	TTLSeconds int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	dir := getEnv("ARTIFACTS_DIR", "artifacts")

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		},
		Artifacts: ArtifactsConfig{
			Dir:             dir,
			ModelYoungPath:  getEnv("MODEL_YOUNG_PATH", filepath.Join(dir, "model_young.json")),
			ModelRestPath:   getEnv("MODEL_REST_PATH", filepath.Join(dir, "model_rest.json")),
			ScalerYoungPath: getEnv("SCALER_YOUNG_PATH", filepath.Join(dir, "scaler_with_cols_young.json")),
			ScalerRestPath:  getEnv("SCALER_REST_PATH", filepath.Join(dir, "scaler_with_cols_rest.json")),
		},
		Premium: PremiumConfig{
			AgeThreshold:    getEnvAsInt("MODEL_AGE_THRESHOLD", 25),
			Currency:        getEnv("PREMIUM_CURRENCY", "INR"),
			GoldenCasesPath: getEnv("GOLDEN_CASES_PATH", "config/golden_cases.json"),
		},
		Cache: CacheConfig{
			Enabled:    getEnvAsBool("CACHE_ENABLED", false),
			TTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", 1800),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "health-premium-estimator"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Env:      getEnv("ENV", "production"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.Premium.AgeThreshold <= 0 {
		return nil, fmt.Errorf("MODEL_AGE_THRESHOLD must be positive, got %d", cfg.Premium.AgeThreshold)
	}
	if len(cfg.Premium.Currency) != 3 {
		return nil, fmt.Errorf("PREMIUM_CURRENCY must be a 3-letter code, got %q", cfg.Premium.Currency)
	}

	return cfg, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
