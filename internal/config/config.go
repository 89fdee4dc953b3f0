package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment
type Config struct {
	DatabaseURL    string
	Port           string
	JWTSecret      string
	AllowedOrigins string
	Env            string
}

// Load reads the optional .env file and the environment. It fails when a
// required value is missing rather than starting half-configured.
func Load() (*Config, error) {
	// .env is a development convenience; absence is fine
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		Port:           getEnv("PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		Env:            getEnv("ENV", "development"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = buildDatabaseURL()
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL (or DB_HOST/DB_NAME/DB_USER) is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// buildDatabaseURL assembles a postgres URL from individual DB_* vars
func buildDatabaseURL() string {
	host := getEnv("DB_HOST", "")
	name := getEnv("DB_NAME", "")
	user := getEnv("DB_USER", "")
	if host == "" || name == "" || user == "" {
		return ""
	}
	pass := getEnv("DB_PASSWORD", "")
	port := getEnv("DB_PORT", "5432")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, pass, host, port, name)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
