package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	App      AppConfig
	Firebase FirebaseConfig
	Admin    AdminConfig
	Store    StoreConfig
	Redis    RedisConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type AppConfig struct {
	Environment string
	Version     string
}

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
}

// AdminConfig holds the single allowed admin identity. The address is
// configuration, not data: the access gate compares against it verbatim.
type AdminConfig struct {
	Email string
}

type StoreConfig struct {
	// Backend selects the card store: "firestore" (default) or "redis".
	Backend    string
	Collection string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DatabaseConfig is optional; when DSN is empty the contact endpoint is disabled.
type DatabaseConfig struct {
	DSN string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: splitEnv("CORS_ORIGINS", "http://localhost:3000"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		},
		Admin: AdminConfig{
			Email: getEnv("ADMIN_EMAIL", ""),
		},
		Store: StoreConfig{
			Backend:    getEnv("STORE_BACKEND", "firestore"),
			Collection: getEnv("PORTFOLIO_COLLECTION", "portfolio"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Store.Backend {
	case "firestore", "redis":
	default:
		return fmt.Errorf("STORE_BACKEND must be firestore or redis, got %q", c.Store.Backend)
	}

	if c.Store.Backend == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required when STORE_BACKEND=redis")
	}

	return nil
}

// FirebaseConfigured reports whether backend credentials were supplied. When
// false every Firestore/auth operation is disabled up front and the API answers
// with a static "not configured" error instead of attempting calls.
func (c *Config) FirebaseConfigured() bool {
	return c.Firebase.CredentialsPath != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
