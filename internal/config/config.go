// Package config reads runtime settings from .env and the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	RegistryPath string
	LocationsCSV string
	DatabaseURL  string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// Load reads envFiles (missing files are ignored) and then the environment.
// With no envFiles it tries ".env".
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		RegistryPath: os.Getenv("CAMPUSMAP_REGISTRY"),
		LocationsCSV: os.Getenv("CAMPUSMAP_LOCATIONS_CSV"),
		DatabaseURL:  DatabaseURLFromEnv(),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFormat:    getenv("LOG_FORMAT", "text"),
		LogFile:      getenv("LOG_FILE", "campusmap.log"),
	}
}

// UsePostgres reports whether a database is configured.
func (c Config) UsePostgres() bool { return c.DatabaseURL != "" }

// DatabaseURLFromEnv prefers DATABASE_URL and otherwise assembles a DSN from
// PG_* variables. Without DATABASE_URL or PG_HOST it returns "".
func DatabaseURLFromEnv() string {
	if u := strings.TrimSpace(os.Getenv("DATABASE_URL")); u != "" {
		return u
	}
	host := os.Getenv("PG_HOST")
	if host == "" {
		return ""
	}
	port := getenv("PG_PORT", "5432")
	user := getenv("PG_USER", "postgres")
	pass := os.Getenv("PG_PASSWORD")
	db := getenv("PG_DB", "campusmap")
	ssl := getenv("PG_SSLMODE", "disable")
	dsn := "postgres://" + user
	if pass != "" {
		dsn += ":" + pass
	}
	dsn += "@" + host + ":" + port + "/" + db + "?sslmode=" + ssl
	return dsn
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
