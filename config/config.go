package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	PostgresURL    string
	AllowedOrigins []string
	Env            string
}

// Load reads configuration from the environment, picking up a .env file
// first if one exists. POSTGRES_URL is optional: without it the server runs
// on the in-memory catalog and session store.
func Load() Config {
	godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		Env:         getEnv("ENV", "development"),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}
	return cfg
}

func (c Config) Development() bool {
	return c.Env != "release" && c.Env != "production"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
