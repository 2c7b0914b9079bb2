package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment.
type Config struct {
	ListenAddr   string
	KafkaBrokers []string // empty disables event publishing
}

// Load reads an optional .env file, then the environment. Missing values
// fall back to defaults.
func Load() Config {
	// A missing .env file is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
