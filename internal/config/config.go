package config

import (
	"fmt"
	"os"
)

// Config holds the process-wide settings the server is started with.
// Everything comes from the environment so the same binary runs in
// docker-compose, CI and production without rebuilds.
type Config struct {
	HTTPAddr string

	// Document store. StoreBackend selects "mongo" (default) or
	// "memory" for local development and tests.
	StoreBackend string
	MongoURI     string
	MongoDB      string

	// JWTSecret signs access tokens. There is no default on purpose:
	// the process must not come up with a guessable signing key.
	JWTSecret string

	ImagesDir string

	// Kafka is optional. An empty broker disables event publishing.
	KafkaBroker string
	KafkaTopic  string

	LogLevel string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		StoreBackend: getEnv("STORE_BACKEND", "mongo"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "messagenode"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		ImagesDir:    getEnv("IMAGES_DIR", "images"),
		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "post-events"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.StoreBackend != "mongo" && cfg.StoreBackend != "memory" {
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// EventsEnabled reports whether a kafka broker was configured.
func (c *Config) EventsEnabled() bool {
	return c.KafkaBroker != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
