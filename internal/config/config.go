package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultPort is used when PORT is unset or not a valid port number.
const DefaultPort = 3000

// Config holds everything resolved at startup. Nothing reads the
// environment after FromEnv returns; tests construct a Config directly.
type Config struct {
	Port int
}

// FromEnv loads an optional .env file and resolves the listen port from
// the PORT environment variable. Real environment variables win over the
// .env file.
func FromEnv() Config {
	_ = godotenv.Load(".env")

	return Config{
		Port: portFromEnv(),
	}
}

// Addr returns the listen address, bound to all interfaces.
func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func portFromEnv() int {
	raw := os.Getenv("PORT")
	if raw == "" {
		return DefaultPort
	}

	port, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("PORT is not a number, using default", "value", raw, "default", DefaultPort)
		return DefaultPort
	}
	if port < 1 || port > 65535 {
		slog.Warn("PORT is out of range, using default", "value", port, "default", DefaultPort)
		return DefaultPort
	}

	return port
}
