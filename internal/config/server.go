package config

import (
	"os"
	"time"
)

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig() ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	shutdownTimeout := 30 * time.Second
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			shutdownTimeout = d
		}
	}

	return ServerConfig{
		Port:            port,
		ShutdownTimeout: shutdownTimeout,
	}
}
