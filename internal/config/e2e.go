package config

import (
	"strings"
	"time"
)

// DefaultRemotePageURL is the published copy of the CAC TAT page
const DefaultRemotePageURL = "https://cac-tat.s3.eu-central-1.amazonaws.com/index.html"

// E2EConfig holds configuration for the browser suite
type E2EConfig struct {
	// BaseURL of a running server. Empty means the suite starts its own.
	BaseURL       string
	RemotePageURL string
	Headless      bool
	Timeout       time.Duration
}

// LoadE2EConfig loads browser suite configuration from environment variables
func LoadE2EConfig(getenv func(string) string) E2EConfig {
	config := E2EConfig{
		BaseURL:       strings.TrimRight(getenv("E2E_BASE_URL"), "/"),
		RemotePageURL: getenv("E2E_REMOTE_PAGE_URL"),
		Headless:      getenv("HEADLESS") != "false",
		Timeout:       10 * time.Second,
	}

	if config.RemotePageURL == "" {
		config.RemotePageURL = DefaultRemotePageURL
	}
	if v := getenv("E2E_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			config.Timeout = d
		}
	}

	return config
}

// TimeoutMillis returns Timeout in the unit playwright options expect
func (c E2EConfig) TimeoutMillis() float64 {
	return float64(c.Timeout.Milliseconds())
}
