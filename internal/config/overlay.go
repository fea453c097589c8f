// config/overlay.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the file configuration.
const (
	EnvConfigPath  = "JOBSCRAPE_CONFIG"
	EnvOutput      = "JOBSCRAPE_OUTPUT"
	EnvConcurrency = "JOBSCRAPE_CONCURRENCY"
	EnvRenderer    = "JOBSCRAPE_RENDERER"
	EnvSQLite      = "JOBSCRAPE_SQLITE"
)

// LoadDotEnv reads .env files if present; missing files are ignored.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Path returns the config file location, JOBSCRAPE_CONFIG or config.yml.
func Path() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	return "config.yml"
}

// OverlayEnv applies environment overrides on top of cfg.
func OverlayEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		cfg.OutputPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvConcurrency)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvConcurrency, err)
		}
		cfg.Concurrency = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvRenderer)); v != "" {
		cfg.Renderer = v
	}
	if v, ok := os.LookupEnv(EnvSQLite); ok {
		cfg.SQLitePath = strings.TrimSpace(v)
	}
	return nil
}
