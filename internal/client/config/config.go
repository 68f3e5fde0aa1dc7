package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the gophdrop CLI.
//
// Fields:
//   - APIBaseURL: base URL of the storage REST API, e.g. http://localhost:5000/api.
//   - OnlineCheckInterval: how often the client probes /health.
//   - RequestTimeout: per-request timeout applied by the HTTP transport.
//   - DownloadDir: directory (relative to the working dir) for downloaded files.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL          string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	DownloadDir         string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 30 * time.Second
	c.DownloadDir = "download"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given with -c/-config) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	return loadFromArgs(os.Args[1:])
}

func loadFromArgs(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	if err := cfg.validate(); err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive, got %s", c.OnlineCheckInterval)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}
