// engine/internal/config/config.go
package config

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	RendererChromedp   = "chromedp"
	RendererPlaywright = "playwright"
)

type Config struct {
	URLs        []string `yaml:"urls"`
	Concurrency int      `yaml:"concurrency"`
	OutputPath  string   `yaml:"output_path"`

	Renderer             string `yaml:"renderer"` // chromedp | playwright
	RenderTimeoutSeconds int    `yaml:"render_timeout_seconds"`
	ScrollCount          int    `yaml:"scroll_count"`
	ScrollPauseMs        int    `yaml:"scroll_pause_ms"`

	RequestsPerSecond float64 `yaml:"requests_per_second"` // 0 disables
	Burst             int     `yaml:"burst"`

	SQLitePath string `yaml:"sqlite_path"` // empty disables the mirror
}

// Default is the built-in configuration: three it.pracuj.pl searches
// (Python, JavaScript, C++) written to job_listings.csv.
func Default() Config {
	return Config{
		URLs: []string{
			"https://it.pracuj.pl/praca?et=1%2C3%2C17&itth=37",
			"https://it.pracuj.pl/praca?et=1%2C3%2C17&itth=33",
			"https://it.pracuj.pl/praca?et=1%2C3%2C17&itth=41",
		},
		Concurrency:          3,
		OutputPath:           "job_listings.csv",
		Renderer:             RendererChromedp,
		RenderTimeoutSeconds: 60,
		ScrollCount:          3,
		ScrollPauseMs:        500,
		RequestsPerSecond:    2,
		Burst:                3,
	}
}

// Load starts from Default and overlays the YAML file at path when it
// exists. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) RenderTimeout() time.Duration {
	return time.Duration(c.RenderTimeoutSeconds) * time.Second
}

func (c Config) ScrollPause() time.Duration {
	return time.Duration(c.ScrollPauseMs) * time.Millisecond
}
