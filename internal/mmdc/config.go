package mmdc

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the renderer settings loadable from a YAML file. All fields
// are optional; zero values fall back to the defaults below.
type Config struct {
	Binary         string `yaml:"binary"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	TempDir        string `yaml:"temp_dir"`
	OutputDir      string `yaml:"output_dir"`
}

// DefaultConfig returns the built-in renderer settings: mmdc from PATH,
// 30 second budget, system temp area, outputs in the working directory.
func DefaultConfig() Config {
	return Config{
		Binary:         "mmdc",
		TimeoutSeconds: 30,
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
// A missing file is not an error: it means "use defaults".
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read renderer config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse renderer config: %w", err)
	}

	if cfg.Binary == "" {
		cfg.Binary = "mmdc"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 30
	}
	return cfg, nil
}

// Timeout returns the configured budget as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
