package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds tool defaults that flags can override.
type Config struct {
	// OutputSize is the default output paper format for sheetmerge.
	OutputSize string `yaml:"output_size"`
	// CompressionLevel is the default Ghostscript quality level (0-4).
	CompressionLevel int `yaml:"compression_level"`
	// Viewer overrides the platform document viewer used by --open.
	Viewer string `yaml:"viewer"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		OutputSize:       "A4",
		CompressionLevel: 2,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.OutputSize != "A4" && cfg.OutputSize != "A3" {
		return nil, fmt.Errorf("%s: output_size must be A4 or A3, got %q", path, cfg.OutputSize)
	}
	if cfg.CompressionLevel < 0 || cfg.CompressionLevel > 4 {
		return nil, fmt.Errorf("%s: compression_level must be between 0 and 4, got %d", path, cfg.CompressionLevel)
	}

	return cfg, nil
}
