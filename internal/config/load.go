package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the dependency configuration YAML file at the given path and
// returns a populated Config struct. Unlike value lookups (which report
// missing keys through the accessor methods), a file that cannot be read or
// parsed is always a hard error since nothing can be installed without it.
func Load(path string) (*Config, error) {
	// Read the entire config file into memory
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Parse the YAML into the typed Config struct
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &cfg, nil
}
