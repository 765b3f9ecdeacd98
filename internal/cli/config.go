package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigFile is picked up from the working directory when present.
const defaultConfigFile = "playpub.yaml"

// ProjectConfig is the optional per-project playpub.yaml. Command-line flags
// always override file values.
type ProjectConfig struct {
	// Package is the application ID, e.g. com.example.app.
	Package string `yaml:"package"`
	// Track is the default release track.
	Track string `yaml:"track"`
	// ReleaseName labels releases in the Play Console.
	ReleaseName string `yaml:"releaseName"`
}

// SetDefaults fills zero values.
func (c *ProjectConfig) SetDefaults() {
	if c.Track == "" {
		c.Track = "internal"
	}
}

// loadProjectConfig loads and parses the project configuration file. A
// missing default file is not an error; a missing explicitly-named file is.
func loadProjectConfig(path string, explicit bool) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg := &ProjectConfig{}
			cfg.SetDefaults()
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.SetDefaults()
	return &cfg, nil
}
