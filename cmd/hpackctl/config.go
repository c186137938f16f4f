package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// cliConfig is hpackctl's on-disk configuration, loaded from
// ~/.hpackctl.yaml when present. Flags passed on the command line always
// win over a loaded value.
type cliConfig struct {
	MaxTableSize  int    `yaml:"max_table_size"`
	CapacityLimit int    `yaml:"capacity_limit"`
	LogLevel      string `yaml:"log_level"`
}

func defaultCliConfig() cliConfig {
	return cliConfig{
		MaxTableSize: 4096,
		LogLevel:     "info",
	}
}

// loadCliConfig reads path if it exists, falling back silently to defaults
// when it does not. A present-but-malformed file is an error.
func loadCliConfig(path string) (cliConfig, error) {
	cfg := defaultCliConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.MaxTableSize <= 0 {
		cfg.MaxTableSize = 4096
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}
