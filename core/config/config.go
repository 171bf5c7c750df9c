package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tristendillon/nbstub/core/extractor"
	"github.com/tristendillon/nbstub/core/logger"
	"gopkg.in/yaml.v3"
)

const FileName = "nbstub.yaml"

const DefaultImports = "from typing import Any, Callable, Iterable, List, Optional, Tuple, Union"

type Config struct {
	// OutputDir is where stubs are written. Empty means beside the notebook.
	OutputDir        string `yaml:"output_dir"`
	Imports          string `yaml:"imports"`
	ExcludeSubstring string `yaml:"exclude_substring"`
}

func Default() *Config {
	return &Config{
		Imports:          DefaultImports,
		ExcludeSubstring: extractor.DefaultExcludeSubstring,
	}
}

// Load reads path, or nbstub.yaml in the working directory when path is
// empty. A missing default file yields Default(); keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working dir: %w", err)
		}
		candidate := filepath.Join(wd, FileName)
		if _, err := os.Stat(candidate); err != nil {
			logger.Debug("No config file found, using default config")
			return Default(), nil
		}
		path = candidate
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", path)
	logger.Debug("Config: %+v", *cfg)

	return cfg, nil
}
