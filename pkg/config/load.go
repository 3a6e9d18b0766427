package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config file names probed in the working directory, in order.
var configNames = []string{".csift.yaml", ".csift.yml"}

// FromYAML parses a configuration on top of the defaults, so fields
// absent from the file keep their default values.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// ToYAML serializes the configuration.
func (c *Config) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// Load reads the configuration. An explicit path must exist; otherwise
// the working directory is probed for a .csift.yaml, and defaults are
// returned when none is found.
func Load(explicitPath, workDir string) (*Config, error) {
	if explicitPath != "" {
		data, err := os.ReadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", explicitPath, err)
		}
		return FromYAML(data)
	}

	for _, name := range configNames {
		path := filepath.Join(workDir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return FromYAML(data)
	}

	return Default(), nil
}
