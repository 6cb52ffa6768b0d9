package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadFile reads a match file. The format is chosen by extension:
// .yaml/.yml or .hcl. Missing fields take their defaults.
func LoadFile(path string) (*Match, error) {
	var m Match
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := loadYAML(path, &m); err != nil {
			return nil, fmt.Errorf("failed to load match file %s: %w", path, err)
		}
	case ".hcl":
		if err := loadHCL(path, &m); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported match file extension %q", filepath.Ext(path))
	}
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match file %s: %w", path, err)
	}
	return &m, nil
}
