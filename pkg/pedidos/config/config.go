package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ordexa/pedidotrack/pkg/pedidos/internalerr"
)

// Lookups overrides the built-in code-to-name tables.
type Lookups struct {
	StatusNames map[string]string `yaml:"status_names"`
	BrandNames  map[string]string `yaml:"brand_names"`
}

// LoadLookups loads lookup tables from a YAML file.
func LoadLookups(path string) (*Lookups, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lk Lookups
	if err := yaml.Unmarshal(data, &lk); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	return &lk, nil
}

// Layout overrides the export projection.
type Layout struct {
	Columns []LayoutColumn `yaml:"columns"`
}

// LayoutColumn maps a source column to its export display name.
type LayoutColumn struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// LoadLayout loads a projection layout from a YAML file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	for _, col := range l.Columns {
		if col.Source == "" || col.Target == "" {
			return nil, fmt.Errorf("%w: layout columns need source and target", internalerr.ErrInvalidConfig)
		}
	}
	return &l, nil
}
