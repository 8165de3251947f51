package config

import (
	"fmt"

	"github.com/ordexa/pedidotrack/pkg/pedidos/xmlflat"
)

// Loader reads optional configuration files and constructs components.
// Empty paths fall back to the built-in defaults.
type Loader struct {
	LookupsPath string
	LayoutPath  string
}

// Components holds the configured pipeline pieces.
type Components struct {
	Deriver *xmlflat.Deriver
	Layout  []xmlflat.ColumnSpec
}

// Load builds the deriver and export layout.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.LookupsPath != "" {
		lk, err := LoadLookups(l.LookupsPath)
		if err != nil {
			return nil, fmt.Errorf("load lookups: %w", err)
		}
		comp.Deriver = xmlflat.NewDeriverWithLookups(lk.StatusNames, lk.BrandNames)
	} else {
		comp.Deriver = xmlflat.NewDeriver()
	}

	if l.LayoutPath != "" {
		layout, err := LoadLayout(l.LayoutPath)
		if err != nil {
			return nil, fmt.Errorf("load layout: %w", err)
		}
		specs := make([]xmlflat.ColumnSpec, len(layout.Columns))
		for i, col := range layout.Columns {
			specs[i] = xmlflat.ColumnSpec{Source: col.Source, Target: col.Target}
		}
		comp.Layout = specs
	} else {
		comp.Layout = xmlflat.FinalLayout()
	}

	return comp, nil
}
