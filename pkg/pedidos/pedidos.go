// Package pedidos tracks purchase-order status. It normalizes two input
// shapes into flat tables: blocks of text pasted from the order-management
// screen, merged into a persisted 9-column order table, and vendor XML
// exports, flattened into per-section tables with derived reporting fields.
package pedidos

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"

	"github.com/ordexa/pedidotrack/pkg/pedidos/ingest"
	"github.com/ordexa/pedidotrack/pkg/pedidos/internalerr"
	"github.com/ordexa/pedidotrack/pkg/pedidos/query"
	"github.com/ordexa/pedidotrack/pkg/pedidos/store"
	"github.com/ordexa/pedidotrack/pkg/pedidos/xmlflat"
)

// Tracker is the facade over the order store and both parsing pipelines.
type Tracker struct {
	store   store.Store
	asm     *ingest.Assembler
	deriver *xmlflat.Deriver
	layout  []xmlflat.ColumnSpec
}

// Options configures a Tracker.
type Options struct {
	Store store.Store
	// Deriver defaults to the built-in lookup tables when nil.
	Deriver *xmlflat.Deriver
	// Layout defaults to xmlflat.FinalLayout when nil.
	Layout []xmlflat.ColumnSpec
}

// New creates a Tracker with the given dependencies.
func New(opts Options) *Tracker {
	deriver := opts.Deriver
	if deriver == nil {
		deriver = xmlflat.NewDeriver()
	}
	layout := opts.Layout
	if layout == nil {
		layout = xmlflat.FinalLayout()
	}
	return &Tracker{
		store:   opts.Store,
		asm:     ingest.NewAssembler(ingest.NewTokenizer()),
		deriver: deriver,
		layout:  layout,
	}
}

// Close shuts down the underlying store.
func (t *Tracker) Close() error {
	return t.store.Close()
}

// Load returns the persisted order table.
func (t *Tracker) Load(ctx context.Context) ([]store.Order, error) {
	return t.store.Load(ctx)
}

// UpsertPasted parses a pasted block holding one or more orders and merges
// them into the persisted table by order id.
func (t *Tracker) UpsertPasted(ctx context.Context, raw string) (store.UpsertStats, error) {
	orders, err := t.asm.ParseMany(raw)
	if err != nil {
		return store.UpsertStats{}, err
	}
	return t.store.UpsertMany(ctx, orders)
}

// UpsertOne parses a pasted block holding exactly one order and merges it.
// Its field-count error carries the detected token list for diagnostics.
func (t *Tracker) UpsertOne(ctx context.Context, raw string) (store.Order, store.UpsertStats, error) {
	order, err := t.asm.ParseOne(raw)
	if err != nil {
		return store.Order{}, store.UpsertStats{}, err
	}
	stats, err := t.store.UpsertMany(ctx, []store.Order{order})
	return order, stats, err
}

// Search applies the filter predicates to the persisted table.
func (t *Tracker) Search(ctx context.Context, f query.Filter) ([]store.Order, error) {
	table, err := t.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(table), nil
}

// File is one named XML input in an import batch.
type File struct {
	Name   string
	Reader io.Reader
}

// BatchResult holds everything an XML import produced: the stacked section
// tables, the projected reporting table and the per-file warnings. One bad
// file warns and does not abort the rest of the batch.
type BatchResult struct {
	BatchID  string
	Sections xmlflat.Sections
	Final    xmlflat.Table
	Warnings []string
}

// ImportXML parses, flattens and derives every file in upload order, then
// projects the combined item table to the reporting layout.
func (t *Tracker) ImportXML(ctx context.Context, files []File) (BatchResult, error) {
	result := BatchResult{BatchID: ulid.Make().String()}

	for _, f := range files {
		doc, err := xmlflat.Parse(f.Reader)
		if err != nil {
			if errors.Is(err, internalerr.ErrXMLParse) {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: 0 items found (%v)", f.Name, err))
				continue
			}
			return result, fmt.Errorf("read %s: %w", f.Name, err)
		}

		sections := xmlflat.Flatten(doc)
		// Derivation is per document: the header join must only see this
		// file's header rows.
		t.deriver.Derive(&sections)

		if len(sections.Items.Rows) == 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: 0 items found", f.Name))
		}
		result.Sections.Append(sections)
	}

	final, missing := xmlflat.Project(result.Sections.Items, t.layout)
	if missing != nil {
		result.Warnings = append(result.Warnings, missing.Error())
	}
	result.Final = final

	return result, nil
}
