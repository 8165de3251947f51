// Package csvfile persists the order table as a flat delimited file with the
// canonical 9-column header. The file is written with a UTF-8 byte-order mark
// for spreadsheet compatibility, and reads tolerate a mark being present or
// absent. Every Load re-reads the file; there is no in-process cache.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ordexa/pedidotrack/pkg/pedidos/internalerr"
	"github.com/ordexa/pedidotrack/pkg/pedidos/store"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type csvStore struct {
	path string
}

// Open returns a Store backed by the CSV file at path. The file does not
// need to exist yet; a missing file loads as an empty table and is created
// on the first upsert.
func Open(path string) (store.Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("csv store: %w", internalerr.ErrInvalidConfig)
	}
	return &csvStore{path: path}, nil
}

func (s *csvStore) Close() error { return nil }

// Load reads the whole table. Missing columns come back as empty strings,
// extra columns are dropped, and every value is whitespace-trimmed.
func (s *csvStore) Load(ctx context.Context) ([]store.Order, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []store.Order{}, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	// Strip a UTF-8 BOM if the file carries one.
	bomAware := transform.NewReader(f, unicode.UTF8BOM.NewDecoder())

	reader := csv.NewReader(bomAware)
	reader.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []store.Order{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var orders []store.Order
	if err := dec.Decode(&orders); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	for i := range orders {
		orders[i] = trimOrder(orders[i])
	}
	if orders == nil {
		orders = []store.Order{}
	}
	return orders, nil
}

// UpsertMany loads the current table, merges by Pedido and overwrites the
// whole file. Matches are overwritten in place; new keys append in input
// order.
func (s *csvStore) UpsertMany(ctx context.Context, incoming []store.Order) (store.UpsertStats, error) {
	var stats store.UpsertStats

	table, err := s.Load(ctx)
	if err != nil {
		return stats, err
	}

	table, stats = store.Merge(table, incoming)

	if err := s.save(table); err != nil {
		return stats, err
	}
	return stats, nil
}

func (s *csvStore) save(table []store.Order) error {
	data, err := csvutil.Marshal(table)
	if err != nil {
		return fmt.Errorf("encode order table: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return f.Close()
}

func trimOrder(o store.Order) store.Order {
	fields := o.Fields()
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return store.FromFields(fields)
}
