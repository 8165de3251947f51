// Package export writes result tables as delimited text with a UTF-8
// byte-order mark, so spreadsheet tools pick up the encoding.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/ordexa/pedidotrack/pkg/pedidos/store"
	"github.com/ordexa/pedidotrack/pkg/pedidos/xmlflat"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteTable writes a flattened/projected table. Cells absent from a row
// are written as empty strings.
func WriteTable(w io.Writer, t xmlflat.Table) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = row.Get(col)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteOrders writes the persisted order table in its canonical layout.
func WriteOrders(w io.Writer, orders []store.Order) error {
	if orders == nil {
		orders = []store.Order{}
	}
	data, err := csvutil.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode order table: %w", err)
	}
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
