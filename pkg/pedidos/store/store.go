package store

import (
	"context"
)

// Columns is the canonical 9-column layout of the persisted order table.
// Column order is fixed; every backend loads and saves in this order.
var Columns = []string{
	"Pedido",
	"Emissao",
	"Marca",
	"Fabricante",
	"Destino",
	"Status",
	"Qtd_Pedido",
	"Qtd_Faturado",
	"Alteracao",
}

// Order is one purchase-order status row. All fields are free text as pasted
// from the source screen; only Pedido is required (it is the upsert key).
type Order struct {
	Pedido      string `csv:"Pedido"`
	Emissao     string `csv:"Emissao"`
	Marca       string `csv:"Marca"`
	Fabricante  string `csv:"Fabricante"`
	Destino     string `csv:"Destino"`
	Status      string `csv:"Status"`
	QtdPedido   string `csv:"Qtd_Pedido"`
	QtdFaturado string `csv:"Qtd_Faturado"`
	Alteracao   string `csv:"Alteracao"`
}

// Fields returns the order's values in canonical column order.
func (o Order) Fields() []string {
	return []string{
		o.Pedido, o.Emissao, o.Marca, o.Fabricante, o.Destino,
		o.Status, o.QtdPedido, o.QtdFaturado, o.Alteracao,
	}
}

// FromFields builds an Order from values in canonical column order.
// The slice must have exactly len(Columns) entries.
func FromFields(fields []string) Order {
	return Order{
		Pedido:      fields[0],
		Emissao:     fields[1],
		Marca:       fields[2],
		Fabricante:  fields[3],
		Destino:     fields[4],
		Status:      fields[5],
		QtdPedido:   fields[6],
		QtdFaturado: fields[7],
		Alteracao:   fields[8],
	}
}

// UpsertStats reports what an UpsertMany call did.
type UpsertStats struct {
	Inserted int
	Updated  int
}

// Store persists the order table. Load returns the whole table in stored
// order and always re-reads the backend; there is no in-process cache.
type Store interface {
	Close() error

	Load(ctx context.Context) ([]Order, error)

	// UpsertMany merges records by Pedido: an existing row with the same key
	// is overwritten in place (first match only), anything else is appended
	// in input order.
	UpsertMany(ctx context.Context, orders []Order) (UpsertStats, error)
}
