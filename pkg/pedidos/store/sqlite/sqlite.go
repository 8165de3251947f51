// Package sqlite is an embedded relational backend for the order table with
// the same merge semantics as the flat-file store. Row order follows
// insertion order (rowid), matching the file backend's append behavior.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ordexa/pedidotrack/pkg/pedidos/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database at path with WAL mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS orders (
	pedido TEXT NOT NULL UNIQUE,
	emissao TEXT NOT NULL DEFAULT '',
	marca TEXT NOT NULL DEFAULT '',
	fabricante TEXT NOT NULL DEFAULT '',
	destino TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT '',
	qtd_pedido TEXT NOT NULL DEFAULT '',
	qtd_faturado TEXT NOT NULL DEFAULT '',
	alteracao TEXT NOT NULL DEFAULT ''
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Load returns the whole table in insertion order.
func (s *sqliteStore) Load(ctx context.Context) ([]store.Order, error) {
	const stmt = `
SELECT pedido, emissao, marca, fabricante, destino,
       status, qtd_pedido, qtd_faturado, alteracao
FROM orders ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	defer rows.Close()

	orders := []store.Order{}
	for rows.Next() {
		var o store.Order
		if err := rows.Scan(
			&o.Pedido, &o.Emissao, &o.Marca, &o.Fabricante, &o.Destino,
			&o.Status, &o.QtdPedido, &o.QtdFaturado, &o.Alteracao,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// UpsertMany merges by pedido inside a single transaction.
func (s *sqliteStore) UpsertMany(ctx context.Context, incoming []store.Order) (store.UpsertStats, error) {
	var stats store.UpsertStats

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO orders (pedido, emissao, marca, fabricante, destino,
                    status, qtd_pedido, qtd_faturado, alteracao)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(pedido) DO UPDATE SET
	emissao=excluded.emissao,
	marca=excluded.marca,
	fabricante=excluded.fabricante,
	destino=excluded.destino,
	status=excluded.status,
	qtd_pedido=excluded.qtd_pedido,
	qtd_faturado=excluded.qtd_faturado,
	alteracao=excluded.alteracao`

	for _, o := range incoming {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM orders WHERE pedido=?`, o.Pedido).Scan(&exists)
		if err != nil {
			return stats, err
		}

		if _, err := tx.ExecContext(ctx, stmt,
			o.Pedido, o.Emissao, o.Marca, o.Fabricante, o.Destino,
			o.Status, o.QtdPedido, o.QtdFaturado, o.Alteracao,
		); err != nil {
			return stats, fmt.Errorf("upsert order %s: %w", o.Pedido, err)
		}

		if exists > 0 {
			stats.Updated++
		} else {
			stats.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, err
	}
	return stats, nil
}
