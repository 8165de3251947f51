// Package query filters the persisted order table for the search feature.
package query

import (
	"strings"

	"github.com/ordexa/pedidotrack/pkg/pedidos/store"
)

// Filter holds the three optional search predicates. An empty predicate
// imposes no constraint; supplied predicates are conjoined.
type Filter struct {
	// Pedidos is a delimiter-tolerant id list: comma, semicolon and space
	// all separate entries.
	Pedidos string
	// Marca matches as a case-insensitive substring.
	Marca string
	// Destino matches as a case-insensitive substring.
	Destino string
}

// Apply returns the rows satisfying every supplied predicate, in original
// table order. An empty table is returned unfiltered.
func (f Filter) Apply(table []store.Order) []store.Order {
	if len(table) == 0 {
		return table
	}

	ids := splitIDs(f.Pedidos)
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	marca := strings.ToLower(strings.TrimSpace(f.Marca))
	destino := strings.ToLower(strings.TrimSpace(f.Destino))

	out := make([]store.Order, 0, len(table))
	for _, o := range table {
		if len(idSet) > 0 {
			if _, ok := idSet[o.Pedido]; !ok {
				continue
			}
		}
		if marca != "" && !strings.Contains(strings.ToLower(o.Marca), marca) {
			continue
		}
		if destino != "" && !strings.Contains(strings.ToLower(o.Destino), destino) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func splitIDs(raw string) []string {
	raw = strings.ReplaceAll(raw, ";", ",")
	raw = strings.ReplaceAll(raw, " ", ",")

	var ids []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ids = append(ids, part)
	}
	return ids
}
