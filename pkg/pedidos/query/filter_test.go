package query

import (
	"testing"

	"github.com/ordexa/pedidotrack/pkg/pedidos/store"
)

func table() []store.Order {
	return []store.Order{
		{Pedido: "123", Marca: "RESERVA GO", Destino: "1025 - AREZZO"},
		{Pedido: "456", Marca: "Schutz", Destino: "1030 - SCHUTZ SP"},
		{Pedido: "789", Marca: "ANACAPRI", Destino: "1040 - ANACAPRI RJ"},
	}
}

func ids(rows []store.Order) []string {
	out := make([]string, len(rows))
	for i, o := range rows {
		out[i] = o.Pedido
	}
	return out
}

func TestFilterByIDList(t *testing.T) {
	tests := []struct {
		name    string
		pedidos string
		want    []string
	}{
		{"comma separated", "123, 456", []string{"123", "456"}},
		{"semicolons", "123;789", []string{"123", "789"}},
		{"spaces", "456 789", []string{"456", "789"}},
		{"mixed delimiters", "123, 456; 789", []string{"123", "456", "789"}},
		{"single id", "456", []string{"456"}},
		{"unknown id", "999", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter{Pedidos: tt.pedidos}.Apply(table()))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v (table order must be preserved)", got, tt.want)
				}
			}
		})
	}
}

func TestFilterSubstringsCaseInsensitive(t *testing.T) {
	got := Filter{Marca: "schutz"}.Apply(table())
	if len(got) != 1 || got[0].Pedido != "456" {
		t.Errorf("marca filter: %v", ids(got))
	}

	got = Filter{Destino: "arezzo"}.Apply(table())
	if len(got) != 1 || got[0].Pedido != "123" {
		t.Errorf("destino filter: %v", ids(got))
	}
}

func TestFilterConjunction(t *testing.T) {
	got := Filter{Pedidos: "123 456", Marca: "reserva"}.Apply(table())
	if len(got) != 1 || got[0].Pedido != "123" {
		t.Errorf("conjunction: %v", ids(got))
	}
}

func TestFilterEmptyPredicates(t *testing.T) {
	got := Filter{}.Apply(table())
	if len(got) != 3 {
		t.Errorf("no predicates should return everything, got %v", ids(got))
	}
}

func TestFilterEmptyTable(t *testing.T) {
	got := Filter{Pedidos: "123"}.Apply(nil)
	if len(got) != 0 {
		t.Errorf("empty table should come back unfiltered, got %v", got)
	}
}
