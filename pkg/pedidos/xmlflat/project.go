package xmlflat

import (
	"github.com/ordexa/pedidotrack/pkg/pedidos/internalerr"
)

// ColumnSpec maps one source column onto its display name in a projected
// layout.
type ColumnSpec struct {
	Source string
	Target string
}

// FinalLayout is the item-table projection used for the reporting export.
func FinalLayout() []ColumnSpec {
	return []ColumnSpec{
		{Source: ColEmissao, Target: "EMISSAO"},
		{Source: ColNomeMarca, Target: "MARCA"},
		{Source: "numero", Target: "NUMERO PEDIDO"},
		{Source: "material", Target: "SKU"},
		{Source: "descricao", Target: "PRODUTO"},
		{Source: ColCor, Target: "COR"},
		{Source: "categoria", Target: "CATEGORIA"},
		{Source: "linha", Target: "TIPO"},
		{Source: "colecao", Target: "COLECAO"},
		{Source: "lancamento", Target: "LANCAMENTO"},
		{Source: "grade", Target: "GRADE"},
		{Source: ColQuantidadeNumeric, Target: "QUANTIDADE"},
		{Source: ColPrecoNumeric, Target: "PRECO"},
		{Source: "desc_condicao_pagto", Target: "PAGAMENTO"},
		{Source: ColDescSituacao, Target: "STATUS PEDIDO"},
	}
}

// Project reshapes a table to the given layout: subset, rename, reorder.
// Source columns absent from the table are omitted from the output and
// reported through a MissingColumnError, which callers surface as a
// warning; projection itself never aborts.
func Project(t Table, layout []ColumnSpec) (Table, *internalerr.MissingColumnError) {
	var out Table
	var missing []string
	kept := make([]ColumnSpec, 0, len(layout))

	for _, spec := range layout {
		if !t.HasColumn(spec.Source) {
			missing = append(missing, spec.Source)
			continue
		}
		kept = append(kept, spec)
		out.Columns = append(out.Columns, spec.Target)
	}

	out.Rows = make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		projected := make(Row, len(kept))
		for _, spec := range kept {
			projected[spec.Target] = row.Get(spec.Source)
		}
		out.Rows = append(out.Rows, projected)
	}

	if len(missing) > 0 {
		return out, &internalerr.MissingColumnError{Columns: missing}
	}
	return out, nil
}
