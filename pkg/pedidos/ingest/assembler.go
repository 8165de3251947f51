package ingest

import (
	"github.com/ordexa/pedidotrack/pkg/pedidos/internalerr"
	"github.com/ordexa/pedidotrack/pkg/pedidos/store"
)

// Assembler partitions a token sequence into consecutive groups of nine and
// maps each group onto the canonical order schema. It is purely positional:
// field content (dates, quantities) is not validated here.
type Assembler struct {
	tokenizer *Tokenizer
}

// NewAssembler creates an assembler over the given tokenizer.
func NewAssembler(tokenizer *Tokenizer) *Assembler {
	return &Assembler{tokenizer: tokenizer}
}

// ParseOne parses a block holding exactly one order. The FieldCountError for
// a bad count carries the detected token list for diagnostics.
func (a *Assembler) ParseOne(raw string) (store.Order, error) {
	tokens, err := a.tokenizer.Tokenize(raw)
	if err != nil {
		return store.Order{}, err
	}
	if len(tokens) != len(store.Columns) {
		return store.Order{}, &internalerr.FieldCountError{
			Want:   len(store.Columns),
			Got:    len(tokens),
			Tokens: tokens,
		}
	}
	return store.FromFields(tokens), nil
}

// ParseMany parses a block holding one or more orders. The token count must
// be an exact multiple of the schema width.
func (a *Assembler) ParseMany(raw string) ([]store.Order, error) {
	tokens, err := a.tokenizer.Tokenize(raw)
	if err != nil {
		return nil, err
	}

	width := len(store.Columns)
	if len(tokens)%width != 0 {
		return nil, &internalerr.FieldCountError{
			Want:  width,
			Got:   len(tokens),
			Multi: true,
		}
	}

	orders := make([]store.Order, 0, len(tokens)/width)
	for i := 0; i < len(tokens); i += width {
		orders = append(orders, store.FromFields(tokens[i:i+width]))
	}
	return orders, nil
}
