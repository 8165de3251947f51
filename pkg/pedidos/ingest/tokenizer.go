package ingest

import (
	"strings"

	"github.com/ordexa/pedidotrack/pkg/pedidos/internalerr"
)

// Tokenizer reconstructs field tokens from text pasted out of the order
// management screen. Pasted blocks arrive with fields separated by an
// unpredictable mix of tabs and line breaks: long descriptions wrap onto
// their own lines, so a line break is treated as a field boundary too.
// That heuristic is ambiguous by nature and is kept exactly as the source
// screen produces it.
type Tokenizer struct{}

// NewTokenizer creates a tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits raw pasted text into trimmed, non-empty field tokens.
// Returns internalerr.ErrEmptyInput when the input is blank.
func (t *Tokenizer) Tokenize(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, internalerr.ErrEmptyInput
	}

	// Normalize every line-break variant to \n, then turn line breaks into
	// the field separator.
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\n", "\t")

	var tokens []string
	for _, part := range strings.Split(text, "\t") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tokens = append(tokens, part)
	}
	return tokens, nil
}
