package xmlflat

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Column names added by derivation. Raw source columns stay untouched.
const (
	ColEmissao           = "emissao"
	ColEntrega           = "entrega"
	ColPeriodoNorm       = "periodo_entrega_norm"
	ColCor               = "cor"
	ColDescSituacao      = "desc_situacao"
	ColNomeMarca         = "nome_marca"
	ColQuantidadeNumeric = "quantidade_num"
	ColPrecoNumeric      = "preco_num"
)

// headerJoinColumns are the order-level attributes copied from the first
// header row onto every item row that does not already define the key.
var headerJoinColumns = []string{
	"fornecedor",
	"comprador",
	"nome_comprador",
	"condicao_pagto",
	"desc_condicao_pagto",
	"periodo_entrega",
	ColPeriodoNorm,
	"dtemissao",
	ColEmissao,
	"marca",
}

// DefaultStatusNames resolves the vendor's order-item status codes.
func DefaultStatusNames() map[string]string {
	return map[string]string{
		"0": "Cadastrado",
		"1": "Alterado",
		"2": "Cancelado",
	}
}

// DefaultBrandNames resolves the vendor's brand codes.
func DefaultBrandNames() map[string]string {
	return map[string]string{
		"1025": "AREZZO",
		"1030": "SCHUTZ",
		"1040": "ANACAPRI",
		"1050": "ALEXANDRE BIRMAN",
		"1060": "RESERVA GO",
	}
}

// Deriver computes normalized fields on flattened section tables: date
// normalization, color extraction, code-to-name lookups, comma-tolerant
// numeric coercion and the header-into-item join.
type Deriver struct {
	statusNames map[string]string
	brandNames  map[string]string
}

// NewDeriver creates a deriver with the built-in lookup tables.
func NewDeriver() *Deriver {
	return &Deriver{
		statusNames: DefaultStatusNames(),
		brandNames:  DefaultBrandNames(),
	}
}

// NewDeriverWithLookups creates a deriver with custom code-to-name tables.
// Nil maps fall back to the built-ins.
func NewDeriverWithLookups(statusNames, brandNames map[string]string) *Deriver {
	d := NewDeriver()
	if statusNames != nil {
		d.statusNames = statusNames
	}
	if brandNames != nil {
		d.brandNames = brandNames
	}
	return d
}

// Derive runs all per-document derivations in place. Call it once per
// parsed document, before stacking sections across files: the header join
// must see only this document's header rows.
func (d *Deriver) Derive(s *Sections) {
	d.deriveHeader(&s.Header)
	d.joinHeaderIntoItems(s)
	d.deriveItems(&s.Items)
	deriveQuantity(&s.Grades)
	deriveQuantity(&s.Volumes)
}

func (d *Deriver) deriveHeader(t *Table) {
	if len(t.Rows) == 0 {
		return
	}
	t.AddColumn(ColEmissao)
	t.AddColumn(ColPeriodoNorm)
	for _, row := range t.Rows {
		row[ColEmissao] = ParseToDate(row.Get("dtemissao"))
		row[ColPeriodoNorm] = ParseToDate(row.Get("periodo_entrega"))
	}
}

// joinHeaderIntoItems copies order-level attributes from the first header
// row onto each item. A document with several header rows silently uses
// only the first. Keys the item already defines are left alone.
func (d *Deriver) joinHeaderIntoItems(s *Sections) {
	if len(s.Header.Rows) == 0 || len(s.Items.Rows) == 0 {
		return
	}
	header := s.Header.Rows[0]

	for _, col := range headerJoinColumns {
		value, ok := header[col]
		if !ok {
			continue
		}
		s.Items.AddColumn(col)
		for _, row := range s.Items.Rows {
			if _, defined := row[col]; !defined {
				row[col] = value
			}
		}
	}
}

func (d *Deriver) deriveItems(t *Table) {
	if len(t.Rows) == 0 {
		return
	}
	for _, col := range []string{
		ColEmissao, ColEntrega, ColPeriodoNorm, ColCor,
		ColDescSituacao, ColNomeMarca, ColQuantidadeNumeric, ColPrecoNumeric,
	} {
		t.AddColumn(col)
	}

	for _, row := range t.Rows {
		if _, ok := row[ColEmissao]; !ok {
			row[ColEmissao] = ParseToDate(row.Get("dtemissao"))
		}
		row[ColEntrega] = ParseToDate(row.Get("dtentrega"))
		if _, ok := row[ColPeriodoNorm]; !ok {
			row[ColPeriodoNorm] = ParseToDate(row.Get("periodo_entrega"))
		}
		row[ColCor] = ExtractColor(row.Get("descricao"))
		row[ColDescSituacao] = lookupOrKey(d.statusNames, row.Get("situacao"))
		row[ColNomeMarca] = lookupOrKey(d.brandNames, row.Get("marca"))
		row[ColQuantidadeNumeric] = normalizeNumeric(row.Get("quantidade"))
		row[ColPrecoNumeric] = normalizeNumeric(row.Get("preco"))
	}
}

// deriveQuantity adds the comma-tolerant numeric column to the grade and
// volume breakdown tables.
func deriveQuantity(t *Table) {
	if len(t.Rows) == 0 {
		return
	}
	t.AddColumn(ColQuantidadeNumeric)
	for _, row := range t.Rows {
		row[ColQuantidadeNumeric] = normalizeNumeric(row.Get("quantidade"))
	}
}

var toDatePattern = regexp.MustCompile(`^TO_DATE\('(\d{8})'\s*,\s*'DDMMYYYY'\)$`)

// bareDateLayouts are tried in order on bare 8-digit input: year-month-day
// first, then day-month-year.
var bareDateLayouts = []string{"20060102", "02012006"}

// separatedDateLayouts are the four common separator layouts accepted as-is.
var separatedDateLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006", "2006/01/02"}

// ParseToDate normalizes a date string to YYYY-MM-DD. It never fails:
// input matching none of the known shapes passes through verbatim, since
// upstream data quality is not guaranteed and downstream consumers treat
// the field as best-effort.
func ParseToDate(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return s
	}

	// Shape 1: TO_DATE('03102025','DDMMYYYY') wrapper, explicit encoding.
	if m := toDatePattern.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse("02012006", m[1]); err == nil {
			return t.Format("2006-01-02")
		}
		return value
	}

	// Shape 2: bare 8 digits, ambiguous encoding.
	if len(s) == 8 && isDigits(s) {
		for _, layout := range bareDateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01-02")
			}
		}
		return value
	}

	// Shape 3: already separator-formatted.
	for _, layout := range separatedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}

	// Shape 4: verbatim fallback.
	return value
}

// ExtractColor returns the trimmed substring after the last '|' in a
// product description, or empty when there is no delimiter.
func ExtractColor(description string) string {
	idx := strings.LastIndex(description, "|")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(description[idx+1:])
}

// normalizeNumeric parses a decimal with comma tolerated as the separator.
// Failure yields an empty cell; the raw column keeps the original text.
func normalizeNumeric(value string) string {
	s := strings.TrimSpace(strings.ReplaceAll(value, ",", "."))
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// lookupOrKey resolves a code to its display name, defaulting to the raw
// code for unknown values. Never an error.
func lookupOrKey(table map[string]string, key string) string {
	if name, ok := table[key]; ok {
		return name
	}
	return key
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
