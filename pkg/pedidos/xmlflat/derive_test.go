package xmlflat

import (
	"strings"
	"testing"
)

func TestParseToDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"to_date wrapper", "TO_DATE('03102025','DDMMYYYY')", "2025-10-03"},
		{"bare digits ymd first", "20251003", "2025-10-03"},
		{"bare digits dmy fallback", "03102025", "2025-10-03"},
		{"slash dmy", "27/11/2025", "2025-11-27"},
		{"iso", "2025-11-27", "2025-11-27"},
		{"dash dmy", "27-11-2025", "2025-11-27"},
		{"slash ymd", "2025/11/27", "2025-11-27"},
		{"empty", "", ""},
		{"unparseable passthrough", "novembro de 2025", "novembro de 2025"},
		{"bad digits passthrough", "99999999", "99999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseToDate(tt.in); got != tt.want {
				t.Errorf("ParseToDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BOLSA TOTE | PRETO", "PRETO"},
		{"BOLSA TOTE", ""},
		{"BOLSA | COURO | OFF WHITE", "OFF WHITE"},
		{"BOLSA |", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractColor(tt.in); got != tt.want {
			t.Errorf("ExtractColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeriveItems(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	s := Flatten(doc)

	NewDeriver().Derive(&s)

	first := s.Items.Rows[0]
	if got := first.Get(ColCor); got != "PRETO" {
		t.Errorf("cor = %q", got)
	}
	if got := first.Get(ColDescSituacao); got != "Alterado" {
		t.Errorf("desc_situacao = %q", got)
	}
	if got := first.Get(ColQuantidadeNumeric); got != "10.5" {
		t.Errorf("quantidade_num = %q", got)
	}
	if got := first.Get(ColPrecoNumeric); got != "199.9" {
		t.Errorf("preco_num = %q", got)
	}
	// Raw values survive next to the derived columns.
	if got := first.Get("quantidade"); got != "10,5" {
		t.Errorf("raw quantidade destroyed: %q", got)
	}

	second := s.Items.Rows[1]
	if got := second.Get(ColCor); got != "" {
		t.Errorf("cor without delimiter = %q, want empty", got)
	}
	// Unknown codes pass through as the raw code.
	if got := second.Get(ColDescSituacao); got != "9" {
		t.Errorf("unknown status = %q", got)
	}
	if got := second.Get(ColNomeMarca); got != "9999" {
		t.Errorf("unknown brand = %q", got)
	}
	// Unparseable quantity: derived cell empty, raw retained.
	if got := second.Get(ColQuantidadeNumeric); got != "" {
		t.Errorf("quantidade_num = %q, want empty", got)
	}
	if got := second.Get("quantidade"); got != "abc" {
		t.Errorf("raw quantidade = %q", got)
	}
}

func TestHeaderJoin(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	s := Flatten(doc)

	NewDeriver().Derive(&s)

	first := s.Items.Rows[0]
	if got := first.Get("fornecedor"); got != "5023016" {
		t.Errorf("fornecedor not joined: %q", got)
	}
	if got := first.Get("desc_condicao_pagto"); got != "30 DIAS" {
		t.Errorf("payment description not joined: %q", got)
	}
	if got := first.Get(ColEmissao); got != "2025-07-04" {
		t.Errorf("emissao = %q", got)
	}
	if got := first.Get(ColPeriodoNorm); got != "2025-11-27" {
		t.Errorf("periodo_entrega_norm = %q", got)
	}
	// Brand lookup resolves against the joined header code.
	if got := first.Get(ColNomeMarca); got != "AREZZO" {
		t.Errorf("nome_marca = %q", got)
	}
	// The second item defines its own marca; the join must not overwrite it.
	if got := s.Items.Rows[1].Get("marca"); got != "9999" {
		t.Errorf("item's own marca overwritten: %q", got)
	}
}

func TestFirstHeaderRowWins(t *testing.T) {
	s := Sections{
		Header: Table{
			Columns: []string{"fornecedor"},
			Rows:    []Row{{"fornecedor": "first"}, {"fornecedor": "second"}},
		},
		Items: Table{
			Columns: []string{"numero"},
			Rows:    []Row{{"numero": "1"}},
		},
	}

	NewDeriver().Derive(&s)

	if got := s.Items.Rows[0].Get("fornecedor"); got != "first" {
		t.Errorf("fornecedor = %q, want the first header row", got)
	}
}

func TestDeriveWithoutHeader(t *testing.T) {
	s := Sections{
		Items: Table{
			Columns: []string{"numero", "descricao"},
			Rows:    []Row{{"numero": "1", "descricao": "X | AZUL"}},
		},
	}

	// Zero header rows: items simply keep header-level fields unset.
	NewDeriver().Derive(&s)

	row := s.Items.Rows[0]
	if got := row.Get("fornecedor"); got != "" {
		t.Errorf("fornecedor = %q, want unset", got)
	}
	if got := row.Get(ColCor); got != "AZUL" {
		t.Errorf("cor = %q", got)
	}
}

func TestDeriveGradeAndVolumeQuantities(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	s := Flatten(doc)

	NewDeriver().Derive(&s)

	if got := s.Grades.Rows[0].Get(ColQuantidadeNumeric); got != "4" {
		t.Errorf("grade quantidade_num = %q", got)
	}
	if got := s.Volumes.Rows[0].Get(ColQuantidadeNumeric); got != "2" {
		t.Errorf("volume quantidade_num = %q", got)
	}
}

func TestCustomLookups(t *testing.T) {
	d := NewDeriverWithLookups(map[string]string{"7": "Custom"}, nil)
	s := Sections{
		Items: Table{
			Columns: []string{"situacao", "marca"},
			Rows:    []Row{{"situacao": "7", "marca": "1030"}},
		},
	}

	d.Derive(&s)

	row := s.Items.Rows[0]
	if got := row.Get(ColDescSituacao); got != "Custom" {
		t.Errorf("desc_situacao = %q", got)
	}
	// Nil brand map keeps the built-in table.
	if got := row.Get(ColNomeMarca); got != "SCHUTZ" {
		t.Errorf("nome_marca = %q", got)
	}
}
