package xmlflat

import (
	"errors"
	"strings"
	"testing"

	"github.com/ordexa/pedidotrack/pkg/pedidos/internalerr"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<pedidos>
  <cabecalho>
    <acesso>
      <numero>4501644489</numero>
      <fornecedor>5023016</fornecedor>
      <comprador>77</comprador>
      <nome_comprador>MARIA S.</nome_comprador>
      <condicao_pagto>Z030</condicao_pagto>
      <desc_condicao_pagto>30 DIAS</desc_condicao_pagto>
      <periodo_entrega>TO_DATE('27112025','DDMMYYYY')</periodo_entrega>
      <dtemissao>TO_DATE('04072025','DDMMYYYY')</dtemissao>
      <marca>1025</marca>
    </acesso>
  </cabecalho>
  <itens>
    <acesso>
      <numero>4501644489</numero>
      <material>SKU-001</material>
      <descricao> BOLSA TOTE | PRETO </descricao>
      <linha>BOLSAS</linha>
      <categoria>ACESSORIOS</categoria>
      <colecao>V26</colecao>
      <lancamento>L1</lancamento>
      <grade>G01</grade>
      <quantidade>10,5</quantidade>
      <preco>199,90</preco>
      <situacao>1</situacao>
    </acesso>
    <acesso>
      <numero>4501644489</numero>
      <material>SKU-002</material>
      <descricao>BOLSA TOTE</descricao>
      <quantidade>abc</quantidade>
      <situacao>9</situacao>
      <marca>9999</marca>
    </acesso>
  </itens>
  <grade>
    <acesso>
      <numero>4501644489</numero>
      <material>SKU-001</material>
      <tamanho>M</tamanho>
      <quantidade>4,0</quantidade>
    </acesso>
  </grade>
  <volumes>
    <acesso>
      <numero>4501644489</numero>
      <volume>V1</volume>
      <quantidade>2</quantidade>
    </acesso>
  </volumes>
</pedidos>`

func TestParseSampleDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(doc.Header) != 1 || len(doc.Items) != 2 || len(doc.Grades) != 1 || len(doc.Volumes) != 1 {
		t.Fatalf("section counts = %d/%d/%d/%d", len(doc.Header), len(doc.Items), len(doc.Grades), len(doc.Volumes))
	}

	if got := doc.Header[0]["marca"]; got != "1025" {
		t.Errorf("header marca = %q", got)
	}
	// Text content is trimmed.
	if got := doc.Items[0]["descricao"]; got != "BOLSA TOTE | PRETO" {
		t.Errorf("descricao = %q, want trimmed", got)
	}
}

func TestParseMissingSections(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<pedidos><itens><acesso><numero>1</numero></acesso></itens></pedidos>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Header) != 0 || len(doc.Grades) != 0 || len(doc.Volumes) != 0 {
		t.Error("absent sections should be empty, not an error")
	}
	if len(doc.Items) != 1 {
		t.Errorf("items = %d", len(doc.Items))
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader(`<pedidos><itens>`))
	if !errors.Is(err, internalerr.ErrXMLParse) {
		t.Errorf("error = %v, want ErrXMLParse", err)
	}
}

func TestParseLatin1Charset(t *testing.T) {
	// 0xC7 is 'Ç' in ISO-8859-1; the decoder must honor the declared label.
	raw := `<?xml version="1.0" encoding="ISO-8859-1"?><pedidos><itens><acesso><descricao>CAL` + "\xc7" + `ADO</descricao></acesso></itens></pedidos>`

	doc, err := Parse(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := doc.Items[0]["descricao"]; got != "CALÇADO" {
		t.Errorf("descricao = %q", got)
	}
}

func TestFlattenSample(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}

	s := Flatten(doc)
	if len(s.Items.Rows) != 2 {
		t.Fatalf("item rows = %d", len(s.Items.Rows))
	}
	if !s.Items.HasColumn("material") || !s.Items.HasColumn("situacao") {
		t.Errorf("item columns missing: %v", s.Items.Columns)
	}
	// Second item's extra tag becomes a column for the whole table.
	if !s.Items.HasColumn("marca") {
		t.Errorf("union of tags expected, got %v", s.Items.Columns)
	}
	if got := s.Grades.Rows[0].Get("tamanho"); got != "M" {
		t.Errorf("grade tamanho = %q", got)
	}
}

func TestSectionsAppendStacksInOrder(t *testing.T) {
	first := Sections{Items: Table{Columns: []string{"numero"}, Rows: []Row{{"numero": "1"}}}}
	second := Sections{Items: Table{Columns: []string{"numero", "extra"}, Rows: []Row{{"numero": "2", "extra": "x"}}}}

	first.Append(second)

	if len(first.Items.Rows) != 2 {
		t.Fatalf("rows = %d", len(first.Items.Rows))
	}
	if first.Items.Rows[0].Get("numero") != "1" || first.Items.Rows[1].Get("numero") != "2" {
		t.Error("upload order not preserved")
	}
	if !first.Items.HasColumn("extra") {
		t.Errorf("columns not unioned: %v", first.Items.Columns)
	}
}
