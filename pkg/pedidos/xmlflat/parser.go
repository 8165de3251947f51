// Package xmlflat turns vendor purchase-order XML exports into flat tables.
// A document carries up to four repeated-row sections (header, items, size
// grades, shipping volumes), each wrapping "acesso" leaf nodes whose child
// elements map one-to-one onto columns.
package xmlflat

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/ordexa/pedidotrack/pkg/pedidos/internalerr"
)

// AccessNode is one leaf row: child element name → trimmed text content.
type AccessNode map[string]string

// Document is a parsed vendor export. Sections the document does not carry
// are empty slices, never an error.
type Document struct {
	Header  []AccessNode
	Items   []AccessNode
	Grades  []AccessNode
	Volumes []AccessNode
}

type xmlDocument struct {
	Header  xmlSection `xml:"cabecalho"`
	Items   xmlSection `xml:"itens"`
	Grades  xmlSection `xml:"grade"`
	Volumes xmlSection `xml:"volumes"`
}

type xmlSection struct {
	Access []xmlAccess `xml:"acesso"`
}

type xmlAccess struct {
	Fields []xmlField `xml:",any"`
}

type xmlField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// Parse decodes a single vendor document. Exports may arrive in legacy
// encodings (ISO-8859-1 is common), so the decoder resolves the declared
// charset label. A malformed document returns an empty Document wrapped in
// internalerr.ErrXMLParse; callers report it per file and keep going.
func Parse(r io.Reader) (Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var raw xmlDocument
	if err := dec.Decode(&raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", internalerr.ErrXMLParse, err)
	}

	return Document{
		Header:  toNodes(raw.Header),
		Items:   toNodes(raw.Items),
		Grades:  toNodes(raw.Grades),
		Volumes: toNodes(raw.Volumes),
	}, nil
}

func toNodes(sec xmlSection) []AccessNode {
	nodes := make([]AccessNode, 0, len(sec.Access))
	for _, acc := range sec.Access {
		node := make(AccessNode, len(acc.Fields))
		for _, f := range acc.Fields {
			node[f.XMLName.Local] = strings.TrimSpace(f.Value)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
