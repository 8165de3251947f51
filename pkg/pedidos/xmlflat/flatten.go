package xmlflat

import "sort"

// Sections holds the four per-section tables flattened out of one or more
// documents. Tables from multiple files stack in upload order via Append.
type Sections struct {
	Header  Table
	Items   Table
	Grades  Table
	Volumes Table
}

// Flatten converts a parsed document into independent section tables.
// Columns are the union of tags across the section's access nodes, in
// sorted order so repeated runs over the same export are deterministic.
// The export layout itself is imposed later by projection.
func Flatten(doc Document) Sections {
	return Sections{
		Header:  flattenNodes(doc.Header),
		Items:   flattenNodes(doc.Items),
		Grades:  flattenNodes(doc.Grades),
		Volumes: flattenNodes(doc.Volumes),
	}
}

// Append stacks another document's sections onto this one.
func (s *Sections) Append(other Sections) {
	s.Header.Append(other.Header)
	s.Items.Append(other.Items)
	s.Grades.Append(other.Grades)
	s.Volumes.Append(other.Volumes)
}

func flattenNodes(nodes []AccessNode) Table {
	var t Table
	t.Rows = make([]Row, 0, len(nodes))

	for _, node := range nodes {
		row := make(Row, len(node))
		for tag, value := range node {
			row[tag] = value
		}
		t.Rows = append(t.Rows, row)
	}

	seen := make(map[string]struct{})
	for _, node := range nodes {
		for tag := range node {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			t.Columns = append(t.Columns, tag)
		}
	}
	sort.Strings(t.Columns)
	return t
}
