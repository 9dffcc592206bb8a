// Package document defines the abstract document tree handed to the
// rendering backend: ordered sections of text, table and checkbox blocks.
//
// A tree is built once by the composer and never modified afterwards.
// The renderer owns widths, fonts and borders; the tree only fixes
// section order, minimum row counts, checkbox groups and page breaks.
package document

// Variant identifies which paper form a document reproduces.
type Variant string

// Supported variants.
const (
	VariantFaas           Variant = "faas"
	VariantTaxDeclaration Variant = "tax_declaration"
)

// ParseVariant accepts the variant names and their short aliases.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "faas", "FAAS":
		return VariantFaas, true
	case "tax_declaration", "td", "TD", "tax-declaration":
		return VariantTaxDeclaration, true
	default:
		return "", false
	}
}

// Document is the root of a composed tree.
type Document struct {
	Variant  Variant   `json:"variant" yaml:"variant"`
	Title    string    `json:"title" yaml:"title"`
	Subtitle string    `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is a named, ordered group of blocks.
type Section struct {
	Name          string  `json:"name" yaml:"name"`
	Title         string  `json:"title,omitempty" yaml:"title,omitempty"`
	StartsNewPage bool    `json:"starts_new_page" yaml:"starts_new_page"`
	Blocks        []Block `json:"blocks" yaml:"blocks"`
}

// Section returns the section with the given name and whether it exists.
func (d Document) Section(name string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// SectionNames lists section names in document order.
func (d Document) SectionNames() []string {
	names := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		names = append(names, s.Name)
	}
	return names
}

// Tables returns every table in the document in order.
func (d Document) Tables() []Table {
	var tables []Table
	for _, s := range d.Sections {
		tables = append(tables, s.Tables()...)
	}
	return tables
}

// Table returns the first table with the given name and whether it exists.
func (d Document) Table(name string) (Table, bool) {
	for _, t := range d.Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Checkboxes returns every checkbox in the document in order.
func (d Document) Checkboxes() []Checkbox {
	var boxes []Checkbox
	for _, s := range d.Sections {
		for _, b := range s.Blocks {
			if b.Checkbox != nil {
				boxes = append(boxes, *b.Checkbox)
			}
		}
	}
	return boxes
}

// Tables returns the tables of a section in order.
func (s Section) Tables() []Table {
	var tables []Table
	for _, b := range s.Blocks {
		if b.Table != nil {
			tables = append(tables, *b.Table)
		}
	}
	return tables
}

// BlockType discriminates Block.
type BlockType string

// Block types.
const (
	BlockText     BlockType = "text"
	BlockTable    BlockType = "table"
	BlockCheckbox BlockType = "checkbox"
)

// Block is exactly one of Text, Table or Checkbox, as named by Type.
type Block struct {
	Type     BlockType `json:"type" yaml:"type"`
	Text     *Text     `json:"text,omitempty" yaml:"text,omitempty"`
	Table    *Table    `json:"table,omitempty" yaml:"table,omitempty"`
	Checkbox *Checkbox `json:"checkbox,omitempty" yaml:"checkbox,omitempty"`
}

// Style tags tell the renderer how to typeset a text block or row.
type Style string

// Style tags.
const (
	StyleNormal    Style = ""
	StyleHeading   Style = "heading"
	StyleBold      Style = "bold"
	StyleSmall     Style = "small"
	StyleSignature Style = "signature"
	StyleTotal     Style = "total"
)

// Text is narrative text, optionally introduced by a label.
type Text struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Value string `json:"value" yaml:"value"`
	Style Style  `json:"style,omitempty" yaml:"style,omitempty"`
}

// Align is the horizontal alignment of a column.
type Align string

// Alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ColumnSpec describes one table column. Width is a relative weight.
type ColumnSpec struct {
	Key    string `json:"key" yaml:"key"`
	Header string `json:"header" yaml:"header"`
	Width  int    `json:"width" yaml:"width"`
	Align  Align  `json:"align" yaml:"align"`
}

// Cell is one table cell.
type Cell struct {
	Value string `json:"value" yaml:"value"`
}

// Row is one table row. Filler rows exist only to reach MinRows.
type Row struct {
	Cells  []Cell `json:"cells" yaml:"cells"`
	Filler bool   `json:"filler,omitempty" yaml:"filler,omitempty"`
	Style  Style  `json:"style,omitempty" yaml:"style,omitempty"`
}

// Value returns the cell value at index i, or "" when out of range.
func (r Row) Value(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i].Value
}

// Table is a fixed-shape table. Rows always holds at least MinRows rows;
// Footer rows (totals) come after and do not count toward MinRows.
type Table struct {
	Name           string       `json:"name" yaml:"name"`
	Columns        []ColumnSpec `json:"columns" yaml:"columns"`
	Rows           []Row        `json:"rows" yaml:"rows"`
	Footer         []Row        `json:"footer,omitempty" yaml:"footer,omitempty"`
	MinRows        int          `json:"min_rows" yaml:"min_rows"`
	PageBreakAfter bool         `json:"page_break_after" yaml:"page_break_after"`
}

// ColumnIndex returns the index of the column with the given key, or -1.
func (t Table) ColumnIndex(key string) int {
	for i, c := range t.Columns {
		if c.Key == key {
			return i
		}
	}
	return -1
}

// DataRows returns the rows that are not filler.
func (t Table) DataRows() []Row {
	rows := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if !r.Filler {
			rows = append(rows, r)
		}
	}
	return rows
}

// Checkbox is a labelled box. Boxes sharing an ExclusiveGroup have exactly
// one checked member.
type Checkbox struct {
	Label          string `json:"label" yaml:"label"`
	Checked        bool   `json:"checked" yaml:"checked"`
	ExclusiveGroup string `json:"exclusive_group,omitempty" yaml:"exclusive_group,omitempty"`
}
