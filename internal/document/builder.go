package document

// TableBuilder accumulates rows and enforces the table shape on Build.
type TableBuilder struct {
	table Table
}

// NewTable starts a table with the given minimum row count.
func NewTable(name string, minRows int, columns ...ColumnSpec) *TableBuilder {
	if minRows < 0 {
		minRows = 0
	}
	return &TableBuilder{table: Table{
		Name:    name,
		Columns: columns,
		Rows:    []Row{},
		MinRows: minRows,
	}}
}

// Col is shorthand for a ColumnSpec.
func Col(key, header string, width int, align Align) ColumnSpec {
	return ColumnSpec{Key: key, Header: header, Width: width, Align: align}
}

// Row appends a data row. Extra values are dropped and missing values are
// blank so the row always matches the column count.
func (b *TableBuilder) Row(values ...string) *TableBuilder {
	b.table.Rows = append(b.table.Rows, b.shape(values, StyleNormal))
	return b
}

// FooterRow appends a totals row below the data rows.
func (b *TableBuilder) FooterRow(values ...string) *TableBuilder {
	b.table.Footer = append(b.table.Footer, b.shape(values, StyleTotal))
	return b
}

// PageBreakAfter forces a page break after the table.
func (b *TableBuilder) PageBreakAfter() *TableBuilder {
	b.table.PageBreakAfter = true
	return b
}

// Build pads the table with filler rows up to MinRows and returns it.
func (b *TableBuilder) Build() Table {
	t := b.table
	rows := make([]Row, len(t.Rows), max(len(t.Rows), t.MinRows))
	copy(rows, t.Rows)
	for len(rows) < t.MinRows {
		filler := b.shape(nil, StyleNormal)
		filler.Filler = true
		rows = append(rows, filler)
	}
	t.Rows = rows
	return t
}

// Block wraps the built table in a Block.
func (b *TableBuilder) Block() Block {
	t := b.Build()
	return Block{Type: BlockTable, Table: &t}
}

func (b *TableBuilder) shape(values []string, style Style) Row {
	cells := make([]Cell, len(b.table.Columns))
	for i := range cells {
		if i < len(values) {
			cells[i] = Cell{Value: values[i]}
		}
	}
	return Row{Cells: cells, Style: style}
}

// TextBlock returns a labelled text block.
func TextBlock(label, value string) Block {
	return Block{Type: BlockText, Text: &Text{Label: label, Value: value}}
}

// StyledText returns a text block with a style tag.
func StyledText(label, value string, style Style) Block {
	return Block{Type: BlockText, Text: &Text{Label: label, Value: value, Style: style}}
}

// Exclusive returns one checkbox per label in the given group with only
// the label at index selected checked. An out-of-range index selects the
// last label, so the group never ends up with no box checked.
func Exclusive(group string, labels []string, selected int) []Block {
	if len(labels) == 0 {
		return nil
	}
	if selected < 0 || selected >= len(labels) {
		selected = len(labels) - 1
	}

	blocks := make([]Block, 0, len(labels))
	for i, label := range labels {
		blocks = append(blocks, Block{
			Type: BlockCheckbox,
			Checkbox: &Checkbox{
				Label:          label,
				Checked:        i == selected,
				ExclusiveGroup: group,
			},
		})
	}
	return blocks
}

// Taxability returns the Taxable/Exempt pair keyed by the taxable flag.
func Taxability(taxable bool) []Block {
	selected := 1
	if taxable {
		selected = 0
	}
	return Exclusive(GroupTaxability, []string{LabelTaxable, LabelExempt}, selected)
}

// Labels and group of the taxability pair.
const (
	GroupTaxability = "taxability"
	LabelTaxable    = "Taxable"
	LabelExempt     = "Exempt"
)
