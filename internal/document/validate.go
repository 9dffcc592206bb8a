package document

import (
	"errors"
	"fmt"
)

// ErrInvalidDocument is wrapped by every violation Validate reports.
var ErrInvalidDocument = errors.New("invalid document")

// Validate checks the layout invariants a renderer relies on:
// tables meet their minimum row count and column width, exclusive checkbox
// groups have exactly one checked box, and every forced page break is
// followed by a section that starts a new page.
// All violations are joined into one error.
func Validate(d Document) error {
	var errs []error
	groups := make(map[string]int)
	groupOrder := make([]string, 0)

	for i, s := range d.Sections {
		breakAfter := false
		for j, b := range s.Blocks {
			if err := validateBlock(b); err != nil {
				errs = append(errs, fmt.Errorf("%w: section %q block %d: %v", ErrInvalidDocument, s.Name, j, err))
				continue
			}
			switch b.Type {
			case BlockTable:
				errs = append(errs, validateTable(s.Name, *b.Table)...)
				breakAfter = breakAfter || b.Table.PageBreakAfter
			case BlockCheckbox:
				if g := b.Checkbox.ExclusiveGroup; g != "" {
					if _, seen := groups[g]; !seen {
						groups[g] = 0
						groupOrder = append(groupOrder, g)
					}
					if b.Checkbox.Checked {
						groups[g]++
					}
				}
			}
		}
		if breakAfter && i+1 < len(d.Sections) && !d.Sections[i+1].StartsNewPage {
			errs = append(errs, fmt.Errorf("%w: section %q follows a page break but does not start a new page",
				ErrInvalidDocument, d.Sections[i+1].Name))
		}
	}

	for _, g := range groupOrder {
		if n := groups[g]; n != 1 {
			errs = append(errs, fmt.Errorf("%w: checkbox group %q has %d checked boxes, want 1", ErrInvalidDocument, g, n))
		}
	}

	return errors.Join(errs...)
}

func validateBlock(b Block) error {
	set := 0
	if b.Text != nil {
		set++
	}
	if b.Table != nil {
		set++
	}
	if b.Checkbox != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("block must hold exactly one payload, has %d", set)
	}

	switch {
	case b.Type == BlockText && b.Text != nil,
		b.Type == BlockTable && b.Table != nil,
		b.Type == BlockCheckbox && b.Checkbox != nil:
		return nil
	default:
		return fmt.Errorf("block type %q does not match its payload", b.Type)
	}
}

func validateTable(section string, t Table) []error {
	var errs []error
	if len(t.Rows) < t.MinRows {
		errs = append(errs, fmt.Errorf("%w: table %q in section %q has %d rows, want at least %d",
			ErrInvalidDocument, t.Name, section, len(t.Rows), t.MinRows))
	}
	check := func(kind string, rows []Row) {
		for i, r := range rows {
			if len(r.Cells) != len(t.Columns) {
				errs = append(errs, fmt.Errorf("%w: table %q %s row %d has %d cells, want %d",
					ErrInvalidDocument, t.Name, kind, i, len(r.Cells), len(t.Columns)))
			}
		}
	}
	check("data", t.Rows)
	check("footer", t.Footer)
	return errs
}
