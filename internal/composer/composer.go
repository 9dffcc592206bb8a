// Package composer binds canonical assessment records into document trees.
//
// Each variant is a fixed template: an ordered list of sections whose
// builders read the record, the aggregates and the shared formatter.
// A section whose builder returns no blocks is left out, which is how
// kind-specific sections disappear for other property kinds. Composition
// is a pure function of its inputs and never fails.
package composer

import (
	"github.com/stwalsh4118/faasdoc/internal/aggregation"
	"github.com/stwalsh4118/faasdoc/internal/document"
	"github.com/stwalsh4118/faasdoc/internal/format"
	"github.com/stwalsh4118/faasdoc/internal/models"
)

// Minimum row counts of the fixed-size paper forms.
const (
	MinAppraisalRows        = 1
	MinImprovementRows      = 2
	MinAdjustmentRows       = 2
	MinFloorRows            = 2
	MinMaterialRows         = 2
	MinAssessmentRows       = 2
	MinLegacyAssessmentRows = 4
)

// Options configures a Composer.
type Options struct {
	// LGUName is printed under the document title, e.g. "Province of Benguet".
	LGUName string
}

// Composer builds FAAS and Tax Declaration documents. It holds no mutable
// state and may be shared between goroutines.
type Composer struct {
	fmt  format.Formatter
	opts Options
}

// New creates a Composer using the given formatter.
func New(f format.Formatter, opts Options) *Composer {
	return &Composer{fmt: f, opts: opts}
}

// composition carries everything section builders read.
type composition struct {
	rec  models.AssessmentRecord
	agg  aggregation.Aggregates
	fmt  format.Formatter
	opts Options
	decl models.TaxDeclaration
}

// sectionSpec is one slot of a template.
type sectionSpec struct {
	name  string
	title string
	build func(c *composition) []document.Block
}

// template is an ordered list of section slots.
type template struct {
	variant  document.Variant
	title    string
	subtitle func(c *composition) string
	sections []sectionSpec
}

func (t template) compose(c *composition) document.Document {
	doc := document.Document{
		Variant:  t.variant,
		Title:    t.title,
		Sections: make([]document.Section, 0, len(t.sections)),
	}
	if t.subtitle != nil {
		doc.Subtitle = t.subtitle(c)
	}

	for _, spec := range t.sections {
		blocks := spec.build(c)
		if len(blocks) == 0 {
			continue
		}
		doc.Sections = append(doc.Sections, document.Section{
			Name:   spec.name,
			Title:  spec.title,
			Blocks: blocks,
		})
	}

	// A forced break after a table makes the next section open a page.
	for i := 0; i+1 < len(doc.Sections); i++ {
		for _, table := range doc.Sections[i].Tables() {
			if table.PageBreakAfter {
				doc.Sections[i+1].StartsNewPage = true
			}
		}
	}

	return doc
}

func (c *composition) land() *models.LandAppraisal {
	a, _ := c.rec.Appraisal.(*models.LandAppraisal)
	return a
}

func (c *composition) building() *models.BuildingAppraisal {
	a, _ := c.rec.Appraisal.(*models.BuildingAppraisal)
	return a
}

func (c *composition) machinery() *models.MachineryAppraisal {
	a, _ := c.rec.Appraisal.(*models.MachineryAppraisal)
	return a
}

// kindTitle is the property kind in capitals as printed in headings.
func (c *composition) kindTitle() string {
	switch c.rec.Appraisal.(type) {
	case *models.LandAppraisal:
		return "LAND"
	case *models.BuildingAppraisal:
		return "BUILDING"
	case *models.MachineryAppraisal:
		return "MACHINERY"
	default:
		return ""
	}
}

// firstNonEmpty returns the first argument that is not empty.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
