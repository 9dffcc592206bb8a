package composer

import (
	"strconv"
	"strings"

	"github.com/stwalsh4118/faasdoc/internal/aggregation"
	"github.com/stwalsh4118/faasdoc/internal/document"
	"github.com/stwalsh4118/faasdoc/internal/models"
)

// Tax Declaration section names in template order.
const (
	SectionTDHeader       = "header"
	SectionTDOwner        = "owner"
	SectionTDLocation     = "location"
	SectionTDTitle        = "title"
	SectionTDBoundaries   = "boundaries"
	SectionTDPropertyKind = "property_kind"
	SectionTDAssessment   = "assessment"
	SectionTDTaxability   = "taxability"
	SectionTDApproval     = "approval"
	SectionTDCancellation = "cancellation"
	SectionTDMemoranda    = "memoranda"
)

// TableTDAssessment is the assessment table of the Tax Declaration.
const TableTDAssessment = "td_assessment"

// propertyKindLabels are the kind checkboxes printed on the declaration.
var propertyKindLabels = []string{"Land", "Building", "Machinery", "Others"}

// taxDeclarationTemplate is the Tax Declaration of Real Property. It flows
// continuously with no forced page break.
var taxDeclarationTemplate = template{
	variant: document.VariantTaxDeclaration,
	title:   "TAX DECLARATION OF REAL PROPERTY",
	subtitle: func(c *composition) string {
		return c.opts.LGUName
	},
	sections: []sectionSpec{
		{name: SectionTDHeader, build: func(c *composition) []document.Block {
			return []document.Block{
				document.TextBlock("TD No.", firstNonEmpty(c.decl.TdNo, c.rec.Identifiers.ArpNo)),
				document.TextBlock("Property Identification No.", c.rec.Identifiers.Pin),
			}
		}},
		{name: SectionTDOwner, title: "Owner", build: tdOwner},
		{name: SectionTDLocation, title: "Location of Property", build: func(c *composition) []document.Block {
			return locationBlocks(c.rec.Location)
		}},
		{name: SectionTDTitle, build: tdTitle},
		{name: SectionTDBoundaries, title: "Boundaries", build: func(c *composition) []document.Block {
			b := c.rec.Boundaries
			return boundaryBlocks(models.Boundaries{
				North: firstNonEmpty(c.decl.North, b.North),
				South: firstNonEmpty(c.decl.South, b.South),
				East:  firstNonEmpty(c.decl.East, b.East),
				West:  firstNonEmpty(c.decl.West, b.West),
			})
		}},
		{name: SectionTDPropertyKind, title: "Kind of Property Assessed", build: tdPropertyKind},
		{name: SectionTDAssessment, build: tdAssessment},
		{name: SectionTDTaxability, build: tdTaxability},
		{name: SectionTDApproval, build: func(c *composition) []document.Block {
			return []document.Block{
				signature("Approved by", firstNonEmpty(c.decl.ApprovedBy, c.rec.Signatories.ApprovedBy)),
				document.StyledText("", c.decl.ApprovedTitle, document.StyleSmall),
				document.TextBlock("Date", c.fmt.Date(c.rec.CreatedDate)),
			}
		}},
		{name: SectionTDCancellation, build: tdCancellation},
		{name: SectionTDMemoranda, title: "Memoranda", build: func(c *composition) []document.Block {
			return []document.Block{document.TextBlock("", firstNonEmpty(c.decl.Memoranda, c.rec.Memoranda))}
		}},
	},
}

func tdOwner(c *composition) []document.Block {
	owner, admin, d := c.rec.Owner, c.rec.Administrator, c.decl
	return []document.Block{
		document.TextBlock("Owner", firstNonEmpty(d.OwnerName, owner.Name)),
		document.TextBlock("TIN", firstNonEmpty(d.OwnerTin, owner.Tin)),
		document.TextBlock("Address", firstNonEmpty(d.OwnerAddress, owner.Address)),
		document.TextBlock("Tel. No.", d.OwnerTel),
		document.TextBlock("Administrator/Beneficial User", firstNonEmpty(d.AdminName, admin.Name)),
		document.TextBlock("TIN", firstNonEmpty(d.AdminTin, admin.Tin)),
		document.TextBlock("Address", firstNonEmpty(d.AdminAddress, admin.Address)),
		document.TextBlock("Tel. No.", d.AdminTel),
	}
}

func tdTitle(c *composition) []document.Block {
	id, d := c.rec.Identifiers, c.decl
	return []document.Block{
		document.TextBlock("OCT/TCT/CLOA No.", firstNonEmpty(d.OctTctCloaNo, id.TitleNo)),
		document.TextBlock("Dated", c.fmt.Date(d.OctDate)),
		document.TextBlock("CCT", d.CctNo),
		document.TextBlock("Survey No.", firstNonEmpty(d.SurveyNo, id.SurveyNo)),
		document.TextBlock("Lot No.", firstNonEmpty(d.LotNo, id.LotNo)),
		document.TextBlock("Blk No.", firstNonEmpty(d.BlockNo, id.BlockNo)),
	}
}

// tdPropertyKind checks exactly one kind box and adds the description
// lines of that kind only.
func tdPropertyKind(c *composition) []document.Block {
	selected := len(propertyKindLabels) - 1
	for i, label := range propertyKindLabels {
		if label == string(c.rec.Kind) {
			selected = i
		}
	}
	blocks := document.Exclusive(GroupPropertyKind, propertyKindLabels, selected)

	switch a := c.rec.Appraisal.(type) {
	case *models.LandAppraisal:
		blocks = append(blocks, document.TextBlock("Classification", joinNonEmpty(" / ", a.Classification, a.Subclassification)))
	case *models.BuildingAppraisal:
		blocks = append(blocks,
			document.TextBlock("No. of Storeys", a.Storeys),
			document.TextBlock("Brief Description", joinNonEmpty(", ", a.BuildingKind, a.StructuralType)),
		)
	case *models.MachineryAppraisal:
		blocks = append(blocks,
			document.TextBlock("Brief Description", joinNonEmpty(", ", a.Type, a.BrandModel)),
			document.TextBlock("Capacity/HP", a.Capacity),
		)
	}
	return blocks
}

func tdAssessment(c *composition) []document.Block {
	var classification, area string
	switch a := c.rec.Appraisal.(type) {
	case *models.LandAppraisal:
		classification, area = a.Classification, c.fmt.Area(a.Area)
	case *models.BuildingAppraisal:
		classification, area = a.BuildingKind, c.fmt.Area(c.agg.TotalFloorArea)
	case *models.MachineryAppraisal:
		classification = a.Type
	}

	t := document.NewTable(TableTDAssessment, MinLegacyAssessmentRows,
		document.Col("classification", "Classification", 20, document.AlignLeft),
		document.Col("area", "Area", 12, document.AlignRight),
		document.Col(ColMarketValue, "Market Value", 18, document.AlignRight),
		document.Col("actual_use", "Actual Use", 18, document.AlignLeft),
		document.Col("assessment_level", "Assessment Level", 14, document.AlignRight),
		document.Col("assessed_value", "Assessed Value", 18, document.AlignRight),
	)
	t.Row(
		classification,
		area,
		c.fmt.Money(c.agg.FinalMarketValue),
		c.rec.Assessment.ActualUse,
		c.fmt.Percent(c.rec.Assessment.AssessmentLevel),
		c.fmt.Money(c.agg.AssessedValue),
	)
	t.FooterRow("Total", "", c.fmt.Total(c.agg.FinalMarketValue), "", "", c.fmt.Total(c.agg.AssessedValue))

	return []document.Block{
		t.Block(),
		document.StyledText("Total Assessed Value", c.fmt.AmountInWords(c.agg.AssessedValue), document.StyleBold),
	}
}

func tdTaxability(c *composition) []document.Block {
	var quarter, year string
	if c.decl.EffectivityQuarter > 0 {
		quarter = strconv.Itoa(c.decl.EffectivityQuarter)
	} else {
		quarter = c.fmt.Quarter(c.rec.EffectivityDate)
	}
	if c.decl.EffectivityYear > 0 {
		year = strconv.Itoa(c.decl.EffectivityYear)
	} else {
		year = c.fmt.Year(c.rec.EffectivityDate)
	}

	blocks := document.Taxability(c.rec.Assessment.Taxable)
	return append(blocks,
		document.TextBlock("Effectivity of Assessment/Reassessment Qtr.", quarter),
		document.TextBlock("Yr.", year),
	)
}

// tdCancellation names the declaration this one cancels. The form's
// values win; otherwise the first superseded record is used.
func tdCancellation(c *composition) []document.Block {
	var prev models.SupersededEntry
	if len(c.rec.Superseded) > 0 {
		prev = c.rec.Superseded[0]
	}

	previousAV := c.decl.PreviousAssessedValue
	if previousAV == 0 {
		previousAV = prev.AssessedValue
	}

	return []document.Block{
		document.TextBlock("This declaration cancels TD No.", firstNonEmpty(c.decl.CancelsTdNo, prev.TdNo, prev.ArpNo)),
		document.TextBlock("Owner", firstNonEmpty(c.decl.PreviousOwner, prev.OwnerName)),
		document.TextBlock("Previous A.V.", c.fmt.Money(previousAV)),
	}
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

// ComposeTaxDeclarationDocument builds the Tax Declaration. Non-empty
// declaration fields override the values taken from the FAAS record.
func (cp *Composer) ComposeTaxDeclarationDocument(rec models.AssessmentRecord, agg aggregation.Aggregates, decl models.TaxDeclaration) document.Document {
	return taxDeclarationTemplate.compose(&composition{
		rec:  rec,
		agg:  agg,
		fmt:  cp.fmt,
		opts: cp.opts,
		decl: decl,
	})
}
