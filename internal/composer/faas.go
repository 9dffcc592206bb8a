package composer

import (
	"github.com/stwalsh4118/faasdoc/internal/aggregation"
	"github.com/stwalsh4118/faasdoc/internal/document"
	"github.com/stwalsh4118/faasdoc/internal/models"
)

// FAAS section names in template order.
const (
	SectionFaasHeader           = "header"
	SectionFaasOwner            = "owner"
	SectionFaasLocation         = "location"
	SectionFaasBoundaries       = "boundaries"
	SectionLandAppraisal        = "land_appraisal"
	SectionAdjustments          = "market_value_adjustments"
	SectionBuildingDescription  = "building_description"
	SectionFloorAreas           = "floor_areas"
	SectionBuildingAppraisal    = "building_appraisal"
	SectionMachineryAppraisal   = "machinery_appraisal"
	SectionOtherImprovements    = "other_improvements"
	SectionPropertyAssessment   = "property_assessment"
	SectionFaasMemoranda        = "memoranda"
	SectionFaasSignatories      = "signatories"
	SectionSupersededAssessment = "superseded_assessment"
)

// faasTemplate is the Field Appraisal & Assessment Sheet. Page one ends
// with the Other Improvements table.
var faasTemplate = template{
	variant: document.VariantFaas,
	title:   "FIELD APPRAISAL AND ASSESSMENT SHEET",
	subtitle: func(c *composition) string {
		if c.opts.LGUName == "" {
			return c.kindTitle()
		}
		return c.kindTitle() + " - " + c.opts.LGUName
	},
	sections: []sectionSpec{
		{name: SectionFaasHeader, build: faasHeader},
		{name: SectionFaasOwner, title: "Owner", build: func(c *composition) []document.Block {
			return ownerBlocks(c.rec.Owner, c.rec.Administrator)
		}},
		{name: SectionFaasLocation, title: "Property Location", build: func(c *composition) []document.Block {
			return locationBlocks(c.rec.Location)
		}},
		{name: SectionFaasBoundaries, title: "Property Boundaries", build: func(c *composition) []document.Block {
			return boundaryBlocks(c.rec.Boundaries)
		}},
		{name: SectionLandAppraisal, title: "Land Appraisal", build: func(c *composition) []document.Block {
			if l := c.land(); l != nil {
				return []document.Block{c.landAppraisalTable(l)}
			}
			return nil
		}},
		{name: SectionAdjustments, title: "Market Value Adjustments", build: func(c *composition) []document.Block {
			if l := c.land(); l != nil {
				return []document.Block{c.adjustmentTable(l)}
			}
			return nil
		}},
		{name: SectionBuildingDescription, title: "General Description", build: func(c *composition) []document.Block {
			if b := c.building(); b != nil {
				return c.buildingDescriptionBlocks(b)
			}
			return nil
		}},
		{name: SectionFloorAreas, title: "Floor Areas", build: func(c *composition) []document.Block {
			if b := c.building(); b != nil {
				return []document.Block{c.floorTable(b)}
			}
			return nil
		}},
		{name: SectionBuildingAppraisal, title: "Building Appraisal", build: func(c *composition) []document.Block {
			if b := c.building(); b != nil {
				return []document.Block{c.buildingAppraisalTable(b)}
			}
			return nil
		}},
		{name: SectionMachineryAppraisal, title: "Machinery Appraisal", build: func(c *composition) []document.Block {
			if m := c.machinery(); m != nil {
				return c.machineryBlocks(m)
			}
			return nil
		}},
		{name: SectionOtherImprovements, title: "Other Improvements", build: func(c *composition) []document.Block {
			return []document.Block{c.otherImprovementsTable().PageBreakAfter().Block()}
		}},
		{name: SectionPropertyAssessment, title: "Property Assessment", build: faasAssessment},
		{name: SectionFaasMemoranda, title: "Memoranda", build: func(c *composition) []document.Block {
			return []document.Block{document.TextBlock("", c.rec.Memoranda)}
		}},
		{name: SectionFaasSignatories, build: func(c *composition) []document.Block {
			s := c.rec.Signatories
			return []document.Block{
				signature("Appraised/Assessed by", firstNonEmpty(s.AppraisedBy, c.rec.CreatedBy)),
				document.TextBlock("Date", c.fmt.Date(c.rec.CreatedDate)),
				signature("Recommending Approval", s.RecommendedBy),
				signature("Approved by", s.ApprovedBy),
			}
		}},
		{name: SectionSupersededAssessment, title: "Record of Superseded Assessment", build: func(c *composition) []document.Block {
			return []document.Block{c.supersededTable(c.rec.Superseded)}
		}},
	},
}

func faasHeader(c *composition) []document.Block {
	id := c.rec.Identifiers
	return []document.Block{
		document.TextBlock("FAAS No.", id.FaasNo),
		document.TextBlock("Transaction Code", id.TransactionCode),
		document.TextBlock("ARP No.", id.ArpNo),
		document.TextBlock("PIN", id.Pin),
		document.TextBlock("OCT/TCT No.", id.TitleNo),
		document.TextBlock("Survey No.", id.SurveyNo),
		document.TextBlock("Lot No.", id.LotNo),
		document.TextBlock("Block No.", id.BlockNo),
	}
}

func faasAssessment(c *composition) []document.Block {
	blocks := []document.Block{c.propertyAssessmentTable(MinAssessmentRows)}
	blocks = append(blocks, document.Taxability(c.rec.Assessment.Taxable)...)
	blocks = append(blocks,
		document.TextBlock("Effectivity of Assessment", c.fmt.Date(c.rec.EffectivityDate)),
	)
	return blocks
}

// ComposeFaasDocument builds the Field Appraisal & Assessment Sheet.
func (cp *Composer) ComposeFaasDocument(rec models.AssessmentRecord, agg aggregation.Aggregates) document.Document {
	return faasTemplate.compose(&composition{
		rec:  rec,
		agg:  agg,
		fmt:  cp.fmt,
		opts: cp.opts,
	})
}
