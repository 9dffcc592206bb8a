package composer

import (
	"github.com/stwalsh4118/faasdoc/internal/aggregation"
	"github.com/stwalsh4118/faasdoc/internal/document"
	"github.com/stwalsh4118/faasdoc/internal/models"
)

// Table names. Renderers key per-table styling on them.
const (
	TableLandAppraisal      = "land_appraisal"
	TableAdjustments        = "market_value_adjustments"
	TableOtherImprovements  = "other_improvements"
	TableFloors             = "floor_areas"
	TableMaterials          = "structural_materials"
	TableBuildingAppraisal  = "building_appraisal"
	TableMachineryAppraisal = "machinery_appraisal"
	TablePropertyAssessment = "property_assessment"
	TableSuperseded         = "superseded_assessment"
)

// Column keys of the adjustment table.
const (
	ColBaseMarketValue = "base_market_value"
	ColAdjustmentLabel = "adjustment_factor"
	ColAdjustmentValue = "adjustment_value"
	ColMarketValue     = "market_value"
)

// Exclusive group of the property kind checkboxes on the Tax Declaration.
const GroupPropertyKind = "property_kind"

func ownerBlocks(owner, admin models.Party) []document.Block {
	return []document.Block{
		document.TextBlock("Owner", owner.Name),
		document.TextBlock("Address", owner.Address),
		document.TextBlock("TIN", owner.Tin),
		document.TextBlock("Administrator/Beneficial User", admin.Name),
		document.TextBlock("Address", admin.Address),
	}
}

func locationBlocks(l models.Location) []document.Block {
	return []document.Block{
		document.TextBlock("Barangay", l.Barangay),
		document.TextBlock("Municipality/City", l.Municipality),
		document.TextBlock("Province", l.Province),
		document.TextBlock("LG Code", l.LgCode),
	}
}

func boundaryBlocks(b models.Boundaries) []document.Block {
	return []document.Block{
		document.TextBlock("North", b.North),
		document.TextBlock("South", b.South),
		document.TextBlock("East", b.East),
		document.TextBlock("West", b.West),
	}
}

// landAppraisalTable always carries one row, blank when the land section
// of the source record is missing.
func (c *composition) landAppraisalTable(l *models.LandAppraisal) document.Block {
	return document.NewTable(TableLandAppraisal, MinAppraisalRows,
		document.Col("classification", "Classification", 20, document.AlignLeft),
		document.Col("subclassification", "Sub-Class", 20, document.AlignLeft),
		document.Col("area", "Area (sq.m.)", 20, document.AlignRight),
		document.Col("unit_value", "Unit Value", 20, document.AlignRight),
		document.Col(ColBaseMarketValue, "Base Market Value", 20, document.AlignRight),
	).Row(
		l.Classification,
		l.Subclassification,
		c.fmt.Area(l.Area),
		c.fmt.Money(l.UnitValue),
		c.fmt.Money(l.BaseMarketValue),
	).Block()
}

// adjustmentTable reproduces the form's carry-forward convention: the
// base and market value columns are filled on the first row only. With no
// adjustments the first row still carries them.
func (c *composition) adjustmentTable(l *models.LandAppraisal) document.Block {
	b := document.NewTable(TableAdjustments, MinAdjustmentRows,
		document.Col(ColBaseMarketValue, "Base Market Value", 25, document.AlignRight),
		document.Col(ColAdjustmentLabel, "Adjustment Factors", 30, document.AlignLeft),
		document.Col(ColAdjustmentValue, "Adjustment", 20, document.AlignRight),
		document.Col(ColMarketValue, "Market Value", 25, document.AlignRight),
	)

	base := c.fmt.Money(l.BaseMarketValue)
	market := c.fmt.Money(c.agg.FinalMarketValue)
	if len(l.Adjustments) == 0 {
		b.Row(base, "", "", market)
		return b.Block()
	}

	for i, adj := range l.Adjustments {
		if i == 0 {
			b.Row(base, adj.FactorLabel, c.fmt.Money(adj.AdjustmentValue), market)
			continue
		}
		b.Row("", adj.FactorLabel, c.fmt.Money(adj.AdjustmentValue), "")
	}
	return b.Block()
}

// itemsTable lists improvements or additional items with a totals footer.
func (c *composition) itemsTable(name, itemHeader string, lines []models.ItemLine, total float64) *document.TableBuilder {
	b := document.NewTable(name, MinImprovementRows,
		document.Col("name", itemHeader, 40, document.AlignLeft),
		document.Col("quantity", "Quantity", 15, document.AlignRight),
		document.Col("unit_value", "Unit Value", 20, document.AlignRight),
		document.Col("line_total", "Total", 25, document.AlignRight),
	)
	for _, line := range lines {
		b.Row(line.Name, c.fmt.Quantity(line.Quantity), c.fmt.Money(line.UnitValue), c.fmt.Money(line.LineTotal()))
	}
	b.FooterRow("Total", "", "", c.fmt.Total(total))
	return b
}

// otherImprovementsTable is kind-neutral so that every FAAS has it: land
// improvements, building additional items, or only filler for machinery.
func (c *composition) otherImprovementsTable() *document.TableBuilder {
	switch a := c.rec.Appraisal.(type) {
	case *models.LandAppraisal:
		return c.itemsTable(TableOtherImprovements, "Kind", a.Improvements, c.agg.ImprovementsTotal)
	case *models.BuildingAppraisal:
		return c.itemsTable(TableOtherImprovements, "Additional Item", a.AdditionalItems, c.agg.AdditionalsTotal)
	default:
		return c.itemsTable(TableOtherImprovements, "Kind", nil, 0)
	}
}

func (c *composition) buildingDescriptionBlocks(b *models.BuildingAppraisal) []document.Block {
	blocks := []document.Block{
		document.TextBlock("Kind of Building", b.BuildingKind),
		document.TextBlock("Structural Type", b.StructuralType),
		document.TextBlock("No. of Storeys", b.Storeys),
		document.TextBlock("Building Permit No.", b.PermitNo),
		document.TextBlock("Date Constructed", c.fmt.Date(b.DateConstructed)),
	}

	materials := document.NewTable(TableMaterials, MinMaterialRows,
		document.Col("part", "Part", 40, document.AlignLeft),
		document.Col("material", "Material", 60, document.AlignLeft),
	)
	for _, m := range b.Materials {
		materials.Row(m.Part, m.Material)
	}
	return append(blocks, materials.Block())
}

func (c *composition) floorTable(b *models.BuildingAppraisal) document.Block {
	t := document.NewTable(TableFloors, MinFloorRows,
		document.Col("floor_no", "Floor", 50, document.AlignLeft),
		document.Col("area", "Area (sq.m.)", 50, document.AlignRight),
	)
	for _, f := range b.Floors {
		t.Row(f.FloorNo, c.fmt.Area(f.Area))
	}
	t.FooterRow("Total Floor Area", c.fmt.Total(c.agg.TotalFloorArea))
	return t.Block()
}

func (c *composition) buildingAppraisalTable(b *models.BuildingAppraisal) document.Block {
	t := document.NewTable(TableBuildingAppraisal, 0,
		document.Col("item", "Item", 60, document.AlignLeft),
		document.Col("amount", "Amount", 40, document.AlignRight),
	)
	t.Row("Unit Construction Cost", c.fmt.Money(b.UnitCost))
	t.Row("Total Floor Area (sq.m.)", c.fmt.Area(c.agg.TotalFloorArea))
	t.Row("Cost of Additional Items", c.fmt.Money(c.agg.AdditionalsTotal))
	t.Row("Depreciation Rate", c.fmt.Percent(b.DepreciationRate))
	t.Row("Depreciation", c.fmt.Money(c.agg.DepreciationAmount))
	t.FooterRow("Market Value", c.fmt.Total(c.agg.FinalMarketValue))
	return t.Block()
}

func (c *composition) machineryBlocks(m *models.MachineryAppraisal) []document.Block {
	t := document.NewTable(TableMachineryAppraisal, 0,
		document.Col("item", "Item", 60, document.AlignLeft),
		document.Col("amount", "Amount", 40, document.AlignRight),
	)
	t.Row("Original Cost", c.fmt.Money(m.OriginalCost))
	t.Row("Conversion Factor", c.fmt.Quantity(m.ConversionFactor))
	t.Row("Replacement Cost New (RCN)", c.fmt.Money(aggregation.MachineryRCN(m)))
	t.Row("Years Used", c.fmt.Quantity(m.YearsUsed))
	t.Row("Depreciation Rate", c.fmt.Percent(m.DepreciationRate))
	t.Row("Depreciation", c.fmt.Money(c.agg.DepreciationAmount))
	t.FooterRow("Market Value", c.fmt.Total(c.agg.FinalMarketValue))

	return []document.Block{
		document.TextBlock("Kind of Machinery", m.Type),
		document.TextBlock("Brand & Model", m.BrandModel),
		document.TextBlock("Capacity/HP", m.Capacity),
		document.TextBlock("Condition", m.Condition),
		t.Block(),
	}
}

// assessmentRow is the single assessment line shared by both variants.
func (c *composition) assessmentRow() []string {
	return []string{
		string(c.rec.Kind),
		c.rec.Assessment.ActualUse,
		c.fmt.Money(c.agg.FinalMarketValue),
		c.fmt.Percent(c.rec.Assessment.AssessmentLevel),
		c.fmt.Money(c.agg.AssessedValue),
	}
}

func (c *composition) propertyAssessmentTable(minRows int) document.Block {
	t := document.NewTable(TablePropertyAssessment, minRows,
		document.Col("kind", "Kind", 15, document.AlignLeft),
		document.Col("actual_use", "Actual Use", 25, document.AlignLeft),
		document.Col(ColMarketValue, "Market Value", 20, document.AlignRight),
		document.Col("assessment_level", "Assessment Level", 15, document.AlignRight),
		document.Col("assessed_value", "Assessed Value", 25, document.AlignRight),
	)
	t.Row(c.assessmentRow()...)
	t.FooterRow("Total", "", c.fmt.Total(c.agg.FinalMarketValue), "", c.fmt.Total(c.agg.AssessedValue))
	return t.Block()
}

func (c *composition) supersededTable(entries []models.SupersededEntry) document.Block {
	t := document.NewTable(TableSuperseded, MinLegacyAssessmentRows,
		document.Col("td_no", "TD/ARP No.", 12, document.AlignLeft),
		document.Col("pin", "PIN", 14, document.AlignLeft),
		document.Col("owner", "Owner", 20, document.AlignLeft),
		document.Col("assessed_value", "Previous A.V.", 12, document.AlignRight),
		document.Col("effectivity", "Effectivity", 12, document.AlignLeft),
		document.Col("recording_person", "Recording Person", 18, document.AlignLeft),
		document.Col("date", "Date", 12, document.AlignLeft),
	)
	for _, e := range entries {
		t.Row(
			firstNonEmpty(e.TdNo, e.ArpNo),
			e.Pin,
			e.OwnerName,
			c.fmt.Money(e.AssessedValue),
			e.Effectivity,
			e.RecordingPerson,
			c.fmt.Date(e.Date),
		)
	}
	return t.Block()
}

func signature(label, name string) document.Block {
	return document.StyledText(label, name, document.StyleSignature)
}
