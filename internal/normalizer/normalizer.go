// Package normalizer turns raw FAAS payloads into canonical assessment records.
//
// Normalization never fails. Missing strings become "", missing numbers 0
// and missing lists empty; anything odd is reported through Diagnostics.
package normalizer

import (
	"fmt"
	"strings"

	"github.com/stwalsh4118/faasdoc/internal/models"
)

type normalizer struct {
	diag Diagnostics
}

// Normalize converts a raw payload into an AssessmentRecord.
// The property_kind discriminator decides which kind sub-object is read.
// When it names a kind whose sub-object is absent, the discriminator still
// wins and the appraisal is left empty. An empty or unknown discriminator
// falls back to whichever sub-object is present, or to an empty Land
// appraisal when there is none.
func Normalize(p *models.FaasPayload) (models.AssessmentRecord, Diagnostics) {
	n := &normalizer{}
	if p == nil {
		p = &models.FaasPayload{}
	}

	kind := n.resolveKind(p)
	record := models.AssessmentRecord{
		ID:              text(p.Faas.FaasID),
		Kind:            kind,
		Identifiers:     identifiers(p.Faas),
		Owner:           owner(p),
		Administrator:   models.Party{Name: text(p.Faas.Administrator), Address: text(p.Faas.AdministratorAddress)},
		Location:        location(p.Faas),
		Boundaries:      boundaries(p.Faas),
		Superseded:      n.superseded(p.Superseded),
		Memoranda:       text(p.Faas.Memoranda),
		EffectivityDate: text(p.Faas.EffectivityDate),
		CreatedBy:       text(p.Faas.CreatedBy),
		CreatedDate:     text(p.Faas.CreatedDate),
		Signatories: models.Signatories{
			AppraisedBy:   text(p.Faas.AppraisedBy),
			RecommendedBy: text(p.Faas.RecommendedBy),
			ApprovedBy:    text(p.Faas.ApprovedBy),
		},
	}

	var assessment models.AssessmentPayload
	switch kind {
	case models.KindBuilding:
		record.Appraisal, assessment = n.building(p.Building)
	case models.KindMachinery:
		record.Appraisal, assessment = n.machinery(p.Machinery)
	default:
		record.Appraisal, assessment = n.land(p.Land)
	}

	record.Assessment = models.Assessment{
		ActualUse:       text(assessment.ActualUse),
		MarketValue:     n.number("assessment.market_value", assessment.MarketValue),
		AssessmentLevel: n.number("assessment.assessment_level", assessment.AssessmentLevel),
		AssessedValue:   n.number("assessment.assessed_value", assessment.AssessedValue),
		Taxable:         ParseFlag(p.Faas.Taxable),
	}

	return record, n.diag
}

// resolveKind picks the record kind from the discriminator, falling back to
// the payload's shape only when the discriminator is unusable.
func (n *normalizer) resolveKind(p *models.FaasPayload) models.PropertyKind {
	raw := text(p.Faas.PropertyKind)
	if kind, ok := models.ParsePropertyKind(raw); ok {
		if !hasSubObject(p, kind) {
			n.diag.add(WarningDiscriminatorMismatch, "faas.property_kind",
				"property_kind is %s but the %s section is missing", kind, strings.ToLower(string(kind)))
		}
		return kind
	}

	fallback := models.KindLand
	switch {
	case p.Land != nil:
		fallback = models.KindLand
	case p.Building != nil:
		fallback = models.KindBuilding
	case p.Machinery != nil:
		fallback = models.KindMachinery
	}
	n.diag.add(WarningUnknownPropertyKind, "faas.property_kind",
		"property_kind %q is not Land, Building or Machinery, using %s", raw, fallback)
	return fallback
}

func hasSubObject(p *models.FaasPayload, kind models.PropertyKind) bool {
	switch kind {
	case models.KindLand:
		return p.Land != nil
	case models.KindBuilding:
		return p.Building != nil
	case models.KindMachinery:
		return p.Machinery != nil
	}
	return false
}

func (n *normalizer) land(p *models.LandPayload) (*models.LandAppraisal, models.AssessmentPayload) {
	if p == nil {
		return &models.LandAppraisal{Adjustments: []models.Adjustment{}, Improvements: []models.ItemLine{}}, models.AssessmentPayload{}
	}

	appraisal := &models.LandAppraisal{
		Classification:    text(p.Appraisal.Classification),
		Subclassification: text(p.Appraisal.Subclassification),
		Area:              n.number("land.appraisal.area", p.Appraisal.Area),
		UnitValue:         n.number("land.appraisal.unit_value", p.Appraisal.UnitValue),
		BaseMarketValue:   n.number("land.appraisal.base_market_value", p.Appraisal.BaseMarketValue),
		Adjustments:       make([]models.Adjustment, 0, len(p.Adjustments)),
		Improvements:      n.items("land.improvements", p.Improvements),
	}
	for i, adj := range p.Adjustments {
		appraisal.Adjustments = append(appraisal.Adjustments, models.Adjustment{
			FactorLabel:     text(adj.Factor),
			AdjustmentValue: n.number(fmt.Sprintf("land.adjustments[%d].adjustment_value", i), adj.Value),
		})
	}

	return appraisal, p.Assessment
}

func (n *normalizer) building(p *models.BuildingPayload) (*models.BuildingAppraisal, models.AssessmentPayload) {
	if p == nil {
		return &models.BuildingAppraisal{
			Floors:          []models.FloorLine{},
			Materials:       []models.MaterialLine{},
			AdditionalItems: []models.ItemLine{},
		}, models.AssessmentPayload{}
	}

	appraisal := &models.BuildingAppraisal{
		BuildingKind:      text(p.General.BuildingKind),
		StructuralType:    text(p.General.StructuralType),
		Storeys:           text(p.General.Storeys),
		PermitNo:          text(p.General.BuildingPermitNo),
		DateConstructed:   text(p.General.DateConstructed),
		Floors:            make([]models.FloorLine, 0, len(p.Floors)),
		Materials:         make([]models.MaterialLine, 0, len(p.Materials)),
		UnitCost:          n.number("building.appraisal.unit_cost", p.Appraisal.UnitCost),
		AdditionalItems:   n.items("building.additionals", p.Additionals),
		DepreciationRate:  n.number("building.appraisal.depreciation_rate", p.Appraisal.DepreciationRate),
		DepreciationValue: n.number("building.appraisal.depreciation_value", p.Appraisal.DepreciationValue),
		FinalMarketValue:  n.number("building.appraisal.final_market_value", p.Appraisal.FinalMarketValue),
	}
	for i, floor := range p.Floors {
		appraisal.Floors = append(appraisal.Floors, models.FloorLine{
			FloorNo: text(floor.FloorNo),
			Area:    n.number(fmt.Sprintf("building.floors[%d].area", i), floor.Area),
		})
	}
	for _, m := range p.Materials {
		appraisal.Materials = append(appraisal.Materials, models.MaterialLine{
			Part:     text(m.Part),
			Material: text(m.Material),
		})
	}

	return appraisal, p.Assessment
}

func (n *normalizer) machinery(p *models.MachineryPayload) (*models.MachineryAppraisal, models.AssessmentPayload) {
	if p == nil {
		return &models.MachineryAppraisal{}, models.AssessmentPayload{}
	}

	a := p.Appraisal
	appraisal := &models.MachineryAppraisal{
		Type:              text(a.Type),
		BrandModel:        text(a.BrandModel),
		Capacity:          text(a.Capacity),
		Condition:         text(a.Condition),
		OriginalCost:      n.number("machinery.appraisal.original_cost", a.OriginalCost),
		ConversionFactor:  n.number("machinery.appraisal.conversion_factor", a.ConversionFactor),
		RCN:               n.number("machinery.appraisal.rcn", a.RCN),
		YearsUsed:         n.number("machinery.appraisal.years_used", a.YearsUsed),
		DepreciationRate:  n.number("machinery.appraisal.depreciation_rate", a.DepreciationRate),
		DepreciationValue: n.number("machinery.appraisal.depreciation_value", a.DepreciationValue),
	}

	return appraisal, p.Assessment
}

func (n *normalizer) items(field string, raw []models.ItemPayload) []models.ItemLine {
	lines := make([]models.ItemLine, 0, len(raw))
	for i, item := range raw {
		lines = append(lines, models.ItemLine{
			Name:      text(item.Name),
			Quantity:  n.number(fmt.Sprintf("%s[%d].quantity", field, i), item.Quantity),
			UnitValue: n.number(fmt.Sprintf("%s[%d].unit_value", field, i), item.UnitValue),
		})
	}
	return lines
}

func (n *normalizer) superseded(raw []models.SupersededPayload) []models.SupersededEntry {
	entries := make([]models.SupersededEntry, 0, len(raw))
	for i, s := range raw {
		entries = append(entries, models.SupersededEntry{
			TdNo:            text(s.TdNo),
			Pin:             text(s.Pin),
			ArpNo:           text(s.ArpNo),
			OwnerName:       text(s.OwnerName),
			AssessedValue:   n.number(fmt.Sprintf("superseded[%d].assessed_value", i), s.AssessedValue),
			Effectivity:     text(s.Effectivity),
			RecordingPerson: text(s.RecordingPerson),
			Date:            text(s.Date),
		})
	}
	return entries
}

func identifiers(h models.FaasHeader) models.Identifiers {
	return models.Identifiers{
		FaasNo:          text(h.FaasNo),
		ArpNo:           text(h.ArpNo),
		Pin:             text(h.Pin),
		TransactionCode: text(h.TransactionCode),
		TitleNo:         text(h.TitleNo),
		SurveyNo:        text(h.SurveyNo),
		LotNo:           text(h.LotNo),
		BlockNo:         text(h.BlockNo),
	}
}

func location(h models.FaasHeader) models.Location {
	return models.Location{
		Barangay:     text(h.Barangay),
		Municipality: text(h.Municipality),
		Province:     text(h.Province),
		LgCode:       text(h.LgCode),
	}
}

func boundaries(h models.FaasHeader) models.Boundaries {
	return models.Boundaries{
		North: text(h.North),
		South: text(h.South),
		East:  text(h.East),
		West:  text(h.West),
	}
}
