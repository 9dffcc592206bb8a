// Package fixtures provides sample FAAS payloads for tests across packages.
// Each call returns a fresh payload so callers may mutate it freely.
package fixtures

import "github.com/stwalsh4118/faasdoc/internal/models"

var s = models.S

func header(id, kind string) models.FaasHeader {
	return models.FaasHeader{
		FaasID:          s(id),
		FaasNo:          s("FAAS-2024-" + id),
		ArpNo:           s("ARP-01-0001"),
		Pin:             s("041-01-001-01-001"),
		TransactionCode: s("GR"),
		TitleNo:         s("TCT-T-12345"),
		SurveyNo:        s("PSD-01-000123"),
		OwnerName:       s("DELA CRUZ, JUAN"),
		OwnerAddress:    s("Poblacion, La Trinidad, Benguet"),
		OwnerTin:        s("123-456-789"),
		Barangay:        s("Poblacion"),
		Municipality:    s("La Trinidad"),
		Province:        s("Benguet"),
		LgCode:          s("041"),
		LotNo:           s("12"),
		BlockNo:         s("3"),
		North:           s("Lot 11"),
		South:           s("Road"),
		East:            s("Lot 13"),
		West:            s("Creek"),
		PropertyKind:    s(kind),
		Taxable:         s("1"),
		EffectivityDate: s("2024-01-01"),
		AppraisedBy:     s("A. Appraiser"),
		RecommendedBy:   s("R. Recommender"),
		ApprovedBy:      s("P. Assessor"),
		CreatedBy:       s("encoder"),
		CreatedDate:     s("2023-11-15"),
	}
}

// Land returns a land record whose two improvements total 350.00
// (2 x 100 + 3 x 50) and whose adjustments bring 150,000 down to 145,500.
func Land() *models.FaasPayload {
	return &models.FaasPayload{
		Faas: header("L-001", "Land"),
		Land: &models.LandPayload{
			Appraisal: models.LandAppraisalPayload{
				Classification:    s("Agricultural"),
				Subclassification: s("Riceland 1st"),
				Area:              s("1,000"),
				UnitValue:         s("150"),
				BaseMarketValue:   s("150000"),
			},
			Adjustments: []models.AdjustmentPayload{
				{Factor: s("Road type"), Value: s("-7500")},
				{Factor: s("Distance to market"), Value: s("3000")},
			},
			Improvements: []models.ItemPayload{
				{Name: s("Mango tree"), Quantity: s("2"), UnitValue: s("100")},
				{Name: s("Coconut"), Quantity: s("3"), UnitValue: s("50")},
			},
			Assessment: models.AssessmentPayload{
				ActualUse:       s("Agricultural"),
				MarketValue:     s("145,500.00"),
				AssessmentLevel: s("40"),
				AssessedValue:   s("58200"),
			},
		},
		Superseded: []models.SupersededPayload{
			{
				TdNo: s("TD-2019-0042"), Pin: s("041-01-001-01-001"), ArpNo: s("ARP-00-0042"),
				OwnerName: s("DELA CRUZ, PEDRO"), AssessedValue: s("42000"),
				Effectivity: s("2019"), RecordingPerson: s("Clerk"), Date: s("2019-03-01"),
			},
		},
	}
}

// Building returns a two-storey building: 140 sqm at 12,000 plus a 20,000
// carport, depreciated 10%, assessed at 20%.
func Building() *models.FaasPayload {
	return &models.FaasPayload{
		Faas: header("B-001", "Building"),
		Building: &models.BuildingPayload{
			General: models.BuildingGeneralPayload{
				BuildingKind:     s("Residential"),
				StructuralType:   s("II-B"),
				Storeys:          s("2"),
				BuildingPermitNo: s("BP-2015-778"),
				DateConstructed:  s("2015-06-30"),
			},
			Floors: []models.FloorPayload{
				{FloorNo: s("1"), Area: s("80")},
				{FloorNo: s("2"), Area: s("60")},
			},
			Materials: []models.MaterialPayload{
				{Part: s("Roof"), Material: s("GI sheet")},
				{Part: s("Flooring"), Material: s("Concrete")},
				{Part: s("Walls"), Material: s("CHB")},
			},
			Appraisal: models.BuildingAppraisalPayload{
				UnitCost:         s("12000"),
				DepreciationRate: s("10"),
			},
			Additionals: []models.ItemPayload{
				{Name: s("Carport"), Quantity: s("1"), UnitValue: s("20000")},
			},
			Assessment: models.AssessmentPayload{
				ActualUse:       s("Residential"),
				AssessmentLevel: s("20"),
			},
		},
	}
}

// Machinery returns a machine with no stored RCN: 500,000 x 1.2,
// depreciated 15%, assessed at 80%.
func Machinery() *models.FaasPayload {
	return &models.FaasPayload{
		Faas: header("M-001", "Machinery"),
		Machinery: &models.MachineryPayload{
			Appraisal: models.MachineryAppraisalPayload{
				Type:             s("Rice mill"),
				BrandModel:       s("Satake SB-10"),
				Capacity:         s("1 ton/hr"),
				Condition:        s("Good"),
				OriginalCost:     s("500000"),
				ConversionFactor: s("1.2"),
				YearsUsed:        s("3"),
				DepreciationRate: s("15"),
			},
			Assessment: models.AssessmentPayload{
				ActualUse:       s("Commercial"),
				AssessmentLevel: s("80"),
			},
		},
	}
}
