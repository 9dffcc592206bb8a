// Package aggregation computes the derived totals printed on assessment
// documents. Every function is total: absent inputs contribute 0 and no
// function mutates its arguments. Values keep full precision; rounding is
// the formatter's job.
package aggregation

import (
	"math"

	"github.com/stwalsh4118/faasdoc/internal/models"
)

// Aggregates are the derived values of one record. They are never persisted.
type Aggregates struct {
	ImprovementsTotal   float64 `json:"improvements_total" yaml:"improvements_total"`
	AdditionalsTotal    float64 `json:"additionals_total" yaml:"additionals_total"`
	TotalFloorArea      float64 `json:"total_floor_area" yaml:"total_floor_area"`
	AdjustedMarketValue float64 `json:"adjusted_market_value" yaml:"adjusted_market_value"`
	DepreciationAmount  float64 `json:"depreciation_amount" yaml:"depreciation_amount"`
	FinalMarketValue    float64 `json:"final_market_value" yaml:"final_market_value"`
	AssessedValue       float64 `json:"assessed_value" yaml:"assessed_value"`
}

// Compute derives the aggregates of a canonical record.
func Compute(record models.AssessmentRecord) Aggregates {
	var agg Aggregates
	var kindMarketValue float64

	switch a := record.Appraisal.(type) {
	case *models.LandAppraisal:
		agg.ImprovementsTotal = ImprovementsTotal(a.Improvements)
		agg.AdjustedMarketValue = AdjustedMarketValue(a)
		kindMarketValue = agg.AdjustedMarketValue
	case *models.BuildingAppraisal:
		agg.AdditionalsTotal = ImprovementsTotal(a.AdditionalItems)
		agg.TotalFloorArea = TotalFloorArea(a.Floors)
		agg.DepreciationAmount = BuildingDepreciation(a)
		kindMarketValue = BuildingFinalMarketValue(a)
	case *models.MachineryAppraisal:
		agg.DepreciationAmount = MachineryDepreciation(a)
		kindMarketValue = MachineryMarketValue(a)
	}

	agg.FinalMarketValue = record.Assessment.MarketValue
	if agg.FinalMarketValue == 0 {
		agg.FinalMarketValue = kindMarketValue
	}

	agg.AssessedValue = AssessedValue(record.Assessment, agg.FinalMarketValue)
	return agg
}

// ImprovementsTotal returns the sum of quantity * unit value over the lines.
func ImprovementsTotal(lines []models.ItemLine) float64 {
	var total float64
	for _, line := range lines {
		total += finite(line.LineTotal())
	}
	return total
}

// TotalFloorArea returns the sum of the floor areas.
func TotalFloorArea(floors []models.FloorLine) float64 {
	var total float64
	for _, f := range floors {
		total += finite(f.Area)
	}
	return total
}

// AdjustedMarketValue returns the base market value plus every adjustment.
// It is a display fallback for land records without a stored market value.
func AdjustedMarketValue(land *models.LandAppraisal) float64 {
	if land == nil {
		return 0
	}
	total := finite(land.BaseMarketValue)
	for _, adj := range land.Adjustments {
		total += finite(adj.AdjustmentValue)
	}
	return total
}

// BuildingReplacementCost returns unit cost * floor area + additional items.
func BuildingReplacementCost(b *models.BuildingAppraisal) float64 {
	if b == nil {
		return 0
	}
	return finite(b.UnitCost*TotalFloorArea(b.Floors)) + ImprovementsTotal(b.AdditionalItems)
}

// BuildingDepreciation returns the supplied depreciation value, or the
// depreciation rate (a percentage) applied to the replacement cost.
// A supplied final market value is pass-through, so nothing is derived
// and the depreciation is 0 unless the source gives it.
func BuildingDepreciation(b *models.BuildingAppraisal) float64 {
	if b == nil {
		return 0
	}
	if b.DepreciationValue != 0 {
		return finite(b.DepreciationValue)
	}
	if b.FinalMarketValue != 0 {
		return 0
	}
	return finite(percentOf(BuildingReplacementCost(b), b.DepreciationRate))
}

// BuildingFinalMarketValue passes through the source's final market value
// when supplied and otherwise derives it from cost less depreciation.
func BuildingFinalMarketValue(b *models.BuildingAppraisal) float64 {
	if b == nil {
		return 0
	}
	if b.FinalMarketValue != 0 {
		return finite(b.FinalMarketValue)
	}
	return BuildingReplacementCost(b) - BuildingDepreciation(b)
}

// MachineryRCN returns the replacement cost new, falling back to original
// cost times conversion factor. A zero conversion factor counts as 1.
func MachineryRCN(m *models.MachineryAppraisal) float64 {
	if m == nil {
		return 0
	}
	if m.RCN != 0 {
		return finite(m.RCN)
	}
	factor := m.ConversionFactor
	if factor == 0 {
		factor = 1
	}
	return finite(m.OriginalCost * factor)
}

// MachineryDepreciation returns the supplied depreciation value, or the
// depreciation rate (a percentage) applied to the RCN.
func MachineryDepreciation(m *models.MachineryAppraisal) float64 {
	if m == nil {
		return 0
	}
	if m.DepreciationValue != 0 {
		return finite(m.DepreciationValue)
	}
	return finite(percentOf(MachineryRCN(m), m.DepreciationRate))
}

// MachineryMarketValue returns RCN less depreciation. Stored assessment
// values take precedence over it; see Compute.
func MachineryMarketValue(m *models.MachineryAppraisal) float64 {
	return MachineryRCN(m) - MachineryDepreciation(m)
}

// AssessedValue returns the stored assessed value, or the market value
// times the assessment level (a percentage) when none is stored.
func AssessedValue(a models.Assessment, marketValue float64) float64 {
	if a.AssessedValue != 0 {
		return finite(a.AssessedValue)
	}
	return finite(percentOf(marketValue, a.AssessmentLevel))
}

func percentOf(value, percent float64) float64 {
	return value * percent / 100
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
