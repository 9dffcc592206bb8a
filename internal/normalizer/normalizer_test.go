package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stwalsh4118/faasdoc/internal/fixtures"
	"github.com/stwalsh4118/faasdoc/internal/models"
)

var s = models.S

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name   string
		in     models.Scalar
		want   float64
		wantOK bool
	}{
		{"absent", models.Scalar{}, 0, true},
		{"blank", s("   "), 0, true},
		{"plain", s("150"), 150, true},
		{"grouped", s("145,500.00"), 145500, true},
		{"peso sign", s("₱ 1,200.50"), 1200.5, true},
		{"php prefix", s("PHP 300"), 300, true},
		{"percent", s("40%"), 40, true},
		{"negative", s("-7500"), -7500, true},
		{"garbage", s("n/a"), 0, false},
		{"only decoration", s("₱"), 0, false},
		{"nan", s("NaN"), 0, false},
		{"inf", s("Inf"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseFlag(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "yes", "Y", "t"} {
		assert.True(t, ParseFlag(s(v)), v)
	}
	for _, v := range []string{"0", "false", "no", "", "maybe"} {
		assert.False(t, ParseFlag(s(v)), v)
	}
	assert.False(t, ParseFlag(models.Scalar{}))
}

func TestNormalize_Land(t *testing.T) {
	record, diag := Normalize(fixtures.Land())

	assert.True(t, diag.Empty())
	assert.Equal(t, "L-001", record.ID)
	assert.Equal(t, models.KindLand, record.Kind)
	assert.Equal(t, "DELA CRUZ, JUAN", record.Owner.Name)
	assert.True(t, record.Assessment.Taxable)
	assert.Equal(t, 145500.0, record.Assessment.MarketValue)
	assert.Equal(t, 40.0, record.Assessment.AssessmentLevel)

	land, ok := record.Appraisal.(*models.LandAppraisal)
	require.True(t, ok)
	assert.Equal(t, 1000.0, land.Area)
	require.Len(t, land.Adjustments, 2)
	assert.Equal(t, "Road type", land.Adjustments[0].FactorLabel)
	assert.Equal(t, -7500.0, land.Adjustments[0].AdjustmentValue)
	require.Len(t, land.Improvements, 2)
	assert.Equal(t, models.ItemLine{Name: "Coconut", Quantity: 3, UnitValue: 50}, land.Improvements[1])

	require.Len(t, record.Superseded, 1)
	assert.Equal(t, "TD-2019-0042", record.Superseded[0].TdNo)
	assert.Equal(t, 42000.0, record.Superseded[0].AssessedValue)
}

func TestNormalize_BuildingAndMachinery(t *testing.T) {
	record, diag := Normalize(fixtures.Building())
	assert.True(t, diag.Empty())
	building, ok := record.Appraisal.(*models.BuildingAppraisal)
	require.True(t, ok)
	assert.Equal(t, models.KindBuilding, record.Kind)
	assert.Len(t, building.Floors, 2)
	assert.Len(t, building.Materials, 3)
	assert.Equal(t, 12000.0, building.UnitCost)

	record, diag = Normalize(fixtures.Machinery())
	assert.True(t, diag.Empty())
	machine, ok := record.Appraisal.(*models.MachineryAppraisal)
	require.True(t, ok)
	assert.Equal(t, models.KindMachinery, record.Kind)
	assert.Equal(t, 1.2, machine.ConversionFactor)
	assert.Equal(t, "Rice mill", machine.Type)
}

func TestNormalize_DiscriminatorWinsOverShape(t *testing.T) {
	p := fixtures.Land()
	p.Faas.PropertyKind = s("Building")

	record, diag := Normalize(p)

	assert.Equal(t, models.KindBuilding, record.Kind)
	building, ok := record.Appraisal.(*models.BuildingAppraisal)
	require.True(t, ok)
	assert.Empty(t, building.Floors)
	assert.NotNil(t, building.Floors)
	assert.True(t, diag.Has(WarningDiscriminatorMismatch))
	assert.Equal(t, 0.0, record.Assessment.MarketValue)
}

func TestNormalize_UnknownKindFallsBackToShape(t *testing.T) {
	p := fixtures.Machinery()
	p.Faas.PropertyKind = s("Equipment")

	record, diag := Normalize(p)

	assert.Equal(t, models.KindMachinery, record.Kind)
	assert.IsType(t, &models.MachineryAppraisal{}, record.Appraisal)
	require.Len(t, diag.Warnings, 1)
	assert.Equal(t, WarningUnknownPropertyKind, diag.Warnings[0].Code)
	assert.Equal(t, "faas.property_kind", diag.Warnings[0].Field)
}

func TestNormalize_NilPayload(t *testing.T) {
	record, diag := Normalize(nil)

	assert.Equal(t, models.KindLand, record.Kind)
	land, ok := record.Appraisal.(*models.LandAppraisal)
	require.True(t, ok)
	assert.NotNil(t, land.Improvements)
	assert.NotNil(t, land.Adjustments)
	assert.NotNil(t, record.Superseded)
	assert.True(t, diag.Has(WarningUnknownPropertyKind))
}

func TestNormalize_UnparsableNumber(t *testing.T) {
	p := fixtures.Land()
	p.Land.Improvements[1].Quantity = s("three")

	record, diag := Normalize(p)

	land := record.Appraisal.(*models.LandAppraisal)
	assert.Equal(t, 0.0, land.Improvements[1].Quantity)
	require.Len(t, diag.Warnings, 1)
	assert.Equal(t, WarningUnparsableNumber, diag.Warnings[0].Code)
	assert.Equal(t, "land.improvements[1].quantity", diag.Warnings[0].Field)
	assert.Contains(t, diag.Warnings[0].Message, `"three"`)
}

func TestNormalize_OwnersFallback(t *testing.T) {
	p := fixtures.Land()
	p.Faas.OwnerName = models.Scalar{}
	p.Faas.OwnerAddress = models.Scalar{}
	p.Faas.OwnerTin = models.Scalar{}
	p.Owners = []models.OwnerPayload{
		{
			FirstName: s("Juan"), MiddleName: s("santos"), LastName: s("Dela Cruz"), Suffix: s("Jr."),
			Tin: s("111-222-333"), AddressStreet: s("Rizal St."), AddressBarangay: s("Poblacion"),
			AddressMunicipality: s("La Trinidad"),
		},
		{FirstName: s("Maria"), LastName: s("Dela Cruz")},
		{},
	}

	record, _ := Normalize(p)

	assert.Equal(t, "Juan S. Dela Cruz Jr.; Maria Dela Cruz", record.Owner.Name)
	assert.Equal(t, "Rizal St., Poblacion, La Trinidad", record.Owner.Address)
	assert.Equal(t, "111-222-333", record.Owner.Tin)
}

func TestOwnerDisplayName(t *testing.T) {
	assert.Equal(t, "Ana Reyes", OwnerDisplayName(models.OwnerPayload{FirstName: s(" Ana "), LastName: s("Reyes")}))
	assert.Equal(t, "", OwnerDisplayName(models.OwnerPayload{}))
	assert.Equal(t, "Ñ.", OwnerDisplayName(models.OwnerPayload{MiddleName: s("ñora")}))
}
