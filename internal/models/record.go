package models

import "strings"

// PropertyKind discriminates the three kinds of real property a FAAS covers.
type PropertyKind string

// Property kinds as spelled by the records API.
const (
	KindLand      PropertyKind = "Land"
	KindBuilding  PropertyKind = "Building"
	KindMachinery PropertyKind = "Machinery"
)

// ParsePropertyKind maps a discriminator string to a PropertyKind.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParsePropertyKind(s string) (PropertyKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "land":
		return KindLand, true
	case "building":
		return KindBuilding, true
	case "machinery":
		return KindMachinery, true
	default:
		return "", false
	}
}

// AssessmentRecord is the canonical, kind-tagged view of one FAAS record.
// Kind always agrees with the concrete type held in Appraisal.
type AssessmentRecord struct {
	ID              string
	Kind            PropertyKind
	Identifiers     Identifiers
	Owner           Party
	Administrator   Party
	Location        Location
	Boundaries      Boundaries
	Appraisal       KindAppraisal
	Assessment      Assessment
	Superseded      []SupersededEntry
	Signatories     Signatories
	Memoranda       string
	EffectivityDate string
	CreatedBy       string
	CreatedDate     string
}

// Identifiers groups the numbers that identify a property on the roll.
type Identifiers struct {
	FaasNo          string
	ArpNo           string
	Pin             string
	TransactionCode string
	TitleNo         string
	SurveyNo        string
	LotNo           string
	BlockNo         string
}

// Party is an owner or administrator.
type Party struct {
	Name    string
	Address string
	Tin     string
}

// Location is where the property lies.
type Location struct {
	Barangay     string
	Municipality string
	Province     string
	LgCode       string
}

// Boundaries lists the adjoining properties.
type Boundaries struct {
	North string
	South string
	East  string
	West  string
}

// Assessment holds the stored assessment values of a record.
// Zero means the source did not provide the value.
type Assessment struct {
	ActualUse       string
	MarketValue     float64
	AssessmentLevel float64
	AssessedValue   float64
	Taxable         bool
}

// Signatories are the officials named at the foot of a FAAS.
type Signatories struct {
	AppraisedBy   string
	RecommendedBy string
	ApprovedBy    string
}

// SupersededEntry is a previous record cancelled by this one.
type SupersededEntry struct {
	TdNo            string
	Pin             string
	ArpNo           string
	OwnerName       string
	AssessedValue   float64
	Effectivity     string
	RecordingPerson string
	Date            string
}

// KindAppraisal is implemented only by *LandAppraisal, *BuildingAppraisal
// and *MachineryAppraisal.
type KindAppraisal interface {
	PropertyKind() PropertyKind
	isKindAppraisal()
}

// LandAppraisal holds land-specific appraisal data.
type LandAppraisal struct {
	Classification    string
	Subclassification string
	Area              float64
	UnitValue         float64
	BaseMarketValue   float64
	Adjustments       []Adjustment
	Improvements      []ItemLine
}

// BuildingAppraisal holds building-specific appraisal data.
type BuildingAppraisal struct {
	BuildingKind      string
	StructuralType    string
	Storeys           string
	PermitNo          string
	DateConstructed   string
	Floors            []FloorLine
	Materials         []MaterialLine
	UnitCost          float64
	AdditionalItems   []ItemLine
	DepreciationRate  float64
	DepreciationValue float64
	FinalMarketValue  float64
}

// MachineryAppraisal holds machinery-specific appraisal data.
type MachineryAppraisal struct {
	Type              string
	BrandModel        string
	Capacity          string
	Condition         string
	OriginalCost      float64
	ConversionFactor  float64
	RCN               float64
	YearsUsed         float64
	DepreciationRate  float64
	DepreciationValue float64
}

func (*LandAppraisal) PropertyKind() PropertyKind      { return KindLand }
func (*BuildingAppraisal) PropertyKind() PropertyKind  { return KindBuilding }
func (*MachineryAppraisal) PropertyKind() PropertyKind { return KindMachinery }

func (*LandAppraisal) isKindAppraisal()      {}
func (*BuildingAppraisal) isKindAppraisal()  {}
func (*MachineryAppraisal) isKindAppraisal() {}

// Adjustment is one market value adjustment factor of a land appraisal.
type Adjustment struct {
	FactorLabel     string
	AdjustmentValue float64
}

// ItemLine is a land improvement or a building additional item.
type ItemLine struct {
	Name      string
	Quantity  float64
	UnitValue float64
}

// LineTotal returns Quantity * UnitValue.
func (l ItemLine) LineTotal() float64 {
	return l.Quantity * l.UnitValue
}

// FloorLine is the area of one floor of a building.
type FloorLine struct {
	FloorNo string
	Area    float64
}

// MaterialLine is one structural material of a building.
type MaterialLine struct {
	Part     string
	Material string
}
