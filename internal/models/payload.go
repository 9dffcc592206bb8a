package models

// FaasPayload is one record as returned by the FAAS records API.
// Only the sub-object matching faas.property_kind is expected to be present,
// but nothing guarantees it.
type FaasPayload struct {
	Faas       FaasHeader          `json:"faas"`
	Land       *LandPayload        `json:"land,omitempty"`
	Building   *BuildingPayload    `json:"building,omitempty"`
	Machinery  *MachineryPayload   `json:"machinery,omitempty"`
	Owners     []OwnerPayload      `json:"owners,omitempty"`
	Superseded []SupersededPayload `json:"superseded,omitempty"`
}

// FaasHeader holds the kind-independent part of a FAAS record.
type FaasHeader struct {
	FaasID               Scalar `json:"faas_id"`
	FaasNo               Scalar `json:"faas_no"`
	ArpNo                Scalar `json:"arp_no"`
	Pin                  Scalar `json:"pin"`
	TransactionCode      Scalar `json:"transaction_code"`
	TitleNo              Scalar `json:"title_no"`
	SurveyNo             Scalar `json:"survey_no"`
	OwnerName            Scalar `json:"owner_name"`
	OwnerAddress         Scalar `json:"owner_address"`
	OwnerTin             Scalar `json:"owner_tin"`
	Administrator        Scalar `json:"administrator"`
	AdministratorAddress Scalar `json:"administrator_address"`
	Barangay             Scalar `json:"barangay"`
	Municipality         Scalar `json:"municipality"`
	Province             Scalar `json:"province"`
	LgCode               Scalar `json:"lg_code"`
	LotNo                Scalar `json:"lot_no"`
	BlockNo              Scalar `json:"block_no"`
	North                Scalar `json:"north"`
	South                Scalar `json:"south"`
	East                 Scalar `json:"east"`
	West                 Scalar `json:"west"`
	PropertyKind         Scalar `json:"property_kind"`
	Taxable              Scalar `json:"taxable"`
	EffectivityDate      Scalar `json:"effectivity_date"`
	Memoranda            Scalar `json:"memoranda"`
	AppraisedBy          Scalar `json:"appraised_by"`
	RecommendedBy        Scalar `json:"recommended_by"`
	ApprovedBy           Scalar `json:"approved_by"`
	CreatedBy            Scalar `json:"created_by"`
	CreatedDate          Scalar `json:"created_date"`
}

// AssessmentPayload is the assessment block shared by all property kinds.
type AssessmentPayload struct {
	ActualUse       Scalar `json:"actual_use"`
	MarketValue     Scalar `json:"market_value"`
	AssessmentLevel Scalar `json:"assessment_level"`
	AssessedValue   Scalar `json:"assessed_value"`
}

// LandPayload is the land-specific part of a FAAS record.
type LandPayload struct {
	Appraisal    LandAppraisalPayload `json:"appraisal"`
	Assessment   AssessmentPayload    `json:"assessment"`
	Adjustments  []AdjustmentPayload  `json:"adjustments"`
	Improvements []ItemPayload        `json:"improvements"`
}

// LandAppraisalPayload holds the land appraisal fields.
type LandAppraisalPayload struct {
	Classification    Scalar `json:"classification"`
	Subclassification Scalar `json:"sub_classification"`
	Area              Scalar `json:"area"`
	UnitValue         Scalar `json:"unit_value"`
	BaseMarketValue   Scalar `json:"base_market_value"`
}

// AdjustmentPayload is one market value adjustment factor.
type AdjustmentPayload struct {
	Factor Scalar `json:"adjustment_factor"`
	Value  Scalar `json:"adjustment_value"`
}

// ItemPayload is a land improvement or building additional item.
type ItemPayload struct {
	Name      Scalar `json:"name"`
	Quantity  Scalar `json:"quantity"`
	UnitValue Scalar `json:"unit_value"`
}

// BuildingPayload is the building-specific part of a FAAS record.
type BuildingPayload struct {
	General     BuildingGeneralPayload   `json:"general"`
	Floors      []FloorPayload           `json:"floors"`
	Materials   []MaterialPayload        `json:"materials"`
	Appraisal   BuildingAppraisalPayload `json:"appraisal"`
	Assessment  AssessmentPayload        `json:"assessment"`
	Additionals []ItemPayload            `json:"additionals"`
}

// BuildingGeneralPayload is the general description of a building.
type BuildingGeneralPayload struct {
	BuildingKind     Scalar `json:"kind_of_building"`
	StructuralType   Scalar `json:"structural_type"`
	Storeys          Scalar `json:"no_of_storeys"`
	BuildingPermitNo Scalar `json:"building_permit_no"`
	DateConstructed  Scalar `json:"date_constructed"`
}

// FloorPayload is the area of one floor.
type FloorPayload struct {
	FloorNo Scalar `json:"floor_no"`
	Area    Scalar `json:"area"`
}

// MaterialPayload is one structural material entry (roof, flooring, walls...).
type MaterialPayload struct {
	Part     Scalar `json:"part"`
	Material Scalar `json:"material"`
}

// BuildingAppraisalPayload holds the building cost and depreciation fields.
type BuildingAppraisalPayload struct {
	UnitCost          Scalar `json:"unit_cost"`
	DepreciationRate  Scalar `json:"depreciation_rate"`
	DepreciationValue Scalar `json:"depreciation_value"`
	FinalMarketValue  Scalar `json:"final_market_value"`
}

// MachineryPayload is the machinery-specific part of a FAAS record.
type MachineryPayload struct {
	Appraisal  MachineryAppraisalPayload `json:"appraisal"`
	Assessment AssessmentPayload         `json:"assessment"`
}

// MachineryAppraisalPayload holds the machinery valuation fields.
type MachineryAppraisalPayload struct {
	Type              Scalar `json:"machinery_type"`
	BrandModel        Scalar `json:"brand_model"`
	Capacity          Scalar `json:"capacity"`
	Condition         Scalar `json:"condition"`
	OriginalCost      Scalar `json:"original_cost"`
	ConversionFactor  Scalar `json:"conversion_factor"`
	RCN               Scalar `json:"rcn"`
	YearsUsed         Scalar `json:"years_used"`
	DepreciationRate  Scalar `json:"depreciation_rate"`
	DepreciationValue Scalar `json:"depreciation_value"`
}

// OwnerPayload is one entry of the structured owners list.
type OwnerPayload struct {
	FirstName           Scalar `json:"first_name"`
	LastName            Scalar `json:"last_name"`
	MiddleName          Scalar `json:"middle_name"`
	Suffix              Scalar `json:"suffix"`
	Tin                 Scalar `json:"tin"`
	AddressHouseNo      Scalar `json:"address_house_no"`
	AddressStreet       Scalar `json:"address_street"`
	AddressBarangay     Scalar `json:"address_barangay"`
	AddressMunicipality Scalar `json:"address_municipality"`
	AddressProvince     Scalar `json:"address_province"`
}

// SupersededPayload is a previous record cancelled by this one.
type SupersededPayload struct {
	TdNo            Scalar `json:"td_no"`
	Pin             Scalar `json:"pin"`
	ArpNo           Scalar `json:"arp_no"`
	OwnerName       Scalar `json:"owner_name"`
	AssessedValue   Scalar `json:"assessed_value"`
	Effectivity     Scalar `json:"effectivity"`
	RecordingPerson Scalar `json:"recording_person"`
	Date            Scalar `json:"date"`
}
