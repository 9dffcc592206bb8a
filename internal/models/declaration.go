package models

// TaxDeclaration is the flat declarant form the assessor fills in when a
// Tax Declaration is printed. Non-empty values override the FAAS record.
// Binding tags are enforced by gin on the HTTP path and by the CLI.
type TaxDeclaration struct {
	TdNo                  string  `json:"td_no" binding:"max=50"`
	OwnerName             string  `json:"owner_name" binding:"max=250"`
	OwnerTin              string  `json:"owner_tin" binding:"max=20"`
	OwnerAddress          string  `json:"owner_address" binding:"max=500"`
	OwnerTel              string  `json:"owner_tel" binding:"max=30"`
	AdminName             string  `json:"admin_name" binding:"max=250"`
	AdminTin              string  `json:"admin_tin" binding:"max=20"`
	AdminAddress          string  `json:"admin_address" binding:"max=500"`
	AdminTel              string  `json:"admin_tel" binding:"max=30"`
	OctTctCloaNo          string  `json:"oct_tct_cloa_no" binding:"max=50"`
	OctDate               string  `json:"oct_date" binding:"max=30"`
	CctNo                 string  `json:"cct_no" binding:"max=50"`
	SurveyNo              string  `json:"survey_no" binding:"max=50"`
	LotNo                 string  `json:"lot_no" binding:"max=50"`
	BlockNo               string  `json:"block_no" binding:"max=50"`
	North                 string  `json:"north" binding:"max=250"`
	South                 string  `json:"south" binding:"max=250"`
	East                  string  `json:"east" binding:"max=250"`
	West                  string  `json:"west" binding:"max=250"`
	EffectivityQuarter    int     `json:"effectivity_quarter" binding:"omitempty,min=1,max=4"`
	EffectivityYear       int     `json:"effectivity_year" binding:"omitempty,gte=1900,lte=9999"`
	CancelsTdNo           string  `json:"cancels_td_no" binding:"max=50"`
	PreviousOwner         string  `json:"previous_owner" binding:"max=250"`
	PreviousAssessedValue float64 `json:"previous_assessed_value" binding:"gte=0"`
	Memoranda             string  `json:"memoranda" binding:"max=2000"`
	ApprovedBy            string  `json:"approved_by" binding:"max=250"`
	ApprovedTitle         string  `json:"approved_title" binding:"max=250"`
}
