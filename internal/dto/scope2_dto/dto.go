package scope2_dto

// EmissionRow one calculator row of a Scope 2 submission
type EmissionRow struct {
	Category       string `json:"category"`
	Separate       string `json:"separate"`
	RawMaterial    string `json:"rawMaterial"`
	Unit           string `json:"unit"`
	EmissionFactor string `json:"emissionFactor"`
	Quantity       string `json:"quantity"`
	Emission       string `json:"emission"`
}

// SubmitRequest Scope 2 submission
type SubmitRequest struct {
	ReportingYear  int           `json:"reportingYear"`
	ReportingMonth int           `json:"reportingMonth"`
	FacilityName   string        `json:"facilityName"`
	Rows           []EmissionRow `json:"rows"`
}

// Record stored Scope 2 emission
type Record struct {
	ID             int64  `json:"id"`
	ReportingYear  int    `json:"reportingYear"`
	ReportingMonth int    `json:"reportingMonth"`
	FacilityName   string `json:"facilityName"`
	Category       string `json:"category"`
	RawMaterial    string `json:"rawMaterial"`
	Unit           string `json:"unit"`
	Quantity       string `json:"quantity"`
	Emission       string `json:"emission"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// ListResponse Scope 2 records of a reporting year
type ListResponse struct {
	Records []Record `json:"records"`
}
