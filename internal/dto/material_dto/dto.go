package material_dto

// AssignmentRequest assigns one material to a partner
type AssignmentRequest struct {
	MaterialCode   string `json:"materialCode"`
	MaterialName   string `json:"materialName"`
	Category       string `json:"category,omitempty"`
	Unit           string `json:"unit"`
	EmissionFactor string `json:"emissionFactor,omitempty"`
}

// AssignmentResponse stored material assignment
type AssignmentResponse struct {
	ID             int64  `json:"id"`
	PartnerID      int64  `json:"partnerId"`
	MaterialCode   string `json:"materialCode"`
	MaterialName   string `json:"materialName"`
	Category       string `json:"category,omitempty"`
	Unit           string `json:"unit"`
	EmissionFactor string `json:"emissionFactor,omitempty"`
}

// BatchRequest assigns several materials in one call
type BatchRequest struct {
	Assignments []AssignmentRequest `json:"assignments"`
}

// BatchResponse result of a batch assignment
type BatchResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}
