package risk_dto

// Item one financial ratio check
type Item struct {
	ItemName    string  `json:"itemName"`
	Description string  `json:"description"`
	ActualValue float64 `json:"actualValue"`
	Threshold   float64 `json:"threshold"`
	AtRisk      bool    `json:"atRisk"`
}

// Response financial risk analysis
type Response struct {
	PartnerID   int64  `json:"partnerId"`
	PartnerName string `json:"partnerName"`
	FiscalYear  int    `json:"fiscalYear"`
	Items       []Item `json:"items"`
}
