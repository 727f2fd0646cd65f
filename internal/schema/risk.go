package schema

// RiskCheck one financial ratio compared against its threshold
type RiskCheck struct {
	Name        string
	Description string
	Actual      float64
	Threshold   float64
	AtRisk      bool
}

// FinancialRisk financial risk analysis of a partner for a fiscal year
type FinancialRisk struct {
	PartnerID   int64
	PartnerName string
	FiscalYear  int
	Checks      []RiskCheck
}

// RiskCount number of checks over threshold
func (f FinancialRisk) RiskCount() int {
	count := 0
	for _, c := range f.Checks {
		if c.AtRisk {
			count++
		}
	}
	return count
}
