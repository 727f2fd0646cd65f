package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

const emissionPlaces = 4

// SelectorState one row of the emission calculator
type SelectorState struct {
	Category       string
	Separate       string
	RawMaterial    string
	Unit           string
	EmissionFactor decimal.Decimal
	Quantity       decimal.Decimal
}

// Emission quantity times emission factor, kgCO2eq
func (s SelectorState) Emission() decimal.Decimal {
	return s.Quantity.Mul(s.EmissionFactor).Round(emissionPlaces)
}

// Scope2Report Scope 2 emissions of a facility for one reporting month
type Scope2Report struct {
	ReportingYear  int
	ReportingMonth int
	FacilityName   string
	Rows           []SelectorState
}

// Total sum of all row emissions
func (r Scope2Report) Total() decimal.Decimal {
	total := decimal.Zero
	for _, row := range r.Rows {
		total = total.Add(row.Emission())
	}
	return total
}

// Scope2Record submitted Scope 2 emission as stored by the backend
type Scope2Record struct {
	ID             int64
	ReportingYear  int
	ReportingMonth int
	FacilityName   string
	Category       string
	RawMaterial    string
	Unit           string
	Quantity       decimal.Decimal
	Emission       decimal.Decimal
	CreatedAt      time.Time
}
