package form

import (
	"fmt"

	"esgweb/internal/schema"

	"github.com/shopspring/decimal"
)

// Scope2Row one calculator row of the Scope 2 form
type Scope2Row struct {
	Category    string `form:"category" validate:"required"`
	Separate    string `form:"separate" validate:"required"`
	RawMaterial string `form:"rawMaterial" validate:"required"`
	Quantity    string `form:"quantity" validate:"required,numeric"`
}

type Scope2Form struct {
	ReportingYear  int         `form:"reportingYear" validate:"required,gte=2000,lte=2100"`
	ReportingMonth int         `form:"reportingMonth" validate:"required,gte=1,lte=12"`
	FacilityName   string      `form:"facilityName" validate:"required,max=100"`
	Rows           []Scope2Row `form:"rows" validate:"required,min=1,dive"`
}

func (f *Scope2Form) Ok() (Errors, bool) {
	return Validate(f)
}

// Report resolves every row against the emission factor catalog
func (f *Scope2Form) Report(resolver selectorResolver) (schema.Scope2Report, Errors) {
	report := schema.Scope2Report{
		ReportingYear:  f.ReportingYear,
		ReportingMonth: f.ReportingMonth,
		FacilityName:   f.FacilityName,
		Rows:           make([]schema.SelectorState, 0, len(f.Rows)),
	}
	errs := Errors{}
	for i, row := range f.Rows {
		quantity, err := decimal.NewFromString(row.Quantity)
		if err != nil {
			errs[fmt.Sprintf("rows[%d].quantity", i)] = "Enter a number"
			continue
		}
		if quantity.IsNegative() {
			errs[fmt.Sprintf("rows[%d].quantity", i)] = "Must be at least 0"
			continue
		}
		state, err := resolver.Resolve(schema.SelectorState{
			Category:    row.Category,
			Separate:    row.Separate,
			RawMaterial: row.RawMaterial,
			Quantity:    quantity,
		})
		if err != nil {
			errs[fmt.Sprintf("rows[%d].rawMaterial", i)] = "Select a listed raw material"
			continue
		}
		report.Rows = append(report.Rows, state)
	}
	return report, errs
}
