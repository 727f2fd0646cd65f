package form

import (
	"strings"

	"esgweb/internal/schema"

	"github.com/shopspring/decimal"
)

type MaterialForm struct {
	MaterialCode   string `form:"materialCode" validate:"required,max=50"`
	MaterialName   string `form:"materialName" validate:"required,max=100"`
	Category       string `form:"category" validate:"max=50"`
	Unit           string `form:"unit" validate:"required,max=20"`
	EmissionFactor string `form:"emissionFactor" validate:"omitempty,numeric"`
}

func (f *MaterialForm) Ok() (Errors, bool) {
	return Validate(f)
}

func (f *MaterialForm) Assignment(partnerID int64) schema.MaterialAssignment {
	a := schema.MaterialAssignment{
		PartnerID:    partnerID,
		MaterialCode: strings.TrimSpace(f.MaterialCode),
		MaterialName: strings.TrimSpace(f.MaterialName),
		Category:     strings.TrimSpace(f.Category),
		Unit:         strings.TrimSpace(f.Unit),
	}
	if factor, err := decimal.NewFromString(f.EmissionFactor); err == nil {
		a.EmissionFactor = decimal.NewNullDecimal(factor)
	}
	return a
}

// MaterialBatchForm several assignments submitted at once
type MaterialBatchForm struct {
	Assignments []MaterialForm `form:"assignments" validate:"required,min=1,dive"`
}

func (f *MaterialBatchForm) Ok() (Errors, bool) {
	return Validate(f)
}

func (f *MaterialBatchForm) ToAssignments(partnerID int64) []schema.MaterialAssignment {
	result := make([]schema.MaterialAssignment, 0, len(f.Assignments))
	for i := range f.Assignments {
		result = append(result, f.Assignments[i].Assignment(partnerID))
	}
	return result
}

// Compact drops rows left entirely blank
func (f *MaterialBatchForm) Compact() {
	kept := f.Assignments[:0]
	for _, a := range f.Assignments {
		if strings.TrimSpace(a.MaterialCode+a.MaterialName+a.Category+a.Unit+a.EmissionFactor) == "" {
			continue
		}
		kept = append(kept, a)
	}
	f.Assignments = kept
}
