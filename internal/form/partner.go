package form

import (
	"strings"
	"time"

	"esgweb/internal/schema"
)

// PartnerForm registration and update form of a partner company
type PartnerForm struct {
	Name               string `form:"companyName" validate:"required,max=100"`
	RegistrationNumber string `form:"businessNumber" validate:"required,regnum"`
	CorpCode           string `form:"corpCode" validate:"omitempty,len=8,numeric"`
	StockCode          string `form:"stockCode" validate:"omitempty,len=6,numeric"`
	CEOName            string `form:"ceoName" validate:"max=50"`
	Address            string `form:"address" validate:"max=200"`
	ContractStartDate  string `form:"contractStartDate" validate:"required,datetime=2006-01-02"`
	Status             string `form:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (f *PartnerForm) Ok() (Errors, bool) {
	f.Name = strings.TrimSpace(f.Name)
	f.RegistrationNumber = strings.TrimSpace(f.RegistrationNumber)
	f.CorpCode = strings.TrimSpace(f.CorpCode)
	return Validate(f)
}

// Partner converts a validated form, the registration number is stored as digits only
func (f *PartnerForm) Partner(id int64) schema.PartnerCompany {
	start, _ := time.Parse(dateLayout, f.ContractStartDate)
	status := schema.PartnerStatus(f.Status)
	if status == "" {
		status = schema.PartnerActive
	}
	return schema.PartnerCompany{
		ID:                 id,
		Name:               f.Name,
		RegistrationNumber: digitsOnly(f.RegistrationNumber),
		CorpCode:           f.CorpCode,
		StockCode:          f.StockCode,
		CEOName:            strings.TrimSpace(f.CEOName),
		Address:            strings.TrimSpace(f.Address),
		ContractStartDate:  start,
		Status:             status,
	}
}

func PartnerFormFrom(p schema.PartnerCompany) PartnerForm {
	f := PartnerForm{
		Name:               p.Name,
		RegistrationNumber: p.RegistrationNumber,
		CorpCode:           p.CorpCode,
		StockCode:          p.StockCode,
		CEOName:            p.CEOName,
		Address:            p.Address,
		Status:             string(p.Status),
	}
	if !p.ContractStartDate.IsZero() {
		f.ContractStartDate = p.ContractStartDate.Format(dateLayout)
	}
	return f
}
