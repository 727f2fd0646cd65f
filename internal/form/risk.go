package form

type RiskForm struct {
	PartnerID  int64 `form:"partnerId" validate:"required,gt=0"`
	FiscalYear int   `form:"fiscalYear" validate:"omitempty,gte=2000,lte=2100"`
}

func (f *RiskForm) Ok() (Errors, bool) {
	return Validate(f)
}
