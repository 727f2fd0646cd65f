package handler

import (
	"net/http"

	"esgweb/internal/form"
	"esgweb/internal/schema"
)

type riskData struct {
	Form     form.RiskForm
	Errors   form.Errors
	Partners []schema.PartnerCompany
	// PartnersUnavailable the picker couldn't be filled
	PartnersUnavailable bool
	Result              *schema.FinancialRisk
}

// RiskPage shows the analysis form, a GET with partnerId or a POST runs the analysis
func (p *Pages) RiskPage(w http.ResponseWriter, r *http.Request) {
	partners, ok := p.Partners.Options(r.Context())
	data := riskData{Partners: partners, PartnersUnavailable: !ok}

	if r.Method == http.MethodGet && r.URL.Query().Get("partnerId") == "" {
		p.render(w, r, http.StatusOK, "risk", "Financial risk", data)
		return
	}

	if err := form.Decode(r, &data.Form); err != nil {
		data.Errors = form.Errors{"partnerId": "Select a partner"}
		p.render(w, r, http.StatusBadRequest, "risk", "Financial risk", data)
		return
	}
	if errs, ok := data.Form.Ok(); !ok {
		data.Errors = errs
		p.render(w, r, http.StatusUnprocessableEntity, "risk", "Financial risk", data)
		return
	}

	if risk, ok := p.Risk.Analyze(r.Context(), data.Form.PartnerID, data.Form.FiscalYear); ok {
		data.Result = &risk
	}
	p.render(w, r, http.StatusOK, "risk", "Financial risk", data)
}
