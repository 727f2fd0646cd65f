package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"esgweb/internal/dashboard"
	"esgweb/internal/form"
	"esgweb/internal/schema"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	reportScope2 = "scope2"
	reportRisk   = "financialRisk"
)

type scope2ReportData struct {
	Year        int
	GeneratedAt time.Time
	Total       decimal.Decimal
	Records     []schema.Scope2Record
	Monthly     []dashboard.Point
	Categories  []dashboard.Point
}

type riskReportData struct {
	GeneratedAt time.Time
	Risk        schema.FinancialRisk
}

// Report renders a report section and streams it as a paginated A4 PDF
func (p *Pages) Report(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	var (
		data     any
		back     string
		filename string
	)
	switch kind {
	case reportScope2:
		year := intParam(r, "year", p.now().Year())
		back = fmt.Sprintf("/scope2?year=%d", year)
		records, ok := p.Scope2.List(r.Context(), year)
		if !ok {
			p.redirect(w, r, back)
			return
		}
		summary := dashboard.Summarize(year, records, 0)
		data = scope2ReportData{
			Year:        year,
			GeneratedAt: p.now(),
			Total:       summary.Total,
			Records:     records,
			Monthly:     dashboard.Monthly(records),
			Categories:  dashboard.ByCategory(records),
		}
		filename = fmt.Sprintf("scope2-%d.pdf", year)
	case reportRisk:
		back = "/financialRisk"
		var f form.RiskForm
		if err := form.Decode(r, &f); err != nil {
			p.toast(r, schema.ToastError, "Select a partner for the risk report")
			p.redirect(w, r, back)
			return
		}
		if _, ok := f.Ok(); !ok {
			p.toast(r, schema.ToastError, "Select a partner for the risk report")
			p.redirect(w, r, back)
			return
		}
		back = "/financialRisk?partnerId=" + strconv.FormatInt(f.PartnerID, 10)
		risk, ok := p.Risk.Analyze(r.Context(), f.PartnerID, f.FiscalYear)
		if !ok {
			p.redirect(w, r, back)
			return
		}
		data = riskReportData{GeneratedAt: p.now(), Risk: risk}
		filename = fmt.Sprintf("financial-risk-%d-%d.pdf", risk.PartnerID, risk.FiscalYear)
	}

	var html bytes.Buffer
	if err := p.reports[kind].Execute(&html, data); err != nil {
		log.Error().Err(err).Str("report", kind).Msg("couldn't render report html")
		p.toast(r, schema.ToastError, "Couldn't generate the PDF report")
		p.redirect(w, r, back)
		return
	}

	doc, ok := p.Reports.Generate(r.Context(), html.String())
	if !ok {
		p.redirect(w, r, back)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	if _, err := w.Write(doc); err != nil {
		log.Warn().Err(err).Str("report", kind).Msg("couldn't stream report")
	}
}
