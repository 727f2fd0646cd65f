package handler

import (
	"fmt"
	"net/http"

	"esgweb/internal/catalog"
	"esgweb/internal/form"
	"esgweb/internal/schema"

	"github.com/shopspring/decimal"
)

const maxScope2Rows = 50

type scope2Data struct {
	Form       form.Scope2Form
	Errors     form.Errors
	Emissions  []string
	Total      string
	Categories []catalog.Category
	Year       int
	Records    []schema.Scope2Record
}

func (p *Pages) Scope2Page(w http.ResponseWriter, r *http.Request) {
	now := p.now()
	year := intParam(r, "year", now.Year())

	f := form.Scope2Form{
		ReportingYear:  year,
		ReportingMonth: int(now.Month()),
		Rows:           []form.Scope2Row{{}},
	}
	p.renderScope2(w, r, http.StatusOK, f, nil)
}

func (p *Pages) SubmitScope2(w http.ResponseWriter, r *http.Request) {
	var f form.Scope2Form
	if err := form.Decode(r, &f); err != nil {
		p.renderScope2(w, r, http.StatusBadRequest, form.Scope2Form{Rows: []form.Scope2Row{{}}}, form.Errors{"_": "Couldn't read the form"})
		return
	}

	switch r.PostForm.Get("action") {
	case "addRow":
		if len(f.Rows) < maxScope2Rows {
			f.Rows = append(f.Rows, form.Scope2Row{})
		}
		p.renderScope2(w, r, http.StatusOK, f, nil)
		return
	case "preview":
		p.renderScope2(w, r, http.StatusOK, f, nil)
		return
	}

	if errs, ok := f.Ok(); !ok {
		p.renderScope2(w, r, http.StatusUnprocessableEntity, f, errs)
		return
	}
	report, errs := f.Report(p.Catalog)
	if len(errs) > 0 {
		p.renderScope2(w, r, http.StatusUnprocessableEntity, f, errs)
		return
	}

	if !p.Scope2.Submit(r.Context(), report) {
		p.renderScope2(w, r, http.StatusOK, f, nil)
		return
	}
	p.redirect(w, r, fmt.Sprintf("/scope2?year=%d", report.ReportingYear))
}

func (p *Pages) renderScope2(w http.ResponseWriter, r *http.Request, status int, f form.Scope2Form, errs form.Errors) {
	if len(f.Rows) == 0 {
		f.Rows = []form.Scope2Row{{}}
	}
	year := f.ReportingYear
	if year == 0 {
		year = p.now().Year()
	}

	emissions, total := p.preview(f.Rows)
	records, _ := p.Scope2.Records(r.Context(), year)

	p.render(w, r, status, "scope2", "Scope 2", scope2Data{
		Form:       f,
		Errors:     errs,
		Emissions:  emissions,
		Total:      total.StringFixed(2),
		Categories: p.Catalog.Options(),
		Year:       year,
		Records:    records,
	})
}

// preview computes the emission of every row that already resolves, blank otherwise
func (p *Pages) preview(rows []form.Scope2Row) ([]string, decimal.Decimal) {
	emissions := make([]string, len(rows))
	total := decimal.Zero
	for i, row := range rows {
		quantity, err := decimal.NewFromString(row.Quantity)
		if err != nil {
			continue
		}
		state, err := p.Catalog.Resolve(schema.SelectorState{
			Category:    row.Category,
			Separate:    row.Separate,
			RawMaterial: row.RawMaterial,
			Quantity:    quantity,
		})
		if err != nil {
			continue
		}
		emission := state.Emission()
		emissions[i] = emission.StringFixed(4)
		total = total.Add(emission)
	}
	return emissions, total
}
