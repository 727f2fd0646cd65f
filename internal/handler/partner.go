package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"esgweb/internal/export"
	"esgweb/internal/form"
	"esgweb/internal/schema"
	"esgweb/internal/service"

	"github.com/rs/zerolog/log"
)

const batchRows = 3

type partnerListData struct {
	Keyword  string
	Page     schema.PartnerPage
	Registry map[string]schema.RegistryRecord
}

type partnerFormData struct {
	Form   form.PartnerForm
	Errors form.Errors
}

type partnerDetailData struct {
	Partner        schema.PartnerCompany
	Registry       schema.RegistryRecord
	Form           form.PartnerForm
	Errors         form.Errors
	Materials      []schema.MaterialAssignment
	Material       form.MaterialForm
	MaterialErrors form.Errors
	Batch          form.MaterialBatchForm
	BatchErrors    form.Errors
}

type searchItem struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
}

type searchResponse struct {
	Items      []searchItem `json:"items"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
}

func (p *Pages) PartnerList(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
	page := max(intParam(r, "page", 0), 0)

	var result schema.PartnerPage
	if keyword != "" {
		result, _ = p.Partners.Search(r.Context(), keyword, page)
	} else {
		result, _ = p.Partners.List(r.Context(), page)
	}

	p.render(w, r, http.StatusOK, "partners", "Partner companies", partnerListData{
		Keyword:  keyword,
		Page:     result,
		Registry: p.verify(r.Context(), result.Items...),
	})
}

// PartnerSearch keyword search used by partner pickers
func (p *Pages) PartnerSearch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	result, ok := p.Partners.Search(r.Context(), strings.TrimSpace(r.URL.Query().Get("keyword")), max(intParam(r, "page", 0), 0))
	if !ok {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"partner search failed"}`))
		return
	}

	response := searchResponse{
		Items:      make([]searchItem, 0, len(result.Items)),
		Page:       result.Page,
		TotalPages: result.TotalPages,
	}
	for _, item := range result.Items {
		response.Items = append(response.Items, searchItem{ID: item.ID, Name: item.Name, RegistrationNumber: item.RegistrationNumber})
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("couldn't write partner search response")
	}
}

func (p *Pages) PartnerExport(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))

	partners, ok := p.Partners.All(r.Context(), keyword)
	if !ok {
		p.redirect(w, r, "/managePartner")
		return
	}
	data, err := export.Partners(partners)
	if err != nil {
		log.Error().Err(err).Msg("couldn't build partner export")
		p.toast(r, schema.ToastError, "Couldn't export partner companies")
		p.redirect(w, r, "/managePartner")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="partners.xlsx"`)
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	_, _ = w.Write(data)
}

func (p *Pages) NewPartnerPage(w http.ResponseWriter, r *http.Request) {
	f := form.PartnerForm{ContractStartDate: p.now().Format("2006-01-02"), Status: string(schema.PartnerActive)}
	p.render(w, r, http.StatusOK, "partner_new", "Register partner", partnerFormData{Form: f})
}

func (p *Pages) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var f form.PartnerForm
	if err := form.Decode(r, &f); err != nil {
		p.render(w, r, http.StatusBadRequest, "partner_new", "Register partner", partnerFormData{Errors: form.Errors{"companyName": "Couldn't read the form"}})
		return
	}
	if errs, ok := f.Ok(); !ok {
		p.render(w, r, http.StatusUnprocessableEntity, "partner_new", "Register partner", partnerFormData{Form: f, Errors: errs})
		return
	}

	created, ok := p.Partners.Create(r.Context(), f.Partner(0))
	if !ok {
		p.render(w, r, http.StatusOK, "partner_new", "Register partner", partnerFormData{Form: f})
		return
	}
	p.redirect(w, r, fmt.Sprintf("/managePartner/%d", created.ID))
}

func (p *Pages) PartnerDetail(w http.ResponseWriter, r *http.Request) {
	partner, ok := p.Partners.Get(r.Context(), idParam(r))
	if !ok {
		p.redirect(w, r, "/managePartner")
		return
	}
	p.renderDetail(w, r, http.StatusOK, partnerDetailData{
		Partner: partner,
		Form:    form.PartnerFormFrom(partner),
	})
}

func (p *Pages) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	partner, ok := p.Partners.Get(r.Context(), id)
	if !ok {
		p.redirect(w, r, "/managePartner")
		return
	}

	var f form.PartnerForm
	if err := form.Decode(r, &f); err != nil {
		p.renderDetail(w, r, http.StatusBadRequest, partnerDetailData{Partner: partner, Form: form.PartnerFormFrom(partner), Errors: form.Errors{"companyName": "Couldn't read the form"}})
		return
	}
	if errs, ok := f.Ok(); !ok {
		p.renderDetail(w, r, http.StatusUnprocessableEntity, partnerDetailData{Partner: partner, Form: f, Errors: errs})
		return
	}

	if !p.Partners.Update(r.Context(), f.Partner(id)) {
		p.renderDetail(w, r, http.StatusOK, partnerDetailData{Partner: partner, Form: f})
		return
	}
	p.redirect(w, r, fmt.Sprintf("/managePartner/%d", id))
}

func (p *Pages) DeletePartner(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if !p.Partners.Delete(r.Context(), id) {
		p.redirect(w, r, fmt.Sprintf("/managePartner/%d", id))
		return
	}
	p.redirect(w, r, "/managePartner")
}

func (p *Pages) AssignMaterial(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)

	var f form.MaterialForm
	decodeErr := form.Decode(r, &f)
	errs, valid := f.Ok()
	if decodeErr != nil || !valid {
		partner, ok := p.Partners.Get(r.Context(), id)
		if !ok {
			p.redirect(w, r, "/managePartner")
			return
		}
		p.renderDetail(w, r, http.StatusUnprocessableEntity, partnerDetailData{
			Partner:        partner,
			Form:           form.PartnerFormFrom(partner),
			Material:       f,
			MaterialErrors: errs,
		})
		return
	}

	p.Materials.Assign(r.Context(), f.Assignment(id))
	p.redirect(w, r, fmt.Sprintf("/managePartner/%d", id))
}

func (p *Pages) AssignMaterials(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)

	var f form.MaterialBatchForm
	decodeErr := form.Decode(r, &f)
	f.Compact()
	errs, valid := f.Ok()
	if decodeErr != nil || !valid {
		partner, ok := p.Partners.Get(r.Context(), id)
		if !ok {
			p.redirect(w, r, "/managePartner")
			return
		}
		p.renderDetail(w, r, http.StatusUnprocessableEntity, partnerDetailData{
			Partner:     partner,
			Form:        form.PartnerFormFrom(partner),
			Batch:       f,
			BatchErrors: errs,
		})
		return
	}

	p.Materials.AssignBatch(r.Context(), id, f.ToAssignments(id))
	p.redirect(w, r, fmt.Sprintf("/managePartner/%d", id))
}

func (p *Pages) renderDetail(w http.ResponseWriter, r *http.Request, status int, data partnerDetailData) {
	data.Materials, _ = p.Materials.Assigned(r.Context(), data.Partner.ID)
	data.Registry = p.verify(r.Context(), data.Partner)[data.Partner.RegistrationNumber]
	for len(data.Batch.Assignments) < batchRows {
		data.Batch.Assignments = append(data.Batch.Assignments, form.MaterialForm{})
	}
	p.render(w, r, status, "partner_detail", data.Partner.Name, data)
}

// verify resolves partners in the DART registry keyed by their registration number as shown,
// lookup failures only degrade the badge
func (p *Pages) verify(ctx context.Context, partners ...schema.PartnerCompany) map[string]schema.RegistryRecord {
	result := make(map[string]schema.RegistryRecord, len(partners))
	if len(partners) == 0 {
		return result
	}

	records := make([]schema.RegistryRecord, 0, len(partners))
	for _, partner := range partners {
		records = append(records, schema.RegistryRecord{RegistrationNumber: partner.RegistrationNumber})
	}

	ctx, cancel := context.WithTimeout(ctx, p.RegistryTimeout)
	defer cancel()

	found, err := p.Registry.Get(ctx, records)
	if err != nil {
		log.Warn().Err(err).Int("partners", len(partners)).Msg("registry verification unavailable")
		return result
	}
	byNumber := make(map[string]schema.RegistryRecord, len(found))
	for _, record := range found {
		byNumber[record.RegistrationNumber] = record
	}
	for _, partner := range partners {
		if record, ok := byNumber[service.NormalizeRegistrationNumber(partner.RegistrationNumber)]; ok {
			result[partner.RegistrationNumber] = record
		}
	}
	return result
}
