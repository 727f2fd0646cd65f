package wrapper

import (
	"context"
	"time"

	"esgweb/internal/dto/partner_dto"
	"esgweb/internal/schema"
)

const (
	dateLayout     = "2006-01-02"
	maxExportPages = 100
)

// PartnerHook partner company calls with loading state and toast notifications
type PartnerHook struct {
	hook
	partnerClient partnerClient
	pageSize      int
}

func NewPartnerHook(partnerClient partnerClient,
	toaster toaster,
	timeout time.Duration,
	pageSize int,
) *PartnerHook {
	return &PartnerHook{
		hook: hook{
			toaster: toaster,
			timeout: timeout,
		},
		partnerClient: partnerClient,
		pageSize:      pageSize,
	}
}

// List first-level listing of partners
func (h *PartnerHook) List(ctx context.Context, page int) (schema.PartnerPage, bool) {
	return h.Fetch(ctx, schema.PartnerQuery{Page: page, Size: h.pageSize})
}

// Search lists partners whose company name matches keyword
func (h *PartnerHook) Search(ctx context.Context, keyword string, page int) (schema.PartnerPage, bool) {
	return h.Fetch(ctx, schema.PartnerQuery{Page: page, Size: h.pageSize, Keyword: keyword})
}

// Fetch paginated fetch with explicit query
func (h *PartnerHook) Fetch(ctx context.Context, query schema.PartnerQuery) (schema.PartnerPage, bool) {
	if query.Page < 0 {
		query.Page = 0
	}
	if query.Size <= 0 {
		query.Size = h.pageSize
	}

	var result schema.PartnerPage
	ok := h.call(ctx, "Couldn't load partner companies", func(ctx context.Context) error {
		page, err := h.partnerClient.ListPartners(ctx, query.Page, query.Size, query.Keyword)
		if err != nil {
			return err
		}
		result = pageToSchema(page)
		return nil
	})
	return result, ok
}

func (h *PartnerHook) Get(ctx context.Context, id int64) (schema.PartnerCompany, bool) {
	var result schema.PartnerCompany
	ok := h.call(ctx, "Couldn't load the partner company", func(ctx context.Context) error {
		partner, err := h.partnerClient.GetPartner(ctx, id)
		if err != nil {
			return err
		}
		result = partnerToSchema(*partner)
		return nil
	})
	return result, ok
}

func (h *PartnerHook) Create(ctx context.Context, partner schema.PartnerCompany) (schema.PartnerCompany, bool) {
	var result schema.PartnerCompany
	ok := h.call(ctx, "Couldn't register the partner company", func(ctx context.Context) error {
		created, err := h.partnerClient.CreatePartner(ctx, partnerToDto(partner))
		if err != nil {
			return err
		}
		result = partnerToSchema(*created)
		return nil
	})
	if ok {
		h.success(ctx, "Partner company "+result.Name+" registered")
	}
	return result, ok
}

func (h *PartnerHook) Update(ctx context.Context, partner schema.PartnerCompany) bool {
	ok := h.call(ctx, "Couldn't update the partner company", func(ctx context.Context) error {
		_, err := h.partnerClient.UpdatePartner(ctx, partner.ID, partnerToDto(partner))
		return err
	})
	if ok {
		h.success(ctx, "Partner company "+partner.Name+" updated")
	}
	return ok
}

func (h *PartnerHook) Delete(ctx context.Context, id int64) bool {
	ok := h.call(ctx, "Couldn't delete the partner company", func(ctx context.Context) error {
		return h.partnerClient.DeletePartner(ctx, id)
	})
	if ok {
		h.success(ctx, "Partner company deleted")
	}
	return ok
}

// All collects every page matching keyword, used by the spreadsheet export
func (h *PartnerHook) All(ctx context.Context, keyword string) ([]schema.PartnerCompany, bool) {
	var result []schema.PartnerCompany
	ok := h.call(ctx, "Couldn't export partner companies", func(ctx context.Context) error {
		var err error
		result, err = h.collect(ctx, keyword)
		return err
	})
	return result, ok
}

// Options every partner for a picker, a failure is left to the page to show
func (h *PartnerHook) Options(ctx context.Context) ([]schema.PartnerCompany, bool) {
	var result []schema.PartnerCompany
	ok := h.load(ctx, "partner options", func(ctx context.Context) error {
		var err error
		result, err = h.collect(ctx, "")
		return err
	})
	return result, ok
}

// Count total number of registered partners
func (h *PartnerHook) Count(ctx context.Context) (int64, bool) {
	var total int64
	ok := h.load(ctx, "partner count", func(ctx context.Context) error {
		page, err := h.partnerClient.ListPartners(ctx, 0, 1, "")
		if err != nil {
			return err
		}
		total = page.TotalElements
		return nil
	})
	return total, ok
}

func (h *PartnerHook) collect(ctx context.Context, keyword string) ([]schema.PartnerCompany, error) {
	var result []schema.PartnerCompany
	for page := 0; page < maxExportPages; page++ {
		resp, err := h.partnerClient.ListPartners(ctx, page, h.pageSize, keyword)
		if err != nil {
			return nil, err
		}
		for _, p := range resp.Content {
			result = append(result, partnerToSchema(p))
		}
		if page+1 >= resp.TotalPages {
			break
		}
	}
	return result, nil
}

func pageToSchema(page *partner_dto.Page) schema.PartnerPage {
	items := make([]schema.PartnerCompany, 0, len(page.Content))
	for _, p := range page.Content {
		items = append(items, partnerToSchema(p))
	}
	return schema.PartnerPage{
		Items:         items,
		Page:          page.Number,
		Size:          page.Size,
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
	}
}

func partnerToSchema(p partner_dto.Partner) schema.PartnerCompany {
	result := schema.PartnerCompany{
		ID:                 p.ID,
		Name:               p.CompanyName,
		RegistrationNumber: p.BusinessNumber,
		CorpCode:           p.CorpCode,
		StockCode:          p.StockCode,
		CEOName:            p.CEOName,
		Address:            p.Address,
		Status:             schema.PartnerStatus(p.Status),
	}
	if t, err := time.Parse(dateLayout, p.ContractStartDate); err == nil {
		result.ContractStartDate = t
	}
	if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		result.CreatedAt = t
	}
	return result
}

func partnerToDto(p schema.PartnerCompany) partner_dto.Partner {
	result := partner_dto.Partner{
		ID:             p.ID,
		CompanyName:    p.Name,
		BusinessNumber: p.RegistrationNumber,
		CorpCode:       p.CorpCode,
		StockCode:      p.StockCode,
		CEOName:        p.CEOName,
		Address:        p.Address,
		Status:         string(p.Status),
	}
	if !p.ContractStartDate.IsZero() {
		result.ContractStartDate = p.ContractStartDate.Format(dateLayout)
	}
	return result
}
