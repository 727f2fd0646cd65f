package wrapper

import (
	"context"
	"time"

	"esgweb/internal/dto/scope2_dto"
	"esgweb/internal/schema"

	"github.com/shopspring/decimal"
)

// Scope2Hook Scope 2 emission calls with loading state and toast notifications
type Scope2Hook struct {
	hook
	scope2Client scope2Client
}

func NewScope2Hook(scope2Client scope2Client, toaster toaster, timeout time.Duration) *Scope2Hook {
	return &Scope2Hook{
		hook: hook{
			toaster: toaster,
			timeout: timeout,
		},
		scope2Client: scope2Client,
	}
}

func (h *Scope2Hook) Submit(ctx context.Context, report schema.Scope2Report) bool {
	ok := h.call(ctx, "Couldn't save Scope 2 emissions", func(ctx context.Context) error {
		_, err := h.scope2Client.SubmitScope2(ctx, reportToDto(report))
		return err
	})
	if ok {
		h.success(ctx, "Scope 2 emissions saved: "+report.Total().StringFixed(2)+" kgCO2eq")
	}
	return ok
}

func (h *Scope2Hook) List(ctx context.Context, year int) ([]schema.Scope2Record, bool) {
	var result []schema.Scope2Record
	ok := h.call(ctx, "Couldn't load Scope 2 emissions", func(ctx context.Context) error {
		var err error
		result, err = h.list(ctx, year)
		return err
	})
	return result, ok
}

// Records same as List without a toast, for the records shown beside the form and in charts
func (h *Scope2Hook) Records(ctx context.Context, year int) ([]schema.Scope2Record, bool) {
	var result []schema.Scope2Record
	ok := h.load(ctx, "scope 2 records", func(ctx context.Context) error {
		var err error
		result, err = h.list(ctx, year)
		return err
	})
	return result, ok
}

func (h *Scope2Hook) list(ctx context.Context, year int) ([]schema.Scope2Record, error) {
	resp, err := h.scope2Client.ListScope2(ctx, year)
	if err != nil {
		return nil, err
	}
	return recordsToSchema(resp.Records), nil
}

func reportToDto(report schema.Scope2Report) scope2_dto.SubmitRequest {
	rows := make([]scope2_dto.EmissionRow, 0, len(report.Rows))
	for _, r := range report.Rows {
		rows = append(rows, scope2_dto.EmissionRow{
			Category:       r.Category,
			Separate:       r.Separate,
			RawMaterial:    r.RawMaterial,
			Unit:           r.Unit,
			EmissionFactor: r.EmissionFactor.String(),
			Quantity:       r.Quantity.String(),
			Emission:       r.Emission().String(),
		})
	}
	return scope2_dto.SubmitRequest{
		ReportingYear:  report.ReportingYear,
		ReportingMonth: report.ReportingMonth,
		FacilityName:   report.FacilityName,
		Rows:           rows,
	}
}

func recordsToSchema(records []scope2_dto.Record) []schema.Scope2Record {
	result := make([]schema.Scope2Record, 0, len(records))
	for _, r := range records {
		record := schema.Scope2Record{
			ID:             r.ID,
			ReportingYear:  r.ReportingYear,
			ReportingMonth: r.ReportingMonth,
			FacilityName:   r.FacilityName,
			Category:       r.Category,
			RawMaterial:    r.RawMaterial,
			Unit:           r.Unit,
			Quantity:       decimalOrZero(r.Quantity),
			Emission:       decimalOrZero(r.Emission),
		}
		if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
			record.CreatedAt = t
		}
		result = append(result, record)
	}
	return result
}

func decimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
