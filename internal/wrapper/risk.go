package wrapper

import (
	"context"
	"time"

	"esgweb/internal/schema"
)

// RiskHook financial risk analysis calls with loading state and toast notifications
type RiskHook struct {
	hook
	riskClient riskClient
}

func NewRiskHook(riskClient riskClient, toaster toaster, timeout time.Duration) *RiskHook {
	return &RiskHook{
		hook: hook{
			toaster: toaster,
			timeout: timeout,
		},
		riskClient: riskClient,
	}
}

func (h *RiskHook) Analyze(ctx context.Context, partnerID int64, year int) (schema.FinancialRisk, bool) {
	var result schema.FinancialRisk
	ok := h.call(ctx, "Couldn't analyze financial risk", func(ctx context.Context) error {
		resp, err := h.riskClient.AnalyzeFinancialRisk(ctx, partnerID, year)
		if err != nil {
			return err
		}
		result = schema.FinancialRisk{
			PartnerID:   resp.PartnerID,
			PartnerName: resp.PartnerName,
			FiscalYear:  resp.FiscalYear,
			Checks:      make([]schema.RiskCheck, 0, len(resp.Items)),
		}
		for _, item := range resp.Items {
			result.Checks = append(result.Checks, schema.RiskCheck{
				Name:        item.ItemName,
				Description: item.Description,
				Actual:      item.ActualValue,
				Threshold:   item.Threshold,
				AtRisk:      item.AtRisk,
			})
		}
		return nil
	})
	return result, ok
}
