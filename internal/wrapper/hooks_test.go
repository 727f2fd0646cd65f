package wrapper

import (
	"context"
	"errors"
	"testing"
	"time"

	"esgweb/internal/dto/material_dto"
	"esgweb/internal/dto/risk_dto"
	"esgweb/internal/dto/scope2_dto"
	"esgweb/internal/schema"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialHook_Assign(t *testing.T) {
	toaster := &toasterMock{}
	h := NewMaterialHook(&materialClientMock{
		assignFunc: func(ctx context.Context, partnerID int64, request material_dto.AssignmentRequest) (*material_dto.AssignmentResponse, error) {
			assert.Equal(t, int64(3), partnerID)
			assert.Equal(t, "2.31", request.EmissionFactor)
			return &material_dto.AssignmentResponse{ID: 1}, nil
		},
	}, toaster, time.Second)

	ok := h.Assign(context.Background(), schema.MaterialAssignment{
		PartnerID:      3,
		MaterialCode:   "STL-001",
		MaterialName:   "Hot rolled coil",
		EmissionFactor: decimal.NewNullDecimal(decimal.RequireFromString("2.31")),
	})
	assert.True(t, ok)
	assert.Len(t, toaster.byLevel(schema.ToastSuccess), 1)
}

func TestMaterialHook_AssignBatch(t *testing.T) {
	toaster := &toasterMock{}
	h := NewMaterialHook(&materialClientMock{
		batchFunc: func(ctx context.Context, partnerID int64, request material_dto.BatchRequest) (*material_dto.BatchResponse, error) {
			require.Len(t, request.Assignments, 2)
			assert.Empty(t, request.Assignments[1].EmissionFactor)
			return nil, errors.New("batch rejected")
		},
	}, toaster, time.Second)

	ok := h.AssignBatch(context.Background(), 3, []schema.MaterialAssignment{
		{MaterialCode: "A"},
		{MaterialCode: "B"},
	})
	assert.False(t, ok)
	assert.Len(t, toaster.byLevel(schema.ToastError), 1)
	assert.False(t, h.Loading())
}

func TestMaterialHook_List(t *testing.T) {
	h := NewMaterialHook(&materialClientMock{
		listFunc: func(ctx context.Context, partnerID int64) (*material_dto.BatchResponse, error) {
			return &material_dto.BatchResponse{Assignments: []material_dto.AssignmentResponse{
				{ID: 1, PartnerID: partnerID, MaterialCode: "A", EmissionFactor: "1.5"},
				{ID: 2, PartnerID: partnerID, MaterialCode: "B"},
			}}, nil
		},
	}, &toasterMock{}, time.Second)

	list, ok := h.List(context.Background(), 9)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.True(t, list[0].EmissionFactor.Valid)
	assert.False(t, list[1].EmissionFactor.Valid)
}

func TestScope2Hook_Submit(t *testing.T) {
	toaster := &toasterMock{}
	h := NewScope2Hook(&scope2ClientMock{
		submitFunc: func(ctx context.Context, request scope2_dto.SubmitRequest) (*scope2_dto.ListResponse, error) {
			require.Len(t, request.Rows, 1)
			assert.Equal(t, "45.94", request.Rows[0].Emission)
			return &scope2_dto.ListResponse{}, nil
		},
	}, toaster, time.Second)

	ok := h.Submit(context.Background(), schema.Scope2Report{
		ReportingYear:  2024,
		ReportingMonth: 5,
		FacilityName:   "Ulsan plant",
		Rows: []schema.SelectorState{{
			Category:       "electricity",
			EmissionFactor: decimal.RequireFromString("0.4594"),
			Quantity:       decimal.NewFromInt(100),
		}},
	})
	require.True(t, ok)
	success := toaster.byLevel(schema.ToastSuccess)
	require.Len(t, success, 1)
	assert.Contains(t, success[0].Message, "45.94")
}

func TestScope2Hook_List(t *testing.T) {
	h := NewScope2Hook(&scope2ClientMock{
		listFunc: func(ctx context.Context, year int) (*scope2_dto.ListResponse, error) {
			return &scope2_dto.ListResponse{Records: []scope2_dto.Record{
				{ID: 1, ReportingYear: year, ReportingMonth: 1, Quantity: "10", Emission: "4.594"},
				{ID: 2, ReportingYear: year, ReportingMonth: 2, Quantity: "bad", Emission: ""},
			}}, nil
		},
	}, &toasterMock{}, time.Second)

	records, ok := h.List(context.Background(), 2024)
	require.True(t, ok)
	require.Len(t, records, 2)
	assert.Equal(t, "4.594", records[0].Emission.String())
	assert.True(t, records[1].Quantity.IsZero())
}

func TestRiskHook_Analyze(t *testing.T) {
	toaster := &toasterMock{}
	h := NewRiskHook(&riskClientMock{
		analyzeFunc: func(ctx context.Context, partnerID int64, year int) (*risk_dto.Response, error) {
			return &risk_dto.Response{
				PartnerID:   partnerID,
				PartnerName: "Hanil Steel",
				FiscalYear:  year,
				Items: []risk_dto.Item{
					{ItemName: "Debt ratio", ActualValue: 250, Threshold: 200, AtRisk: true},
					{ItemName: "Current ratio", ActualValue: 1.4, Threshold: 1, AtRisk: false},
				},
			}, nil
		},
	}, toaster, time.Second)

	risk, ok := h.Analyze(context.Background(), 5, 2023)
	require.True(t, ok)
	assert.Equal(t, "Hanil Steel", risk.PartnerName)
	assert.Equal(t, 1, risk.RiskCount())
	assert.Empty(t, toaster.toasts)
}

func TestRiskHook_AnalyzeFailure(t *testing.T) {
	toaster := &toasterMock{}
	h := NewRiskHook(&riskClientMock{
		analyzeFunc: func(ctx context.Context, partnerID int64, year int) (*risk_dto.Response, error) {
			return nil, errors.New("no statements")
		},
	}, toaster, time.Second)

	_, ok := h.Analyze(context.Background(), 5, 2023)
	assert.False(t, ok)
	assert.Len(t, toaster.byLevel(schema.ToastError), 1)
}

func TestSideLoads_FailWithoutToast(t *testing.T) {
	down := errors.New("connection refused")
	toaster := &toasterMock{}

	scope2 := NewScope2Hook(&scope2ClientMock{
		listFunc: func(ctx context.Context, year int) (*scope2_dto.ListResponse, error) { return nil, down },
	}, toaster, time.Second)
	materials := NewMaterialHook(&materialClientMock{
		listFunc: func(ctx context.Context, partnerID int64) (*material_dto.BatchResponse, error) { return nil, down },
	}, toaster, time.Second)

	records, ok := scope2.Records(context.Background(), 2024)
	assert.False(t, ok)
	assert.Empty(t, records)
	assigned, ok := materials.Assigned(context.Background(), 3)
	assert.False(t, ok)
	assert.Empty(t, assigned)

	assert.Empty(t, toaster.toasts)
	assert.False(t, scope2.Loading())
	assert.False(t, materials.Loading())

	_, ok = scope2.List(context.Background(), 2024)
	assert.False(t, ok)
	assert.Len(t, toaster.byLevel(schema.ToastError), 1)
}
