package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"esgweb/internal/dto/material_dto"
	"esgweb/internal/dto/partner_dto"
	"esgweb/internal/dto/risk_dto"
	"esgweb/internal/dto/scope2_dto"
	"esgweb/internal/schema"
	"esgweb/internal/wrapper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackendDown = errors.New("dial tcp 127.0.0.1:8081: connect: connection refused")

// unreachableBackend answers every call with a transport error except GetPartner
type unreachableBackend struct{}

func (unreachableBackend) ListPartners(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error) {
	return nil, errBackendDown
}

func (unreachableBackend) GetPartner(ctx context.Context, id int64) (*partner_dto.Partner, error) {
	return &partner_dto.Partner{ID: id, CompanyName: "Hankook Steel", BusinessNumber: "1234567890"}, nil
}

func (unreachableBackend) CreatePartner(ctx context.Context, request partner_dto.Partner) (*partner_dto.Partner, error) {
	return nil, errBackendDown
}

func (unreachableBackend) UpdatePartner(ctx context.Context, id int64, request partner_dto.Partner) (*partner_dto.Partner, error) {
	return nil, errBackendDown
}

func (unreachableBackend) DeletePartner(ctx context.Context, id int64) error {
	return errBackendDown
}

func (unreachableBackend) AssignMaterial(ctx context.Context, partnerID int64, request material_dto.AssignmentRequest) (*material_dto.AssignmentResponse, error) {
	return nil, errBackendDown
}

func (unreachableBackend) AssignMaterials(ctx context.Context, partnerID int64, request material_dto.BatchRequest) (*material_dto.BatchResponse, error) {
	return nil, errBackendDown
}

func (unreachableBackend) ListMaterials(ctx context.Context, partnerID int64) (*material_dto.BatchResponse, error) {
	return nil, errBackendDown
}

func (unreachableBackend) SubmitScope2(ctx context.Context, request scope2_dto.SubmitRequest) (*scope2_dto.ListResponse, error) {
	return nil, errBackendDown
}

func (unreachableBackend) ListScope2(ctx context.Context, year int) (*scope2_dto.ListResponse, error) {
	return nil, errBackendDown
}

func (unreachableBackend) AnalyzeFinancialRisk(ctx context.Context, partnerID int64, year int) (*risk_dto.Response, error) {
	return nil, errBackendDown
}

func withUnreachableBackend(toasts *toastStoreMock) func(*Deps) {
	return func(d *Deps) {
		backend := unreachableBackend{}
		d.Partners = wrapper.NewPartnerHook(backend, toasts, time.Second, 20)
		d.Materials = wrapper.NewMaterialHook(backend, toasts, time.Second)
		d.Scope2 = wrapper.NewScope2Hook(backend, toasts, time.Second)
		d.Risk = wrapper.NewRiskHook(backend, toasts, time.Second)
	}
}

func TestFailedAction_QueuesOneErrorToast(t *testing.T) {
	testCases := []struct {
		name            string
		method          string
		target          string
		values          url.Values
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "scope 2 submit",
			method:          http.MethodPost,
			target:          "/scope2",
			values:          scope2Values(),
			expectedStatus:  http.StatusOK,
			expectedMessage: "Couldn't save Scope 2 emissions",
		},
		{
			name:            "partner update",
			method:          http.MethodPost,
			target:          "/managePartner/7",
			values:          partnerValues(),
			expectedStatus:  http.StatusOK,
			expectedMessage: "Couldn't update the partner company",
		},
		{
			name:            "risk analysis",
			method:          http.MethodPost,
			target:          "/financialRisk",
			values:          url.Values{"partnerId": {"3"}, "fiscalYear": {"2023"}},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Couldn't analyze financial risk",
		},
		{
			name:            "dashboard",
			method:          http.MethodGet,
			target:          "/?year=2023",
			expectedStatus:  http.StatusOK,
			expectedMessage: "Couldn't load Scope 2 emissions",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toasts := &toastStoreMock{}
			f := newFixture(t, withUnreachableBackend(toasts))

			w := f.do(tc.method, tc.target, tc.values)

			require.Equal(t, tc.expectedStatus, w.Code)
			assert.Empty(t, w.Header().Get("Location"))
			require.Len(t, toasts.pushed, 1)
			assert.Equal(t, schema.ToastError, toasts.pushed[0].Level)
			assert.Contains(t, toasts.pushed[0].Message, tc.expectedMessage)
		})
	}
}

func TestChart_UnreachableBackendQueuesNoToast(t *testing.T) {
	toasts := &toastStoreMock{}
	f := newFixture(t, withUnreachableBackend(toasts))

	w := f.do(http.MethodGet, "/charts/monthly?year=2024", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, toasts.pushed)
}
