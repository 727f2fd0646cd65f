package wrapper

import (
	"context"
	"sync"

	"esgweb/internal/dto/material_dto"
	"esgweb/internal/dto/partner_dto"
	"esgweb/internal/dto/risk_dto"
	"esgweb/internal/dto/scope2_dto"
	"esgweb/internal/schema"
)

type toasterMock struct {
	mu     sync.Mutex
	toasts []schema.Toast
}

func (m *toasterMock) Push(ctx context.Context, toast schema.Toast) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toasts = append(m.toasts, toast)
}

func (m *toasterMock) byLevel(level schema.ToastLevel) []schema.Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []schema.Toast
	for _, t := range m.toasts {
		if t.Level == level {
			result = append(result, t)
		}
	}
	return result
}

type partnerClientMock struct {
	listFunc   func(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error)
	getFunc    func(ctx context.Context, id int64) (*partner_dto.Partner, error)
	createFunc func(ctx context.Context, request partner_dto.Partner) (*partner_dto.Partner, error)
	updateFunc func(ctx context.Context, id int64, request partner_dto.Partner) (*partner_dto.Partner, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *partnerClientMock) ListPartners(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error) {
	return m.listFunc(ctx, page, size, keyword)
}

func (m *partnerClientMock) GetPartner(ctx context.Context, id int64) (*partner_dto.Partner, error) {
	return m.getFunc(ctx, id)
}

func (m *partnerClientMock) CreatePartner(ctx context.Context, request partner_dto.Partner) (*partner_dto.Partner, error) {
	return m.createFunc(ctx, request)
}

func (m *partnerClientMock) UpdatePartner(ctx context.Context, id int64, request partner_dto.Partner) (*partner_dto.Partner, error) {
	return m.updateFunc(ctx, id, request)
}

func (m *partnerClientMock) DeletePartner(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

type materialClientMock struct {
	assignFunc func(ctx context.Context, partnerID int64, request material_dto.AssignmentRequest) (*material_dto.AssignmentResponse, error)
	batchFunc  func(ctx context.Context, partnerID int64, request material_dto.BatchRequest) (*material_dto.BatchResponse, error)
	listFunc   func(ctx context.Context, partnerID int64) (*material_dto.BatchResponse, error)
}

func (m *materialClientMock) AssignMaterial(ctx context.Context, partnerID int64, request material_dto.AssignmentRequest) (*material_dto.AssignmentResponse, error) {
	return m.assignFunc(ctx, partnerID, request)
}

func (m *materialClientMock) AssignMaterials(ctx context.Context, partnerID int64, request material_dto.BatchRequest) (*material_dto.BatchResponse, error) {
	return m.batchFunc(ctx, partnerID, request)
}

func (m *materialClientMock) ListMaterials(ctx context.Context, partnerID int64) (*material_dto.BatchResponse, error) {
	return m.listFunc(ctx, partnerID)
}

type scope2ClientMock struct {
	submitFunc func(ctx context.Context, request scope2_dto.SubmitRequest) (*scope2_dto.ListResponse, error)
	listFunc   func(ctx context.Context, year int) (*scope2_dto.ListResponse, error)
}

func (m *scope2ClientMock) SubmitScope2(ctx context.Context, request scope2_dto.SubmitRequest) (*scope2_dto.ListResponse, error) {
	return m.submitFunc(ctx, request)
}

func (m *scope2ClientMock) ListScope2(ctx context.Context, year int) (*scope2_dto.ListResponse, error) {
	return m.listFunc(ctx, year)
}

type riskClientMock struct {
	analyzeFunc func(ctx context.Context, partnerID int64, year int) (*risk_dto.Response, error)
}

func (m *riskClientMock) AnalyzeFinancialRisk(ctx context.Context, partnerID int64, year int) (*risk_dto.Response, error) {
	return m.analyzeFunc(ctx, partnerID, year)
}
