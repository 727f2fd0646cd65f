package handler

import (
	"context"

	"esgweb/internal/schema"
)

type partnerHookMock struct {
	listFunc    func(ctx context.Context, page int) (schema.PartnerPage, bool)
	searchFunc  func(ctx context.Context, keyword string, page int) (schema.PartnerPage, bool)
	getFunc     func(ctx context.Context, id int64) (schema.PartnerCompany, bool)
	createFunc  func(ctx context.Context, partner schema.PartnerCompany) (schema.PartnerCompany, bool)
	updateFunc  func(ctx context.Context, partner schema.PartnerCompany) bool
	deleteFunc  func(ctx context.Context, id int64) bool
	allFunc     func(ctx context.Context, keyword string) ([]schema.PartnerCompany, bool)
	optionsFunc func(ctx context.Context) ([]schema.PartnerCompany, bool)
	countFunc   func(ctx context.Context) (int64, bool)
}

func (m *partnerHookMock) List(ctx context.Context, page int) (schema.PartnerPage, bool) {
	return m.listFunc(ctx, page)
}

func (m *partnerHookMock) Search(ctx context.Context, keyword string, page int) (schema.PartnerPage, bool) {
	return m.searchFunc(ctx, keyword, page)
}

func (m *partnerHookMock) Get(ctx context.Context, id int64) (schema.PartnerCompany, bool) {
	return m.getFunc(ctx, id)
}

func (m *partnerHookMock) Create(ctx context.Context, partner schema.PartnerCompany) (schema.PartnerCompany, bool) {
	return m.createFunc(ctx, partner)
}

func (m *partnerHookMock) Update(ctx context.Context, partner schema.PartnerCompany) bool {
	return m.updateFunc(ctx, partner)
}

func (m *partnerHookMock) Delete(ctx context.Context, id int64) bool {
	return m.deleteFunc(ctx, id)
}

func (m *partnerHookMock) All(ctx context.Context, keyword string) ([]schema.PartnerCompany, bool) {
	return m.allFunc(ctx, keyword)
}

func (m *partnerHookMock) Options(ctx context.Context) ([]schema.PartnerCompany, bool) {
	return m.optionsFunc(ctx)
}

func (m *partnerHookMock) Count(ctx context.Context) (int64, bool) {
	return m.countFunc(ctx)
}

type materialHookMock struct {
	assignFunc      func(ctx context.Context, assignment schema.MaterialAssignment) bool
	assignBatchFunc func(ctx context.Context, partnerID int64, assignments []schema.MaterialAssignment) bool
	assignedFunc    func(ctx context.Context, partnerID int64) ([]schema.MaterialAssignment, bool)
}

func (m *materialHookMock) Assign(ctx context.Context, assignment schema.MaterialAssignment) bool {
	return m.assignFunc(ctx, assignment)
}

func (m *materialHookMock) AssignBatch(ctx context.Context, partnerID int64, assignments []schema.MaterialAssignment) bool {
	return m.assignBatchFunc(ctx, partnerID, assignments)
}

func (m *materialHookMock) Assigned(ctx context.Context, partnerID int64) ([]schema.MaterialAssignment, bool) {
	return m.assignedFunc(ctx, partnerID)
}

type scope2HookMock struct {
	submitFunc  func(ctx context.Context, report schema.Scope2Report) bool
	listFunc    func(ctx context.Context, year int) ([]schema.Scope2Record, bool)
	recordsFunc func(ctx context.Context, year int) ([]schema.Scope2Record, bool)
}

func (m *scope2HookMock) Submit(ctx context.Context, report schema.Scope2Report) bool {
	return m.submitFunc(ctx, report)
}

func (m *scope2HookMock) List(ctx context.Context, year int) ([]schema.Scope2Record, bool) {
	return m.listFunc(ctx, year)
}

func (m *scope2HookMock) Records(ctx context.Context, year int) ([]schema.Scope2Record, bool) {
	return m.recordsFunc(ctx, year)
}

type riskHookMock struct {
	analyzeFunc func(ctx context.Context, partnerID int64, year int) (schema.FinancialRisk, bool)
}

func (m *riskHookMock) Analyze(ctx context.Context, partnerID int64, year int) (schema.FinancialRisk, bool) {
	return m.analyzeFunc(ctx, partnerID, year)
}

type reportGeneratorMock struct {
	generateFunc func(ctx context.Context, html string) ([]byte, bool)
}

func (m *reportGeneratorMock) Generate(ctx context.Context, html string) ([]byte, bool) {
	return m.generateFunc(ctx, html)
}

type toastStoreMock struct {
	pushed []schema.Toast
	queued []schema.Toast
}

func (m *toastStoreMock) Push(ctx context.Context, toast schema.Toast) {
	m.pushed = append(m.pushed, toast)
}

func (m *toastStoreMock) Pop(ctx context.Context) []schema.Toast {
	queued := m.queued
	m.queued = nil
	return queued
}

type sessionStoreMock struct {
	loginFunc  func(ctx context.Context, email, password string) (schema.Session, error)
	logoutFunc func(ctx context.Context, id string) error
}

func (m *sessionStoreMock) Login(ctx context.Context, email, password string) (schema.Session, error) {
	return m.loginFunc(ctx, email, password)
}

func (m *sessionStoreMock) Logout(ctx context.Context, id string) error {
	return m.logoutFunc(ctx, id)
}
