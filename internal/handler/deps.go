package handler

import (
	"context"

	"esgweb/internal/catalog"
	"esgweb/internal/schema"
)

type registryGetter interface {
	Get(ctx context.Context, records []schema.RegistryRecord) ([]schema.RegistryRecord, error)
}

type partnerHook interface {
	List(ctx context.Context, page int) (schema.PartnerPage, bool)
	Search(ctx context.Context, keyword string, page int) (schema.PartnerPage, bool)
	Get(ctx context.Context, id int64) (schema.PartnerCompany, bool)
	Create(ctx context.Context, partner schema.PartnerCompany) (schema.PartnerCompany, bool)
	Update(ctx context.Context, partner schema.PartnerCompany) bool
	Delete(ctx context.Context, id int64) bool
	All(ctx context.Context, keyword string) ([]schema.PartnerCompany, bool)
	Options(ctx context.Context) ([]schema.PartnerCompany, bool)
	Count(ctx context.Context) (int64, bool)
}

type materialHook interface {
	Assign(ctx context.Context, assignment schema.MaterialAssignment) bool
	AssignBatch(ctx context.Context, partnerID int64, assignments []schema.MaterialAssignment) bool
	Assigned(ctx context.Context, partnerID int64) ([]schema.MaterialAssignment, bool)
}

type scope2Hook interface {
	Submit(ctx context.Context, report schema.Scope2Report) bool
	List(ctx context.Context, year int) ([]schema.Scope2Record, bool)
	Records(ctx context.Context, year int) ([]schema.Scope2Record, bool)
}

type riskHook interface {
	Analyze(ctx context.Context, partnerID int64, year int) (schema.FinancialRisk, bool)
}

type reportGenerator interface {
	Generate(ctx context.Context, html string) ([]byte, bool)
}

type toastStore interface {
	Push(ctx context.Context, toast schema.Toast)
	Pop(ctx context.Context) []schema.Toast
}

type sessionStore interface {
	Login(ctx context.Context, email, password string) (schema.Session, error)
	Logout(ctx context.Context, id string) error
}

type emissionCatalog interface {
	Resolve(state schema.SelectorState) (schema.SelectorState, error)
	Options() []catalog.Category
}
