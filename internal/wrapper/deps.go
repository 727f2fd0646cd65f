package wrapper

import (
	"context"

	"esgweb/internal/dto/dart_dto"
	"esgweb/internal/dto/material_dto"
	"esgweb/internal/dto/partner_dto"
	"esgweb/internal/dto/risk_dto"
	"esgweb/internal/dto/scope2_dto"
	"esgweb/internal/schema"
)

type registryClient interface {
	LookupCompanies(ctx context.Context, request dart_dto.RequestBody) (*dart_dto.ResponseBody, error)
}

type partnerClient interface {
	ListPartners(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error)
	GetPartner(ctx context.Context, id int64) (*partner_dto.Partner, error)
	CreatePartner(ctx context.Context, request partner_dto.Partner) (*partner_dto.Partner, error)
	UpdatePartner(ctx context.Context, id int64, request partner_dto.Partner) (*partner_dto.Partner, error)
	DeletePartner(ctx context.Context, id int64) error
}

type materialClient interface {
	AssignMaterial(ctx context.Context, partnerID int64, request material_dto.AssignmentRequest) (*material_dto.AssignmentResponse, error)
	AssignMaterials(ctx context.Context, partnerID int64, request material_dto.BatchRequest) (*material_dto.BatchResponse, error)
	ListMaterials(ctx context.Context, partnerID int64) (*material_dto.BatchResponse, error)
}

type scope2Client interface {
	SubmitScope2(ctx context.Context, request scope2_dto.SubmitRequest) (*scope2_dto.ListResponse, error)
	ListScope2(ctx context.Context, year int) (*scope2_dto.ListResponse, error)
}

type riskClient interface {
	AnalyzeFinancialRisk(ctx context.Context, partnerID int64, year int) (*risk_dto.Response, error)
}

type toaster interface {
	Push(ctx context.Context, toast schema.Toast)
}
