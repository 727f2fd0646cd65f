package wrapper

import (
	"context"
	"strconv"
	"time"

	"esgweb/internal/dto/material_dto"
	"esgweb/internal/schema"

	"github.com/shopspring/decimal"
)

// MaterialHook material assignment calls with loading state and toast notifications
type MaterialHook struct {
	hook
	materialClient materialClient
}

func NewMaterialHook(materialClient materialClient, toaster toaster, timeout time.Duration) *MaterialHook {
	return &MaterialHook{
		hook: hook{
			toaster: toaster,
			timeout: timeout,
		},
		materialClient: materialClient,
	}
}

func (h *MaterialHook) Assign(ctx context.Context, assignment schema.MaterialAssignment) bool {
	ok := h.call(ctx, "Couldn't assign the material", func(ctx context.Context) error {
		_, err := h.materialClient.AssignMaterial(ctx, assignment.PartnerID, assignmentToDto(assignment))
		return err
	})
	if ok {
		h.success(ctx, "Material "+assignment.MaterialName+" assigned")
	}
	return ok
}

// AssignBatch assigns all materials to one partner in a single call
func (h *MaterialHook) AssignBatch(ctx context.Context, partnerID int64, assignments []schema.MaterialAssignment) bool {
	request := material_dto.BatchRequest{
		Assignments: make([]material_dto.AssignmentRequest, 0, len(assignments)),
	}
	for _, a := range assignments {
		request.Assignments = append(request.Assignments, assignmentToDto(a))
	}

	var assigned int
	ok := h.call(ctx, "Couldn't assign the materials", func(ctx context.Context) error {
		resp, err := h.materialClient.AssignMaterials(ctx, partnerID, request)
		if err != nil {
			return err
		}
		assigned = len(resp.Assignments)
		return nil
	})
	if ok {
		h.success(ctx, strconv.Itoa(assigned)+" materials assigned")
	}
	return ok
}

func (h *MaterialHook) List(ctx context.Context, partnerID int64) ([]schema.MaterialAssignment, bool) {
	var result []schema.MaterialAssignment
	ok := h.call(ctx, "Couldn't load material assignments", func(ctx context.Context) error {
		var err error
		result, err = h.list(ctx, partnerID)
		return err
	})
	return result, ok
}

// Assigned lists assignments without a toast, for the partner detail page
func (h *MaterialHook) Assigned(ctx context.Context, partnerID int64) ([]schema.MaterialAssignment, bool) {
	var result []schema.MaterialAssignment
	ok := h.load(ctx, "material assignments", func(ctx context.Context) error {
		var err error
		result, err = h.list(ctx, partnerID)
		return err
	})
	return result, ok
}

func (h *MaterialHook) list(ctx context.Context, partnerID int64) ([]schema.MaterialAssignment, error) {
	resp, err := h.materialClient.ListMaterials(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	result := make([]schema.MaterialAssignment, 0, len(resp.Assignments))
	for _, a := range resp.Assignments {
		result = append(result, assignmentToSchema(a))
	}
	return result, nil
}

func assignmentToDto(a schema.MaterialAssignment) material_dto.AssignmentRequest {
	request := material_dto.AssignmentRequest{
		MaterialCode: a.MaterialCode,
		MaterialName: a.MaterialName,
		Category:     a.Category,
		Unit:         a.Unit,
	}
	if a.EmissionFactor.Valid {
		request.EmissionFactor = a.EmissionFactor.Decimal.String()
	}
	return request
}

func assignmentToSchema(a material_dto.AssignmentResponse) schema.MaterialAssignment {
	result := schema.MaterialAssignment{
		ID:           a.ID,
		PartnerID:    a.PartnerID,
		MaterialCode: a.MaterialCode,
		MaterialName: a.MaterialName,
		Category:     a.Category,
		Unit:         a.Unit,
	}
	if factor, err := decimal.NewFromString(a.EmissionFactor); err == nil {
		result.EmissionFactor = decimal.NewNullDecimal(factor)
	}
	return result
}
