package client

import (
	"context"
	"net/http"

	"esgweb/internal/dto/material_dto"
)

func (c *Client) AssignMaterial(ctx context.Context, partnerID int64, request material_dto.AssignmentRequest) (*material_dto.AssignmentResponse, error) {
	var response material_dto.AssignmentResponse
	if err := c.do(ctx, http.MethodPost, partnerPath(partnerID)+"/materials", nil, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) AssignMaterials(ctx context.Context, partnerID int64, request material_dto.BatchRequest) (*material_dto.BatchResponse, error) {
	var response material_dto.BatchResponse
	if err := c.do(ctx, http.MethodPost, partnerPath(partnerID)+"/materials/batch", nil, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) ListMaterials(ctx context.Context, partnerID int64) (*material_dto.BatchResponse, error) {
	var response material_dto.BatchResponse
	if err := c.do(ctx, http.MethodGet, partnerPath(partnerID)+"/materials", nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
