package client

import (
	"context"
	"net/http"

	"esgweb/internal/dto/dart_dto"
)

// LookupCompanies resolves registration numbers in the DART registry through the backend
func (c *Client) LookupCompanies(ctx context.Context, request dart_dto.RequestBody) (*dart_dto.ResponseBody, error) {
	var response dart_dto.ResponseBody
	if err := c.do(ctx, http.MethodPost, "/api/v1/dart/companies/lookup", nil, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
