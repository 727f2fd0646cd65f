package client

import (
	"context"
	"net/http"

	"esgweb/internal/dto/auth_dto"
)

func (c *Client) Login(ctx context.Context, request auth_dto.LoginRequest) (*auth_dto.LoginResponse, error) {
	var response auth_dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
