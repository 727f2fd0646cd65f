package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"esgweb/internal/dto/scope2_dto"
)

const scope2Path = "/api/v1/scope2/emissions"

func (c *Client) SubmitScope2(ctx context.Context, request scope2_dto.SubmitRequest) (*scope2_dto.ListResponse, error) {
	var response scope2_dto.ListResponse
	if err := c.do(ctx, http.MethodPost, scope2Path, nil, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) ListScope2(ctx context.Context, year int) (*scope2_dto.ListResponse, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))

	var response scope2_dto.ListResponse
	if err := c.do(ctx, http.MethodGet, scope2Path, query, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
