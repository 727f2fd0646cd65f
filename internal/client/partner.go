package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"esgweb/internal/dto/partner_dto"
)

const partnersPath = "/api/v1/partners"

func partnerPath(id int64) string {
	return partnersPath + "/" + strconv.FormatInt(id, 10)
}

// ListPartners fetches one page of partners, filtered by company name when keyword is set
func (c *Client) ListPartners(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	if keyword != "" {
		query.Set("companyName", keyword)
	}

	var response partner_dto.Page
	if err := c.do(ctx, http.MethodGet, partnersPath, query, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) GetPartner(ctx context.Context, id int64) (*partner_dto.Partner, error) {
	var response partner_dto.Partner
	if err := c.do(ctx, http.MethodGet, partnerPath(id), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) CreatePartner(ctx context.Context, request partner_dto.Partner) (*partner_dto.Partner, error) {
	var response partner_dto.Partner
	if err := c.do(ctx, http.MethodPost, partnersPath, nil, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) UpdatePartner(ctx context.Context, id int64, request partner_dto.Partner) (*partner_dto.Partner, error) {
	var response partner_dto.Partner
	if err := c.do(ctx, http.MethodPut, partnerPath(id), nil, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) DeletePartner(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, partnerPath(id), nil, nil, nil)
}
