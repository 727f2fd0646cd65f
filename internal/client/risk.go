package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"esgweb/internal/dto/risk_dto"
)

func (c *Client) AnalyzeFinancialRisk(ctx context.Context, partnerID int64, year int) (*risk_dto.Response, error) {
	query := url.Values{}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}

	var response risk_dto.Response
	if err := c.do(ctx, http.MethodGet, partnerPath(partnerID)+"/financial-risk", query, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
