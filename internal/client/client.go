package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"esgweb/internal/dto/auth_dto"

	"github.com/rs/zerolog/log"
)

type tokenKey struct{}

// WithToken returns a context carrying the bearer token used for backend calls
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// StatusError non-2xx answer of the backend
type StatusError struct {
	Code    int
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unexpected status code: %s: %s", e.Status, e.Message)
	}
	return "unexpected status code: " + e.Status
}

// IsNotFound reports whether err is a 404 answer of the backend
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

// Client calls the CSDDD backend api
type Client struct {
	APIURL string
	client *http.Client
}

func NewClient(apiURL string, timeout time.Duration) (*Client, error) {
	if apiURL == "" {
		return nil, errors.New("api url is empty")
	}
	return &Client{
		APIURL: strings.TrimRight(apiURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, request, response any) error {
	var body io.Reader
	if request != nil {
		requestData, err := json.Marshal(request)
		if err != nil {
			return fmt.Errorf("err during marshaling of a request: %w", err)
		}
		body = bytes.NewReader(requestData)
	}

	target := c.APIURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("err during creating a request with context: %w", err)
	}
	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			log.Error().Msg("couldn't close a body")
			return
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{Code: resp.StatusCode, Status: resp.Status}
		var errBody auth_dto.ErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			statusErr.Message = errBody.Message
		}
		return statusErr
	}

	if response == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("err during unmarshaling of a response: %w", err)
	}

	return nil
}
