// Package api is the typed client for the external ticketing API. All
// persistence, inventory, payment and confirmation-code logic lives behind
// that API; this package only moves JSON in and out of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"tikiti/observability"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// APIError is a non-2xx response from the ticketing API. Detail carries the
// `detail` message from the error body, or a generic fallback when the body
// is absent or unparseable.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ticketing API error (%d): %s", e.StatusCode, e.Detail)
}

// IsNotFound reports whether err is a 404 from the ticketing API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		panic("ticketing API address is empty")
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// do issues one request and decodes the response into out (when out is
// non-nil). A 204 carries no body and decodes into nothing.
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal %s request: %w", operation, err)
		}
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("could not build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Correlation-ID", log.CorrelationIDFromContext(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.APIRequests.WithLabelValues(operation, "error").Inc()
		return fmt.Errorf("%s request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	observability.APIRequests.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Detail: "API request failed"}
		var errBody struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Detail != "" {
			apiErr.Detail = errBody.Detail
		}
		return fmt.Errorf("%s: %w", operation, apiErr)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode %s response: %w", operation, err)
	}
	return nil
}
