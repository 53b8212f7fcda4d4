// Package gateway is the thin contract wrapper around the external
// transfer-processing service. It knows how to issue the three calls the
// submission pipeline needs and how to fold responses into an Envelope;
// interpreting the envelope is the caller's business.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pullapi/internal/models"
)

// Client is the remote transfer-processing service contract.
type Client interface {
	GetFee(ctx context.Context, query FeeQuery) (Envelope, error)
	CreateDeposit(ctx context.Context, sub *models.Submission) (Envelope, error)
	CreatePickup(ctx context.Context, sub *models.Submission) (Envelope, error)
}

// Config holds the transport settings. The timeout lives here, not in the
// pipeline: a blocked submission is a transport concern.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type httpClient struct {
	cfg Config
	hc  *http.Client
}

// NewHTTPClient creates a JSON-over-HTTP gateway client. No retries: a
// failed remote call is a user-visible failure.
func NewHTTPClient(cfg Config) Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &httpClient{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *httpClient) GetFee(ctx context.Context, query FeeQuery) (Envelope, error) {
	return c.post(ctx, "/transaction/fee", query)
}

func (c *httpClient) CreateDeposit(ctx context.Context, sub *models.Submission) (Envelope, error) {
	return c.post(ctx, "/transaction/deposit", sub)
}

func (c *httpClient) CreatePickup(ctx context.Context, sub *models.Submission) (Envelope, error) {
	return c.post(ctx, "/transaction/pickup", sub)
}

func (c *httpClient) post(ctx context.Context, path string, payload interface{}) (Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to encode gateway payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return Envelope{}, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to read gateway response: %w", err)
	}

	// A non-JSON body leaves the content empty; callers treat that as the
	// unspecified-error case.
	var content Content
	if len(data) > 0 {
		_ = json.Unmarshal(data, &content)
	}

	return Envelope{Status: resp.StatusCode, Content: content}, nil
}
