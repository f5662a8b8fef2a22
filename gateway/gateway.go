// Package gateway defines the submission boundary: the normalized lead
// payload and the contract for the HTTP sink that receives completed
// applications. The engine treats it as opaque — success or failure, nothing
// else.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// Lead is the normalized payload built from a completed form session.
type Lead struct {
	LeadID      string  `json:"leadId"`
	FormType    string  `json:"formType"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	TradeType   string  `json:"tradeType"`
	Amount      float64 `json:"amount"`
	FinanceType string  `json:"financeType"`
	Urgency     string  `json:"urgency"`
	Location    string  `json:"location,omitempty"`
	Message     string  `json:"message,omitempty"`
	PageURL     string  `json:"pageUrl,omitempty"`
	Referrer    string  `json:"referrer,omitempty"`
	UTMSource   string  `json:"utmSource,omitempty"`
	UTMMedium   string  `json:"utmMedium,omitempty"`
	UTMCampaign string  `json:"utmCampaign,omitempty"`
	UTMTerm     string  `json:"utmTerm,omitempty"`
	UTMContent  string  `json:"utmContent,omitempty"`
	SubmittedAt string  `json:"submittedAt"`
}

// Gateway accepts a lead and reports success or failure. Retry policy
// belongs to the caller; implementations must not retry internally.
type Gateway interface {
	Submit(ctx context.Context, lead Lead) error
}

// Func adapts a plain function to the Gateway interface.
type Func func(ctx context.Context, lead Lead) error

func (f Func) Submit(ctx context.Context, lead Lead) error {
	return f(ctx, lead)
}

// Discard accepts every lead without sending it anywhere. Used as the
// dry-run gateway when no endpoint is configured.
var Discard Gateway = Func(func(context.Context, Lead) error { return nil })

type ack struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// HTTPGateway posts leads as JSON to a single endpoint. A non-2xx status or
// an explicit {"success": false} body is a failure.
type HTTPGateway struct {
	endpoint string
	client   *http.Client
}

type HTTPOption func(*HTTPGateway)

// WithClient overrides the HTTP client, e.g. to tighten the timeout.
func WithClient(c *http.Client) HTTPOption {
	return func(g *HTTPGateway) { g.client = c }
}

func NewHTTPGateway(endpoint string, opts ...HTTPOption) *HTTPGateway {
	g := &HTTPGateway{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *HTTPGateway) Submit(ctx context.Context, lead Lead) error {
	body, err := sonic.Marshal(lead)
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit lead: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("submit lead: gateway returned %s", resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(raw) == 0 {
		// An empty 2xx body counts as success.
		return nil
	}
	var a ack
	if err := sonic.Unmarshal(raw, &a); err != nil {
		return nil
	}
	if !a.Success && a.Error != "" {
		return fmt.Errorf("submit lead: %s", a.Error)
	}
	if !a.Success {
		return fmt.Errorf("submit lead: gateway reported failure")
	}
	return nil
}
