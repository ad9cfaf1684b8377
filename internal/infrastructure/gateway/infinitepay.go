package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/metrics"
)

const (
	checkoutLinksPath = "/invoices/public/checkout/links"
	paymentCheckPath  = "/invoices/public/checkout/payment_check"
	// older endpoint kept for stores still provisioned on it
	legacyLinksPath = "/v2/payment-links"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.StoreMetrics
}

func NewClient(baseURL string, m *metrics.StoreMetrics) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		metrics:    m,
	}
}

// linkResponse covers the response shapes the gateway has been observed to
// return across API versions.
type linkResponse struct {
	URL        string `json:"url"`
	PaymentURL string `json:"payment_url"`
	Data       struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (r *linkResponse) checkoutURL() string {
	switch {
	case r.URL != "":
		return r.URL
	case r.PaymentURL != "":
		return r.PaymentURL
	default:
		return r.Data.URL
	}
}

// CreateCheckoutLink requests a hosted payment page. A 404 from the
// primary endpoint transparently retries the legacy one, so callers never
// observe the intermediate failure.
func (c *Client) CreateCheckoutLink(ctx context.Context, req *domain.CheckoutLinkRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal checkout payload: %w", err)
	}

	status, respBody, err := c.post(ctx, checkoutLinksPath, body)
	if err != nil {
		return "", err
	}
	if status == http.StatusNotFound {
		status, respBody, err = c.post(ctx, legacyLinksPath, body)
		if err != nil {
			return "", err
		}
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("gateway returned status %d: %s", status, string(respBody))
	}

	var parsed linkResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parse gateway response: %w", err)
	}
	url := parsed.checkoutURL()
	if url == "" {
		return "", domain.ErrCheckoutLinkMissing
	}
	return url, nil
}

// CheckPayment relays the payment-check call, returning the gateway status
// code and body unchanged.
func (c *Client) CheckPayment(ctx context.Context, payload []byte) (int, []byte, error) {
	return c.post(ctx, paymentCheckPath, payload)
}

func (c *Client) post(ctx context.Context, path string, body []byte) (int, []byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("reach gateway: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read gateway response: %w", err)
	}

	if c.metrics != nil {
		c.metrics.ObserveCheckoutLinkDuration(path, time.Since(start).Seconds())
	}
	return resp.StatusCode, respBody, nil
}
