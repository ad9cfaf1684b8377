package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
)

type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, from string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendOrderConfirmation posts the templated confirmation email. Callers
// decide when it fires; this client sends exactly what it is given.
func (c *Client) SendOrderConfirmation(order *domain.Order) error {
	payload := sendRequest{
		From:    c.from,
		To:      order.CustomerEmail,
		Subject: fmt.Sprintf("Pedido %s confirmado - obrigado pela sua compra!", order.Reference),
		HTML:    renderConfirmation(order),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reach email provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}

func renderConfirmation(order *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>Pedido %s confirmado</h1>", order.Reference)
	fmt.Fprintf(&b, "<p>Olá %s, recebemos o seu pagamento!</p>", order.CustomerName)
	b.WriteString("<ul>")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<li>%dx %s - R$ %s</li>", item.Quantity, item.ProductName, item.LineTotal().StringFixed(2))
	}
	b.WriteString("</ul>")
	if order.Discount.IsPositive() {
		fmt.Fprintf(&b, "<p>Desconto: R$ %s</p>", order.Discount.StringFixed(2))
	}
	fmt.Fprintf(&b, "<p><strong>Total: R$ %s</strong></p>", order.Total.StringFixed(2))
	return b.String()
}
