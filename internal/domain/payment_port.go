package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type CheckoutLinkItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CheckoutLinkRequest struct {
	OrderReference string             `json:"order_reference"`
	Amount         decimal.Decimal    `json:"amount"`
	Items          []CheckoutLinkItem `json:"items"`
	CustomerName   string             `json:"customer_name"`
	CustomerEmail  string             `json:"customer_email"`
	RedirectURL    string             `json:"redirect_url"`
}

// PaymentGatewayPort isolates callers from the external payment provider.
// CheckPayment relays the raw gateway response and status code unchanged.
type PaymentGatewayPort interface {
	CreateCheckoutLink(ctx context.Context, req *CheckoutLinkRequest) (string, error)
	CheckPayment(ctx context.Context, payload []byte) (int, []byte, error)
}

// OrderNotifierPort delivers the templated order-confirmation email.
type OrderNotifierPort interface {
	SendOrderConfirmation(order *Order) error
}
