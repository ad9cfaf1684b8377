package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// allowedTransitions is the order state machine. delivered and cancelled
// are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusDelivered, StatusCancelled},
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusPaid, StatusDelivered, StatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

type OrderItem struct {
	ProductID   string            `json:"product_id"`
	ProductName string            `json:"product_name"`
	Options     map[string]string `json:"options,omitempty"`
	UnitPrice   decimal.Decimal   `json:"unit_price"`
	Quantity    int               `json:"quantity"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID              string          `json:"id"`
	Reference       string          `json:"reference"`
	StoreID         string          `json:"store_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	Status          OrderStatus     `json:"status"`
	CheckoutURL     string          `json:"checkout_url,omitempty"`
	TransactionID   string          `json:"transaction_id,omitempty"`
	GatewayPayload  string          `json:"-"`
	ExpiresAt       time.Time       `json:"expires_at"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderFilters struct {
	Statuses      []OrderStatus
	DateFrom      time.Time
	DateTo        time.Time
	Reference     string
	CustomerEmail string
}

// OrderMetricsReport is the admin dashboard aggregate: revenue counts
// paid and delivered orders only.
type OrderMetricsReport struct {
	TotalOrders   int64
	PendingOrders int64
	Revenue       decimal.Decimal
}

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	GetOrderByReference(reference string) (*Order, error)
	GetOrdersByStoreID(storeID string, page, limit int64, sortBy, sortOrder string, filters OrderFilters) ([]*Order, int64, error)
	UpdateOrderStatus(orderID string, newStatus OrderStatus) error
	SetOrderPayment(orderID, checkoutURL, transactionID, rawPayload string) error
	FindExpiredOrders() ([]*Order, error)
	DeleteOrder(orderID string) error
	GetOrderMetrics(storeID string) (*OrderMetricsReport, error)
}
