package publisher

import "github.com/shopspring/decimal"

type OrderEvent struct {
	OrderID   string          `json:"order_id"`
	Reference string          `json:"reference"`
	StoreID   string          `json:"store_id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
}
