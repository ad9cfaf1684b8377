package models

import (
	"time"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	Reference       string `gorm:"uniqueIndex"`
	StoreID         string `gorm:"type:uuid;index:idx_orders_store"`
	CustomerName    string
	CustomerEmail   string `gorm:"index"`
	CustomerPhone   string
	CustomerAddress string
	Items           []OrderItemModel   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal        decimal.Decimal    `gorm:"type:numeric(12,2)"`
	Discount        decimal.Decimal    `gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal    `gorm:"type:numeric(12,2)"`
	CouponCode      string
	Status          domain.OrderStatus `gorm:"type:varchar(20);index:idx_orders_status_expires"`
	CheckoutURL     string
	TransactionID   string
	GatewayPayload  string    `gorm:"type:jsonb;default:'{}'"`
	ExpiresAt       time.Time `gorm:"index:idx_orders_status_expires"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

type OrderItemModel struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     string `gorm:"type:uuid;index"`
	ProductID   string `gorm:"type:uuid"`
	ProductName string
	Options     string          `gorm:"type:jsonb;default:'{}'"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity    int
}

func (OrderModel) TableName() string {
	return "orders"
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
