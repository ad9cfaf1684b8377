package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	StoreID     string `gorm:"type:uuid;index:idx_products_store"`
	Name        string
	Description string
	Price       decimal.Decimal  `gorm:"type:numeric(12,2)"`
	PromoPrice  *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Stock       int              `gorm:"check:stock >= 0"`
	Category    string
	Images      string `gorm:"type:jsonb;default:'[]'"`
	Featured    bool
	Active      bool `gorm:"index:idx_products_store"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CategoryModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	StoreID   string `gorm:"type:uuid;index"`
	Name      string
	Slug      string
	CreatedAt time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

func (CategoryModel) TableName() string {
	return "categories"
}
