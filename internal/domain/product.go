package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string           `json:"id"`
	StoreID     string           `json:"store_id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	PromoPrice  *decimal.Decimal `json:"promo_price,omitempty"`
	Stock       int              `json:"stock"`
	Category    string           `json:"category,omitempty"`
	Images      []string         `json:"images,omitempty"`
	Featured    bool             `json:"featured"`
	Active      bool             `json:"active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// EffectivePrice is the promo price when one is set and lower than the
// regular price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.PromoPrice != nil && p.PromoPrice.GreaterThan(decimal.Zero) && p.PromoPrice.LessThan(p.Price) {
		return *p.PromoPrice
	}
	return p.Price
}

type Category struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductRepository interface {
	CreateProduct(product *Product) error
	UpdateProduct(product *Product) error
	DeleteProduct(productID string) error
	GetProductByID(productID string) (*Product, error)
	GetProductsByStoreID(storeID string, onlyActive bool) ([]*Product, error)
	// AdjustStock applies delta atomically and fails with
	// ErrInsufficientStock when the result would go negative.
	AdjustStock(productID string, delta int) error
}

type CategoryRepository interface {
	CreateCategory(category *Category) error
	DeleteCategory(categoryID string) error
	GetCategoriesByStoreID(storeID string) ([]*Category, error)
}
