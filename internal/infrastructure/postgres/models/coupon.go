package models

import (
	"time"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/shopspring/decimal"
)

type CouponModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	StoreID    string `gorm:"type:uuid;uniqueIndex:idx_coupons_store_code"`
	Code       string `gorm:"uniqueIndex:idx_coupons_store_code"`
	Type       domain.CouponType `gorm:"type:varchar(10)"`
	Value      decimal.Decimal   `gorm:"type:numeric(12,2)"`
	MinSpend   decimal.Decimal   `gorm:"type:numeric(12,2)"`
	UsageLimit int
	UsageCount int
	ExpiresAt  *time.Time
	Active     bool `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CouponModel) TableName() string {
	return "coupons"
}
