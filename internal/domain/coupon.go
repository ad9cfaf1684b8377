package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CouponType string

const (
	CouponFixed   CouponType = "fixed"
	CouponPercent CouponType = "percent"
)

type Coupon struct {
	ID         string          `json:"id"`
	StoreID    string          `json:"store_id"`
	Code       string          `json:"code"`
	Type       CouponType      `json:"type"`
	Value      decimal.Decimal `json:"value"`
	MinSpend   decimal.Decimal `json:"min_spend"`
	UsageLimit int             `json:"usage_limit"`
	UsageCount int             `json:"usage_count"`
	ExpiresAt  *time.Time      `json:"expires_at,omitempty"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Redeemable reports whether the coupon can still be applied. Expiry and
// usage limit are checked here in addition to the active flag.
func (c *Coupon) Redeemable(now time.Time) error {
	if !c.Active {
		return ErrCouponNotFound
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return ErrCouponExpired
	}
	if c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit {
		return ErrCouponExhausted
	}
	return nil
}

// ResolveDiscount converts the coupon into an absolute reduction against
// the given subtotal. Percent coupons are resolved at apply time; the
// result never exceeds the subtotal.
func (c *Coupon) ResolveDiscount(subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.Type {
	case CouponPercent:
		discount = subtotal.Mul(c.Value).Div(decimal.NewFromInt(100))
	default:
		discount = c.Value
	}
	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	if discount.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return discount
}

type CouponRepository interface {
	CreateCoupon(coupon *Coupon) error
	UpdateCoupon(coupon *Coupon) error
	DeleteCoupon(couponID string) error
	GetCouponByID(couponID string) (*Coupon, error)
	// GetActiveCouponByCode returns ErrCouponNotFound when no active coupon
	// with that code exists in the store.
	GetActiveCouponByCode(storeID, code string) (*Coupon, error)
	GetCouponsByStoreID(storeID string) ([]*Coupon, error)
	IncrementUsage(couponID string) error
}
