package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/shopspring/decimal"
)

type CouponUsecase interface {
	// ValidateCoupon returns the coupon when it is redeemable right now.
	// "not found" and lookup failures surface as distinct errors.
	ValidateCoupon(storeID, code string) (*domain.Coupon, error)
	ResolveCartDiscount(storeID, code string, subtotal decimal.Decimal) (decimal.Decimal, error)
	RedeemCoupon(storeID, code string) error

	CreateCoupon(coupon *domain.Coupon) (*domain.Coupon, error)
	UpdateCoupon(coupon *domain.Coupon, storeID string) error
	DeleteCoupon(couponID, storeID string) error
	GetCouponsByStoreID(storeID string) ([]*domain.Coupon, error)
}

type DefaultCouponUsecase struct {
	CouponRepo domain.CouponRepository
}

func NewDefaultCouponUsecase(couponRepo domain.CouponRepository) *DefaultCouponUsecase {
	return &DefaultCouponUsecase{CouponRepo: couponRepo}
}

func (uc *DefaultCouponUsecase) ValidateCoupon(storeID, code string) (*domain.Coupon, error) {
	coupon, err := uc.CouponRepo.GetActiveCouponByCode(storeID, strings.ToUpper(code))
	if err != nil {
		return nil, err
	}
	if err := coupon.Redeemable(time.Now()); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (uc *DefaultCouponUsecase) ResolveCartDiscount(storeID, code string, subtotal decimal.Decimal) (decimal.Decimal, error) {
	coupon, err := uc.ValidateCoupon(storeID, code)
	if err != nil {
		return decimal.Zero, err
	}
	if subtotal.LessThan(coupon.MinSpend) {
		return decimal.Zero, domain.ErrCouponMinSpend
	}
	return coupon.ResolveDiscount(subtotal), nil
}

func (uc *DefaultCouponUsecase) RedeemCoupon(storeID, code string) error {
	coupon, err := uc.CouponRepo.GetActiveCouponByCode(storeID, strings.ToUpper(code))
	if err != nil {
		return err
	}
	return uc.CouponRepo.IncrementUsage(coupon.ID)
}

func (uc *DefaultCouponUsecase) CreateCoupon(coupon *domain.Coupon) (*domain.Coupon, error) {
	if coupon.Code == "" {
		return nil, fmt.Errorf("coupon code is required")
	}
	if coupon.Value.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("coupon value must be positive")
	}
	if coupon.Type != domain.CouponFixed && coupon.Type != domain.CouponPercent {
		return nil, fmt.Errorf("coupon type must be fixed or percent")
	}
	if coupon.Type == domain.CouponPercent && coupon.Value.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("percent coupon cannot exceed 100")
	}

	coupon.ID = uuid.New().String()
	coupon.Code = strings.ToUpper(coupon.Code)
	coupon.Active = true
	coupon.CreatedAt = time.Now()
	coupon.UpdatedAt = coupon.CreatedAt

	if err := uc.CouponRepo.CreateCoupon(coupon); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return coupon, nil
}

func (uc *DefaultCouponUsecase) UpdateCoupon(coupon *domain.Coupon, storeID string) error {
	existing, err := uc.CouponRepo.GetCouponByID(coupon.ID)
	if err != nil {
		return err
	}
	if existing.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	coupon.StoreID = existing.StoreID
	coupon.UsageCount = existing.UsageCount
	coupon.CreatedAt = existing.CreatedAt
	coupon.UpdatedAt = time.Now()
	return uc.CouponRepo.UpdateCoupon(coupon)
}

func (uc *DefaultCouponUsecase) DeleteCoupon(couponID, storeID string) error {
	existing, err := uc.CouponRepo.GetCouponByID(couponID)
	if err != nil {
		return err
	}
	if existing.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	return uc.CouponRepo.DeleteCoupon(couponID)
}

func (uc *DefaultCouponUsecase) GetCouponsByStoreID(storeID string) ([]*domain.Coupon, error) {
	return uc.CouponRepo.GetCouponsByStoreID(storeID)
}
