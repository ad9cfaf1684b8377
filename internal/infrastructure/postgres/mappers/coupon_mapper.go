package mappers

import (
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/models"
)

func ToGORMCoupon(coupon *domain.Coupon) *models.CouponModel {
	return &models.CouponModel{
		ID:         coupon.ID,
		StoreID:    coupon.StoreID,
		Code:       coupon.Code,
		Type:       coupon.Type,
		Value:      coupon.Value,
		MinSpend:   coupon.MinSpend,
		UsageLimit: coupon.UsageLimit,
		UsageCount: coupon.UsageCount,
		ExpiresAt:  coupon.ExpiresAt,
		Active:     coupon.Active,
		CreatedAt:  coupon.CreatedAt,
		UpdatedAt:  coupon.UpdatedAt,
	}
}

func ToDomainCoupon(model *models.CouponModel) *domain.Coupon {
	return &domain.Coupon{
		ID:         model.ID,
		StoreID:    model.StoreID,
		Code:       model.Code,
		Type:       model.Type,
		Value:      model.Value,
		MinSpend:   model.MinSpend,
		UsageLimit: model.UsageLimit,
		UsageCount: model.UsageCount,
		ExpiresAt:  model.ExpiresAt,
		Active:     model.Active,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
