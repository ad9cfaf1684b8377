package repository

import (
	"errors"
	"strings"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/mappers"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCouponRepository struct {
	DB *gorm.DB
}

func NewDefaultCouponRepository(db *gorm.DB) *DefaultCouponRepository {
	return &DefaultCouponRepository{DB: db}
}

func (r *DefaultCouponRepository) CreateCoupon(coupon *domain.Coupon) error {
	coupon.Code = strings.ToUpper(coupon.Code)
	return r.DB.Create(mappers.ToGORMCoupon(coupon)).Error
}

func (r *DefaultCouponRepository) UpdateCoupon(coupon *domain.Coupon) error {
	coupon.Code = strings.ToUpper(coupon.Code)
	return r.DB.Save(mappers.ToGORMCoupon(coupon)).Error
}

func (r *DefaultCouponRepository) DeleteCoupon(couponID string) error {
	return r.DB.Delete(&models.CouponModel{}, "id = ?", couponID).Error
}

func (r *DefaultCouponRepository) GetCouponByID(couponID string) (*domain.Coupon, error) {
	var coupon models.CouponModel
	if err := r.DB.First(&coupon, "id = ?", couponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCoupon(&coupon), nil
}

func (r *DefaultCouponRepository) GetActiveCouponByCode(storeID, code string) (*domain.Coupon, error) {
	var coupon models.CouponModel
	err := r.DB.
		Where("store_id = ? AND code = ? AND active = ?", storeID, strings.ToUpper(code), true).
		Limit(1).
		First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCoupon(&coupon), nil
}

func (r *DefaultCouponRepository) GetCouponsByStoreID(storeID string) ([]*domain.Coupon, error) {
	var couponModels []models.CouponModel
	if err := r.DB.Where("store_id = ?", storeID).Order("created_at DESC").Find(&couponModels).Error; err != nil {
		return nil, err
	}

	coupons := make([]*domain.Coupon, len(couponModels))
	for i, couponModel := range couponModels {
		coupons[i] = mappers.ToDomainCoupon(&couponModel)
	}
	return coupons, nil
}

func (r *DefaultCouponRepository) IncrementUsage(couponID string) error {
	return r.DB.Model(&models.CouponModel{}).
		Where("id = ?", couponID).
		Update("usage_count", gorm.Expr("usage_count + 1")).Error
}
