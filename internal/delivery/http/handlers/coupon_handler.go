package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lojinhadasgracas/storefront-service/internal/delivery/http/middleware"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/usecase"
)

type CouponHandler struct {
	Coupons usecase.CouponUsecase
}

func NewCouponHandler(coupons usecase.CouponUsecase) *CouponHandler {
	return &CouponHandler{Coupons: coupons}
}

type validateCouponRequest struct {
	Code     string `json:"code" binding:"required"`
	Subtotal string `json:"subtotal" binding:"required"`
}

// Validate is the storefront pre-check before checkout: it answers with
// the absolute discount the coupon would produce for the given subtotal.
func (h *CouponHandler) Validate(c *gin.Context) {
	var req validateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	subtotal, err := decimal.NewFromString(req.Subtotal)
	if err != nil {
		abortBadRequest(c, fmt.Errorf("invalid subtotal: %w", err))
		return
	}

	store := middleware.ActiveStore(c)
	discount, err := h.Coupons.ResolveCartDiscount(store.ID, req.Code, subtotal)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": req.Code, "discount": discount})
}

type couponRequest struct {
	Code       string `json:"code" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=fixed percent"`
	Value      string `json:"value" binding:"required"`
	MinSpend   string `json:"min_spend"`
	UsageLimit int    `json:"usage_limit" binding:"min=0"`
	ExpiresAt  string `json:"expires_at"`
	Active     *bool  `json:"active"`
}

func (req *couponRequest) toDomain(storeID string) (*domain.Coupon, error) {
	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid value: %w", err)
	}
	coupon := &domain.Coupon{
		StoreID:    storeID,
		Code:       req.Code,
		Type:       domain.CouponType(req.Type),
		Value:      value,
		UsageLimit: req.UsageLimit,
		Active:     true,
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}
	if req.MinSpend != "" {
		minSpend, err := decimal.NewFromString(req.MinSpend)
		if err != nil {
			return nil, fmt.Errorf("invalid min spend: %w", err)
		}
		coupon.MinSpend = minSpend
	}
	if req.ExpiresAt != "" {
		expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("invalid expires_at: %w", err)
		}
		coupon.ExpiresAt = &expiresAt
	}
	return coupon, nil
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	coupon, err := req.toDomain(store.ID)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	created, err := h.Coupons.CreateCoupon(coupon)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CouponHandler) Update(c *gin.Context) {
	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	coupon, err := req.toDomain(store.ID)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	coupon.ID = c.Param("id")

	if err := h.Coupons.UpdateCoupon(coupon, store.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, coupon)
}

func (h *CouponHandler) Delete(c *gin.Context) {
	store := middleware.ActiveStore(c)
	if err := h.Coupons.DeleteCoupon(c.Param("id"), store.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CouponHandler) List(c *gin.Context) {
	store := middleware.ActiveStore(c)
	coupons, err := h.Coupons.GetCouponsByStoreID(store.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}
