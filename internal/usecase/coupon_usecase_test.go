package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
)

func TestCreateCouponValidation(t *testing.T) {
	uc := NewDefaultCouponUsecase(newFakeCouponRepo())

	_, err := uc.CreateCoupon(&domain.Coupon{StoreID: testStoreID, Type: domain.CouponFixed, Value: decimal.NewFromInt(10)})
	assert.Error(t, err, "missing code")

	_, err = uc.CreateCoupon(&domain.Coupon{StoreID: testStoreID, Code: "X", Type: domain.CouponPercent, Value: decimal.NewFromInt(150)})
	assert.Error(t, err, "percent above 100")

	_, err = uc.CreateCoupon(&domain.Coupon{StoreID: testStoreID, Code: "X", Type: "bogus", Value: decimal.NewFromInt(10)})
	assert.Error(t, err, "unknown type")

	created, err := uc.CreateCoupon(&domain.Coupon{StoreID: testStoreID, Code: "promo10", Type: domain.CouponPercent, Value: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.Equal(t, "PROMO10", created.Code)
	assert.True(t, created.Active)
	assert.NotEmpty(t, created.ID)
}

func TestValidateCouponLowercaseLookup(t *testing.T) {
	repo := newFakeCouponRepo(&domain.Coupon{
		ID:      "c1",
		StoreID: testStoreID,
		Code:    "FRETE",
		Type:    domain.CouponFixed,
		Value:   decimal.NewFromInt(15),
		Active:  true,
	})
	uc := NewDefaultCouponUsecase(repo)

	coupon, err := uc.ValidateCoupon(testStoreID, "frete")
	require.NoError(t, err)
	assert.Equal(t, "FRETE", coupon.Code)
}

func TestValidateCouponExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	repo := newFakeCouponRepo(&domain.Coupon{
		ID:        "c1",
		StoreID:   testStoreID,
		Code:      "VELHO",
		Type:      domain.CouponFixed,
		Value:     decimal.NewFromInt(5),
		ExpiresAt: &past,
		Active:    true,
	})
	uc := NewDefaultCouponUsecase(repo)

	_, err := uc.ValidateCoupon(testStoreID, "VELHO")
	assert.ErrorIs(t, err, domain.ErrCouponExpired)
}

func TestResolveCartDiscountPercent(t *testing.T) {
	repo := newFakeCouponRepo(&domain.Coupon{
		ID:      "c1",
		StoreID: testStoreID,
		Code:    "DEZ",
		Type:    domain.CouponPercent,
		Value:   decimal.NewFromInt(10),
		Active:  true,
	})
	uc := NewDefaultCouponUsecase(repo)

	discount, err := uc.ResolveCartDiscount(testStoreID, "DEZ", decimal.RequireFromString("250.00"))
	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.RequireFromString("25.00")), discount.String())
}

func TestCouponOwnershipChecks(t *testing.T) {
	repo := newFakeCouponRepo(&domain.Coupon{
		ID:      "c1",
		StoreID: testStoreID,
		Code:    "MEU",
		Type:    domain.CouponFixed,
		Value:   decimal.NewFromInt(5),
		Active:  true,
	})
	uc := NewDefaultCouponUsecase(repo)

	err := uc.DeleteCoupon("c1", "store-2")
	assert.ErrorIs(t, err, domain.ErrStoreScopeMismatch)

	err = uc.UpdateCoupon(&domain.Coupon{ID: "c1", Code: "MEU", Type: domain.CouponFixed, Value: decimal.NewFromInt(7)}, "store-2")
	assert.ErrorIs(t, err, domain.ErrStoreScopeMismatch)

	require.NoError(t, uc.DeleteCoupon("c1", testStoreID))
}
