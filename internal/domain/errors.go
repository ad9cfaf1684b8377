package domain

import "errors"

var (
	ErrStoreNotFound           = errors.New("store not found")
	ErrStoreSuspended          = errors.New("store is suspended")
	ErrStoreScopeMismatch      = errors.New("record does not belong to the active store")
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrProductNotFound         = errors.New("product not found")
	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrCouponNotFound          = errors.New("coupon not found")
	ErrCouponExpired           = errors.New("coupon expired")
	ErrCouponExhausted         = errors.New("coupon usage limit reached")
	ErrCouponMinSpend          = errors.New("cart subtotal below coupon minimum spend")
	ErrBlogPostNotFound        = errors.New("blog post not found")
	ErrBlogSlugTaken           = errors.New("blog post slug already in use")
	ErrWishlistItemNotFound    = errors.New("wishlist item not found")
	ErrCheckoutLinkMissing     = errors.New("gateway response contains no checkout url")
)
