package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
)

// abortWithError maps domain errors onto HTTP statuses. Scope mismatches
// answer 404 so a tenant cannot probe another tenant's records.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCouponNotFound),
		errors.Is(err, domain.ErrBlogPostNotFound),
		errors.Is(err, domain.ErrWishlistItemNotFound),
		errors.Is(err, domain.ErrStoreNotFound),
		errors.Is(err, domain.ErrStoreSuspended),
		errors.Is(err, domain.ErrStoreScopeMismatch):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrCouponExpired),
		errors.Is(err, domain.ErrCouponExhausted),
		errors.Is(err, domain.ErrCouponMinSpend),
		errors.Is(err, domain.ErrBlogSlugTaken):
		status = http.StatusUnprocessableEntity
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func abortBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
