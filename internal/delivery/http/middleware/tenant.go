package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/usecase"
)

const storeContextKey = "store"

// TenantResolver binds every request to one store. The slug comes from the
// ?store= query param, then from the first hostname label, then from the
// configured default. Unknown and suspended stores both answer 404 so the
// storefront leaks nothing about suspended tenants.
func TenantResolver(stores usecase.StoreUsecase, defaultSlug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := resolveSlug(c, defaultSlug)
		if slug == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "store not found"})
			return
		}

		store, err := stores.ResolveStore(slug)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "store not found"})
			return
		}

		c.Set(storeContextKey, store)
		c.Next()
	}
}

func resolveSlug(c *gin.Context, defaultSlug string) string {
	if slug := c.Query("store"); slug != "" {
		return slug
	}

	host := c.Request.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	labels := strings.Split(host, ".")
	if len(labels) >= 3 && labels[0] != "www" {
		return labels[0]
	}

	return defaultSlug
}

// ActiveStore returns the store bound by TenantResolver. Handlers behind
// the middleware can rely on it being present.
func ActiveStore(c *gin.Context) *domain.Store {
	store, _ := c.MustGet(storeContextKey).(*domain.Store)
	return store
}
