package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
)

type fakeStoreResolver struct {
	stores map[string]*domain.Store
}

func (f *fakeStoreResolver) CreateStore(slug, name string) (*domain.Store, error) {
	return nil, nil
}

func (f *fakeStoreResolver) ResolveStore(slug string) (*domain.Store, error) {
	store, ok := f.stores[slug]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	if store.Status != domain.StoreActive {
		return nil, domain.ErrStoreSuspended
	}
	return store, nil
}

func (f *fakeStoreResolver) GetSettings(storeID string) (*domain.StoreSettings, error) {
	return &domain.StoreSettings{StoreID: storeID}, nil
}

func (f *fakeStoreResolver) UpdateSettings(settings *domain.StoreSettings) error {
	return nil
}

func tenantServer(defaultSlug string) (*gin.Engine, *fakeStoreResolver) {
	gin.SetMode(gin.TestMode)
	resolver := &fakeStoreResolver{stores: map[string]*domain.Store{
		"gracas": {ID: "store-1", Slug: "gracas", Status: domain.StoreActive},
		"outra":  {ID: "store-2", Slug: "outra", Status: domain.StoreActive},
		"parada": {ID: "store-3", Slug: "parada", Status: domain.StoreSuspended},
	}}

	r := gin.New()
	r.GET("/api/whoami", TenantResolver(resolver, defaultSlug), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"store_id": ActiveStore(c).ID})
	})
	return r, resolver
}

func get(r *gin.Engine, target, host string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if host != "" {
		req.Host = host
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTenantFromQueryParam(t *testing.T) {
	r, _ := tenantServer("gracas")
	w := get(r, "/api/whoami?store=outra", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "store-2")
}

func TestTenantFromSubdomain(t *testing.T) {
	r, _ := tenantServer("gracas")
	w := get(r, "/api/whoami", "outra.lojinha.com.br")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "store-2")
}

func TestTenantQueryParamWinsOverSubdomain(t *testing.T) {
	r, _ := tenantServer("gracas")
	w := get(r, "/api/whoami?store=gracas", "outra.lojinha.com.br")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "store-1")
}

func TestTenantDefaultSlug(t *testing.T) {
	r, _ := tenantServer("gracas")

	w := get(r, "/api/whoami", "localhost:8080")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "store-1")

	// www is not a tenant label
	w = get(r, "/api/whoami", "www.lojinha.com.br")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "store-1")
}

func TestTenantUnknownStoreIs404(t *testing.T) {
	r, _ := tenantServer("gracas")
	w := get(r, "/api/whoami?store=fantasma", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTenantSuspendedStoreIs404(t *testing.T) {
	r, _ := tenantServer("gracas")
	w := get(r, "/api/whoami?store=parada", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
