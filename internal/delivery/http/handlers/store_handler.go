package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojinhadasgracas/storefront-service/internal/delivery/http/middleware"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/usecase"
)

type StoreHandler struct {
	Stores usecase.StoreUsecase
}

func NewStoreHandler(stores usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{Stores: stores}
}

// GetSettings is the storefront bootstrap call: theme colors, hero copy
// and feature flags for the active store.
func (h *StoreHandler) GetSettings(c *gin.Context) {
	store := middleware.ActiveStore(c)
	settings, err := h.Stores.GetSettings(store.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store, "settings": settings})
}

type settingsRequest struct {
	DisplayName    string          `json:"display_name"`
	ContactPhone   string          `json:"contact_phone"`
	WhatsappNumber string          `json:"whatsapp_number"`
	PrimaryColor   string          `json:"primary_color"`
	SecondaryColor string          `json:"secondary_color"`
	HeroTitle      string          `json:"hero_title"`
	HeroSubtitle   string          `json:"hero_subtitle"`
	HeroImageURL   string          `json:"hero_image_url"`
	FeatureFlags   map[string]bool `json:"feature_flags"`
	PixKey         string          `json:"pix_key"`
}

func (h *StoreHandler) UpdateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	settings := &domain.StoreSettings{
		StoreID:        store.ID,
		DisplayName:    req.DisplayName,
		ContactPhone:   req.ContactPhone,
		WhatsappNumber: req.WhatsappNumber,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		HeroTitle:      req.HeroTitle,
		HeroSubtitle:   req.HeroSubtitle,
		HeroImageURL:   req.HeroImageURL,
		FeatureFlags:   req.FeatureFlags,
		PixKey:         req.PixKey,
	}
	if err := h.Stores.UpdateSettings(settings); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

type createStoreRequest struct {
	Slug string `json:"slug" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func (h *StoreHandler) Create(c *gin.Context) {
	var req createStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store, err := h.Stores.CreateStore(req.Slug, req.Name)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, store)
}
