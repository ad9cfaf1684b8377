package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lojinhadasgracas/storefront-service/internal/delivery/http/middleware"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/usecase"
)

type ProductHandler struct {
	Products usecase.ProductUsecase
}

func NewProductHandler(products usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{Products: products}
}

type productRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" binding:"required"`
	PromoPrice  string   `json:"promo_price"`
	Stock       int      `json:"stock" binding:"min=0"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	Active      *bool    `json:"active"`
}

func (req *productRequest) toDomain(storeID string) (*domain.Product, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price: %w", err)
	}
	product := &domain.Product{
		StoreID:     storeID,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		Category:    req.Category,
		Images:      req.Images,
		Featured:    req.Featured,
		Active:      true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if req.PromoPrice != "" {
		promo, err := decimal.NewFromString(req.PromoPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid promo price: %w", err)
		}
		product.PromoPrice = &promo
	}
	return product, nil
}

func (h *ProductHandler) List(c *gin.Context) {
	store := middleware.ActiveStore(c)
	onlyActive := c.Query("all") != "true"
	products, err := h.Products.GetProductsByStoreID(store.ID, onlyActive)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) Get(c *gin.Context) {
	store := middleware.ActiveStore(c)
	product, err := h.Products.GetProductByID(c.Param("id"), store.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	product, err := req.toDomain(store.ID)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	created, err := h.Products.CreateProduct(product)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	product, err := req.toDomain(store.ID)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	product.ID = c.Param("id")

	if err := h.Products.UpdateProduct(product, store.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	store := middleware.ActiveStore(c)
	if err := h.Products.DeleteProduct(c.Param("id"), store.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type stockRequest struct {
	Stock int `json:"stock" binding:"min=0"`
}

func (h *ProductHandler) SetStock(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	if err := h.Products.SetStock(c.Param("id"), store.ID, req.Stock); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": req.Stock})
}

func (h *ProductHandler) ListCategories(c *gin.Context) {
	store := middleware.ActiveStore(c)
	categories, err := h.Products.GetCategoriesByStoreID(store.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

func (h *ProductHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	created, err := h.Products.CreateCategory(&domain.Category{
		StoreID: store.ID,
		Name:    req.Name,
		Slug:    req.Slug,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) DeleteCategory(c *gin.Context) {
	store := middleware.ActiveStore(c)
	if err := h.Products.DeleteCategory(c.Param("id"), store.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
