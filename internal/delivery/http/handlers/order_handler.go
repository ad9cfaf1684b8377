package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lojinhadasgracas/storefront-service/internal/delivery/http/middleware"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/usecase"
	orderdto "github.com/lojinhadasgracas/storefront-service/internal/usecase/dto/order"
)

type OrderHandler struct {
	Orders usecase.OrderUsecase
}

func NewOrderHandler(orders usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

type checkoutItemRequest struct {
	ProductID string            `json:"product_id" binding:"required"`
	Quantity  int               `json:"quantity" binding:"required,min=1"`
	Options   map[string]string `json:"options"`
}

type checkoutRequest struct {
	CustomerName    string                `json:"customer_name" binding:"required"`
	CustomerEmail   string                `json:"customer_email" binding:"required,email"`
	CustomerPhone   string                `json:"customer_phone"`
	CustomerAddress string                `json:"customer_address"`
	CouponCode      string                `json:"coupon_code"`
	Items           []checkoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

// Checkout is the single storefront purchase entry point. Prices and
// discounts are recomputed server-side; the client only names products.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	input := &orderdto.CheckoutInput{
		StoreID:         store.ID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		CouponCode:      req.CouponCode,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, orderdto.CheckoutItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Options:   item.Options,
		})
	}

	out, err := h.Orders.Checkout(c.Request.Context(), input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":       out.Order,
		"payment_url": out.PaymentURL,
	})
}

// GetByReference lets a customer check their order without authentication;
// the reference is the only credential.
func (h *OrderHandler) GetByReference(c *gin.Context) {
	store := middleware.ActiveStore(c)
	order, err := h.Orders.GetOrderByReference(c.Param("reference"), store.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	store := middleware.ActiveStore(c)

	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	input := &orderdto.ListOrdersInput{
		StoreID:   store.ID,
		Page:      page,
		Limit:     limit,
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
		Reference: c.Query("reference"),
		Email:     c.Query("email"),
	}
	if status := c.Query("status"); status != "" {
		input.Statuses = []string{status}
	}

	out, err := h.Orders.ListOrders(input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": out.Orders, "total": out.Total})
}

func (h *OrderHandler) Get(c *gin.Context) {
	store := middleware.ActiveStore(c)
	order, err := h.Orders.GetOrderByID(c.Param("id"), store.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	status, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		return
	}

	store := middleware.ActiveStore(c)
	if err := h.Orders.UpdateStatus(c.Param("id"), store.ID, status); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	store := middleware.ActiveStore(c)
	if err := h.Orders.DeleteOrder(c.Param("id"), store.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) Metrics(c *gin.Context) {
	store := middleware.ActiveStore(c)
	report, err := h.Orders.GetMetrics(store.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_orders":   report.TotalOrders,
		"pending_orders": report.PendingOrders,
		"revenue":        report.Revenue,
	})
}
