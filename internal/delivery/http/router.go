package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lojinhadasgracas/storefront-service/internal/delivery/http/handlers"
	"github.com/lojinhadasgracas/storefront-service/internal/delivery/http/middleware"
	"github.com/lojinhadasgracas/storefront-service/internal/usecase"
)

type RouterDeps struct {
	Stores   usecase.StoreUsecase
	Products usecase.ProductUsecase
	Coupons  usecase.CouponUsecase
	Orders   usecase.OrderUsecase
	Content  usecase.ContentUsecase

	Payments *handlers.PaymentHandler

	DefaultStoreSlug string
	AdminAPIKey      string
}

// NewRouter wires the public storefront surface, the X-API-KEY admin
// surface and the unscoped gateway webhook.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// the webhook carries no tenant: the order reference inside the signed
	// body identifies the store
	r.POST("/webhooks/payment", deps.Payments.Webhook)

	storeHandler := handlers.NewStoreHandler(deps.Stores)
	productHandler := handlers.NewProductHandler(deps.Products)
	couponHandler := handlers.NewCouponHandler(deps.Coupons)
	orderHandler := handlers.NewOrderHandler(deps.Orders)
	contentHandler := handlers.NewContentHandler(deps.Content)

	api := r.Group("/api", middleware.TenantResolver(deps.Stores, deps.DefaultStoreSlug))
	{
		api.GET("/settings", storeHandler.GetSettings)

		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.GET("/categories", productHandler.ListCategories)

		api.POST("/coupons/validate", couponHandler.Validate)

		api.POST("/checkout", orderHandler.Checkout)
		api.GET("/orders/reference/:reference", orderHandler.GetByReference)

		api.POST("/payments/check", deps.Payments.CheckPayment)

		api.GET("/products/:id/reviews", contentHandler.ListReviews)
		api.POST("/products/:id/reviews", contentHandler.CreateReview)
		api.POST("/wishlist", contentHandler.AddWishlistItem)
		api.GET("/wishlist", contentHandler.GetWishlist)
		api.DELETE("/wishlist/:id", contentHandler.RemoveWishlistItem)
		api.GET("/blog", contentHandler.ListBlogPosts)
		api.GET("/blog/:slug", contentHandler.GetBlogPost)
		api.POST("/waiting-list", contentHandler.JoinWaitingList)
		api.POST("/newsletter", contentHandler.SubscribeNewsletter)
	}

	admin := api.Group("/admin", middleware.RequireAPIKey(deps.AdminAPIKey))
	{
		admin.POST("/stores", storeHandler.Create)
		admin.PUT("/settings", storeHandler.UpdateSettings)

		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)
		admin.PUT("/products/:id/stock", productHandler.SetStock)
		admin.POST("/categories", productHandler.CreateCategory)
		admin.DELETE("/categories/:id", productHandler.DeleteCategory)

		admin.GET("/coupons", couponHandler.List)
		admin.POST("/coupons", couponHandler.Create)
		admin.PUT("/coupons/:id", couponHandler.Update)
		admin.DELETE("/coupons/:id", couponHandler.Delete)

		admin.GET("/orders", orderHandler.List)
		admin.GET("/orders/:id", orderHandler.Get)
		admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		admin.DELETE("/orders/:id", orderHandler.Delete)
		admin.GET("/metrics", orderHandler.Metrics)

		admin.POST("/payments/checkout-link", deps.Payments.CreateCheckoutLink)

		admin.PUT("/reviews/:id/approve", contentHandler.ApproveReview)
		admin.DELETE("/reviews/:id", contentHandler.DeleteReview)
		admin.POST("/blog", contentHandler.CreateBlogPost)
		admin.PUT("/blog/:id", contentHandler.UpdateBlogPost)
		admin.DELETE("/blog/:id", contentHandler.DeleteBlogPost)
		admin.GET("/waiting-list", contentHandler.GetWaitingList)
		admin.PUT("/waiting-list/:id/notified", contentHandler.MarkWaitingListNotified)
		admin.GET("/newsletter", contentHandler.ListNewsletterSubscriptions)
	}

	return r
}
