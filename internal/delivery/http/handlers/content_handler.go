package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojinhadasgracas/storefront-service/internal/delivery/http/middleware"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/usecase"
)

type ContentHandler struct {
	Content usecase.ContentUsecase
}

func NewContentHandler(content usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{Content: content}
}

type reviewRequest struct {
	AuthorName string `json:"author_name" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

func (h *ContentHandler) CreateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	created, err := h.Content.CreateReview(&domain.Review{
		StoreID:    store.ID,
		ProductID:  c.Param("id"),
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListReviews serves approved reviews only on the storefront; the admin
// surface passes ?all=true to moderate pending ones.
func (h *ContentHandler) ListReviews(c *gin.Context) {
	store := middleware.ActiveStore(c)
	approvedOnly := c.Query("all") != "true"
	reviews, err := h.Content.GetReviewsByProductID(store.ID, c.Param("id"), approvedOnly)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ContentHandler) ApproveReview(c *gin.Context) {
	store := middleware.ActiveStore(c)
	if err := h.Content.ApproveReview(c.Param("id"), store.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"approved": true})
}

func (h *ContentHandler) DeleteReview(c *gin.Context) {
	store := middleware.ActiveStore(c)
	if err := h.Content.DeleteReview(c.Param("id"), store.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type wishlistRequest struct {
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	ProductID     string `json:"product_id" binding:"required"`
}

func (h *ContentHandler) AddWishlistItem(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	created, err := h.Content.AddWishlistItem(&domain.WishlistItem{
		StoreID:       store.ID,
		CustomerEmail: req.CustomerEmail,
		ProductID:     req.ProductID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ContentHandler) RemoveWishlistItem(c *gin.Context) {
	store := middleware.ActiveStore(c)
	if err := h.Content.RemoveWishlistItem(c.Param("id"), store.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) GetWishlist(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query param is required"})
		return
	}

	store := middleware.ActiveStore(c)
	items, err := h.Content.GetWishlistByEmail(store.ID, email)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": items})
}

type blogPostRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug"`
	Body      string `json:"body" binding:"required"`
	Published bool   `json:"published"`
}

func (h *ContentHandler) CreateBlogPost(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	created, err := h.Content.CreateBlogPost(&domain.BlogPost{
		StoreID:   store.ID,
		Title:     req.Title,
		Slug:      req.Slug,
		Body:      req.Body,
		Published: req.Published,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ContentHandler) UpdateBlogPost(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	post := &domain.BlogPost{
		ID:        c.Param("id"),
		StoreID:   store.ID,
		Title:     req.Title,
		Slug:      req.Slug,
		Body:      req.Body,
		Published: req.Published,
	}
	if err := h.Content.UpdateBlogPost(post, store.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) DeleteBlogPost(c *gin.Context) {
	store := middleware.ActiveStore(c)
	if err := h.Content.DeleteBlogPost(c.Param("id"), store.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) ListBlogPosts(c *gin.Context) {
	store := middleware.ActiveStore(c)
	publishedOnly := c.Query("all") != "true"
	posts, err := h.Content.GetBlogPostsByStoreID(store.ID, publishedOnly)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *ContentHandler) GetBlogPost(c *gin.Context) {
	store := middleware.ActiveStore(c)
	post, err := h.Content.GetBlogPostBySlug(store.ID, c.Param("slug"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

type waitingListRequest struct {
	ProductID     string `json:"product_id" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
}

func (h *ContentHandler) JoinWaitingList(c *gin.Context) {
	var req waitingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	created, err := h.Content.JoinWaitingList(&domain.WaitingListEntry{
		StoreID:       store.ID,
		ProductID:     req.ProductID,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ContentHandler) GetWaitingList(c *gin.Context) {
	productID := c.Query("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id query param is required"})
		return
	}

	store := middleware.ActiveStore(c)
	entries, err := h.Content.GetWaitingListByProductID(store.ID, productID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"waiting_list": entries})
}

type markNotifiedRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (h *ContentHandler) MarkWaitingListNotified(c *gin.Context) {
	var req markNotifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	if err := h.Content.MarkWaitingListNotified(c.Param("id"), store.ID, req.ProductID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notified": true})
}

type newsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *ContentHandler) SubscribeNewsletter(c *gin.Context) {
	var req newsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	store := middleware.ActiveStore(c)
	subscription, err := h.Content.SubscribeNewsletter(store.ID, req.Email)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subscription)
}

func (h *ContentHandler) ListNewsletterSubscriptions(c *gin.Context) {
	store := middleware.ActiveStore(c)
	subscriptions, err := h.Content.GetNewsletterSubscriptions(store.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": subscriptions})
}
