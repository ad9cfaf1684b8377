package domain

import "time"

type Review struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"store_id"`
	ProductID  string    `json:"product_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}

type WishlistItem struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"store_id"`
	CustomerEmail string    `json:"customer_email"`
	ProductID     string    `json:"product_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type BlogPost struct {
	ID          string     `json:"id"`
	StoreID     string     `json:"store_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type WaitingListEntry struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"store_id"`
	ProductID     string    `json:"product_id"`
	CustomerEmail string    `json:"customer_email"`
	Notified      bool      `json:"notified"`
	CreatedAt     time.Time `json:"created_at"`
}

type NewsletterSubscription struct {
	ID           string    `json:"id"`
	StoreID      string    `json:"store_id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

type ReviewRepository interface {
	CreateReview(review *Review) error
	ApproveReview(reviewID string) error
	DeleteReview(reviewID string) error
	GetReviewByID(reviewID string) (*Review, error)
	GetReviewsByProductID(storeID, productID string, approvedOnly bool) ([]*Review, error)
}

type WishlistRepository interface {
	AddWishlistItem(item *WishlistItem) error
	RemoveWishlistItem(storeID, itemID string) error
	GetWishlistByEmail(storeID, customerEmail string) ([]*WishlistItem, error)
}

type BlogRepository interface {
	CreateBlogPost(post *BlogPost) error
	UpdateBlogPost(post *BlogPost) error
	DeleteBlogPost(postID string) error
	GetBlogPostByID(postID string) (*BlogPost, error)
	GetBlogPostBySlug(storeID, slug string) (*BlogPost, error)
	GetBlogPostsByStoreID(storeID string, publishedOnly bool) ([]*BlogPost, error)
}

type WaitingListRepository interface {
	AddWaitingListEntry(entry *WaitingListEntry) error
	MarkNotified(entryID string) error
	GetWaitingListByProductID(storeID, productID string) ([]*WaitingListEntry, error)
}

type NewsletterRepository interface {
	Subscribe(subscription *NewsletterSubscription) error
	GetSubscriptionsByStoreID(storeID string) ([]*NewsletterSubscription, error)
}
