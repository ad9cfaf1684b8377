package models

import "time"

type ReviewModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	StoreID    string `gorm:"type:uuid;index"`
	ProductID  string `gorm:"type:uuid;index"`
	AuthorName string
	Rating     int `gorm:"check:rating BETWEEN 1 AND 5"`
	Comment    string
	Approved   bool
	CreatedAt  time.Time
}

type WishlistItemModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	StoreID       string `gorm:"type:uuid;index:idx_wishlist_store_email"`
	CustomerEmail string `gorm:"index:idx_wishlist_store_email"`
	ProductID     string `gorm:"type:uuid"`
	CreatedAt     time.Time
}

type BlogPostModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	StoreID     string `gorm:"type:uuid;uniqueIndex:idx_blog_store_slug"`
	Title       string
	Slug        string `gorm:"uniqueIndex:idx_blog_store_slug"`
	Body        string
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type WaitingListModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	StoreID       string `gorm:"type:uuid;index"`
	ProductID     string `gorm:"type:uuid;index"`
	CustomerEmail string
	Notified      bool
	CreatedAt     time.Time
}

type NewsletterModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	StoreID      string `gorm:"type:uuid;uniqueIndex:idx_newsletter_store_email"`
	Email        string `gorm:"uniqueIndex:idx_newsletter_store_email"`
	SubscribedAt time.Time
}

func (ReviewModel) TableName() string {
	return "reviews"
}

func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}

func (WaitingListModel) TableName() string {
	return "waiting_list_entries"
}

func (NewsletterModel) TableName() string {
	return "newsletter_subscriptions"
}
