package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
)

type ContentUsecase interface {
	CreateReview(review *domain.Review) (*domain.Review, error)
	ApproveReview(reviewID, storeID string) error
	DeleteReview(reviewID, storeID string) error
	GetReviewsByProductID(storeID, productID string, approvedOnly bool) ([]*domain.Review, error)

	AddWishlistItem(item *domain.WishlistItem) (*domain.WishlistItem, error)
	RemoveWishlistItem(itemID, storeID string) error
	GetWishlistByEmail(storeID, customerEmail string) ([]*domain.WishlistItem, error)

	CreateBlogPost(post *domain.BlogPost) (*domain.BlogPost, error)
	UpdateBlogPost(post *domain.BlogPost, storeID string) error
	DeleteBlogPost(postID, storeID string) error
	GetBlogPostBySlug(storeID, slug string) (*domain.BlogPost, error)
	GetBlogPostsByStoreID(storeID string, publishedOnly bool) ([]*domain.BlogPost, error)

	JoinWaitingList(entry *domain.WaitingListEntry) (*domain.WaitingListEntry, error)
	GetWaitingListByProductID(storeID, productID string) ([]*domain.WaitingListEntry, error)
	MarkWaitingListNotified(entryID, storeID, productID string) error

	SubscribeNewsletter(storeID, email string) (*domain.NewsletterSubscription, error)
	GetNewsletterSubscriptions(storeID string) ([]*domain.NewsletterSubscription, error)
}

type DefaultContentUsecase struct {
	ReviewRepo      domain.ReviewRepository
	WishlistRepo    domain.WishlistRepository
	BlogRepo        domain.BlogRepository
	WaitingListRepo domain.WaitingListRepository
	NewsletterRepo  domain.NewsletterRepository
}

func NewDefaultContentUsecase(
	reviewRepo domain.ReviewRepository,
	wishlistRepo domain.WishlistRepository,
	blogRepo domain.BlogRepository,
	waitingListRepo domain.WaitingListRepository,
	newsletterRepo domain.NewsletterRepository,
) *DefaultContentUsecase {
	return &DefaultContentUsecase{
		ReviewRepo:      reviewRepo,
		WishlistRepo:    wishlistRepo,
		BlogRepo:        blogRepo,
		WaitingListRepo: waitingListRepo,
		NewsletterRepo:  newsletterRepo,
	}
}

func (uc *DefaultContentUsecase) CreateReview(review *domain.Review) (*domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if review.AuthorName == "" {
		return nil, fmt.Errorf("author name is required")
	}
	review.ID = uuid.New().String()
	review.Approved = false
	review.CreatedAt = time.Now()
	if err := uc.ReviewRepo.CreateReview(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

func (uc *DefaultContentUsecase) ApproveReview(reviewID, storeID string) error {
	review, err := uc.ReviewRepo.GetReviewByID(reviewID)
	if err != nil {
		return err
	}
	if review.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	return uc.ReviewRepo.ApproveReview(reviewID)
}

func (uc *DefaultContentUsecase) DeleteReview(reviewID, storeID string) error {
	review, err := uc.ReviewRepo.GetReviewByID(reviewID)
	if err != nil {
		return err
	}
	if review.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	return uc.ReviewRepo.DeleteReview(reviewID)
}

func (uc *DefaultContentUsecase) GetReviewsByProductID(storeID, productID string, approvedOnly bool) ([]*domain.Review, error) {
	return uc.ReviewRepo.GetReviewsByProductID(storeID, productID, approvedOnly)
}

func (uc *DefaultContentUsecase) AddWishlistItem(item *domain.WishlistItem) (*domain.WishlistItem, error) {
	if item.CustomerEmail == "" || item.ProductID == "" {
		return nil, fmt.Errorf("customer email and product are required")
	}
	item.ID = uuid.New().String()
	item.CreatedAt = time.Now()
	if err := uc.WishlistRepo.AddWishlistItem(item); err != nil {
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return item, nil
}

func (uc *DefaultContentUsecase) RemoveWishlistItem(itemID, storeID string) error {
	return uc.WishlistRepo.RemoveWishlistItem(storeID, itemID)
}

func (uc *DefaultContentUsecase) GetWishlistByEmail(storeID, customerEmail string) ([]*domain.WishlistItem, error) {
	return uc.WishlistRepo.GetWishlistByEmail(storeID, customerEmail)
}

func (uc *DefaultContentUsecase) CreateBlogPost(post *domain.BlogPost) (*domain.BlogPost, error) {
	if post.Title == "" || post.Slug == "" {
		return nil, fmt.Errorf("blog post title and slug are required")
	}
	post.ID = uuid.New().String()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	if post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := uc.BlogRepo.CreateBlogPost(post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return post, nil
}

func (uc *DefaultContentUsecase) UpdateBlogPost(post *domain.BlogPost, storeID string) error {
	if post.Title == "" || post.Slug == "" {
		return fmt.Errorf("blog post title and slug are required")
	}
	existing, err := uc.BlogRepo.GetBlogPostByID(post.ID)
	if err != nil {
		return err
	}
	if existing.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	if post.Slug != existing.Slug {
		other, err := uc.BlogRepo.GetBlogPostBySlug(storeID, post.Slug)
		switch {
		case err == nil && other.ID != existing.ID:
			return domain.ErrBlogSlugTaken
		case err != nil && !errors.Is(err, domain.ErrBlogPostNotFound):
			return err
		}
	}
	post.StoreID = existing.StoreID
	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = time.Now()
	if post.Published && existing.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	} else {
		post.PublishedAt = existing.PublishedAt
	}
	return uc.BlogRepo.UpdateBlogPost(post)
}

func (uc *DefaultContentUsecase) DeleteBlogPost(postID, storeID string) error {
	existing, err := uc.BlogRepo.GetBlogPostByID(postID)
	if err != nil {
		return err
	}
	if existing.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	return uc.BlogRepo.DeleteBlogPost(postID)
}

func (uc *DefaultContentUsecase) GetBlogPostBySlug(storeID, slug string) (*domain.BlogPost, error) {
	return uc.BlogRepo.GetBlogPostBySlug(storeID, slug)
}

func (uc *DefaultContentUsecase) GetBlogPostsByStoreID(storeID string, publishedOnly bool) ([]*domain.BlogPost, error) {
	return uc.BlogRepo.GetBlogPostsByStoreID(storeID, publishedOnly)
}

func (uc *DefaultContentUsecase) JoinWaitingList(entry *domain.WaitingListEntry) (*domain.WaitingListEntry, error) {
	if entry.CustomerEmail == "" || entry.ProductID == "" {
		return nil, fmt.Errorf("customer email and product are required")
	}
	entry.ID = uuid.New().String()
	entry.Notified = false
	entry.CreatedAt = time.Now()
	if err := uc.WaitingListRepo.AddWaitingListEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to join waiting list: %w", err)
	}
	return entry, nil
}

func (uc *DefaultContentUsecase) GetWaitingListByProductID(storeID, productID string) ([]*domain.WaitingListEntry, error) {
	return uc.WaitingListRepo.GetWaitingListByProductID(storeID, productID)
}

func (uc *DefaultContentUsecase) MarkWaitingListNotified(entryID, storeID, productID string) error {
	entries, err := uc.WaitingListRepo.GetWaitingListByProductID(storeID, productID)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.ID == entryID {
			return uc.WaitingListRepo.MarkNotified(entryID)
		}
	}
	return domain.ErrStoreScopeMismatch
}

func (uc *DefaultContentUsecase) SubscribeNewsletter(storeID, email string) (*domain.NewsletterSubscription, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	sub := &domain.NewsletterSubscription{
		ID:           uuid.New().String(),
		StoreID:      storeID,
		Email:        email,
		SubscribedAt: time.Now(),
	}
	if err := uc.NewsletterRepo.Subscribe(sub); err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}
	return sub, nil
}

func (uc *DefaultContentUsecase) GetNewsletterSubscriptions(storeID string) ([]*domain.NewsletterSubscription, error) {
	return uc.NewsletterRepo.GetSubscriptionsByStoreID(storeID)
}
