package repository

import (
	"errors"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/mappers"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCategoryRepository struct {
	DB *gorm.DB
}

func NewDefaultCategoryRepository(db *gorm.DB) *DefaultCategoryRepository {
	return &DefaultCategoryRepository{DB: db}
}

func (r *DefaultCategoryRepository) CreateCategory(category *domain.Category) error {
	return r.DB.Create(mappers.ToGORMCategory(category)).Error
}

func (r *DefaultCategoryRepository) DeleteCategory(categoryID string) error {
	return r.DB.Delete(&models.CategoryModel{}, "id = ?", categoryID).Error
}

func (r *DefaultCategoryRepository) GetCategoriesByStoreID(storeID string) ([]*domain.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.DB.Where("store_id = ?", storeID).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, len(categoryModels))
	for i, categoryModel := range categoryModels {
		categories[i] = mappers.ToDomainCategory(&categoryModel)
	}
	return categories, nil
}

type DefaultReviewRepository struct {
	DB *gorm.DB
}

func NewDefaultReviewRepository(db *gorm.DB) *DefaultReviewRepository {
	return &DefaultReviewRepository{DB: db}
}

func (r *DefaultReviewRepository) CreateReview(review *domain.Review) error {
	return r.DB.Create(mappers.ToGORMReview(review)).Error
}

func (r *DefaultReviewRepository) ApproveReview(reviewID string) error {
	return r.DB.Model(&models.ReviewModel{}).
		Where("id = ?", reviewID).
		Update("approved", true).Error
}

func (r *DefaultReviewRepository) DeleteReview(reviewID string) error {
	return r.DB.Delete(&models.ReviewModel{}, "id = ?", reviewID).Error
}

func (r *DefaultReviewRepository) GetReviewByID(reviewID string) (*domain.Review, error) {
	var review models.ReviewModel
	if err := r.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainReview(&review), nil
}

func (r *DefaultReviewRepository) GetReviewsByProductID(storeID, productID string, approvedOnly bool) ([]*domain.Review, error) {
	var reviewModels []models.ReviewModel
	query := r.DB.Where("store_id = ? AND product_id = ?", storeID, productID)
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&reviewModels).Error; err != nil {
		return nil, err
	}
	reviews := make([]*domain.Review, len(reviewModels))
	for i, reviewModel := range reviewModels {
		reviews[i] = mappers.ToDomainReview(&reviewModel)
	}
	return reviews, nil
}

type DefaultWishlistRepository struct {
	DB *gorm.DB
}

func NewDefaultWishlistRepository(db *gorm.DB) *DefaultWishlistRepository {
	return &DefaultWishlistRepository{DB: db}
}

func (r *DefaultWishlistRepository) AddWishlistItem(item *domain.WishlistItem) error {
	return r.DB.Create(mappers.ToGORMWishlistItem(item)).Error
}

func (r *DefaultWishlistRepository) RemoveWishlistItem(storeID, itemID string) error {
	result := r.DB.Delete(&models.WishlistItemModel{}, "id = ? AND store_id = ?", itemID, storeID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrWishlistItemNotFound
	}
	return nil
}

func (r *DefaultWishlistRepository) GetWishlistByEmail(storeID, customerEmail string) ([]*domain.WishlistItem, error) {
	var itemModels []models.WishlistItemModel
	if err := r.DB.Where("store_id = ? AND customer_email = ?", storeID, customerEmail).
		Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]*domain.WishlistItem, len(itemModels))
	for i, itemModel := range itemModels {
		items[i] = mappers.ToDomainWishlistItem(&itemModel)
	}
	return items, nil
}

type DefaultBlogRepository struct {
	DB *gorm.DB
}

func NewDefaultBlogRepository(db *gorm.DB) *DefaultBlogRepository {
	return &DefaultBlogRepository{DB: db}
}

func (r *DefaultBlogRepository) CreateBlogPost(post *domain.BlogPost) error {
	return r.DB.Create(mappers.ToGORMBlogPost(post)).Error
}

func (r *DefaultBlogRepository) UpdateBlogPost(post *domain.BlogPost) error {
	return r.DB.Save(mappers.ToGORMBlogPost(post)).Error
}

func (r *DefaultBlogRepository) DeleteBlogPost(postID string) error {
	return r.DB.Delete(&models.BlogPostModel{}, "id = ?", postID).Error
}

func (r *DefaultBlogRepository) GetBlogPostByID(postID string) (*domain.BlogPost, error) {
	var post models.BlogPostModel
	if err := r.DB.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, err
	}
	return mappers.ToDomainBlogPost(&post), nil
}

func (r *DefaultBlogRepository) GetBlogPostBySlug(storeID, slug string) (*domain.BlogPost, error) {
	var post models.BlogPostModel
	if err := r.DB.First(&post, "store_id = ? AND slug = ?", storeID, slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, err
	}
	return mappers.ToDomainBlogPost(&post), nil
}

func (r *DefaultBlogRepository) GetBlogPostsByStoreID(storeID string, publishedOnly bool) ([]*domain.BlogPost, error) {
	var postModels []models.BlogPostModel
	query := r.DB.Where("store_id = ?", storeID)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}
	posts := make([]*domain.BlogPost, len(postModels))
	for i, postModel := range postModels {
		posts[i] = mappers.ToDomainBlogPost(&postModel)
	}
	return posts, nil
}

type DefaultWaitingListRepository struct {
	DB *gorm.DB
}

func NewDefaultWaitingListRepository(db *gorm.DB) *DefaultWaitingListRepository {
	return &DefaultWaitingListRepository{DB: db}
}

func (r *DefaultWaitingListRepository) AddWaitingListEntry(entry *domain.WaitingListEntry) error {
	return r.DB.Create(mappers.ToGORMWaitingListEntry(entry)).Error
}

func (r *DefaultWaitingListRepository) MarkNotified(entryID string) error {
	return r.DB.Model(&models.WaitingListModel{}).
		Where("id = ?", entryID).
		Update("notified", true).Error
}

func (r *DefaultWaitingListRepository) GetWaitingListByProductID(storeID, productID string) ([]*domain.WaitingListEntry, error) {
	var entryModels []models.WaitingListModel
	if err := r.DB.Where("store_id = ? AND product_id = ?", storeID, productID).
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	entries := make([]*domain.WaitingListEntry, len(entryModels))
	for i, entryModel := range entryModels {
		entries[i] = mappers.ToDomainWaitingListEntry(&entryModel)
	}
	return entries, nil
}

type DefaultNewsletterRepository struct {
	DB *gorm.DB
}

func NewDefaultNewsletterRepository(db *gorm.DB) *DefaultNewsletterRepository {
	return &DefaultNewsletterRepository{DB: db}
}

func (r *DefaultNewsletterRepository) Subscribe(subscription *domain.NewsletterSubscription) error {
	return r.DB.Create(mappers.ToGORMNewsletter(subscription)).Error
}

func (r *DefaultNewsletterRepository) GetSubscriptionsByStoreID(storeID string) ([]*domain.NewsletterSubscription, error) {
	var subModels []models.NewsletterModel
	if err := r.DB.Where("store_id = ?", storeID).Find(&subModels).Error; err != nil {
		return nil, err
	}
	subs := make([]*domain.NewsletterSubscription, len(subModels))
	for i, subModel := range subModels {
		subs[i] = mappers.ToDomainNewsletter(&subModel)
	}
	return subs, nil
}
