package mappers

import (
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/models"
)

func ToGORMReview(review *domain.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:         review.ID,
		StoreID:    review.StoreID,
		ProductID:  review.ProductID,
		AuthorName: review.AuthorName,
		Rating:     review.Rating,
		Comment:    review.Comment,
		Approved:   review.Approved,
		CreatedAt:  review.CreatedAt,
	}
}

func ToDomainReview(model *models.ReviewModel) *domain.Review {
	return &domain.Review{
		ID:         model.ID,
		StoreID:    model.StoreID,
		ProductID:  model.ProductID,
		AuthorName: model.AuthorName,
		Rating:     model.Rating,
		Comment:    model.Comment,
		Approved:   model.Approved,
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMWishlistItem(item *domain.WishlistItem) *models.WishlistItemModel {
	return &models.WishlistItemModel{
		ID:            item.ID,
		StoreID:       item.StoreID,
		CustomerEmail: item.CustomerEmail,
		ProductID:     item.ProductID,
		CreatedAt:     item.CreatedAt,
	}
}

func ToDomainWishlistItem(model *models.WishlistItemModel) *domain.WishlistItem {
	return &domain.WishlistItem{
		ID:            model.ID,
		StoreID:       model.StoreID,
		CustomerEmail: model.CustomerEmail,
		ProductID:     model.ProductID,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMBlogPost(post *domain.BlogPost) *models.BlogPostModel {
	return &models.BlogPostModel{
		ID:          post.ID,
		StoreID:     post.StoreID,
		Title:       post.Title,
		Slug:        post.Slug,
		Body:        post.Body,
		Published:   post.Published,
		PublishedAt: post.PublishedAt,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func ToDomainBlogPost(model *models.BlogPostModel) *domain.BlogPost {
	return &domain.BlogPost{
		ID:          model.ID,
		StoreID:     model.StoreID,
		Title:       model.Title,
		Slug:        model.Slug,
		Body:        model.Body,
		Published:   model.Published,
		PublishedAt: model.PublishedAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMWaitingListEntry(entry *domain.WaitingListEntry) *models.WaitingListModel {
	return &models.WaitingListModel{
		ID:            entry.ID,
		StoreID:       entry.StoreID,
		ProductID:     entry.ProductID,
		CustomerEmail: entry.CustomerEmail,
		Notified:      entry.Notified,
		CreatedAt:     entry.CreatedAt,
	}
}

func ToDomainWaitingListEntry(model *models.WaitingListModel) *domain.WaitingListEntry {
	return &domain.WaitingListEntry{
		ID:            model.ID,
		StoreID:       model.StoreID,
		ProductID:     model.ProductID,
		CustomerEmail: model.CustomerEmail,
		Notified:      model.Notified,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMNewsletter(sub *domain.NewsletterSubscription) *models.NewsletterModel {
	return &models.NewsletterModel{
		ID:           sub.ID,
		StoreID:      sub.StoreID,
		Email:        sub.Email,
		SubscribedAt: sub.SubscribedAt,
	}
}

func ToDomainNewsletter(model *models.NewsletterModel) *domain.NewsletterSubscription {
	return &domain.NewsletterSubscription{
		ID:           model.ID,
		StoreID:      model.StoreID,
		Email:        model.Email,
		SubscribedAt: model.SubscribedAt,
	}
}
