package mappers

import (
	"encoding/json"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/models"
)

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	images, _ := json.Marshal(product.Images)
	return &models.ProductModel{
		ID:          product.ID,
		StoreID:     product.StoreID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		PromoPrice:  product.PromoPrice,
		Stock:       product.Stock,
		Category:    product.Category,
		Images:      string(images),
		Featured:    product.Featured,
		Active:      product.Active,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	var images []string
	if model.Images != "" {
		json.Unmarshal([]byte(model.Images), &images)
	}
	return &domain.Product{
		ID:          model.ID,
		StoreID:     model.StoreID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		PromoPrice:  model.PromoPrice,
		Stock:       model.Stock,
		Category:    model.Category,
		Images:      images,
		Featured:    model.Featured,
		Active:      model.Active,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMCategory(category *domain.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        category.ID,
		StoreID:   category.StoreID,
		Name:      category.Name,
		Slug:      category.Slug,
		CreatedAt: category.CreatedAt,
	}
}

func ToDomainCategory(model *models.CategoryModel) *domain.Category {
	return &domain.Category{
		ID:        model.ID,
		StoreID:   model.StoreID,
		Name:      model.Name,
		Slug:      model.Slug,
		CreatedAt: model.CreatedAt,
	}
}
