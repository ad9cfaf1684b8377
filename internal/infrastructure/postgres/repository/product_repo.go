package repository

import (
	"errors"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/mappers"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) CreateProduct(product *domain.Product) error {
	return r.DB.Create(mappers.ToGORMProduct(product)).Error
}

func (r *DefaultProductRepository) UpdateProduct(product *domain.Product) error {
	return r.DB.Save(mappers.ToGORMProduct(product)).Error
}

func (r *DefaultProductRepository) DeleteProduct(productID string) error {
	result := r.DB.Delete(&models.ProductModel{}, "id = ?", productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *DefaultProductRepository) GetProductByID(productID string) (*domain.Product, error) {
	var product models.ProductModel
	if err := r.DB.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&product), nil
}

func (r *DefaultProductRepository) GetProductsByStoreID(storeID string, onlyActive bool) ([]*domain.Product, error) {
	var productModels []models.ProductModel
	query := r.DB.Where("store_id = ?", storeID)
	if onlyActive {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(productModels))
	for i, productModel := range productModels {
		products[i] = mappers.ToDomainProduct(&productModel)
	}
	return products, nil
}

// AdjustStock applies the delta in a single statement guarded against
// going negative, so two concurrent confirmations cannot oversell.
func (r *DefaultProductRepository) AdjustStock(productID string, delta int) error {
	result := r.DB.Model(&models.ProductModel{}).
		Where("id = ? AND stock + ? >= 0", productID, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		r.DB.Model(&models.ProductModel{}).Where("id = ?", productID).Count(&count)
		if count == 0 {
			return domain.ErrProductNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}
