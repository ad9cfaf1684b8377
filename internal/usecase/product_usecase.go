package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductUsecase interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(product *domain.Product, storeID string) error
	DeleteProduct(productID, storeID string) error
	GetProductByID(productID, storeID string) (*domain.Product, error)
	GetProductsByStoreID(storeID string, onlyActive bool) ([]*domain.Product, error)
	SetStock(productID, storeID string, stock int) error

	CreateCategory(category *domain.Category) (*domain.Category, error)
	DeleteCategory(categoryID, storeID string) error
	GetCategoriesByStoreID(storeID string) ([]*domain.Category, error)
}

type DefaultProductUsecase struct {
	ProductRepo  domain.ProductRepository
	CategoryRepo domain.CategoryRepository
}

func NewDefaultProductUsecase(productRepo domain.ProductRepository, categoryRepo domain.CategoryRepository) *DefaultProductUsecase {
	return &DefaultProductUsecase{ProductRepo: productRepo, CategoryRepo: categoryRepo}
}

func (uc *DefaultProductUsecase) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if product.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("product price must be positive")
	}
	if product.Stock < 0 {
		return nil, fmt.Errorf("product stock cannot be negative")
	}

	product.ID = uuid.New().String()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	if err := uc.ProductRepo.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (uc *DefaultProductUsecase) UpdateProduct(product *domain.Product, storeID string) error {
	existing, err := uc.ProductRepo.GetProductByID(product.ID)
	if err != nil {
		return err
	}
	if existing.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	product.StoreID = existing.StoreID
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	return uc.ProductRepo.UpdateProduct(product)
}

func (uc *DefaultProductUsecase) DeleteProduct(productID, storeID string) error {
	existing, err := uc.ProductRepo.GetProductByID(productID)
	if err != nil {
		return err
	}
	if existing.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	return uc.ProductRepo.DeleteProduct(productID)
}

func (uc *DefaultProductUsecase) GetProductByID(productID, storeID string) (*domain.Product, error) {
	product, err := uc.ProductRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	if product.StoreID != storeID {
		return nil, domain.ErrStoreScopeMismatch
	}
	return product, nil
}

func (uc *DefaultProductUsecase) GetProductsByStoreID(storeID string, onlyActive bool) ([]*domain.Product, error) {
	return uc.ProductRepo.GetProductsByStoreID(storeID, onlyActive)
}

// SetStock is the inventory entry point; the order flow never calls it.
func (uc *DefaultProductUsecase) SetStock(productID, storeID string, stock int) error {
	if stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	existing, err := uc.ProductRepo.GetProductByID(productID)
	if err != nil {
		return err
	}
	if existing.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	return uc.ProductRepo.AdjustStock(productID, stock-existing.Stock)
}

func (uc *DefaultProductUsecase) CreateCategory(category *domain.Category) (*domain.Category, error) {
	if category.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	category.ID = uuid.New().String()
	category.CreatedAt = time.Now()
	if err := uc.CategoryRepo.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (uc *DefaultProductUsecase) DeleteCategory(categoryID, storeID string) error {
	categories, err := uc.CategoryRepo.GetCategoriesByStoreID(storeID)
	if err != nil {
		return err
	}
	for _, category := range categories {
		if category.ID == categoryID {
			return uc.CategoryRepo.DeleteCategory(categoryID)
		}
	}
	return domain.ErrStoreScopeMismatch
}

func (uc *DefaultProductUsecase) GetCategoriesByStoreID(storeID string) ([]*domain.Category, error) {
	return uc.CategoryRepo.GetCategoriesByStoreID(storeID)
}
