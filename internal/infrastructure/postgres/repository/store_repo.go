package repository

import (
	"errors"
	"time"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/mappers"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultStoreRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{DB: db}
}

func (r *DefaultStoreRepository) CreateStore(store *domain.Store) error {
	return r.DB.Create(mappers.ToGORMStore(store)).Error
}

func (r *DefaultStoreRepository) GetStoreByID(storeID string) (*domain.Store, error) {
	var store models.StoreModel
	if err := r.DB.First(&store, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	return mappers.ToDomainStore(&store), nil
}

func (r *DefaultStoreRepository) GetStoreBySlug(slug string) (*domain.Store, error) {
	var store models.StoreModel
	if err := r.DB.First(&store, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	return mappers.ToDomainStore(&store), nil
}

func (r *DefaultStoreRepository) GetStores() ([]*domain.Store, error) {
	var storeModels []models.StoreModel
	if err := r.DB.Find(&storeModels).Error; err != nil {
		return nil, err
	}
	stores := make([]*domain.Store, len(storeModels))
	for i, storeModel := range storeModels {
		stores[i] = mappers.ToDomainStore(&storeModel)
	}
	return stores, nil
}

type DefaultStoreSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreSettingsRepository(db *gorm.DB) *DefaultStoreSettingsRepository {
	return &DefaultStoreSettingsRepository{DB: db}
}

func (r *DefaultStoreSettingsRepository) UpsertSettings(settings *domain.StoreSettings) error {
	settings.UpdatedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}},
		UpdateAll: true,
	}).Create(mappers.ToGORMStoreSettings(settings)).Error
}

func (r *DefaultStoreSettingsRepository) GetSettingsByStoreID(storeID string) (*domain.StoreSettings, error) {
	var settings models.StoreSettingsModel
	if err := r.DB.First(&settings, "store_id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// settings are optional, a fresh store simply has none yet
			return &domain.StoreSettings{StoreID: storeID}, nil
		}
		return nil, err
	}
	return mappers.ToDomainStoreSettings(&settings), nil
}
