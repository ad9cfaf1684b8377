package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
)

type StoreUsecase interface {
	CreateStore(slug, name string) (*domain.Store, error)
	// ResolveStore maps a slug to an active store; suspended and unknown
	// stores are indistinguishable to the storefront.
	ResolveStore(slug string) (*domain.Store, error)
	GetSettings(storeID string) (*domain.StoreSettings, error)
	UpdateSettings(settings *domain.StoreSettings) error
}

type DefaultStoreUsecase struct {
	StoreRepo    domain.StoreRepository
	SettingsRepo domain.StoreSettingsRepository
}

func NewDefaultStoreUsecase(storeRepo domain.StoreRepository, settingsRepo domain.StoreSettingsRepository) *DefaultStoreUsecase {
	return &DefaultStoreUsecase{StoreRepo: storeRepo, SettingsRepo: settingsRepo}
}

func (uc *DefaultStoreUsecase) CreateStore(slug, name string) (*domain.Store, error) {
	if slug == "" || name == "" {
		return nil, fmt.Errorf("store slug and name are required")
	}
	store := &domain.Store{
		ID:        uuid.New().String(),
		Slug:      slug,
		Name:      name,
		Status:    domain.StoreActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.StoreRepo.CreateStore(store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return store, nil
}

func (uc *DefaultStoreUsecase) ResolveStore(slug string) (*domain.Store, error) {
	store, err := uc.StoreRepo.GetStoreBySlug(slug)
	if err != nil {
		return nil, err
	}
	if store.Status != domain.StoreActive {
		return nil, domain.ErrStoreSuspended
	}
	return store, nil
}

func (uc *DefaultStoreUsecase) GetSettings(storeID string) (*domain.StoreSettings, error) {
	return uc.SettingsRepo.GetSettingsByStoreID(storeID)
}

func (uc *DefaultStoreUsecase) UpdateSettings(settings *domain.StoreSettings) error {
	if settings.StoreID == "" {
		return fmt.Errorf("store id is required")
	}
	return uc.SettingsRepo.UpsertSettings(settings)
}
