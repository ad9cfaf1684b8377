package mappers

import (
	"encoding/json"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/models"
)

func ToGORMStore(store *domain.Store) *models.StoreModel {
	return &models.StoreModel{
		ID:        store.ID,
		Slug:      store.Slug,
		Name:      store.Name,
		Status:    store.Status,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
}

func ToDomainStore(model *models.StoreModel) *domain.Store {
	return &domain.Store{
		ID:        model.ID,
		Slug:      model.Slug,
		Name:      model.Name,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMStoreSettings(settings *domain.StoreSettings) *models.StoreSettingsModel {
	flags, _ := json.Marshal(settings.FeatureFlags)
	return &models.StoreSettingsModel{
		StoreID:        settings.StoreID,
		DisplayName:    settings.DisplayName,
		ContactPhone:   settings.ContactPhone,
		WhatsappNumber: settings.WhatsappNumber,
		PrimaryColor:   settings.PrimaryColor,
		SecondaryColor: settings.SecondaryColor,
		HeroTitle:      settings.HeroTitle,
		HeroSubtitle:   settings.HeroSubtitle,
		HeroImageURL:   settings.HeroImageURL,
		FeatureFlags:   string(flags),
		PixKey:         settings.PixKey,
		UpdatedAt:      settings.UpdatedAt,
	}
}

func ToDomainStoreSettings(model *models.StoreSettingsModel) *domain.StoreSettings {
	var flags map[string]bool
	if model.FeatureFlags != "" {
		json.Unmarshal([]byte(model.FeatureFlags), &flags)
	}
	return &domain.StoreSettings{
		StoreID:        model.StoreID,
		DisplayName:    model.DisplayName,
		ContactPhone:   model.ContactPhone,
		WhatsappNumber: model.WhatsappNumber,
		PrimaryColor:   model.PrimaryColor,
		SecondaryColor: model.SecondaryColor,
		HeroTitle:      model.HeroTitle,
		HeroSubtitle:   model.HeroSubtitle,
		HeroImageURL:   model.HeroImageURL,
		FeatureFlags:   flags,
		PixKey:         model.PixKey,
		UpdatedAt:      model.UpdatedAt,
	}
}
