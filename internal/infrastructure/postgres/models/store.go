package models

import (
	"time"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
)

type StoreModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Slug      string `gorm:"uniqueIndex"`
	Name      string
	Status    domain.StoreStatus `gorm:"type:varchar(20);default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StoreModel) TableName() string {
	return "stores"
}

type StoreSettingsModel struct {
	StoreID        string `gorm:"primaryKey;type:uuid"`
	DisplayName    string
	ContactPhone   string
	WhatsappNumber string
	PrimaryColor   string
	SecondaryColor string
	HeroTitle      string
	HeroSubtitle   string
	HeroImageURL   string
	FeatureFlags   string `gorm:"type:jsonb;default:'{}'"`
	PixKey         string
	UpdatedAt      time.Time
}

func (StoreSettingsModel) TableName() string {
	return "store_settings"
}
