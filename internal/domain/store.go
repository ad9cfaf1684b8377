package domain

import "time"

type StoreStatus string

const (
	StoreActive    StoreStatus = "active"
	StoreSuspended StoreStatus = "suspended"
)

type Store struct {
	ID        string      `json:"id"`
	Slug      string      `json:"slug"`
	Name      string      `json:"name"`
	Status    StoreStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type StoreSettings struct {
	StoreID        string          `json:"store_id"`
	DisplayName    string          `json:"display_name"`
	ContactPhone   string          `json:"contact_phone,omitempty"`
	WhatsappNumber string          `json:"whatsapp_number,omitempty"`
	PrimaryColor   string          `json:"primary_color,omitempty"`
	SecondaryColor string          `json:"secondary_color,omitempty"`
	HeroTitle      string          `json:"hero_title,omitempty"`
	HeroSubtitle   string          `json:"hero_subtitle,omitempty"`
	HeroImageURL   string          `json:"hero_image_url,omitempty"`
	FeatureFlags   map[string]bool `json:"feature_flags,omitempty"`
	PixKey         string          `json:"pix_key,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type StoreRepository interface {
	CreateStore(store *Store) error
	GetStoreByID(storeID string) (*Store, error)
	// GetStoreBySlug returns ErrStoreNotFound when no store carries the slug.
	GetStoreBySlug(slug string) (*Store, error)
	GetStores() ([]*Store, error)
}

type StoreSettingsRepository interface {
	UpsertSettings(settings *StoreSettings) error
	GetSettingsByStoreID(storeID string) (*StoreSettings, error)
}
