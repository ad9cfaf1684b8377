package postgres

import (
	"log"

	"github.com/lojinhadasgracas/storefront-service/internal/config"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.StorefrontConfig) *gorm.DB {
	dsn := cfg.StoreDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.StoreModel{},
		&models.StoreSettingsModel{},
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.CouponModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.ReviewModel{},
		&models.WishlistItemModel{},
		&models.BlogPostModel{},
		&models.WaitingListModel{},
		&models.NewsletterModel{},
	)

	return db
}
