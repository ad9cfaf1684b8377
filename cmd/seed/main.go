package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/lojinhadasgracas/storefront-service/internal/config"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/migrate"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/repository"
)

// seed prepares a database for local development: schema migrations, the
// default store with its settings, and a starter catalog.
func main() {
	migrationsPath := flag.String("migrations", "migrations", "path to SQL migrations")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	cfg := config.MustLoad()
	db := postgres.MustInitDB(cfg)

	if err := migrate.RunMigrations(db, *migrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	storeRepo := repository.NewDefaultStoreRepository(db)
	settingsRepo := repository.NewDefaultStoreSettingsRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	categoryRepo := repository.NewDefaultCategoryRepository(db)

	store, err := storeRepo.GetStoreBySlug(cfg.Tenancy.DefaultStoreSlug)
	switch {
	case errors.Is(err, domain.ErrStoreNotFound):
		store = &domain.Store{
			ID:        uuid.New().String(),
			Slug:      cfg.Tenancy.DefaultStoreSlug,
			Name:      "Lojinha das Graças",
			Status:    domain.StoreActive,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := storeRepo.CreateStore(store); err != nil {
			log.Fatalf("failed to create default store: %v", err)
		}
		slog.Info("default store created", "slug", store.Slug)
	case err != nil:
		log.Fatalf("failed to look up default store: %v", err)
	default:
		slog.Info("default store already present", "slug", store.Slug)
	}

	settings := &domain.StoreSettings{
		StoreID:        store.ID,
		DisplayName:    "Lojinha das Graças",
		WhatsappNumber: "+5511999990000",
		PrimaryColor:   "#d96c9f",
		SecondaryColor: "#f7e8ef",
		HeroTitle:      "Feito à mão, com carinho",
		HeroSubtitle:   "Peças artesanais para a sua casa",
		FeatureFlags: map[string]bool{
			"reviews":    true,
			"blog":       true,
			"wishlist":   true,
			"newsletter": true,
		},
		UpdatedAt: time.Now(),
	}
	if err := settingsRepo.UpsertSettings(settings); err != nil {
		log.Fatalf("failed to upsert store settings: %v", err)
	}

	existing, err := productRepo.GetProductsByStoreID(store.ID, false)
	if err != nil {
		log.Fatalf("failed to list products: %v", err)
	}
	if len(existing) > 0 {
		slog.Info("catalog already seeded", "products", len(existing))
		return
	}

	categories := []string{"Velas", "Cerâmica", "Têxteis"}
	for _, name := range categories {
		category := &domain.Category{
			ID:        uuid.New().String(),
			StoreID:   store.ID,
			Name:      name,
			CreatedAt: time.Now(),
		}
		if err := categoryRepo.CreateCategory(category); err != nil {
			log.Fatalf("failed to create category %q: %v", name, err)
		}
	}

	promo := decimal.RequireFromString("39.90")
	products := []*domain.Product{
		{
			Name:        "Vela aromática de lavanda",
			Description: "Vela artesanal em pote de vidro, queima de 40 horas.",
			Price:       decimal.RequireFromString("49.90"),
			PromoPrice:  &promo,
			Stock:       25,
			Category:    "Velas",
			Featured:    true,
		},
		{
			Name:        "Caneca de cerâmica esmaltada",
			Description: "Caneca torneada à mão, 300ml.",
			Price:       decimal.RequireFromString("68.00"),
			Stock:       12,
			Category:    "Cerâmica",
		},
		{
			Name:        "Jogo americano de linho",
			Description: "Conjunto com 4 peças em linho natural.",
			Price:       decimal.RequireFromString("120.00"),
			Stock:       8,
			Category:    "Têxteis",
		},
	}
	for _, product := range products {
		product.ID = uuid.New().String()
		product.StoreID = store.ID
		product.Active = true
		product.CreatedAt = time.Now()
		product.UpdatedAt = time.Now()
		if err := productRepo.CreateProduct(product); err != nil {
			log.Fatalf("failed to create product %q: %v", product.Name, err)
		}
	}

	slog.Info("seed finished", "store", store.Slug, "products", len(products))
}
