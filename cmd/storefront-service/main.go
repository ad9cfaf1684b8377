package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lojinhadasgracas/storefront-service/internal/config"
	httpdelivery "github.com/lojinhadasgracas/storefront-service/internal/delivery/http"
	"github.com/lojinhadasgracas/storefront-service/internal/delivery/http/handlers"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/email"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/fallback"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/gateway"
	publisher "github.com/lojinhadasgracas/storefront-service/internal/infrastructure/kafka"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/metrics"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/repository"
	"github.com/lojinhadasgracas/storefront-service/internal/usecase"
)

const expirySweepInterval = time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)
	// Init database
	db := postgres.MustInitDB(cfg)

	storeMetrics := metrics.NewStoreMetrics()

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	kafkaPublisher := publisher.NewDefaultKafkaPublisher(brokers, cfg.KafkaService.Topic)
	defer kafkaPublisher.Close()

	// Init repositories; orders get the degraded-path decorator
	fallbackCache := fallback.NewCache(cfg.FallbackCache.Dir)
	orderRepo := fallback.NewOrderRepository(repository.NewDefaultOrderRepository(db), fallbackCache, storeMetrics)
	productRepo := repository.NewDefaultProductRepository(db)
	categoryRepo := repository.NewDefaultCategoryRepository(db)
	couponRepo := repository.NewDefaultCouponRepository(db)
	storeRepo := repository.NewDefaultStoreRepository(db)
	settingsRepo := repository.NewDefaultStoreSettingsRepository(db)
	reviewRepo := repository.NewDefaultReviewRepository(db)
	wishlistRepo := repository.NewDefaultWishlistRepository(db)
	blogRepo := repository.NewDefaultBlogRepository(db)
	waitingListRepo := repository.NewDefaultWaitingListRepository(db)
	newsletterRepo := repository.NewDefaultNewsletterRepository(db)

	// Init external clients
	gatewayClient := gateway.NewClient(cfg.Gateway.BaseURL, storeMetrics)
	notifier := email.NewClient(cfg.Email.BaseURL, cfg.Email.APIKey, cfg.Email.From)

	// Init usecases
	storeUsecase := usecase.NewDefaultStoreUsecase(storeRepo, settingsRepo)
	productUsecase := usecase.NewDefaultProductUsecase(productRepo, categoryRepo)
	couponUsecase := usecase.NewDefaultCouponUsecase(couponRepo)
	contentUsecase := usecase.NewDefaultContentUsecase(reviewRepo, wishlistRepo, blogRepo, waitingListRepo, newsletterRepo)
	orderUsecase, err := usecase.NewDefaultOrderUsecase(
		orderRepo,
		productRepo,
		couponUsecase,
		gatewayClient,
		notifier,
		kafkaPublisher,
		storeMetrics,
		cfg.Orders.TTL,
		cfg.Gateway.RedirectURL,
	)
	if err != nil {
		log.Fatalf("failed to init order usecase: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Auto-cancel sweep for orders that never got paid
	go orderUsecase.StartExpiryWorker(ctx, expirySweepInterval)

	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Stores:           storeUsecase,
		Products:         productUsecase,
		Coupons:          couponUsecase,
		Orders:           orderUsecase,
		Content:          contentUsecase,
		Payments:         handlers.NewPaymentHandler(orderUsecase, gatewayClient, cfg.Gateway.WebhookSecret),
		DefaultStoreSlug: cfg.Tenancy.DefaultStoreSlug,
		AdminAPIKey:      cfg.AdminAPIKey,
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("storefront service listening", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupLogger(cfg *config.StorefrontConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
