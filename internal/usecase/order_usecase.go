package usecase

import (
	"context"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	publisher "github.com/lojinhadasgracas/storefront-service/internal/infrastructure/kafka"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/metrics"
	orderdto "github.com/lojinhadasgracas/storefront-service/internal/usecase/dto/order"
)

// referenceAlphabet avoids lookalike characters; references end up in
// emails and gateway payloads.
const referenceAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

type OrderUsecase interface {
	Checkout(ctx context.Context, input *orderdto.CheckoutInput) (*orderdto.CheckoutOutput, error)

	ConfirmPayment(orderID, storeID, transactionID, rawPayload string) error
	ConfirmPaymentByReference(reference, transactionID, rawPayload string) error
	MarkDelivered(orderID, storeID string) error
	CancelOrder(orderID, storeID string) error
	UpdateStatus(orderID, storeID string, status domain.OrderStatus) error
	CancelExpiredOrders(ctx context.Context) error

	GetOrderByID(orderID, storeID string) (*domain.Order, error)
	GetOrderByReference(reference, storeID string) (*domain.Order, error)
	ListOrders(input *orderdto.ListOrdersInput) (*orderdto.ListOrdersOutput, error)
	GetMetrics(storeID string) (*domain.OrderMetricsReport, error)
	DeleteOrder(orderID, storeID string) error
}

type OrderEventPublisher interface {
	PublishOrder(event publisher.OrderEvent) error
}

type DefaultOrderUsecase struct {
	OrderRepo     domain.OrderRepository
	ProductRepo   domain.ProductRepository
	CouponUsecase CouponUsecase
	Gateway       domain.PaymentGatewayPort
	Notifier      domain.OrderNotifierPort
	Publisher     OrderEventPublisher
	Metrics       *metrics.StoreMetrics
	OrderTTL      time.Duration
	RedirectURL   string

	newReference func() string
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	couponUsecase CouponUsecase,
	gateway domain.PaymentGatewayPort,
	notifier domain.OrderNotifierPort,
	eventPublisher OrderEventPublisher,
	storeMetrics *metrics.StoreMetrics,
	orderTTL time.Duration,
	redirectURL string,
) (*DefaultOrderUsecase, error) {
	refGen, err := nanoid.CustomASCII(referenceAlphabet, 10)
	if err != nil {
		return nil, err
	}
	return &DefaultOrderUsecase{
		OrderRepo:     orderRepo,
		ProductRepo:   productRepo,
		CouponUsecase: couponUsecase,
		Gateway:       gateway,
		Notifier:      notifier,
		Publisher:     eventPublisher,
		Metrics:       storeMetrics,
		OrderTTL:      orderTTL,
		RedirectURL:   redirectURL,
		newReference:  refGen,
	}, nil
}
