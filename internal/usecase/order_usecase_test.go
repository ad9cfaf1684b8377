package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	orderdto "github.com/lojinhadasgracas/storefront-service/internal/usecase/dto/order"
)

const testStoreID = "store-1"

func testProduct(id string, price string, stock int) *domain.Product {
	return &domain.Product{
		ID:      id,
		StoreID: testStoreID,
		Name:    "Produto " + id,
		Price:   decimal.RequireFromString(price),
		Stock:   stock,
		Active:  true,
	}
}

func newTestOrderUsecase(t *testing.T, orderRepo *fakeOrderRepo, productRepo *fakeProductRepo, couponRepo *fakeCouponRepo, gateway *fakeGateway, notifier *fakeNotifier) *DefaultOrderUsecase {
	t.Helper()
	uc, err := NewDefaultOrderUsecase(
		orderRepo,
		productRepo,
		NewDefaultCouponUsecase(couponRepo),
		gateway,
		notifier,
		&fakePublisher{},
		nil,
		30*time.Minute,
		"https://loja.example/obrigado",
	)
	require.NoError(t, err)
	return uc
}

func checkoutInput(items ...orderdto.CheckoutItemInput) *orderdto.CheckoutInput {
	return &orderdto.CheckoutInput{
		StoreID:       testStoreID,
		CustomerName:  "Maria das Graças",
		CustomerEmail: "maria@example.com",
		Items:         items,
	}
}

func TestCheckoutComputesTotalsWithCoupon(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "100.00", 5))
	couponRepo := newFakeCouponRepo(&domain.Coupon{
		ID:      "c1",
		StoreID: testStoreID,
		Code:    "BEMVINDA",
		Type:    domain.CouponFixed,
		Value:   decimal.RequireFromString("10.00"),
		Active:  true,
	})
	gateway := &fakeGateway{url: "https://pay.example/abc"}
	uc := newTestOrderUsecase(t, orderRepo, productRepo, couponRepo, gateway, &fakeNotifier{})

	input := checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 2})
	input.CouponCode = "BEMVINDA"

	out, err := uc.Checkout(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example/abc", out.PaymentURL)
	assert.Equal(t, domain.StatusPending, out.Order.Status)
	assert.True(t, out.Order.Subtotal.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, out.Order.Discount.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, out.Order.Total.Equal(decimal.RequireFromString("190.00")))
	assert.Len(t, out.Order.Reference, 10)

	stored, err := orderRepo.GetOrderByID(out.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/abc", stored.CheckoutURL)

	// stock is only taken when the order is paid
	product, err := productRepo.GetProductByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 5, product.Stock)
}

func TestCheckoutRejectsUnknownCoupon(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "50.00", 5))
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})

	input := checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1})
	input.CouponCode = "NAOEXISTE"

	_, err := uc.Checkout(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)
	assert.Empty(t, orderRepo.orders)
}

func TestCheckoutRejectsCouponBelowMinSpend(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "30.00", 5))
	couponRepo := newFakeCouponRepo(&domain.Coupon{
		ID:       "c1",
		StoreID:  testStoreID,
		Code:     "GASTONA",
		Type:     domain.CouponPercent,
		Value:    decimal.RequireFromString("15"),
		MinSpend: decimal.RequireFromString("100.00"),
		Active:   true,
	})
	uc := newTestOrderUsecase(t, orderRepo, productRepo, couponRepo, &fakeGateway{url: "x"}, &fakeNotifier{})

	input := checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1})
	input.CouponCode = "GASTONA"

	_, err := uc.Checkout(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrCouponMinSpend)
}

func TestCheckoutRejectsInsufficientStock(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "25.00", 1))
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})

	_, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 3}))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, orderRepo.orders)
}

func TestCheckoutRejectsMergedQuantityOverStock(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "40.00", 5))
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})

	// two lines of the same product, each within stock on its own
	_, err := uc.Checkout(context.Background(), checkoutInput(
		orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 3},
		orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 3},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, orderRepo.orders)

	// option variants of one product draw on the same stock
	_, err = uc.Checkout(context.Background(), checkoutInput(
		orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 3, Options: map[string]string{"cor": "azul"}},
		orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 3, Options: map[string]string{"cor": "rosa"}},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, orderRepo.orders)

	// merged quantity within stock still checks out
	out, err := uc.Checkout(context.Background(), checkoutInput(
		orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 2},
		orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 3},
	))
	require.NoError(t, err)
	require.Len(t, out.Order.Items, 1)
	assert.Equal(t, 5, out.Order.Items[0].Quantity)
}

func TestCheckoutRejectsProductFromAnotherStore(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	foreign := testProduct("p1", "25.00", 5)
	foreign.StoreID = "store-2"
	uc := newTestOrderUsecase(t, orderRepo, newFakeProductRepo(foreign), newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})

	_, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1}))
	assert.ErrorIs(t, err, domain.ErrStoreScopeMismatch)
}

func TestCheckoutCancelsOrderWhenGatewayFails(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "25.00", 5))
	gateway := &fakeGateway{err: errRemoteDown}
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), gateway, &fakeNotifier{})

	_, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1}))
	require.Error(t, err)

	require.Len(t, orderRepo.orders, 1)
	for _, order := range orderRepo.orders {
		assert.Equal(t, domain.StatusCancelled, order.Status)
	}
}

func TestCheckoutGatewayFailureEmitsCancelledEvent(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	pub := &fakePublisher{}
	uc, err := NewDefaultOrderUsecase(
		orderRepo,
		newFakeProductRepo(testProduct("p1", "25.00", 5)),
		NewDefaultCouponUsecase(newFakeCouponRepo()),
		&fakeGateway{err: errRemoteDown},
		&fakeNotifier{},
		pub,
		nil,
		30*time.Minute,
		"https://loja.example/obrigado",
	)
	require.NoError(t, err)

	_, err = uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1}))
	require.Error(t, err)

	// the cancellation goes through the same path as admin and expiry
	// cancels, so a cancelled event follows the created one
	assert.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		for _, event := range pub.events {
			if event.Status == string(domain.StatusCancelled) {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestConfirmPaymentDecrementsStockAndEmailsOnce(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "100.00", 5))
	notifier := &fakeNotifier{}
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, notifier)

	out, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 2}))
	require.NoError(t, err)

	require.NoError(t, uc.ConfirmPayment(out.Order.ID, testStoreID, "txn-1", `{"ok":true}`))

	stored, err := orderRepo.GetOrderByID(out.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, stored.Status)
	assert.Equal(t, "txn-1", stored.TransactionID)

	product, err := productRepo.GetProductByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 3, product.Stock)

	// a replayed webhook must not re-run the side effects
	err = uc.ConfirmPayment(out.Order.ID, testStoreID, "txn-1", `{"ok":true}`)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	product, err = productRepo.GetProductByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 3, product.Stock)

	assert.Eventually(t, func() bool {
		return notifier.sentCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestConfirmPaymentRedeemsCoupon(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "100.00", 5))
	couponRepo := newFakeCouponRepo(&domain.Coupon{
		ID:         "c1",
		StoreID:    testStoreID,
		Code:       "UMAVEZ",
		Type:       domain.CouponFixed,
		Value:      decimal.RequireFromString("5.00"),
		UsageLimit: 1,
		Active:     true,
	})
	uc := newTestOrderUsecase(t, orderRepo, productRepo, couponRepo, &fakeGateway{url: "x"}, &fakeNotifier{})

	input := checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1})
	input.CouponCode = "UMAVEZ"
	out, err := uc.Checkout(context.Background(), input)
	require.NoError(t, err)

	require.NoError(t, uc.ConfirmPayment(out.Order.ID, testStoreID, "txn-1", ""))

	coupon, err := couponRepo.GetCouponByID("c1")
	require.NoError(t, err)
	assert.Equal(t, 1, coupon.UsageCount)

	// the limit is now hit, so the next checkout cannot apply it
	_, err = uc.Checkout(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrCouponExhausted)
}

func TestConfirmPaymentRejectsForeignStore(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "100.00", 5))
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})

	out, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)

	err = uc.ConfirmPayment(out.Order.ID, "store-2", "txn-1", "")
	assert.ErrorIs(t, err, domain.ErrStoreScopeMismatch)

	stored, err := orderRepo.GetOrderByID(out.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestConfirmPaymentByReference(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "100.00", 5))
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})

	out, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)

	require.NoError(t, uc.ConfirmPaymentByReference(out.Order.Reference, "txn-9", `{"event":"paid"}`))

	stored, err := orderRepo.GetOrderByID(out.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, stored.Status)
	assert.Equal(t, "txn-9", stored.TransactionID)

	err = uc.ConfirmPaymentByReference("NOPE", "txn-9", "")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestMarkDeliveredRequiresPaid(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "100.00", 5))
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})

	out, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)

	err = uc.MarkDelivered(out.Order.ID, testStoreID)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	require.NoError(t, uc.ConfirmPayment(out.Order.ID, testStoreID, "txn-1", ""))
	require.NoError(t, uc.MarkDelivered(out.Order.ID, testStoreID))

	stored, err := orderRepo.GetOrderByID(out.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, stored.Status)
}

func TestCancelPaidOrderRestoresStock(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "100.00", 5))
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})

	out, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 2}))
	require.NoError(t, err)
	require.NoError(t, uc.ConfirmPayment(out.Order.ID, testStoreID, "txn-1", ""))

	product, _ := productRepo.GetProductByID("p1")
	require.Equal(t, 3, product.Stock)

	require.NoError(t, uc.CancelOrder(out.Order.ID, testStoreID))

	product, _ = productRepo.GetProductByID("p1")
	assert.Equal(t, 5, product.Stock)

	// delivered and cancelled are terminal
	err = uc.CancelOrder(out.Order.ID, testStoreID)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestCancelPendingOrderLeavesStockAlone(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "100.00", 5))
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})

	out, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 2}))
	require.NoError(t, err)
	require.NoError(t, uc.CancelOrder(out.Order.ID, testStoreID))

	product, _ := productRepo.GetProductByID("p1")
	assert.Equal(t, 5, product.Stock)
}

func TestUpdateStatusRoutesByTarget(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "100.00", 5))
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})

	out, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)

	err = uc.UpdateStatus(out.Order.ID, testStoreID, domain.StatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	require.NoError(t, uc.UpdateStatus(out.Order.ID, testStoreID, domain.StatusPaid))
	require.NoError(t, uc.UpdateStatus(out.Order.ID, testStoreID, domain.StatusDelivered))

	stored, err := orderRepo.GetOrderByID(out.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, stored.Status)
}

func TestCancelExpiredOrders(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "100.00", 5))
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})
	uc.OrderTTL = -time.Minute

	expired, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)

	uc.OrderTTL = time.Hour
	fresh, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)

	require.NoError(t, uc.CancelExpiredOrders(context.Background()))

	stored, _ := orderRepo.GetOrderByID(expired.Order.ID)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	stored, _ = orderRepo.GetOrderByID(fresh.Order.ID)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestGetOrderScoping(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(testProduct("p1", "100.00", 5))
	uc := newTestOrderUsecase(t, orderRepo, productRepo, newFakeCouponRepo(), &fakeGateway{url: "x"}, &fakeNotifier{})

	out, err := uc.Checkout(context.Background(), checkoutInput(orderdto.CheckoutItemInput{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)

	_, err = uc.GetOrderByID(out.Order.ID, "store-2")
	assert.ErrorIs(t, err, domain.ErrStoreScopeMismatch)

	got, err := uc.GetOrderByID(out.Order.ID, testStoreID)
	require.NoError(t, err)
	assert.Equal(t, out.Order.Reference, got.Reference)

	_, err = uc.GetOrderByReference(out.Order.Reference, "store-2")
	assert.ErrorIs(t, err, domain.ErrStoreScopeMismatch)
}
