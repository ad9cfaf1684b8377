package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	publisher "github.com/lojinhadasgracas/storefront-service/internal/infrastructure/kafka"
)

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	fail   error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *fakeOrderRepo) GetOrderByReference(reference string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.Reference == reference {
			clone := *order
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *fakeOrderRepo) GetOrdersByStoreID(storeID string, page, limit int64, sortBy, sortOrder string, filters domain.OrderFilters) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, order := range r.orders {
		if order.StoreID == storeID {
			clone := *order
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = newStatus
	return nil
}

func (r *fakeOrderRepo) SetOrderPayment(orderID, checkoutURL, transactionID, rawPayload string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if checkoutURL != "" {
		order.CheckoutURL = checkoutURL
	}
	if transactionID != "" {
		order.TransactionID = transactionID
	}
	if rawPayload != "" {
		order.GatewayPayload = rawPayload
	}
	return nil
}

func (r *fakeOrderRepo) FindExpiredOrders() ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, order := range r.orders {
		if order.Status == domain.StatusPending && order.ExpiresAt.Before(time.Now()) {
			clone := *order
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) DeleteOrder(orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[orderID]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, orderID)
	return nil
}

func (r *fakeOrderRepo) GetOrderMetrics(storeID string) (*domain.OrderMetricsReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report := &domain.OrderMetricsReport{}
	for _, order := range r.orders {
		if order.StoreID != storeID {
			continue
		}
		report.TotalOrders++
		switch order.Status {
		case domain.StatusPending:
			report.PendingOrders++
		case domain.StatusPaid, domain.StatusDelivered:
			report.Revenue = report.Revenue.Add(order.Total)
		}
	}
	return report, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*domain.Product
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*domain.Product)}
	for _, product := range products {
		clone := *product
		repo.products[product.ID] = &clone
	}
	return repo
}

func (r *fakeProductRepo) CreateProduct(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) UpdateProduct(product *domain.Product) error {
	return r.CreateProduct(product)
}

func (r *fakeProductRepo) DeleteProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, productID)
	return nil
}

func (r *fakeProductRepo) GetProductByID(productID string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) GetProductsByStoreID(storeID string, onlyActive bool) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Product
	for _, product := range r.products {
		if product.StoreID == storeID && (!onlyActive || product.Active) {
			clone := *product
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) AdjustStock(productID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if product.Stock+delta < 0 {
		return domain.ErrInsufficientStock
	}
	product.Stock += delta
	return nil
}

type fakeCouponRepo struct {
	mu      sync.Mutex
	coupons map[string]*domain.Coupon
}

func newFakeCouponRepo(coupons ...*domain.Coupon) *fakeCouponRepo {
	repo := &fakeCouponRepo{coupons: make(map[string]*domain.Coupon)}
	for _, coupon := range coupons {
		clone := *coupon
		repo.coupons[coupon.ID] = &clone
	}
	return repo
}

func (r *fakeCouponRepo) CreateCoupon(coupon *domain.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *coupon
	r.coupons[coupon.ID] = &clone
	return nil
}

func (r *fakeCouponRepo) UpdateCoupon(coupon *domain.Coupon) error {
	return r.CreateCoupon(coupon)
}

func (r *fakeCouponRepo) DeleteCoupon(couponID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.coupons, couponID)
	return nil
}

func (r *fakeCouponRepo) GetCouponByID(couponID string) (*domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	coupon, ok := r.coupons[couponID]
	if !ok {
		return nil, domain.ErrCouponNotFound
	}
	clone := *coupon
	return &clone, nil
}

func (r *fakeCouponRepo) GetActiveCouponByCode(storeID, code string) (*domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, coupon := range r.coupons {
		if coupon.StoreID == storeID && coupon.Code == strings.ToUpper(code) && coupon.Active {
			clone := *coupon
			return &clone, nil
		}
	}
	return nil, domain.ErrCouponNotFound
}

func (r *fakeCouponRepo) GetCouponsByStoreID(storeID string) ([]*domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Coupon
	for _, coupon := range r.coupons {
		if coupon.StoreID == storeID {
			clone := *coupon
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeCouponRepo) IncrementUsage(couponID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	coupon, ok := r.coupons[couponID]
	if !ok {
		return domain.ErrCouponNotFound
	}
	coupon.UsageCount++
	return nil
}

type fakeGateway struct {
	url       string
	err       error
	callCount int32
}

func (g *fakeGateway) CreateCheckoutLink(ctx context.Context, req *domain.CheckoutLinkRequest) (string, error) {
	atomic.AddInt32(&g.callCount, 1)
	if g.err != nil {
		return "", g.err
	}
	return g.url, nil
}

func (g *fakeGateway) CheckPayment(ctx context.Context, payload []byte) (int, []byte, error) {
	return 200, []byte(`{"paid":true}`), nil
}

type fakeNotifier struct {
	sent int32
	err  error
}

func (n *fakeNotifier) SendOrderConfirmation(order *domain.Order) error {
	if n.err != nil {
		return n.err
	}
	atomic.AddInt32(&n.sent, 1)
	return nil
}

func (n *fakeNotifier) sentCount() int32 {
	return atomic.LoadInt32(&n.sent)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publisher.OrderEvent
}

func (p *fakePublisher) PublishOrder(event publisher.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

var errRemoteDown = errors.New("remote store unreachable")
