package fallback

import (
	"errors"
	"log/slog"
	"time"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

const ordersCollection = "orders"

// OrderRepository decorates the Postgres order repository with the
// degraded-path contract: reads never fail hard past this boundary, writes
// go remote-first and land in the cache when the remote store is down. A
// write that fails both paths is the only hard error.
type OrderRepository struct {
	remote  domain.OrderRepository
	cache   *Cache
	metrics *metrics.StoreMetrics
}

func NewOrderRepository(remote domain.OrderRepository, cache *Cache, m *metrics.StoreMetrics) *OrderRepository {
	return &OrderRepository{remote: remote, cache: cache, metrics: m}
}

func (r *OrderRepository) degraded(op string, err error) {
	slog.Warn("order store degraded to fallback cache", "op", op, "error", err.Error())
	if r.metrics != nil {
		r.metrics.RecordFallbackDegradation(ordersCollection)
	}
}

func (r *OrderRepository) loadCached(storeID string) []*domain.Order {
	var orders []*domain.Order
	if _, err := r.cache.Load(storeID, ordersCollection, &orders); err != nil {
		slog.Warn("fallback cache unreadable", "store_id", storeID, "error", err.Error())
		return nil
	}
	return orders
}

func (r *OrderRepository) saveCached(storeID string, orders []*domain.Order) {
	if err := r.cache.Store(storeID, ordersCollection, orders); err != nil {
		slog.Warn("fallback cache write failed", "store_id", storeID, "error", err.Error())
	}
}

func (r *OrderRepository) upsertCached(order *domain.Order) error {
	orders := r.loadCached(order.StoreID)
	for i, cached := range orders {
		if cached.ID == order.ID {
			orders[i] = order
			return r.cache.Store(order.StoreID, ordersCollection, orders)
		}
	}
	orders = append(orders, order)
	return r.cache.Store(order.StoreID, ordersCollection, orders)
}

// findCached scans every tenant's cache, used only for lookups that do not
// carry a store scope.
func (r *OrderRepository) findCached(match func(*domain.Order) bool) *domain.Order {
	for _, storeID := range r.cache.StoreIDs() {
		for _, order := range r.loadCached(storeID) {
			if match(order) {
				return order
			}
		}
	}
	return nil
}

func (r *OrderRepository) CreateOrder(order *domain.Order) error {
	if err := r.remote.CreateOrder(order); err != nil {
		r.degraded("create", err)
		return r.upsertCached(order)
	}
	// write-through mirror so a later outage can still serve this order
	if err := r.upsertCached(order); err != nil {
		slog.Warn("fallback mirror failed", "order_id", order.ID, "error", err.Error())
	}
	return nil
}

func (r *OrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	order, err := r.remote.GetOrderByID(orderID)
	if err == nil {
		return order, nil
	}
	if errors.Is(err, domain.ErrOrderNotFound) {
		return nil, err
	}
	r.degraded("get", err)
	if cached := r.findCached(func(o *domain.Order) bool { return o.ID == orderID }); cached != nil {
		return cached, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *OrderRepository) GetOrderByReference(reference string) (*domain.Order, error) {
	order, err := r.remote.GetOrderByReference(reference)
	if err == nil {
		return order, nil
	}
	if errors.Is(err, domain.ErrOrderNotFound) {
		return nil, err
	}
	r.degraded("get_by_reference", err)
	if cached := r.findCached(func(o *domain.Order) bool { return o.Reference == reference }); cached != nil {
		return cached, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *OrderRepository) GetOrdersByStoreID(
	storeID string,
	page, limit int64,
	sortBy, sortOrder string,
	filters domain.OrderFilters,
) ([]*domain.Order, int64, error) {
	orders, total, err := r.remote.GetOrdersByStoreID(storeID, page, limit, sortBy, sortOrder, filters)
	if err == nil {
		return orders, total, nil
	}
	r.degraded("list", err)

	cached := r.loadCached(storeID)
	if len(filters.Statuses) > 0 {
		filtered := cached[:0]
		for _, order := range cached {
			for _, status := range filters.Statuses {
				if order.Status == status {
					filtered = append(filtered, order)
					break
				}
			}
		}
		cached = filtered
	}
	return cached, int64(len(cached)), nil
}

func (r *OrderRepository) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	err := r.remote.UpdateOrderStatus(orderID, newStatus)
	if err == nil {
		if cached := r.findCached(func(o *domain.Order) bool { return o.ID == orderID }); cached != nil {
			cached.Status = newStatus
			cached.UpdatedAt = time.Now()
			if err := r.upsertCached(cached); err != nil {
				slog.Warn("fallback mirror failed", "order_id", orderID, "error", err.Error())
			}
		}
		return nil
	}
	if errors.Is(err, domain.ErrOrderNotFound) {
		return err
	}
	r.degraded("update_status", err)
	cached := r.findCached(func(o *domain.Order) bool { return o.ID == orderID })
	if cached == nil {
		return err
	}
	cached.Status = newStatus
	cached.UpdatedAt = time.Now()
	return r.upsertCached(cached)
}

func (r *OrderRepository) SetOrderPayment(orderID, checkoutURL, transactionID, rawPayload string) error {
	err := r.remote.SetOrderPayment(orderID, checkoutURL, transactionID, rawPayload)
	if err == nil {
		return nil
	}
	r.degraded("set_payment", err)
	cached := r.findCached(func(o *domain.Order) bool { return o.ID == orderID })
	if cached == nil {
		return err
	}
	if checkoutURL != "" {
		cached.CheckoutURL = checkoutURL
	}
	if transactionID != "" {
		cached.TransactionID = transactionID
	}
	if rawPayload != "" {
		cached.GatewayPayload = rawPayload
	}
	return r.upsertCached(cached)
}

func (r *OrderRepository) FindExpiredOrders() ([]*domain.Order, error) {
	orders, err := r.remote.FindExpiredOrders()
	if err == nil {
		return orders, nil
	}
	r.degraded("find_expired", err)

	now := time.Now()
	var expired []*domain.Order
	for _, storeID := range r.cache.StoreIDs() {
		for _, order := range r.loadCached(storeID) {
			if order.Status == domain.StatusPending && order.ExpiresAt.Before(now) {
				expired = append(expired, order)
			}
		}
	}
	return expired, nil
}

// DeleteOrder always removes the cached copy, whatever the remote
// outcome. A remote failure is swallowed when the local path succeeded.
func (r *OrderRepository) DeleteOrder(orderID string) error {
	var storeID string
	if cached := r.findCached(func(o *domain.Order) bool { return o.ID == orderID }); cached != nil {
		storeID = cached.StoreID
		orders := r.loadCached(storeID)
		kept := orders[:0]
		for _, order := range orders {
			if order.ID != orderID {
				kept = append(kept, order)
			}
		}
		r.saveCached(storeID, kept)
	}

	err := r.remote.DeleteOrder(orderID)
	if err == nil || errors.Is(err, domain.ErrOrderNotFound) {
		return err
	}
	r.degraded("delete", err)
	if storeID != "" {
		return nil
	}
	return err
}

func (r *OrderRepository) GetOrderMetrics(storeID string) (*domain.OrderMetricsReport, error) {
	report, err := r.remote.GetOrderMetrics(storeID)
	if err == nil {
		return report, nil
	}
	r.degraded("metrics", err)

	cached := r.loadCached(storeID)
	fallbackReport := &domain.OrderMetricsReport{Revenue: decimal.Zero}
	for _, order := range cached {
		fallbackReport.TotalOrders++
		switch order.Status {
		case domain.StatusPending:
			fallbackReport.PendingOrders++
		case domain.StatusPaid, domain.StatusDelivered:
			fallbackReport.Revenue = fallbackReport.Revenue.Add(order.Total)
		}
	}
	return fallbackReport, nil
}
