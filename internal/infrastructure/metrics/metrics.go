package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreMetrics covers the order lifecycle and the degraded-path counters.
type StoreMetrics struct {
	OrdersCreatedTotal   prometheus.CounterVec
	OrdersPaidTotal      prometheus.CounterVec
	OrdersCancelledTotal prometheus.CounterVec
	OrdersDeliveredTotal prometheus.CounterVec

	RevenueTotal prometheus.CounterVec

	FallbackDegradationsTotal prometheus.CounterVec

	CheckoutLinkDuration prometheus.HistogramVec
}

func NewStoreMetrics() *StoreMetrics {
	return &StoreMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders created at checkout",
			},
			[]string{"store_id"},
		),

		OrdersPaidTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_paid_total",
				Help: "Orders confirmed paid",
			},
			[]string{"store_id"},
		),

		OrdersCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_cancelled_total",
				Help: "Orders cancelled, by admin action or expiry",
			},
			[]string{"store_id", "reason"},
		),

		OrdersDeliveredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_delivered_total",
				Help: "Orders marked delivered",
			},
			[]string{"store_id"},
		),

		RevenueTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_revenue_total",
				Help: "Sum of order totals confirmed paid",
			},
			[]string{"store_id"},
		),

		FallbackDegradationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fallback_degradations_total",
				Help: "Operations that fell back to the local cache",
			},
			[]string{"collection"},
		),

		CheckoutLinkDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "checkout_link_duration_seconds",
				Help:    "Latency of gateway checkout-link creation",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 8),
			},
			[]string{"endpoint"},
		),
	}
}

func (m *StoreMetrics) RecordOrderCreated(storeID string) {
	m.OrdersCreatedTotal.WithLabelValues(storeID).Inc()
}

func (m *StoreMetrics) RecordOrderPaid(storeID string, total float64) {
	m.OrdersPaidTotal.WithLabelValues(storeID).Inc()
	m.RevenueTotal.WithLabelValues(storeID).Add(total)
}

func (m *StoreMetrics) RecordOrderCancelled(storeID, reason string) {
	m.OrdersCancelledTotal.WithLabelValues(storeID, reason).Inc()
}

func (m *StoreMetrics) RecordOrderDelivered(storeID string) {
	m.OrdersDeliveredTotal.WithLabelValues(storeID).Inc()
}

func (m *StoreMetrics) RecordFallbackDegradation(collection string) {
	m.FallbackDegradationsTotal.WithLabelValues(collection).Inc()
}

func (m *StoreMetrics) ObserveCheckoutLinkDuration(endpoint string, seconds float64) {
	m.CheckoutLinkDuration.WithLabelValues(endpoint).Observe(seconds)
}
