package orderdto

import "github.com/lojinhadasgracas/storefront-service/internal/domain"

type CheckoutOutput struct {
	Order      *domain.Order
	PaymentURL string
}

type ListOrdersOutput struct {
	Orders []*domain.Order
	Total  int64
}
