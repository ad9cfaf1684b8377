package usecase

import (
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	orderdto "github.com/lojinhadasgracas/storefront-service/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) GetOrderByID(orderID, storeID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.StoreID != storeID {
		return nil, domain.ErrStoreScopeMismatch
	}
	return order, nil
}

func (uc *DefaultOrderUsecase) GetOrderByReference(reference, storeID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByReference(reference)
	if err != nil {
		return nil, err
	}
	if order.StoreID != storeID {
		return nil, domain.ErrStoreScopeMismatch
	}
	return order, nil
}

func (uc *DefaultOrderUsecase) ListOrders(input *orderdto.ListOrdersInput) (*orderdto.ListOrdersOutput, error) {
	filters := domain.OrderFilters{
		Reference:     input.Reference,
		CustomerEmail: input.Email,
	}
	for _, raw := range input.Statuses {
		if status, ok := domain.ParseOrderStatus(raw); ok {
			filters.Statuses = append(filters.Statuses, status)
		}
	}

	orders, total, err := uc.OrderRepo.GetOrdersByStoreID(
		input.StoreID,
		input.Page, input.Limit,
		input.SortBy, input.SortOrder,
		filters,
	)
	if err != nil {
		return nil, err
	}
	return &orderdto.ListOrdersOutput{Orders: orders, Total: total}, nil
}

func (uc *DefaultOrderUsecase) GetMetrics(storeID string) (*domain.OrderMetricsReport, error) {
	return uc.OrderRepo.GetOrderMetrics(storeID)
}

func (uc *DefaultOrderUsecase) DeleteOrder(orderID, storeID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	return uc.OrderRepo.DeleteOrder(orderID)
}
