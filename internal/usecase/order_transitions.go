package usecase

import (
	"log/slog"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
)

func (uc *DefaultOrderUsecase) MarkDelivered(orderID, storeID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	if !domain.CanTransition(order.Status, domain.StatusDelivered) {
		return domain.ErrInvalidStatusTransition
	}

	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, domain.StatusDelivered); err != nil {
		return err
	}

	order.Status = domain.StatusDelivered
	uc.publishOrderEvent(order)
	if uc.Metrics != nil {
		uc.Metrics.RecordOrderDelivered(order.StoreID)
	}
	return nil
}

func (uc *DefaultOrderUsecase) CancelOrder(orderID, storeID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	return uc.cancel(order, "admin")
}

func (uc *DefaultOrderUsecase) cancel(order *domain.Order, reason string) error {
	if !domain.CanTransition(order.Status, domain.StatusCancelled) {
		return domain.ErrInvalidStatusTransition
	}

	wasPaid := order.Status == domain.StatusPaid

	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, domain.StatusCancelled); err != nil {
		return err
	}

	// stock was only taken on payment, so only a paid order restores it
	if wasPaid {
		for _, item := range order.Items {
			if err := uc.ProductRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
				slog.Error("failed to restore stock", "order_id", order.ID, "product_id", item.ProductID, "error", err.Error())
			}
		}
	}

	order.Status = domain.StatusCancelled
	uc.publishOrderEvent(order)
	if uc.Metrics != nil {
		uc.Metrics.RecordOrderCancelled(order.StoreID, reason)
	}
	return nil
}

// UpdateStatus is the general admin transition entry point; each target
// status routes through its dedicated operation so side effects stay in
// one place.
func (uc *DefaultOrderUsecase) UpdateStatus(orderID, storeID string, status domain.OrderStatus) error {
	switch status {
	case domain.StatusPaid:
		return uc.ConfirmPayment(orderID, storeID, "", "")
	case domain.StatusDelivered:
		return uc.MarkDelivered(orderID, storeID)
	case domain.StatusCancelled:
		return uc.CancelOrder(orderID, storeID)
	default:
		return domain.ErrInvalidStatusTransition
	}
}
