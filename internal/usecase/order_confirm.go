package usecase

import (
	"errors"
	"log/slog"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
)

func (uc *DefaultOrderUsecase) ConfirmPayment(orderID, storeID, transactionID, rawPayload string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.StoreID != storeID {
		return domain.ErrStoreScopeMismatch
	}
	return uc.confirm(order, transactionID, rawPayload)
}

// ConfirmPaymentByReference is the webhook entry point. The caller has
// already authenticated the gateway signature; the order's own store is
// the acting scope.
func (uc *DefaultOrderUsecase) ConfirmPaymentByReference(reference, transactionID, rawPayload string) error {
	order, err := uc.OrderRepo.GetOrderByReference(reference)
	if err != nil {
		return err
	}
	return uc.confirm(order, transactionID, rawPayload)
}

// confirm is the only place an order becomes paid. The transition guard
// makes the side effects (stock, coupon, email) fire at most once.
func (uc *DefaultOrderUsecase) confirm(order *domain.Order, transactionID, rawPayload string) error {
	if !domain.CanTransition(order.Status, domain.StatusPaid) {
		return domain.ErrInvalidStatusTransition
	}

	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, domain.StatusPaid); err != nil {
		return err
	}
	if err := uc.OrderRepo.SetOrderPayment(order.ID, "", transactionID, rawPayload); err != nil {
		slog.Error("failed to store gateway payload", "order_id", order.ID, "error", err.Error())
	}

	for _, item := range order.Items {
		if err := uc.ProductRepo.AdjustStock(item.ProductID, -item.Quantity); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				slog.Warn("order paid beyond available stock", "order_id", order.ID, "product_id", item.ProductID)
				continue
			}
			slog.Error("failed to decrement stock", "order_id", order.ID, "product_id", item.ProductID, "error", err.Error())
		}
	}

	if order.CouponCode != "" {
		if err := uc.CouponUsecase.RedeemCoupon(order.StoreID, order.CouponCode); err != nil {
			slog.Error("failed to redeem coupon", "order_id", order.ID, "coupon", order.CouponCode, "error", err.Error())
		}
	}

	order.Status = domain.StatusPaid
	order.TransactionID = transactionID

	if uc.Notifier != nil {
		go func(confirmed domain.Order) {
			if err := uc.Notifier.SendOrderConfirmation(&confirmed); err != nil {
				slog.Error("failed to send confirmation email", "order_id", confirmed.ID, "error", err.Error())
			}
		}(*order)
	}

	uc.publishOrderEvent(order)

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderPaid(order.StoreID, order.Total.InexactFloat64())
	}

	return nil
}
