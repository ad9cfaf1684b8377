package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
)

// CancelExpiredOrders sweeps pending orders past their expiry and cancels
// them. Run periodically by the background worker.
func (uc *DefaultOrderUsecase) CancelExpiredOrders(ctx context.Context) error {
	expired, err := uc.OrderRepo.FindExpiredOrders()
	if err != nil {
		return err
	}

	for _, order := range expired {
		if err := uc.cancel(order, "expired"); err != nil {
			if err == domain.ErrInvalidStatusTransition {
				continue
			}
			slog.Error("failed to cancel expired order", "order_id", order.ID, "error", err.Error())
		}
	}
	return nil
}

func (uc *DefaultOrderUsecase) StartExpiryWorker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := uc.CancelExpiredOrders(ctx); err != nil {
				slog.Error("auto-cancel sweep failed", "error", err.Error())
			}
		}
	}
}
