package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	publisher "github.com/lojinhadasgracas/storefront-service/internal/infrastructure/kafka"
	orderdto "github.com/lojinhadasgracas/storefront-service/internal/usecase/dto/order"
)

// Checkout rebuilds the cart server-side against live product rows, so
// client-supplied prices are never trusted, then creates the pending order
// and requests a hosted checkout link.
func (uc *DefaultOrderUsecase) Checkout(ctx context.Context, input *orderdto.CheckoutInput) (*orderdto.CheckoutOutput, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}
	if input.CustomerName == "" || input.CustomerEmail == "" {
		return nil, fmt.Errorf("customer name and email are required")
	}

	cart := &domain.Cart{}
	products := make(map[string]*domain.Product)
	for _, item := range input.Items {
		product, ok := products[item.ProductID]
		if !ok {
			var err error
			product, err = uc.ProductRepo.GetProductByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			if product.StoreID != input.StoreID {
				return nil, domain.ErrStoreScopeMismatch
			}
			if !product.Active {
				return nil, fmt.Errorf("product %q is not available", product.Name)
			}
			products[product.ID] = product
		}
		cart.AddItem(product, item.Quantity, item.Options)
	}

	// duplicate lines and option variants of one product draw on the same
	// stock, so validate against the merged quantities
	quantities := make(map[string]int)
	for _, item := range cart.Items {
		quantities[item.ProductID] += item.Quantity
	}
	for productID, quantity := range quantities {
		if products[productID].Stock < quantity {
			return nil, domain.ErrInsufficientStock
		}
	}

	if input.CouponCode != "" {
		coupon, err := uc.CouponUsecase.ValidateCoupon(input.StoreID, input.CouponCode)
		if err != nil {
			return nil, err
		}
		subtotal := cart.Subtotal()
		if subtotal.LessThan(coupon.MinSpend) {
			return nil, domain.ErrCouponMinSpend
		}
		cart.ApplyCoupon(coupon.Code, coupon.ResolveDiscount(subtotal))
	}

	now := time.Now()
	order := &domain.Order{
		ID:              uuid.New().String(),
		Reference:       uc.newReference(),
		StoreID:         input.StoreID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		Items:           cartToOrderItems(cart),
		Subtotal:        cart.Subtotal(),
		Discount:        cart.Discount,
		Total:           cart.Total(),
		CouponCode:      cart.CouponCode,
		Status:          domain.StatusPending,
		ExpiresAt:       now.Add(uc.OrderTTL),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderCreated(order.StoreID)
	}
	uc.publishOrderEvent(order)

	linkReq := &domain.CheckoutLinkRequest{
		OrderReference: order.Reference,
		Amount:         order.Total,
		Items:          checkoutLinkItems(order),
		CustomerName:   order.CustomerName,
		CustomerEmail:  order.CustomerEmail,
		RedirectURL:    uc.RedirectURL,
	}
	url, err := uc.Gateway.CreateCheckoutLink(ctx, linkReq)
	if err != nil {
		// without a payment page the order cannot proceed
		if cancelErr := uc.cancel(order, "gateway_failed"); cancelErr != nil {
			slog.Error("failed to cancel order after gateway failure", "order_id", order.ID, "error", cancelErr.Error())
		}
		return nil, fmt.Errorf("failed to create checkout link: %w", err)
	}

	order.CheckoutURL = url
	if err := uc.OrderRepo.SetOrderPayment(order.ID, url, "", ""); err != nil {
		slog.Error("failed to store checkout url", "order_id", order.ID, "error", err.Error())
	}

	return &orderdto.CheckoutOutput{Order: order, PaymentURL: url}, nil
}

func cartToOrderItems(cart *domain.Cart) []domain.OrderItem {
	items := make([]domain.OrderItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Options:     item.Options,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}
	return items
}

func checkoutLinkItems(order *domain.Order) []domain.CheckoutLinkItem {
	items := make([]domain.CheckoutLinkItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = domain.CheckoutLinkItem{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return items
}

func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.OrderEvent) {
		if err := uc.Publisher.PublishOrder(event); err != nil {
			slog.Error("failed to publish kafka OrderEvent", "order_id", event.OrderID, "status", event.Status, "error", err.Error())
		}
	}(publisher.OrderEvent{
		OrderID:   order.ID,
		Reference: order.Reference,
		StoreID:   order.StoreID,
		Status:    string(order.Status),
		Total:     order.Total,
		Currency:  "BRL",
	})
}
