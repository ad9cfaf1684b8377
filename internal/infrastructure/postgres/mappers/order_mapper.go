package mappers

import (
	"encoding/json"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	items := make([]models.OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		options, _ := json.Marshal(item.Options)
		items[i] = models.OrderItemModel{
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Options:     string(options),
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}

	return &models.OrderModel{
		ID:              order.ID,
		Reference:       order.Reference,
		StoreID:         order.StoreID,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		Items:           items,
		Subtotal:        order.Subtotal,
		Discount:        order.Discount,
		Total:           order.Total,
		CouponCode:      order.CouponCode,
		Status:          order.Status,
		CheckoutURL:     order.CheckoutURL,
		TransactionID:   order.TransactionID,
		GatewayPayload:  order.GatewayPayload,
		ExpiresAt:       order.ExpiresAt,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	items := make([]domain.OrderItem, len(model.Items))
	for i, item := range model.Items {
		var options map[string]string
		if item.Options != "" {
			json.Unmarshal([]byte(item.Options), &options)
		}
		items[i] = domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Options:     options,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}

	return &domain.Order{
		ID:              model.ID,
		Reference:       model.Reference,
		StoreID:         model.StoreID,
		CustomerName:    model.CustomerName,
		CustomerEmail:   model.CustomerEmail,
		CustomerPhone:   model.CustomerPhone,
		CustomerAddress: model.CustomerAddress,
		Items:           items,
		Subtotal:        model.Subtotal,
		Discount:        model.Discount,
		Total:           model.Total,
		CouponCode:      model.CouponCode,
		Status:          model.Status,
		CheckoutURL:     model.CheckoutURL,
		TransactionID:   model.TransactionID,
		GatewayPayload:  model.GatewayPayload,
		ExpiresAt:       model.ExpiresAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
