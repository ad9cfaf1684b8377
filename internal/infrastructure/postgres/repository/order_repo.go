package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/mappers"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetOrderByReference(reference string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.Preload("Items").First(&order, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetOrdersByStoreID(
	storeID string,
	page, limit int64,
	sortBy, sortOrder string,
	filters domain.OrderFilters,
) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	safeSortBy := "created_at"
	switch sortBy {
	case "total":
		safeSortBy = "total"
	case "expires_at":
		safeSortBy = "expires_at"
	case "created_at":
		safeSortBy = "created_at"
	}

	safeSortOrder := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		safeSortOrder = "ASC"
	}

	baseQuery := r.DB.Model(&models.OrderModel{}).
		Preload("Items").
		Where("store_id = ?", storeID)

	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("status IN (?)", filters.Statuses)
	}
	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}
	if filters.Reference != "" {
		baseQuery = baseQuery.Where("reference = ?", filters.Reference)
	}
	if filters.CustomerEmail != "" {
		baseQuery = baseQuery.Where("customer_email = ?", filters.CustomerEmail)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit
	err := baseQuery.
		Order(fmt.Sprintf("%s %s", safeSortBy, safeSortOrder)).
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, total, nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	result := r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", newStatus)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) SetOrderPayment(orderID, checkoutURL, transactionID, rawPayload string) error {
	updates := map[string]interface{}{}
	if checkoutURL != "" {
		updates["checkout_url"] = checkoutURL
	}
	if transactionID != "" {
		updates["transaction_id"] = transactionID
	}
	if rawPayload != "" {
		updates["gateway_payload"] = rawPayload
	}
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(updates).Error
}

func (r *DefaultOrderRepository) FindExpiredOrders() ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.Preload("Items").
		Where("status = ?", domain.StatusPending).
		Where("expires_at < ?", time.Now()).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}

func (r *DefaultOrderRepository) DeleteOrder(orderID string) error {
	result := r.DB.Delete(&models.OrderModel{}, "id = ?", orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderMetrics(storeID string) (*domain.OrderMetricsReport, error) {
	var report domain.OrderMetricsReport

	if err := r.DB.Model(&models.OrderModel{}).
		Where("store_id = ?", storeID).
		Count(&report.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	if err := r.DB.Model(&models.OrderModel{}).
		Where("store_id = ? AND status = ?", storeID, domain.StatusPending).
		Count(&report.PendingOrders).Error; err != nil {
		return nil, fmt.Errorf("count pending orders: %w", err)
	}

	var revenue decimal.NullDecimal
	if err := r.DB.Model(&models.OrderModel{}).
		Select("SUM(total)").
		Where("store_id = ? AND status IN (?)", storeID, []domain.OrderStatus{domain.StatusPaid, domain.StatusDelivered}).
		Scan(&revenue).Error; err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	if revenue.Valid {
		report.Revenue = revenue.Decimal
	}

	return &report, nil
}
