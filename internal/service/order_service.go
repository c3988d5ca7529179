package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"restaurant-search/internal/domain"
)

var (
	ErrInvalidOrder     = errors.New("restaurant_id and menu_item_id are required and must be positive")
	ErrMenuItemMismatch = errors.New("menu item does not belong to this restaurant")
	ErrOrderNotFound    = errors.New("order not found")
)

type OrderService struct {
	repo      OrderRepository
	cache     ResultCache
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, cache ResultCache, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// Create records one order after verifying the menu item actually belongs to
// the restaurant. On success it invalidates cached search/stats results and
// publishes an order_created event; both are best-effort.
func (s *OrderService) Create(ctx context.Context, restaurantID, menuItemID int) (int, error) {
	if restaurantID <= 0 || menuItemID <= 0 {
		return 0, ErrInvalidOrder
	}

	belongs, err := s.repo.MenuItemBelongs(restaurantID, menuItemID)
	if err != nil {
		return 0, fmt.Errorf("failed to validate menu item: %w", err)
	}
	if !belongs {
		return 0, ErrMenuItemMismatch
	}

	orderID, err := s.repo.InsertOrder(restaurantID, menuItemID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, "search:*", "stats:*"); err != nil {
			log.Printf("WARNING: failed to invalidate cache: %v", err)
		}
	}

	if s.publisher != nil {
		err := s.publisher.PublishOrder(ctx, domain.OrderEvent{
			Type:         "order_created",
			OrderID:      orderID,
			RestaurantID: restaurantID,
			MenuItemID:   menuItemID,
			Timestamp:    time.Now(),
		})
		if err != nil {
			log.Printf("WARNING: failed to publish order event: %v", err)
		}
	}

	return orderID, nil
}

func (s *OrderService) List(limit int) ([]domain.OrderDetail, error) {
	return s.repo.ListOrders(limit)
}

func (s *OrderService) Stats(ctx context.Context, menuName string) ([]domain.OrderStat, error) {
	key := "stats:" + strings.ToLower(menuName)
	if s.cache != nil {
		var cached []domain.OrderStat
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	stats, err := s.repo.OrderStats(menuName)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, stats)
	}
	return stats, nil
}

// QRCode renders a PNG linking to the order. Codes are generated on demand
// and never persisted.
func (s *OrderService) QRCode(orderID int) ([]byte, error) {
	exists, err := s.repo.OrderExists(orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOrderNotFound
	}
	return s.qrEncoder.Generate(orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
