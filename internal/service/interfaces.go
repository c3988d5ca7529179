package service

import (
	"context"

	"restaurant-search/internal/domain"
)

type CatalogRepository interface {
	SearchDishes(name string, minPrice, maxPrice float64) ([]domain.DishResult, error)
	ListRestaurants(city string) ([]domain.Restaurant, error)
	ListMenu(restaurantID int) ([]domain.MenuItem, error)
}

type OrderRepository interface {
	MenuItemBelongs(restaurantID, menuItemID int) (bool, error)
	InsertOrder(restaurantID, menuItemID int) (int, error)
	OrderExists(orderID int) (bool, error)
	ListOrders(limit int) ([]domain.OrderDetail, error)
	OrderStats(menuName string) ([]domain.OrderStat, error)
}

// ResultCache is optional: services treat a nil cache as "always miss".
type ResultCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, patterns ...string) error
}

// OrderPublisher is optional: a nil publisher disables order events.
type OrderPublisher interface {
	PublishOrder(ctx context.Context, msg domain.OrderEvent) error
}

type CatalogServiceInterface interface {
	SearchDishes(ctx context.Context, name string, minPrice, maxPrice float64) ([]domain.DishResult, error)
	ListRestaurants(city string) ([]domain.Restaurant, error)
	Menu(restaurantID int) ([]domain.MenuItem, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, restaurantID, menuItemID int) (int, error)
	List(limit int) ([]domain.OrderDetail, error)
	Stats(ctx context.Context, menuName string) ([]domain.OrderStat, error)
	QRCode(orderID int) ([]byte, error)
}
