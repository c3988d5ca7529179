package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"restaurant-search/internal/domain"
)

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t *testing.T) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogServiceInterface) SearchDishes(ctx context.Context, name string, minPrice, maxPrice float64) ([]domain.DishResult, error) {
	args := m.Called(ctx, name, minPrice, maxPrice)
	var results []domain.DishResult
	if args.Get(0) != nil {
		results = args.Get(0).([]domain.DishResult)
	}
	return results, args.Error(1)
}

func (m *CatalogServiceInterface) ListRestaurants(city string) ([]domain.Restaurant, error) {
	args := m.Called(city)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *CatalogServiceInterface) Menu(restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(restaurantID)
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Error(1)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t *testing.T) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) Create(ctx context.Context, restaurantID, menuItemID int) (int, error) {
	args := m.Called(ctx, restaurantID, menuItemID)
	return args.Int(0), args.Error(1)
}

func (m *OrderServiceInterface) List(limit int) ([]domain.OrderDetail, error) {
	args := m.Called(limit)
	var orders []domain.OrderDetail
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.OrderDetail)
	}
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) Stats(ctx context.Context, menuName string) ([]domain.OrderStat, error) {
	args := m.Called(ctx, menuName)
	var stats []domain.OrderStat
	if args.Get(0) != nil {
		stats = args.Get(0).([]domain.OrderStat)
	}
	return stats, args.Error(1)
}

func (m *OrderServiceInterface) QRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var png []byte
	if args.Get(0) != nil {
		png = args.Get(0).([]byte)
	}
	return png, args.Error(1)
}
