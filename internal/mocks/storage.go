package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"restaurant-search/internal/domain"
)

type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t *testing.T) *CatalogRepository {
	m := &CatalogRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogRepository) SearchDishes(name string, minPrice, maxPrice float64) ([]domain.DishResult, error) {
	args := m.Called(name, minPrice, maxPrice)
	var results []domain.DishResult
	if args.Get(0) != nil {
		results = args.Get(0).([]domain.DishResult)
	}
	return results, args.Error(1)
}

func (m *CatalogRepository) ListRestaurants(city string) ([]domain.Restaurant, error) {
	args := m.Called(city)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *CatalogRepository) ListMenu(restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(restaurantID)
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t *testing.T) *OrderRepository {
	m := &OrderRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) MenuItemBelongs(restaurantID, menuItemID int) (bool, error) {
	args := m.Called(restaurantID, menuItemID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) InsertOrder(restaurantID, menuItemID int) (int, error) {
	args := m.Called(restaurantID, menuItemID)
	return args.Int(0), args.Error(1)
}

func (m *OrderRepository) OrderExists(orderID int) (bool, error) {
	args := m.Called(orderID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) ListOrders(limit int) ([]domain.OrderDetail, error) {
	args := m.Called(limit)
	var orders []domain.OrderDetail
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.OrderDetail)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) OrderStats(menuName string) ([]domain.OrderStat, error) {
	args := m.Called(menuName)
	var stats []domain.OrderStat
	if args.Get(0) != nil {
		stats = args.Get(0).([]domain.OrderStat)
	}
	return stats, args.Error(1)
}

type ResultCache struct {
	mock.Mock
}

func NewResultCache(t *testing.T) *ResultCache {
	m := &ResultCache{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ResultCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *ResultCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *ResultCache) Invalidate(ctx context.Context, patterns ...string) error {
	callArgs := make([]interface{}, 0, len(patterns)+1)
	callArgs = append(callArgs, ctx)
	for _, p := range patterns {
		callArgs = append(callArgs, p)
	}
	args := m.Called(callArgs...)
	return args.Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t *testing.T) *OrderPublisher {
	m := &OrderPublisher{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderPublisher) PublishOrder(ctx context.Context, msg domain.OrderEvent) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t *testing.T) *QRGenerator {
	m := &QRGenerator{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var png []byte
	if args.Get(0) != nil {
		png = args.Get(0).([]byte)
	}
	return png, args.Error(1)
}
