package tests

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-search/internal/storage"
)

func newRepository(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestSearchDishesMapsRows(t *testing.T) {
	repo, mock := newRepository(t)

	rows := sqlmock.NewRows([]string{"id", "name", "city", "id", "name", "price", "order_count"}).
		AddRow(1, "Hyderabadi Spice House", "Hyderabad", 1, "Chicken Biryani", 220.00, 96).
		AddRow(4, "Kebab Corner", "Delhi", 7, "Kebab Biryani", 300.00, 0)

	mock.ExpectQuery(`(?s)FROM menu_items mi.*LEFT JOIN orders o`).
		WithArgs("biryani", 150.0, 300.0).
		WillReturnRows(rows)

	results, err := repo.SearchDishes("biryani", 150, 300)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Chicken Biryani", results[0].DishName)
	assert.Equal(t, 96, results[0].OrderCount)
	assert.Equal(t, 220.00, results[0].DishPrice)
	// Items with no orders still come back with a zero count.
	assert.Equal(t, 0, results[1].OrderCount)
}

func TestSearchDishesEmptyResultIsNotNil(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`(?s)FROM menu_items mi.*LEFT JOIN orders o`).
		WithArgs("biryani", 300.0, 150.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "id", "name", "price", "order_count"}))

	results, err := repo.SearchDishes("biryani", 300, 150)

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Len(t, results, 0)
}

func TestListRestaurants(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(`^SELECT id, name, city FROM restaurants$`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city"}).
				AddRow(1, "Hyderabadi Spice House", "Hyderabad").
				AddRow(2, "Bombay Bites", "Mumbai"))

		restaurants, err := repo.ListRestaurants("")
		require.NoError(t, err)
		assert.Len(t, restaurants, 2)
	})

	t.Run("city filter", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(`WHERE LOWER\(city\) = LOWER\(\$1\)`).
			WithArgs("hyderabad").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city"}).
				AddRow(1, "Hyderabadi Spice House", "Hyderabad"))

		restaurants, err := repo.ListRestaurants("hyderabad")
		require.NoError(t, err)
		require.Len(t, restaurants, 1)
		assert.Equal(t, "Hyderabad", restaurants[0].City)
	})
}

func TestListMenuEmptyRestaurant(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`SELECT id, restaurant_id, name, price`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "price"}))

	menu, err := repo.ListMenu(42)

	require.NoError(t, err)
	assert.NotNil(t, menu)
	assert.Len(t, menu, 0)
}

func TestMenuItemBelongs(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	belongs, err := repo.MenuItemBelongs(1, 7)

	require.NoError(t, err)
	assert.True(t, belongs)
}

func TestInsertOrderReturnsGeneratedID(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(123))

	id, err := repo.InsertOrder(1, 7)

	require.NoError(t, err)
	assert.Equal(t, 123, id)
}

func TestListOrdersAppliesLimit(t *testing.T) {
	repo, mock := newRepository(t)

	now := time.Now()
	mock.ExpectQuery(`ORDER BY o.order_date DESC`).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "order_date", "id", "name", "id", "name", "price"}).
			AddRow(12, now, 1, "Hyderabadi Spice House", 1, "Chicken Biryani", 220.00))

	orders, err := repo.ListOrders(100)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 12, orders[0].OrderID)
	assert.Equal(t, "Chicken Biryani", orders[0].MenuName)
}

func TestOrderStats(t *testing.T) {
	t.Run("all items", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(`GROUP BY r.id, mi.id ORDER BY order_count DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "name", "order_count"}).
				AddRow(1, "Hyderabadi Spice House", "Chicken Biryani", 96).
				AddRow(2, "Bombay Bites", "Chicken Biryani", 60))

		stats, err := repo.OrderStats("")
		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, 96, stats[0].OrderCount)
	})

	t.Run("filtered by menu name", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(`WHERE LOWER\(mi.name\) = LOWER\(\$1\)`).
			WithArgs("chicken biryani").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "name", "order_count"}).
				AddRow(1, "Hyderabadi Spice House", "Chicken Biryani", 96))

		stats, err := repo.OrderStats("chicken biryani")
		require.NoError(t, err)
		require.Len(t, stats, 1)
	})
}
