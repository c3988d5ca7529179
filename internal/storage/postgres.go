package storage

import (
	"database/sql"

	"restaurant-search/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// SearchDishes matches menu items by case-insensitive substring and an
// inclusive price range. The LEFT JOIN keeps items with zero orders in the
// result with a count of 0.
func (r *PostgresRepository) SearchDishes(name string, minPrice, maxPrice float64) ([]domain.DishResult, error) {
	rows, err := r.DB.Query(`
		SELECT r.id, r.name, r.city, mi.id, mi.name, mi.price, COUNT(o.id) AS order_count
		FROM menu_items mi
		JOIN restaurants r ON mi.restaurant_id = r.id
		LEFT JOIN orders o ON o.menu_item_id = mi.id
		WHERE LOWER(mi.name) LIKE '%' || LOWER($1) || '%'
		  AND mi.price BETWEEN $2 AND $3
		GROUP BY r.id, mi.id
		ORDER BY order_count DESC
		LIMIT 10`, name, minPrice, maxPrice)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.DishResult{}
	for rows.Next() {
		var d domain.DishResult
		if err := rows.Scan(&d.RestaurantID, &d.RestaurantName, &d.City,
			&d.MenuItemID, &d.DishName, &d.DishPrice, &d.OrderCount); err != nil {
			continue
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

func (r *PostgresRepository) ListRestaurants(city string) ([]domain.Restaurant, error) {
	query := "SELECT id, name, city FROM restaurants"
	args := []interface{}{}
	if city != "" {
		query += " WHERE LOWER(city) = LOWER($1)"
		args = append(args, city)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.City); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) ListMenu(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, price
		FROM menu_items
		WHERE restaurant_id = $1`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// MenuItemBelongs reports whether the menu item is owned by the restaurant.
func (r *PostgresRepository) MenuItemBelongs(restaurantID, menuItemID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM menu_items WHERE id = $1 AND restaurant_id = $2
		)`, menuItemID, restaurantID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) InsertOrder(restaurantID, menuItemID int) (int, error) {
	var id int
	err := r.DB.QueryRow(`
		INSERT INTO orders (restaurant_id, menu_item_id)
		VALUES ($1, $2)
		RETURNING id`, restaurantID, menuItemID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) OrderExists(orderID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)", orderID,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) ListOrders(limit int) ([]domain.OrderDetail, error) {
	rows, err := r.DB.Query(`
		SELECT o.id, o.order_date, r.id, r.name, mi.id, mi.name, mi.price
		FROM orders o
		JOIN restaurants r ON o.restaurant_id = r.id
		JOIN menu_items mi ON o.menu_item_id = mi.id
		ORDER BY o.order_date DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.OrderDetail{}
	for rows.Next() {
		var o domain.OrderDetail
		if err := rows.Scan(&o.OrderID, &o.OrderDate, &o.RestaurantID,
			&o.RestaurantName, &o.MenuItemID, &o.MenuName, &o.Price); err != nil {
			continue
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// OrderStats aggregates order counts per (restaurant, menu item), optionally
// filtered to a single menu item name.
func (r *PostgresRepository) OrderStats(menuName string) ([]domain.OrderStat, error) {
	query := `
		SELECT r.id, r.name, mi.name, COUNT(o.id) AS order_count
		FROM orders o
		JOIN restaurants r ON o.restaurant_id = r.id
		JOIN menu_items mi ON o.menu_item_id = mi.id`
	args := []interface{}{}
	if menuName != "" {
		query += " WHERE LOWER(mi.name) = LOWER($1)"
		args = append(args, menuName)
	}
	query += " GROUP BY r.id, mi.id ORDER BY order_count DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.OrderStat{}
	for rows.Next() {
		var s domain.OrderStat
		if err := rows.Scan(&s.RestaurantID, &s.RestaurantName, &s.MenuName, &s.OrderCount); err != nil {
			continue
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
