package domain

import "time"

type Restaurant struct {
	ID   int    `json:"restaurantId"`
	Name string `json:"name"`
	City string `json:"city"`
}

type MenuItem struct {
	ID           int     `json:"menuItemId"`
	RestaurantID int     `json:"restaurantId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
}

// DishResult is one row of the dish search aggregation: a menu item with
// its owning restaurant and the number of orders placed for it.
type DishResult struct {
	RestaurantID   int     `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	City           string  `json:"city"`
	MenuItemID     int     `json:"menuItemId"`
	DishName       string  `json:"dishName"`
	DishPrice      float64 `json:"dishPrice"`
	OrderCount     int     `json:"orderCount"`
}

// OrderDetail is an order joined with its restaurant and menu item names.
type OrderDetail struct {
	OrderID        int       `json:"orderId"`
	OrderDate      time.Time `json:"orderDate"`
	RestaurantID   int       `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName"`
	MenuItemID     int       `json:"menuItemId"`
	MenuName       string    `json:"menuName"`
	Price          float64   `json:"price"`
}

type OrderStat struct {
	RestaurantID   int    `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
	MenuName       string `json:"menuName"`
	OrderCount     int    `json:"orderCount"`
}

// OrderEvent is published to Kafka when an order is recorded.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	MenuItemID   int       `json:"menu_item_id"`
	Timestamp    time.Time `json:"timestamp"`
}
