package storage

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
)

// defaultOrderBatchSize bounds a single multi-row INSERT during order
// seeding. Purely a statement-size concern: the end state is the same for
// any batch size.
const defaultOrderBatchSize = 500

type seedRestaurant struct {
	Name string
	City string
}

type seedMenuItem struct {
	Restaurant string
	Name       string
	Price      float64
}

type seedOrderTarget struct {
	Restaurant string
	MenuName   string
	Desired    int
}

// Reference data. Menu items and order targets are keyed by restaurant name
// rather than id: ids are SERIAL and not stable across environments.
var (
	seedRestaurants = []seedRestaurant{
		{"Hyderabadi Spice House", "Hyderabad"},
		{"Bombay Bites", "Mumbai"},
		{"The Biryani Point", "Hyderabad"},
		{"Kebab Corner", "Delhi"},
		{"South Flavours", "Bengaluru"},
	}

	seedMenu = []seedMenuItem{
		{"Hyderabadi Spice House", "Chicken Biryani", 220.00},
		{"Hyderabadi Spice House", "Mutton Biryani", 280.00},
		{"Bombay Bites", "Chicken Biryani", 260.00},
		{"Bombay Bites", "Veg Biryani", 150.00},
		{"The Biryani Point", "Chicken Biryani", 200.00},
		{"The Biryani Point", "Egg Biryani", 170.00},
		{"Kebab Corner", "Kebab Biryani", 300.00},
		{"South Flavours", "Hyderabadi Biryani", 240.00},
	}

	seedOrderTargets = []seedOrderTarget{
		{"Hyderabadi Spice House", "Chicken Biryani", 96},
		{"Bombay Bites", "Chicken Biryani", 60},
		{"The Biryani Point", "Chicken Biryani", 40},
	}
)

// Seeder populates reference data. Every stage is idempotent: re-running
// never creates duplicate restaurants or menu items and never inserts more
// orders than a target asks for.
type Seeder struct {
	DB        *sql.DB
	BatchSize int
}

func NewSeeder(db *sql.DB) *Seeder {
	return &Seeder{DB: db, BatchSize: defaultOrderBatchSize}
}

func (s *Seeder) Run() error {
	if err := s.SeedRestaurants(); err != nil {
		return fmt.Errorf("seed restaurants: %w", err)
	}
	if err := s.SeedMenuItems(); err != nil {
		return fmt.Errorf("seed menu items: %w", err)
	}
	if err := s.SeedOrders(); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	log.Println("Seeding complete (idempotent)")
	return nil
}

func (s *Seeder) SeedRestaurants() error {
	for _, r := range seedRestaurants {
		_, err := s.DB.Exec(`
			INSERT INTO restaurants (name, city)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM restaurants WHERE name = $1)
		`, r.Name, r.City)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) SeedMenuItems() error {
	for _, m := range seedMenu {
		_, err := s.DB.Exec(`
			INSERT INTO menu_items (restaurant_id, name, price)
			SELECT r.id, $2, $3
			FROM restaurants r
			WHERE r.name = $1
			  AND NOT EXISTS (
				SELECT 1 FROM menu_items mi
				WHERE mi.restaurant_id = r.id AND mi.name = $2
			  )
		`, m.Restaurant, m.Name, m.Price)
		if err != nil {
			return err
		}
	}
	return nil
}

// SeedOrders tops up synthetic order volume per target: count what exists
// for the (restaurant, menu item) pair and insert only the shortfall. A
// target whose menu item is missing is skipped, not an error.
func (s *Seeder) SeedOrders() error {
	for _, t := range seedOrderTargets {
		var restaurantID, menuItemID int
		err := s.DB.QueryRow(`
			SELECT r.id, mi.id
			FROM menu_items mi
			JOIN restaurants r ON mi.restaurant_id = r.id
			WHERE r.name = $1 AND mi.name = $2
			LIMIT 1
		`, t.Restaurant, t.MenuName).Scan(&restaurantID, &menuItemID)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return err
		}

		var existing int
		if err := s.DB.QueryRow(
			"SELECT COUNT(*) FROM orders WHERE restaurant_id = $1 AND menu_item_id = $2",
			restaurantID, menuItemID,
		).Scan(&existing); err != nil {
			return err
		}

		remaining := t.Desired - existing
		for remaining > 0 {
			chunk := s.BatchSize
			if remaining < chunk {
				chunk = remaining
			}
			if err := s.insertOrderBatch(restaurantID, menuItemID, chunk); err != nil {
				return err
			}
			remaining -= chunk
		}
	}
	return nil
}

func (s *Seeder) insertOrderBatch(restaurantID, menuItemID, n int) error {
	values := make([]string, 0, n)
	args := make([]interface{}, 0, n*2)
	for i := 0; i < n; i++ {
		values = append(values, fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2))
		args = append(args, restaurantID, menuItemID)
	}

	query := "INSERT INTO orders (restaurant_id, menu_item_id) VALUES " + strings.Join(values, ", ")
	_, err := s.DB.Exec(query, args...)
	return err
}
