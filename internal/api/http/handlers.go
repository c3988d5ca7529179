package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"restaurant-search/internal/domain"
	"restaurant-search/internal/service"
)

const defaultOrderListLimit = 100

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{Catalog: catalog, Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/search/dishes", h.searchDishes).Methods("GET")
	r.HandleFunc("/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/orders/stats", h.orderStats).Methods("GET")
	r.HandleFunc("/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) searchDishes(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	minPrice, errMin := strconv.ParseFloat(r.URL.Query().Get("minPrice"), 64)
	maxPrice, errMax := strconv.ParseFloat(r.URL.Query().Get("maxPrice"), 64)

	if name == "" || errMin != nil || errMax != nil {
		writeError(w, http.StatusBadRequest,
			"Missing or invalid required query params: name, minPrice, maxPrice")
		return
	}

	results, err := h.Catalog.SearchDishes(r.Context(), name, minPrice, maxPrice)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	if results == nil {
		results = []domain.DishResult{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"restaurants": results})
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.URL.Query().Get("city"))
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"restaurants": restaurants})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid restaurant id")
		return
	}

	menu, err := h.Catalog.Menu(restaurantID)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	if menu == nil {
		menu = []domain.MenuItem{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"menu": menu})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RestaurantID int `json:"restaurant_id"`
		MenuItemID   int `json:"menu_item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest,
			"restaurant_id and menu_item_id are required and must be numbers")
		return
	}

	orderID, err := h.Orders.Create(r.Context(), payload.RestaurantID, payload.MenuItemID)
	switch {
	case errors.Is(err, service.ErrInvalidOrder), errors.Is(err, service.ErrMenuItemMismatch):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		writeInternalError(w, r, err)
	default:
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Order created successfully",
			"orderId": orderID,
		})
	}
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	limit := defaultOrderListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	orders, err := h.Orders.List(limit)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	if orders == nil {
		orders = []domain.OrderDetail{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *Handler) orderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Orders.Stats(r.Context(), r.URL.Query().Get("menuName"))
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	if stats == nil {
		stats = []domain.OrderStat{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"stats": stats})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	png, err := h.Orders.QRCode(orderID)
	if errors.Is(err, service.ErrOrderNotFound) {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeInternalError logs the real error server-side and hands the client a
// generic body so internals never leak.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("Error in %s %s: %v", r.Method, r.URL.Path, err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
