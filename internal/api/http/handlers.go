package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/catalog"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/order"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/service"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/session"
)

type Handler struct {
	Chat     service.ChatServiceInterface
	Orders   service.OrderServiceInterface
	Sessions *session.Manager
	Catalog  *catalog.Catalog
}

func NewHandler(chatSvc service.ChatServiceInterface, orderSvc service.OrderServiceInterface, sessions *session.Manager, cat *catalog.Catalog) *Handler {
	return &Handler{
		Chat:     chatSvc,
		Orders:   orderSvc,
		Sessions: sessions,
		Catalog:  cat,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/chat", h.postChat).Methods("POST")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getRestaurantMenu).Methods("GET")

	r.HandleFunc("/api/sessions/{id}/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/cart", h.addCartLine).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/cart/{dishId}", h.updateCartLine).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/cart/{dishId}", h.removeCartLine).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/restaurant", h.selectRestaurant).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/order-type", h.setOrderType).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/sessions/{id}", h.closeSession).Methods("DELETE")

	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "foodiebot",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string        `json:"session_id"`
	Text      string        `json:"text"`
	Action    domain.Action `json:"action,omitempty"`
	Data      interface{}   `json:"data,omitempty"`
	TypingMs  int64         `json:"typing_ms"`
}

func (h *Handler) postChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	reply, err := h.Chat.Chat(r.Context(), req.SessionID, req.Message)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{
		SessionID: req.SessionID,
		Text:      reply.Text,
		Action:    reply.Action,
		Data:      reply.Data,
		TypingMs:  service.ThinkingDelay(req.Message).Milliseconds(),
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.List())
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rest, ok := h.Catalog.Get(id)
	if !ok {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rest, ok := h.Catalog.Get(id)
	if !ok {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rest.Menu)
}

type cartResponse struct {
	Items  []domain.CartLine `json:"items"`
	Totals domain.Totals     `json:"totals"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.GetOrCreate(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, cartResponse{
		Items:  sess.Engine.Lines(),
		Totals: sess.Engine.Totals(),
	})
}

type addCartRequest struct {
	DishID   int `json:"dish_id"`
	Quantity int `json:"quantity"`
}

func (h *Handler) addCartLine(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.GetOrCreate(mux.Vars(r)["id"])
	var req addCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	dish, ok := h.findDish(req.DishID)
	if !ok {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	line := sess.Engine.AddToCart(dish, req.Quantity)
	writeJSON(w, http.StatusCreated, cartResponse{
		Items:  []domain.CartLine{line},
		Totals: sess.Engine.Totals(),
	})
}

func (h *Handler) findDish(dishID int) (domain.CatalogDish, bool) {
	for _, rest := range h.Catalog.List() {
		for _, section := range rest.Menu {
			for _, d := range section.Items {
				if d.ID == dishID {
					return domain.CatalogDish{Dish: d, RestaurantID: rest.ID, RestaurantName: rest.Name}, true
				}
			}
		}
	}
	return domain.CatalogDish{}, false
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateCartLine(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.GetOrCreate(mux.Vars(r)["id"])
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := sess.Engine.UpdateQuantity(dishID, req.Quantity); err != nil {
		http.Error(w, "Cart line not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{
		Items:  sess.Engine.Lines(),
		Totals: sess.Engine.Totals(),
	})
}

func (h *Handler) removeCartLine(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.GetOrCreate(mux.Vars(r)["id"])
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	if err := sess.Engine.RemoveFromCart(dishID); err != nil {
		http.Error(w, "Cart line not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type selectRestaurantRequest struct {
	RestaurantID int `json:"restaurant_id"`
}

func (h *Handler) selectRestaurant(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.GetOrCreate(mux.Vars(r)["id"])
	var req selectRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if _, ok := h.Catalog.Get(req.RestaurantID); !ok {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	sess.SelectRestaurant(req.RestaurantID)
	w.WriteHeader(http.StatusNoContent)
}

type orderTypeRequest struct {
	OrderType domain.OrderType `json:"order_type"`
}

func (h *Handler) setOrderType(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.GetOrCreate(mux.Vars(r)["id"])
	var req orderTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	switch req.OrderType {
	case domain.OrderTypeDelivery, domain.OrderTypeTakeaway, domain.OrderTypeDineIn:
	default:
		http.Error(w, "Invalid order type", http.StatusBadRequest)
		return
	}
	sess.Engine.SetOrderType(req.OrderType)
	writeJSON(w, http.StatusOK, sess.Engine.Totals())
}

type checkoutRequest struct {
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
}

type checkoutResponse struct {
	Order        *domain.Order `json:"order"`
	ProcessingMs int64         `json:"processing_ms"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.GetOrCreate(mux.Vars(r)["id"])
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	o, err := sess.Engine.Checkout(r.Context(), req.PaymentMethod)
	if err != nil {
		if errors.Is(err, order.ErrCartEmpty) || errors.Is(err, order.ErrNoPaymentMethod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, checkoutResponse{
		Order:        o,
		ProcessingMs: order.PaymentProcessingDelay(req.PaymentMethod).Milliseconds(),
	})
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	if !h.Sessions.Close(mux.Vars(r)["id"]) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
