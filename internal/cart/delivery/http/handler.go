package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/cart/usecase/query"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
)

// SessionHeader carries the shopper session ID. A missing header gets a
// fresh session minted and echoed back.
const SessionHeader = "X-Session-ID"

// CartHandler handles HTTP requests for carts using CQRS pattern
type CartHandler struct {
	// Command handlers
	addHandler    *command.AddItemHandler
	removeHandler *command.RemoveItemHandler
	updateHandler *command.UpdateQuantityHandler
	clearHandler  *command.ClearCartHandler

	// Query handlers
	getCartHandler  *query.GetCartHandler
	checkoutHandler *query.CheckoutHandler

	kafkaPublisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	checkouts      prometheus.Counter
}

// NewCartHandler creates a new cart handler. The Kafka publisher may be
// nil; checkout then skips event publishing.
func NewCartHandler(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	updateHandler *command.UpdateQuantityHandler,
	clearHandler *command.ClearCartHandler,
	getCartHandler *query.GetCartHandler,
	checkoutHandler *query.CheckoutHandler,
	kafkaPublisher *kafka.Publisher,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_service_requests_total",
			Help: "Total number of requests to the cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_service_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	checkouts := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_service_checkouts_total",
			Help: "Total number of checkout summaries produced",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(checkouts)

	return &CartHandler{
		addHandler:      addHandler,
		removeHandler:   removeHandler,
		updateHandler:   updateHandler,
		clearHandler:    clearHandler,
		getCartHandler:  getCartHandler,
		checkoutHandler: checkoutHandler,
		kafkaPublisher:  kafkaPublisher,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		checkouts:       checkouts,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.UpdateQuantity)).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.RemoveItem)).Methods("DELETE")
	router.HandleFunc("/api/cart/checkout", h.metricsMiddleware("/api/cart/checkout", h.Checkout)).Methods("POST")
}

// session resolves the shopper session, minting one when the header is
// absent, and always echoes it on the response.
func session(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(SessionHeader, id)
	return id
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  *int   `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	// Quantity defaults to one when omitted; an explicit non-positive
	// quantity is passed through and ignored by the store.
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	snap, err := h.addHandler.Handle(command.AddItemCommand{
		SessionID: sessionID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    snap,
	})
}

// UpdateQuantity handles PATCH /api/cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)
	productID := mux.Vars(r)["id"]

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	snap := h.updateHandler.Handle(command.UpdateQuantityCommand{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  req.Quantity,
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    snap,
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)
	productID := mux.Vars(r)["id"]

	snap := h.removeHandler.Handle(command.RemoveItemCommand{
		SessionID: sessionID,
		ProductID: productID,
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    snap,
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)

	snap := h.clearHandler.Handle(command.ClearCartCommand{SessionID: sessionID})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
		Data:    snap,
	})
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)

	snap := h.getCartHandler.Handle(query.GetCartQuery{SessionID: sessionID})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    snap,
	})
}

// Checkout handles POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)

	summary, err := h.checkoutHandler.Handle(query.CheckoutQuery{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, query.ErrEmptyCart) {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "Cart is empty",
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to build checkout summary")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to build checkout summary",
		})
		return
	}

	h.checkouts.Inc()

	// Publish cart checked out event to Kafka (with tracing)
	if h.kafkaPublisher != nil {
		lines := make([]kafka.CheckedOutLine, 0, len(summary.Lines))
		for _, l := range summary.Lines {
			lines = append(lines, kafka.CheckedOutLine{
				ProductID: l.ProductID,
				Name:      l.Name,
				UnitPrice: l.UnitPrice,
				Quantity:  l.Quantity,
			})
		}

		event := kafka.CartCheckedOutEvent{
			SessionID:  sessionID,
			Lines:      lines,
			TotalItems: summary.TotalItems,
			TotalPrice: summary.TotalPrice,
		}

		if err := h.kafkaPublisher.PublishCartCheckedOut(r.Context(), event); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("session_id", sessionID).
				Msg("Failed to publish cart checked out event")
			// The summary still stands; publishing is best effort.
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Checkout summary ready",
		Data:    summary,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
