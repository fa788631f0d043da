package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/command"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/pkg/logger"
)

// Middleware wraps a handler func, matching the shape of the cache and
// auth middlewares
type Middleware func(http.HandlerFunc) http.HandlerFunc

// CatalogHandler handles HTTP requests for the catalog using CQRS pattern
type CatalogHandler struct {
	// Command handlers
	createHandler       *command.CreateProductHandler
	updateHandler       *command.UpdateProductHandler
	deleteHandler       *command.DeleteProductHandler
	availabilityHandler *command.SetAvailabilityHandler

	// Query handlers
	browseHandler     *query.BrowseCatalogHandler
	categoriesHandler *query.ListCategoriesHandler
	getHandler        *query.GetProductHandler

	repo domain.CatalogRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	catalogSize    prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	availabilityHandler *command.SetAvailabilityHandler,
	browseHandler *query.BrowseCatalogHandler,
	categoriesHandler *query.ListCategoriesHandler,
	getHandler *query.GetProductHandler,
	repo domain.CatalogRepository,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to the catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	catalogSize := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_service_total_products",
			Help: "Total number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(catalogSize)

	return &CatalogHandler{
		createHandler:       createHandler,
		updateHandler:       updateHandler,
		deleteHandler:       deleteHandler,
		availabilityHandler: availabilityHandler,
		browseHandler:       browseHandler,
		categoriesHandler:   categoriesHandler,
		getHandler:          getHandler,
		repo:                repo,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		catalogSize:         catalogSize,
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
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers catalog routes. The cache middleware applies to
// the public browse endpoints; pass nil to disable caching.
func (h *CatalogHandler) RegisterRoutes(router *mux.Router, cache Middleware) {
	if cache == nil {
		cache = func(next http.HandlerFunc) http.HandlerFunc { return next }
	}

	// Public routes
	router.HandleFunc("/api/catalog", h.metricsMiddleware("/api/catalog", cache(h.Browse))).Methods("GET")
	router.HandleFunc("/api/catalog/categories", h.metricsMiddleware("/api/catalog/categories", cache(h.ListCategories))).Methods("GET")
	router.HandleFunc("/api/catalog/{id}", h.metricsMiddleware("/api/catalog/{id}", h.GetProduct)).Methods("GET")

	// Admin routes (admin role required)
	router.HandleFunc("/api/catalog", h.metricsMiddleware("/api/catalog", AdminMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/catalog/{id}", h.metricsMiddleware("/api/catalog/{id}", AdminMiddleware(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/catalog/{id}", h.metricsMiddleware("/api/catalog/{id}", AdminMiddleware(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/api/catalog/{id}/availability", h.metricsMiddleware("/api/catalog/{id}/availability", AdminMiddleware(h.SetAvailability))).Methods("PATCH")
}

// Browse handles GET /api/catalog
func (h *CatalogHandler) Browse(w http.ResponseWriter, r *http.Request) {
	q := query.BrowseCatalogQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}

	items, err := h.browseHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to browse catalog")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to browse catalog",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": items,
			"total":    len(items),
		},
	})
}

// ListCategories handles GET /api/catalog/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoriesHandler.Handle(query.ListCategoriesQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list categories")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list categories",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    categories,
	})
}

// GetProduct handles GET /api/catalog/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	item, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    item,
	})
}

type productRequest struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	BasePrice      float64  `json:"base_price"`
	DiscountPrice  *float64 `json:"discount_price"`
	EffectivePrice *float64 `json:"effective_price"`
	IsOnDiscount   bool     `json:"is_on_discount"`
	Available      *bool    `json:"available"`
	Popular        bool     `json:"popular"`
}

// CreateProduct handles POST /api/catalog
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateProductCommand{
		ID:             req.ID,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		BasePrice:      req.BasePrice,
		DiscountPrice:  req.DiscountPrice,
		EffectivePrice: req.EffectivePrice,
		IsOnDiscount:   req.IsOnDiscount,
		Available:      req.Available,
		Popular:        req.Popular,
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateCatalogMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/catalog/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req productRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateProductCommand{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		BasePrice:      req.BasePrice,
		DiscountPrice:  req.DiscountPrice,
		EffectivePrice: req.EffectivePrice,
		IsOnDiscount:   req.IsOnDiscount,
		Available:      req.Available,
		Popular:        req.Popular,
	}

	product, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/catalog/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateCatalogMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// SetAvailability handles PATCH /api/catalog/{id}/availability
func (h *CatalogHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Available bool `json:"available"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.SetAvailabilityCommand{
		ProductID: id,
		Available: req.Available,
	}

	if err := h.availabilityHandler.Handle(cmd); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to set availability")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Availability updated successfully",
	})
}

func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Storefront service is healthy",
		})
	}).Methods("GET")
}

// updateCatalogMetric updates the catalog size gauge
func (h *CatalogHandler) updateCatalogMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.catalogSize.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
