package query

import (
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to get a single product
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles get product queries
type GetProductHandler struct {
	repo domain.CatalogRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.CatalogRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(query GetProductQuery) (*CatalogItem, error) {
	product, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	item := NewCatalogItem(product)
	return &item, nil
}
