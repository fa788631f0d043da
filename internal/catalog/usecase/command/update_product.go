package command

import (
	"fmt"
	"time"

	"github.com/tair/storefront/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update an existing product
type UpdateProductCommand struct {
	ID             string
	Name           string
	Description    string
	Category       string
	BasePrice      float64
	DiscountPrice  *float64
	EffectivePrice *float64
	IsOnDiscount   bool
	Available      *bool
	Popular        bool
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.CatalogRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.CatalogRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.BasePrice < 0 {
		return nil, fmt.Errorf("base price cannot be negative")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	product.Name = cmd.Name
	product.Description = cmd.Description
	product.Category = cmd.Category
	product.BasePrice = cmd.BasePrice
	product.DiscountPrice = cmd.DiscountPrice
	product.EffectivePrice = cmd.EffectivePrice
	product.IsOnDiscount = cmd.IsOnDiscount
	product.Available = cmd.Available
	product.Popular = cmd.Popular
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
