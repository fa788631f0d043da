package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/storefront/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
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

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.CatalogRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.CatalogRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.BasePrice < 0 {
		return nil, fmt.Errorf("base price cannot be negative")
	}

	if cmd.ID == "" {
		cmd.ID = uuid.NewString()
	}
	if existing, _ := h.repo.FindByID(cmd.ID); existing != nil {
		return nil, fmt.Errorf("product ID already exists")
	}

	product := &domain.Product{
		ID:             cmd.ID,
		Name:           cmd.Name,
		Description:    cmd.Description,
		Category:       cmd.Category,
		BasePrice:      cmd.BasePrice,
		DiscountPrice:  cmd.DiscountPrice,
		EffectivePrice: cmd.EffectivePrice,
		IsOnDiscount:   cmd.IsOnDiscount,
		Available:      cmd.Available,
		Popular:        cmd.Popular,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
