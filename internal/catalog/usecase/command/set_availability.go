package command

import (
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// SetAvailabilityCommand represents the command to toggle product availability
type SetAvailabilityCommand struct {
	ProductID string
	Available bool
}

// SetAvailabilityHandler handles availability toggling
type SetAvailabilityHandler struct {
	repo domain.CatalogRepository
}

// NewSetAvailabilityHandler creates a new set availability handler
func NewSetAvailabilityHandler(repo domain.CatalogRepository) *SetAvailabilityHandler {
	return &SetAvailabilityHandler{repo: repo}
}

// Handle executes the set availability command
func (h *SetAvailabilityHandler) Handle(cmd SetAvailabilityCommand) error {
	if _, err := h.repo.FindByID(cmd.ProductID); err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	if err := h.repo.SetAvailability(cmd.ProductID, cmd.Available); err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}

	return nil
}
