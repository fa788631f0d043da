package command

import (
	"github.com/tair/storefront/internal/cart/store"
)

// UpdateQuantityCommand represents the command to set a line's quantity
type UpdateQuantityCommand struct {
	SessionID string
	ProductID string
	Quantity  int
}

// UpdateQuantityHandler handles quantity update commands
type UpdateQuantityHandler struct {
	carts *store.Store
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(carts *store.Store) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{carts: carts}
}

// Handle executes the update quantity command. The quantity is set, not
// added; zero or less removes the line; a missing line is a no-op.
func (h *UpdateQuantityHandler) Handle(cmd UpdateQuantityCommand) store.Snapshot {
	return h.carts.UpdateQuantity(cmd.SessionID, cmd.ProductID, cmd.Quantity)
}
