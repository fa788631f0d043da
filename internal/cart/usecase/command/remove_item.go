package command

import (
	"github.com/tair/storefront/internal/cart/store"
)

// RemoveItemCommand represents the command to remove a cart line
type RemoveItemCommand struct {
	SessionID string
	ProductID string
}

// RemoveItemHandler handles remove item commands
type RemoveItemHandler struct {
	carts *store.Store
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(carts *store.Store) *RemoveItemHandler {
	return &RemoveItemHandler{carts: carts}
}

// Handle executes the remove item command. Removing a missing line is a
// no-op, never an error.
func (h *RemoveItemHandler) Handle(cmd RemoveItemCommand) store.Snapshot {
	return h.carts.RemoveItem(cmd.SessionID, cmd.ProductID)
}
