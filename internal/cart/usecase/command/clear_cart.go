package command

import (
	"github.com/tair/storefront/internal/cart/store"
)

// ClearCartCommand represents the command to empty a session cart
type ClearCartCommand struct {
	SessionID string
}

// ClearCartHandler handles clear cart commands
type ClearCartHandler struct {
	carts *store.Store
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(carts *store.Store) *ClearCartHandler {
	return &ClearCartHandler{carts: carts}
}

// Handle executes the clear cart command. Idempotent.
func (h *ClearCartHandler) Handle(cmd ClearCartCommand) store.Snapshot {
	return h.carts.Clear(cmd.SessionID)
}
