package query

import (
	"github.com/tair/storefront/internal/cart/store"
)

// GetCartQuery represents the query for a session's cart snapshot
type GetCartQuery struct {
	SessionID string
}

// GetCartHandler handles cart snapshot queries
type GetCartHandler struct {
	carts *store.Store
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(carts *store.Store) *GetCartHandler {
	return &GetCartHandler{carts: carts}
}

// Handle executes the get cart query. Pure read, no side effect.
func (h *GetCartHandler) Handle(query GetCartQuery) store.Snapshot {
	return h.carts.Get(query.SessionID)
}
