package query

import (
	"errors"

	cart "github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/store"
)

// ErrEmptyCart is returned when a checkout summary is requested for an
// empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutQuery represents the query for a session's checkout summary
type CheckoutQuery struct {
	SessionID string
}

// Summary is the checkout view of a cart: the final item list and total
type Summary struct {
	Lines      []cart.Line `json:"lines"`
	TotalItems int         `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
}

// CheckoutHandler handles checkout summary queries
type CheckoutHandler struct {
	carts *store.Store
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(carts *store.Store) *CheckoutHandler {
	return &CheckoutHandler{carts: carts}
}

// Handle executes the checkout query. Checkout is only meaningful for a
// non-empty cart.
func (h *CheckoutHandler) Handle(query CheckoutQuery) (*Summary, error) {
	snap := h.carts.Get(query.SessionID)
	if snap.TotalItems == 0 {
		return nil, ErrEmptyCart
	}

	return &Summary{
		Lines:      snap.Lines,
		TotalItems: snap.TotalItems,
		TotalPrice: snap.TotalPrice,
	}, nil
}
