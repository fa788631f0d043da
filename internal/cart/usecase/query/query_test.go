package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/cart/store"
	catalog "github.com/tair/storefront/internal/catalog/domain"
)

func TestGetCart_EmptySession(t *testing.T) {
	h := NewGetCartHandler(store.New())

	snap := h.Handle(GetCartQuery{SessionID: "nobody"})
	assert.Equal(t, 0, snap.TotalItems)
	assert.Equal(t, 0.0, snap.TotalPrice)
	assert.Empty(t, snap.Lines)
}

func TestGetCart_ReturnsSnapshot(t *testing.T) {
	carts := store.New()
	carts.AddItem("s", &catalog.Product{ID: "tea", Name: "Red Tea", BasePrice: 4}, 2)
	h := NewGetCartHandler(carts)

	snap := h.Handle(GetCartQuery{SessionID: "s"})
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.TotalItems)
	assert.Equal(t, 8.0, snap.TotalPrice)
}

func TestCheckout_EmptyCart(t *testing.T) {
	h := NewCheckoutHandler(store.New())

	_, err := h.Handle(CheckoutQuery{SessionID: "s"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_Summary(t *testing.T) {
	carts := store.New()
	carts.AddItem("s", &catalog.Product{ID: "tea", Name: "Red Tea", BasePrice: 4}, 2)
	carts.AddItem("s", &catalog.Product{ID: "soda", Name: "Green Soda", BasePrice: 3}, 1)
	h := NewCheckoutHandler(carts)

	summary, err := h.Handle(CheckoutQuery{SessionID: "s"})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 11.0, summary.TotalPrice)
	require.Len(t, summary.Lines, 2)
	assert.Equal(t, "tea", summary.Lines[0].ProductID)

	// Checkout does not consume the cart.
	again, err := h.Handle(CheckoutQuery{SessionID: "s"})
	require.NoError(t, err)
	assert.Equal(t, summary.TotalPrice, again.TotalPrice)
}
