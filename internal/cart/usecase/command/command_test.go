package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/cart/store"
	catalog "github.com/tair/storefront/internal/catalog/domain"
)

type fakeCatalog struct {
	products map[string]catalog.Product
}

func (f *fakeCatalog) FindByID(id string) (*catalog.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	return &p, nil
}

func boolPtr(b bool) *bool { return &b }

func testCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[string]catalog.Product{
		"tea":  {ID: "tea", Name: "Red Tea", BasePrice: 4},
		"soda": {ID: "soda", Name: "Green Soda", BasePrice: 3},
		"gone": {ID: "gone", Name: "Sold Out", BasePrice: 9, Available: boolPtr(false)},
	}}
}

func TestAddItem(t *testing.T) {
	carts := store.New()
	h := NewAddItemHandler(testCatalog(), carts)

	snap, err := h.Handle(AddItemCommand{SessionID: "s", ProductID: "tea", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, snap.TotalItems)
	assert.Equal(t, 8.0, snap.TotalPrice)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	carts := store.New()
	h := NewAddItemHandler(testCatalog(), carts)

	_, err := h.Handle(AddItemCommand{SessionID: "s", ProductID: "missing", Quantity: 1})
	assert.Error(t, err)
	assert.Equal(t, 0, carts.Get("s").TotalItems)
}

func TestAddItem_NonPurchasableIsSilentNoOp(t *testing.T) {
	carts := store.New()
	h := NewAddItemHandler(testCatalog(), carts)

	snap, err := h.Handle(AddItemCommand{SessionID: "s", ProductID: "gone", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, snap.TotalItems)
}

func TestAddItem_InvalidQuantityIsSilentNoOp(t *testing.T) {
	carts := store.New()
	h := NewAddItemHandler(testCatalog(), carts)

	snap, err := h.Handle(AddItemCommand{SessionID: "s", ProductID: "tea", Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, snap.TotalItems)
}

func TestAddItem_FreezesCatalogPrice(t *testing.T) {
	cat := testCatalog()
	carts := store.New()
	h := NewAddItemHandler(cat, carts)

	_, err := h.Handle(AddItemCommand{SessionID: "s", ProductID: "tea", Quantity: 1})
	require.NoError(t, err)
	captured := carts.Get("s").TotalPrice

	// Catalog price changes after the add.
	p := cat.products["tea"]
	p.BasePrice = 50
	cat.products["tea"] = p

	assert.Equal(t, captured, carts.Get("s").TotalPrice)

	// Re-adding the same product increments the existing line at the
	// frozen price rather than opening a second line.
	snap, err := h.Handle(AddItemCommand{SessionID: "s", ProductID: "tea", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, captured*2, snap.TotalPrice)
}

func TestRemoveAndUpdateAndClear(t *testing.T) {
	carts := store.New()
	add := NewAddItemHandler(testCatalog(), carts)
	remove := NewRemoveItemHandler(carts)
	update := NewUpdateQuantityHandler(carts)
	clear := NewClearCartHandler(carts)

	_, err := add.Handle(AddItemCommand{SessionID: "s", ProductID: "tea", Quantity: 2})
	require.NoError(t, err)
	_, err = add.Handle(AddItemCommand{SessionID: "s", ProductID: "soda", Quantity: 1})
	require.NoError(t, err)

	snap := update.Handle(UpdateQuantityCommand{SessionID: "s", ProductID: "tea", Quantity: 1})
	assert.Equal(t, 2, snap.TotalItems)

	snap = remove.Handle(RemoveItemCommand{SessionID: "s", ProductID: "soda"})
	assert.Equal(t, 1, snap.TotalItems)

	// Missing lines are silently ignored.
	snap = remove.Handle(RemoveItemCommand{SessionID: "s", ProductID: "missing"})
	assert.Equal(t, 1, snap.TotalItems)
	snap = update.Handle(UpdateQuantityCommand{SessionID: "s", ProductID: "missing", Quantity: 5})
	assert.Equal(t, 1, snap.TotalItems)

	snap = clear.Handle(ClearCartCommand{SessionID: "s"})
	assert.Equal(t, 0, snap.TotalItems)
	assert.Empty(t, snap.Lines)
}
