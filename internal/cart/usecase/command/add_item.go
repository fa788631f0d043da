package command

import (
	"fmt"

	"github.com/tair/storefront/internal/cart/store"
	catalog "github.com/tair/storefront/internal/catalog/domain"
)

// AddItemCommand represents the command to add a product to a session cart
type AddItemCommand struct {
	SessionID string
	ProductID string
	Quantity  int
}

// AddItemHandler handles add item commands. The product is looked up in
// the catalog at add time so the cart line freezes the price that was in
// effect at this moment.
type AddItemHandler struct {
	catalog CatalogReader
	carts   *store.Store
}

// CatalogReader is the slice of the catalog contract the cart needs
type CatalogReader interface {
	FindByID(id string) (*catalog.Product, error)
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(catalogRepo CatalogReader, carts *store.Store) *AddItemHandler {
	return &AddItemHandler{catalog: catalogRepo, carts: carts}
}

// Handle executes the add item command. Unknown products are an error;
// invalid quantities and non-purchasable products degrade to a no-op in
// the store.
func (h *AddItemHandler) Handle(cmd AddItemCommand) (store.Snapshot, error) {
	product, err := h.catalog.FindByID(cmd.ProductID)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("product not found: %w", err)
	}

	return h.carts.AddItem(cmd.SessionID, product, cmd.Quantity), nil
}
