//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"

	"github.com/tair/storefront/internal/cart/delivery/http"
	"github.com/tair/storefront/internal/cart/store"
	"github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/cart/usecase/query"
	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/kafka"
)

// ProvideCatalogReader narrows the catalog repository to the read
// surface the cart needs
func ProvideCatalogReader(repo catalogdomain.CatalogRepository) command.CatalogReader {
	return repo
}

// Wire sets
var UsecaseSet = wire.NewSet(
	ProvideCatalogReader,
	command.NewAddItemHandler,
	command.NewRemoveItemHandler,
	command.NewUpdateQuantityHandler,
	command.NewClearCartHandler,
	query.NewGetCartHandler,
	query.NewCheckoutHandler,
)

// InitializeHTTPHandler initializes the cart HTTP handler with all dependencies
func InitializeHTTPHandler(catalogRepo catalogdomain.CatalogRepository, carts *store.Store, publisher *kafka.Publisher) (*http.CartHandler, error) {
	wire.Build(
		UsecaseSet,
		http.NewCartHandler,
	)
	return nil, nil
}
