package query

import (
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// BrowseCatalogQuery represents the query to browse the catalog. Category
// and search are mutually exclusive from the shopper's perspective; a
// non-empty search wins and resets the category to "all".
type BrowseCatalogQuery struct {
	Category string
	Search   string
}

// CatalogItem is the display-ready projection of a catalog product
type CatalogItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	OriginalPrice   *float64 `json:"original_price,omitempty"`
	OnSale          bool     `json:"on_sale"`
	DiscountPercent int      `json:"discount_percent,omitempty"`
	InStock         bool     `json:"in_stock"`
	Stock           int      `json:"stock"`
	Popular         bool     `json:"popular"`
}

// NewCatalogItem projects a product into its display shape
func NewCatalogItem(p *domain.Product) CatalogItem {
	view := p.ResolvePrice()
	return CatalogItem{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Category:        p.Category,
		Price:           view.UnitPrice,
		OriginalPrice:   view.OriginalPrice,
		OnSale:          view.OnSale(),
		DiscountPercent: view.DiscountPercent(),
		InStock:         p.Purchasable(),
		Stock:           p.ProjectedStock(),
		Popular:         p.Popular,
	}
}

// BrowseCatalogHandler handles catalog browse queries
type BrowseCatalogHandler struct {
	repo domain.CatalogRepository
}

// NewBrowseCatalogHandler creates a new browse catalog handler
func NewBrowseCatalogHandler(repo domain.CatalogRepository) *BrowseCatalogHandler {
	return &BrowseCatalogHandler{repo: repo}
}

// Handle executes the browse query: resolve the browse mode, filter and
// project. Filtering preserves catalog order.
func (h *BrowseCatalogHandler) Handle(query BrowseCatalogQuery) ([]CatalogItem, error) {
	var mode domain.BrowseMode
	if query.Search != "" {
		mode = domain.BySearch(query.Search)
	} else {
		mode = domain.ByCategory(query.Category)
	}

	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	filtered := mode.Apply(products)

	items := make([]CatalogItem, 0, len(filtered))
	for i := range filtered {
		items = append(items, NewCatalogItem(&filtered[i]))
	}

	return items, nil
}
