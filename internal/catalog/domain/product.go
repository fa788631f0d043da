package domain

import (
	"math"
	"time"
)

// StockSentinel is the informational stock figure reported for purchasable
// products. The catalog does not track real stock, so nothing ever
// decrements it.
const StockSentinel = 999

// Product represents a catalog product record
type Product struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Description    string    `json:"description"`
	Category       string    `json:"category" gorm:"index"`
	BasePrice      float64   `json:"base_price" gorm:"not null"`
	DiscountPrice  *float64  `json:"discount_price,omitempty"`
	EffectivePrice *float64  `json:"effective_price,omitempty"`
	IsOnDiscount   bool      `json:"is_on_discount"`
	Available      *bool     `json:"available,omitempty"`
	Popular        bool      `json:"popular"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// Purchasable reports whether the product can be added to a cart. An absent
// available flag means purchasable.
func (p *Product) Purchasable() bool {
	return p.Available == nil || *p.Available
}

// ProjectedStock returns the informational stock figure for display: zero
// when the product is not purchasable, the sentinel otherwise.
func (p *Product) ProjectedStock() int {
	if !p.Purchasable() {
		return 0
	}
	return StockSentinel
}

// DiscountKind tags the single applicable discount source
type DiscountKind int

const (
	NoDiscount DiscountKind = iota
	// ManualDiscount is an explicitly set override price
	ManualDiscount
	// PromotionalDiscount is a catalog-supplied time-bound price
	PromotionalDiscount
)

// Discount is the resolved discount variant for a product. At most one
// source applies; manual overrides win over promotional flags.
type Discount struct {
	Kind  DiscountKind
	Price float64
}

// ResolveDiscount collapses the product's overlapping discount fields into
// a single variant. A discount price outside (0, basePrice) is treated as
// no manual discount rather than an error.
func (p *Product) ResolveDiscount() Discount {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 && *p.DiscountPrice < p.BasePrice {
		return Discount{Kind: ManualDiscount, Price: *p.DiscountPrice}
	}
	if p.IsOnDiscount {
		price := p.BasePrice
		if p.EffectivePrice != nil {
			price = *p.EffectivePrice
		}
		return Discount{Kind: PromotionalDiscount, Price: price}
	}
	return Discount{Kind: NoDiscount, Price: p.BasePrice}
}

// PriceView is the display projection of a product's resolved price.
// OriginalPrice is set only when a discount applies, for strike-through
// display.
type PriceView struct {
	UnitPrice     float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
}

// ResolvePrice derives the display price projection. It is a pure function
// of the product record.
func (p *Product) ResolvePrice() PriceView {
	d := p.ResolveDiscount()
	if d.Kind == NoDiscount {
		return PriceView{UnitPrice: d.Price}
	}
	original := p.BasePrice
	return PriceView{UnitPrice: d.Price, OriginalPrice: &original}
}

// OnSale reports whether the projection represents an active discount
func (v PriceView) OnSale() bool {
	return v.OriginalPrice != nil && *v.OriginalPrice > v.UnitPrice
}

// DiscountPercent returns the rounded (half-up) discount percentage, or
// zero when the product is not on sale.
func (v PriceView) DiscountPercent() int {
	if !v.OnSale() {
		return 0
	}
	return int(math.Floor(100*(*v.OriginalPrice-v.UnitPrice)/(*v.OriginalPrice) + 0.5))
}

// CatalogRepository defines the contract for catalog data access
type CatalogRepository interface {
	Create(product *Product) error
	FindByID(id string) (*Product, error)
	FindAll() ([]Product, error)
	Categories() ([]string, error)
	Update(product *Product) error
	Delete(id string) error
	Count() (int64, error)
	SetAvailability(id string, available bool) error
}
