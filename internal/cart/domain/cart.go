package domain

import (
	catalog "github.com/tair/storefront/internal/catalog/domain"
)

// Line is one cart entry: a snapshot of the product at add time plus a
// quantity. UnitPrice is frozen when the line is created and never
// recomputed, so later catalog price changes cannot alter an
// already-quoted total.
type Line struct {
	ProductID     string   `json:"product_id"`
	Name          string   `json:"name"`
	UnitPrice     float64  `json:"unit_price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Quantity      int      `json:"quantity"`
}

// Subtotal returns the line total at the frozen unit price
func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart is an ordered collection of lines. At most one line exists per
// product ID, every quantity is positive, and insertion order is
// preserved: re-adding an existing product never reorders it.
//
// Cart is not safe for concurrent use; the store serializes access.
type Cart struct {
	lines []Line
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Add appends or increments a line for the product. Quantities below one
// and non-purchasable products are ignored. A new line captures the
// resolved unit price at this moment.
func (c *Cart) Add(product *catalog.Product, quantity int) {
	if quantity < 1 || !product.Purchasable() {
		return
	}

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}

	view := product.ResolvePrice()
	c.lines = append(c.lines, Line{
		ProductID:     product.ID,
		Name:          product.Name,
		UnitPrice:     view.UnitPrice,
		OriginalPrice: view.OriginalPrice,
		Quantity:      quantity,
	})
}

// Remove deletes the line for the product ID, if present
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity to exactly newQuantity. A quantity
// of zero or less removes the line. Missing lines are ignored.
func (c *Cart) SetQuantity(productID string, newQuantity int) {
	if newQuantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = newQuantity
			return
		}
	}
}

// Clear empties the cart. Idempotent.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// Len returns the number of distinct lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// TotalItems returns the sum of all line quantities
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice returns the sum of frozen unit price times quantity across
// all lines. Kept at full precision; rounding is a display concern.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}
