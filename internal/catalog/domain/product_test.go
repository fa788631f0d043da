package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestResolveDiscount_ManualWinsOverPromotional(t *testing.T) {
	p := Product{
		ID:             "p1",
		BasePrice:      100,
		DiscountPrice:  floatPtr(80),
		IsOnDiscount:   true,
		EffectivePrice: floatPtr(60),
	}

	d := p.ResolveDiscount()
	assert.Equal(t, ManualDiscount, d.Kind)
	assert.Equal(t, 80.0, d.Price)

	view := p.ResolvePrice()
	assert.Equal(t, 80.0, view.UnitPrice)
	require.NotNil(t, view.OriginalPrice)
	assert.Equal(t, 100.0, *view.OriginalPrice)
}

func TestResolveDiscount_PromotionalFallsBackToBasePrice(t *testing.T) {
	p := Product{ID: "p1", BasePrice: 50, IsOnDiscount: true}

	d := p.ResolveDiscount()
	assert.Equal(t, PromotionalDiscount, d.Kind)
	assert.Equal(t, 50.0, d.Price)

	p.EffectivePrice = floatPtr(40)
	d = p.ResolveDiscount()
	assert.Equal(t, 40.0, d.Price)
}

func TestResolveDiscount_NoDiscount(t *testing.T) {
	p := Product{ID: "p1", BasePrice: 25}

	d := p.ResolveDiscount()
	assert.Equal(t, NoDiscount, d.Kind)
	assert.Equal(t, 25.0, d.Price)

	view := p.ResolvePrice()
	assert.Equal(t, 25.0, view.UnitPrice)
	assert.Nil(t, view.OriginalPrice)
	assert.False(t, view.OnSale())
	assert.Equal(t, 0, view.DiscountPercent())
}

func TestResolveDiscount_MalformedDiscountPriceIgnored(t *testing.T) {
	cases := []struct {
		name          string
		discountPrice float64
	}{
		{"zero", 0},
		{"negative", -5},
		{"equal to base", 100},
		{"above base", 120},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{ID: "p1", BasePrice: 100, DiscountPrice: floatPtr(tc.discountPrice)}
			d := p.ResolveDiscount()
			assert.Equal(t, NoDiscount, d.Kind)
			assert.Equal(t, 100.0, d.Price)
		})
	}
}

func TestResolveDiscount_MalformedManualFallsThroughToPromotional(t *testing.T) {
	p := Product{
		ID:             "p1",
		BasePrice:      100,
		DiscountPrice:  floatPtr(150),
		IsOnDiscount:   true,
		EffectivePrice: floatPtr(70),
	}

	d := p.ResolveDiscount()
	assert.Equal(t, PromotionalDiscount, d.Kind)
	assert.Equal(t, 70.0, d.Price)
}

func TestDiscountPercent_RoundsHalfUp(t *testing.T) {
	cases := []struct {
		base     float64
		discount float64
		percent  int
	}{
		{100, 80, 20},
		{100, 66.6, 33}, // 33.4 rounds down
		{100, 66.4, 34}, // 33.6 rounds up
		{3, 2, 33},      // 33.33..
		{200, 100, 50},
		{100, 87.5, 13}, // exactly 12.5 rounds up
	}

	for _, tc := range cases {
		p := Product{ID: "p1", BasePrice: tc.base, DiscountPrice: floatPtr(tc.discount)}
		view := p.ResolvePrice()
		assert.True(t, view.OnSale())
		assert.Equal(t, tc.percent, view.DiscountPercent(), "base=%v discount=%v", tc.base, tc.discount)
	}
}

func TestPurchasableAndProjectedStock(t *testing.T) {
	inStock := Product{ID: "p1", BasePrice: 10}
	assert.True(t, inStock.Purchasable())
	assert.Equal(t, StockSentinel, inStock.ProjectedStock())

	explicit := Product{ID: "p2", BasePrice: 10, Available: boolPtr(true)}
	assert.True(t, explicit.Purchasable())

	unavailable := Product{ID: "p3", BasePrice: 10, Available: boolPtr(false)}
	assert.False(t, unavailable.Purchasable())
	assert.Equal(t, 0, unavailable.ProjectedStock())
}
