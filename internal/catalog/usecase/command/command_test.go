package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/catalog/domain"
)

type fakeRepo struct {
	products map[string]domain.Product
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[string]domain.Product{}}
}

func (f *fakeRepo) Create(p *domain.Product) error {
	f.products[p.ID] = *p
	return nil
}

func (f *fakeRepo) FindByID(id string) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	return &p, nil
}

func (f *fakeRepo) FindAll() ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) Categories() ([]string, error) { return nil, nil }

func (f *fakeRepo) Update(p *domain.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return fmt.Errorf("record not found")
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeRepo) Delete(id string) error {
	delete(f.products, id)
	return nil
}

func (f *fakeRepo) Count() (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeRepo) SetAvailability(id string, available bool) error {
	p, ok := f.products[id]
	if !ok {
		return fmt.Errorf("record not found")
	}
	p.Available = &available
	f.products[id] = p
	return nil
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateProduct(t *testing.T) {
	repo := newFakeRepo()
	h := NewCreateProductHandler(repo)

	product, err := h.Handle(CreateProductCommand{
		Name:      "Red Tea",
		Category:  "tea",
		BasePrice: 4,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Red Tea", product.Name)

	stored, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, stored.BasePrice)
}

func TestCreateProduct_Validation(t *testing.T) {
	h := NewCreateProductHandler(newFakeRepo())

	_, err := h.Handle(CreateProductCommand{BasePrice: 4})
	assert.Error(t, err, "missing name")

	_, err = h.Handle(CreateProductCommand{Name: "Tea", BasePrice: -1})
	assert.Error(t, err, "negative price")
}

func TestCreateProduct_DuplicateID(t *testing.T) {
	repo := newFakeRepo()
	h := NewCreateProductHandler(repo)

	_, err := h.Handle(CreateProductCommand{ID: "p1", Name: "Tea", BasePrice: 4})
	require.NoError(t, err)

	_, err = h.Handle(CreateProductCommand{ID: "p1", Name: "Other Tea", BasePrice: 5})
	assert.Error(t, err)
}

func TestUpdateProduct(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateProductHandler(repo)
	update := NewUpdateProductHandler(repo)

	_, err := create.Handle(CreateProductCommand{ID: "p1", Name: "Tea", BasePrice: 4})
	require.NoError(t, err)

	product, err := update.Handle(UpdateProductCommand{
		ID:            "p1",
		Name:          "Tea",
		BasePrice:     5,
		DiscountPrice: floatPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, product.BasePrice)
	assert.Equal(t, domain.ManualDiscount, product.ResolveDiscount().Kind)

	_, err = update.Handle(UpdateProductCommand{ID: "missing", Name: "X", BasePrice: 1})
	assert.Error(t, err)
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateProductHandler(repo)
	del := NewDeleteProductHandler(repo)

	_, err := create.Handle(CreateProductCommand{ID: "p1", Name: "Tea", BasePrice: 4})
	require.NoError(t, err)

	require.NoError(t, del.Handle(DeleteProductCommand{ID: "p1"}))

	_, err = repo.FindByID("p1")
	assert.Error(t, err)

	assert.Error(t, del.Handle(DeleteProductCommand{ID: "p1"}), "already deleted")
}

func TestSetAvailability(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateProductHandler(repo)
	setAvail := NewSetAvailabilityHandler(repo)

	_, err := create.Handle(CreateProductCommand{ID: "p1", Name: "Tea", BasePrice: 4})
	require.NoError(t, err)

	require.NoError(t, setAvail.Handle(SetAvailabilityCommand{ProductID: "p1", Available: false}))

	stored, err := repo.FindByID("p1")
	require.NoError(t, err)
	assert.False(t, stored.Purchasable())
	assert.Equal(t, 0, stored.ProjectedStock())

	assert.Error(t, setAvail.Handle(SetAvailabilityCommand{ProductID: "missing", Available: true}))
}
