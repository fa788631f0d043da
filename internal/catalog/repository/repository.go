package repository

import (
	"github.com/tair/storefront/internal/catalog/domain"
	"gorm.io/gorm"
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormCatalogRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormCatalogRepository) FindByID(id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAll returns the full catalog in stable insertion order. Filtering
// happens in memory so the browse pipeline keeps its order-preserving
// contract.
func (r *GormCatalogRepository) FindAll() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Order("created_at, id").Find(&products).Error
	return products, err
}

func (r *GormCatalogRepository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&domain.Product{}).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *GormCatalogRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormCatalogRepository) Delete(id string) error {
	return r.db.Delete(&domain.Product{}, "id = ?", id).Error
}

func (r *GormCatalogRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormCatalogRepository) SetAvailability(id string, available bool) error {
	return r.db.Model(&domain.Product{}).Where("id = ?", id).Update("available", available).Error
}
