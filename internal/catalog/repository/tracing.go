package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormCatalogRepositoryWithTracing wraps GormCatalogRepository with tracing
type GormCatalogRepositoryWithTracing struct {
	*GormCatalogRepository
}

// NewGormCatalogRepositoryWithTracing creates a new repository with tracing
func NewGormCatalogRepositoryWithTracing(db *gorm.DB) *GormCatalogRepositoryWithTracing {
	return &GormCatalogRepositoryWithTracing{
		GormCatalogRepository: NewGormCatalogRepository(db),
	}
}

// CreateWithContext records a span around Create
func (r *GormCatalogRepositoryWithTracing) CreateWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.id", product.ID),
			attribute.String("product.name", product.Name),
			attribute.String("product.category", product.Category),
			attribute.Float64("product.base_price", product.BasePrice),
		),
	)
	defer span.End()

	err := r.GormCatalogRepository.Create(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// FindByIDWithContext records a span around FindByID
func (r *GormCatalogRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id string) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.String("product.id", id),
		),
	)
	defer span.End()

	product, err := r.GormCatalogRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return product, nil
}

// FindAllWithContext records a span around FindAll
func (r *GormCatalogRepositoryWithTracing) FindAllWithContext(ctx context.Context) ([]domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	products, err := r.GormCatalogRepository.FindAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.size", len(products)))
	return products, nil
}
