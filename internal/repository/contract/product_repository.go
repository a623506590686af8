package contract

import (
	"context"

	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ProductFilter is the domain-shaped query the matching pipeline speaks.
// Zero values mean "no constraint" except StockMin, which callers set
// explicitly (the pipeline always passes 1).
type ProductFilter struct {
	ProductType string
	Category    string
	Brand       string
	PriceMax    float64
	PriceMin    float64
	StockMin    int
	Limit       int
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// UpsertBySKU inserts or refreshes a product keyed on its SKU; used by
	// CSV imports. Returns true when the row already existed.
	UpsertBySKU(ctx context.Context, product *entity.Product) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// Filter runs a catalog query and returns matches cheapest first.
	Filter(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
