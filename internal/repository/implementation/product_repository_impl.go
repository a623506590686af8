package implementation

import (
	"context"
	"errors"

	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/mapper"
	"smartbyte-be/internal/model"
	"smartbyte-be/internal/repository/contract"
	"smartbyte-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *ProductRepositoryImpl) UpsertBySKU(ctx context.Context, product *entity.Product) (bool, error) {
	var existing model.Product
	err := r.db.WithContext(ctx).Where("sku = ?", product.SKU).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, r.Create(ctx, product)
		}
		return false, err
	}

	product.Id = existing.Id
	product.CreatedAt = existing.CreatedAt
	return true, r.Update(ctx, product)
}

func (r *ProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var m model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var models []*model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Product{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Filter translates the domain filter into specifications and always orders
// cheapest first, which is what the matching pipeline expects.
func (r *ProductRepositoryImpl) Filter(ctx context.Context, filter contract.ProductFilter) ([]*entity.Product, error) {
	var specs []specification.Specification

	if filter.ProductType != "" {
		specs = append(specs, specification.ByProductType{ProductType: filter.ProductType})
	}
	if filter.Category != "" {
		specs = append(specs, specification.ByCategory{Category: filter.Category})
	}
	if filter.Brand != "" {
		specs = append(specs, specification.ByBrand{Brand: filter.Brand})
	}
	if filter.PriceMax > 0 {
		specs = append(specs, specification.PriceAtMost{Max: filter.PriceMax})
	}
	if filter.PriceMin > 0 {
		specs = append(specs, specification.PriceAtLeast{Min: filter.PriceMin})
	}
	if filter.StockMin > 0 {
		specs = append(specs, specification.InStock{Min: filter.StockMin})
	}
	specs = append(specs, specification.PriceAscending{})
	if filter.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: filter.Limit})
	}

	return r.FindAll(ctx, specs...)
}
