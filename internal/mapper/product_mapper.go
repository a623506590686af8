package mapper

import (
	"encoding/json"
	"time"

	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/model"

	"gorm.io/datatypes"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	var specs map[string]interface{}
	if len(p.Specs) > 0 {
		// A corrupt specs blob degrades to no specs rather than failing the read.
		_ = json.Unmarshal(p.Specs, &specs)
	}

	return &entity.Product{
		Id:          p.Id,
		SKU:         p.SKU,
		Name:        p.Name,
		Brand:       p.Brand,
		ProductType: p.ProductType,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Specs:       specs,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	var specs datatypes.JSON
	if p.Specs != nil {
		if raw, err := json.Marshal(p.Specs); err == nil {
			specs = raw
		}
	}

	return &model.Product{
		Id:          p.Id,
		SKU:         p.SKU,
		Name:        p.Name,
		Brand:       p.Brand,
		ProductType: p.ProductType,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Specs:       specs,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ProductMapper) ToEntities(models []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(models))
	for i, p := range models {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
