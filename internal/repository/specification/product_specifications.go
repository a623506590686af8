package specification

import "gorm.io/gorm"

// BySKU filters by the catalog SKU
type BySKU struct {
	SKU string
}

func (s BySKU) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sku = ?", s.SKU)
}

// ByCategory filters by product category (computer, mouse, keyboard...)
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// ByProductType filters by laptop/desktop/accessory
type ByProductType struct {
	ProductType string
}

func (s ByProductType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("product_type = ?", s.ProductType)
}

// ByBrand filters by manufacturer
type ByBrand struct {
	Brand string
}

func (s ByBrand) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("brand = ?", s.Brand)
}

// PriceAtMost caps the price (budget ceiling)
type PriceAtMost struct {
	Max float64
}

func (s PriceAtMost) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("price <= ?", s.Max)
}

// PriceAtLeast floors the price (minimum-budget searches)
type PriceAtLeast struct {
	Min float64
}

func (s PriceAtLeast) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("price >= ?", s.Min)
}

// InStock requires at least Min units on hand
type InStock struct {
	Min int
}

func (s InStock) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stock >= ?", s.Min)
}

// PriceAscending orders results cheapest first
type PriceAscending struct{}

func (s PriceAscending) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("price ASC")
}
