package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProductTypeLaptop    = "laptop"
	ProductTypeDesktop   = "desktop"
	ProductTypeAccessory = "accessory"

	CategoryComputer = "computer"
)

// Product is one catalog item, either a computer or an accessory.
// Specs is free-form: computers carry cpu, gpu, ram_gb, storage_gb, os and
// warranty_years; accessories may carry anything or nothing.
type Product struct {
	Id          uuid.UUID
	SKU         string
	Name        string
	Brand       string
	ProductType string
	Category    string
	Price       float64
	Stock       int
	Specs       map[string]interface{}
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (p *Product) IsComputer() bool {
	return p.ProductType == ProductTypeLaptop || p.ProductType == ProductTypeDesktop
}

func (p *Product) IsAccessory() bool {
	return p.ProductType == ProductTypeAccessory
}

// DisplayName is the customer-facing name, brand included.
func (p *Product) DisplayName() string {
	return p.Brand + " " + p.Name
}

// RAMGB reads ram_gb out of the specs blob. JSON numbers decode as float64,
// seeded data may carry ints, so both are accepted.
func (p *Product) RAMGB() int {
	if p.Specs == nil {
		return 0
	}
	switch v := p.Specs["ram_gb"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// GPU returns the gpu spec string, empty when absent.
func (p *Product) GPU() string {
	if p.Specs == nil {
		return ""
	}
	if v, ok := p.Specs["gpu"].(string); ok {
		return v
	}
	return ""
}
