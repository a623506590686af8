package dto

import "github.com/google/uuid"

type CreateProductRequest struct {
	SKU         string                 `json:"sku" validate:"required"`
	Name        string                 `json:"name" validate:"required"`
	Brand       string                 `json:"brand" validate:"required"`
	ProductType string                 `json:"product_type" validate:"required,oneof=laptop desktop accessory"`
	Category    string                 `json:"category" validate:"required"`
	Price       float64                `json:"price" validate:"required,gt=0"`
	Stock       int                    `json:"stock" validate:"gte=0"`
	Specs       map[string]interface{} `json:"specs"`
	Description string                 `json:"description"`
}

type UpdateProductRequest struct {
	Id          uuid.UUID
	Name        string                 `json:"name" validate:"required"`
	Brand       string                 `json:"brand" validate:"required"`
	ProductType string                 `json:"product_type" validate:"required,oneof=laptop desktop accessory"`
	Category    string                 `json:"category" validate:"required"`
	Price       float64                `json:"price" validate:"required,gt=0"`
	Stock       int                    `json:"stock" validate:"gte=0"`
	Specs       map[string]interface{} `json:"specs"`
	Description string                 `json:"description"`
}

type UpdateStockRequest struct {
	Id    uuid.UUID
	Stock int `json:"stock" validate:"gte=0"`
}

type ImportCSVResponse struct {
	TotalRows int      `json:"total_rows"`
	Loaded    int      `json:"loaded"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors"`
}

type ListProductsQuery struct {
	ProductType string `query:"product_type"`
	Category    string `query:"category"`
	Brand       string `query:"brand"`
	InStockOnly bool   `query:"in_stock_only"`
}
