package dto

import "smartbyte-be/internal/entity"

type SendMessageRequest struct {
	SessionKey string `json:"session_id" validate:"required"`
	Message    string `json:"message" validate:"required,max=2000"`
}

type SendMessageResponse struct {
	AssistantMessage string       `json:"assistant_message"`
	CustomerType     string       `json:"customer_type"`
	Stage            string       `json:"stage"`
	RecommendedItems []ProductDTO `json:"recommended_items"`
	UpsellItem       *ProductDTO  `json:"upsell_item"`
}

type ProductDTO struct {
	Id          string                 `json:"id"`
	SKU         string                 `json:"sku"`
	Name        string                 `json:"name"`
	Brand       string                 `json:"brand"`
	ProductType string                 `json:"product_type"`
	Category    string                 `json:"category"`
	Price       float64                `json:"price"`
	Stock       int                    `json:"stock"`
	Specs       map[string]interface{} `json:"specs"`
	Description string                 `json:"description"`
}

func ProductToDTO(p *entity.Product) ProductDTO {
	specs := p.Specs
	if specs == nil {
		specs = map[string]interface{}{}
	}
	return ProductDTO{
		Id:          p.Id.String(),
		SKU:         p.SKU,
		Name:        p.Name,
		Brand:       p.Brand,
		ProductType: p.ProductType,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Specs:       specs,
		Description: p.Description,
	}
}

func ProductsToDTOs(products []*entity.Product) []ProductDTO {
	dtos := make([]ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = ProductToDTO(p)
	}
	return dtos
}
