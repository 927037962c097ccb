package response

import (
	"time"

	"catalog-api/internal/data/entity"
)

type ProductResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Price     float64           `json:"price"`
	Photo     *string           `json:"photo,omitempty"`
	Category  *CategoryResponse `json:"category,omitempty"`
	Brand     *BrandResponse    `json:"brand,omitempty"`
	IsActive  bool              `json:"isActive"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	resp := ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Photo:     product.Photo,
		IsActive:  product.IsActive,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}

	if product.Category != nil {
		category := CategoryToResponse(product.Category)
		resp.Category = &category
	}
	if product.Brand != nil {
		brand := BrandToResponse(product.Brand)
		resp.Brand = &brand
	}

	return resp
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, ProductToResponse(product))
	}
	return items
}
