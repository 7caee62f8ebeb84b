package dto

import "productos/internal/models"

// ProductRequest is the payload for creating or fully replacing a product.
// Stock is a pointer so that an explicit 0 is accepted while a missing
// field still fails the required rule.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gte=0.01"`
	Stock       *int    `json:"stock" validate:"required,gte=0"`
	Category    string  `json:"category" validate:"required,category"`
}

// StockUpdateRequest is the payload for the stock-only update.
type StockUpdateRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

// ProductResponse is the external shape of a product, including its id.
type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Stock       int             `json:"stock"`
	Category    models.Category `json:"category"`
}

// ToModel converts the request into an internal entity. The id is left
// zero; storage assigns it on create and the caller sets it on replace.
func (r *ProductRequest) ToModel() *models.Product {
	return &models.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       *r.Stock,
		Category:    models.Category(r.Category),
	}
}

// NewProductResponse converts an internal entity into the response shape.
func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
	}
}

// NewProductResponseList converts a slice of entities, always returning a
// non-nil slice so empty listings serialize as [] rather than null.
func NewProductResponseList(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, NewProductResponse(&products[i]))
	}
	return responses
}
