// Package mapper converts between product wire shapes and stored products.
package mapper

import (
	"github.com/vistula/firstapi/internal/product/dto"
	"github.com/vistula/firstapi/internal/product/store/db"
)

// ToEntity builds an unsaved product from a create request. The name is copied verbatim.
func ToEntity(req dto.ProductRequest) db.Product {
	return db.Product{Name: req.Name}
}

func ToResponse(p db.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:   p.ID,
		Name: p.Name,
	}
}

// ToResponses keeps the input order and never returns nil.
func ToResponses(products []db.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToResponse(p)
	}
	return responses
}
