// Package dto holds the wire representations of a product.
package dto

// ProductRequest is the body of a create request.
type ProductRequest struct {
	Name string `json:"name"`
}

// UpdateProductRequest is the body of an update request. The id comes from the path.
type UpdateProductRequest struct {
	Name string `json:"name"`
}

type ProductResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
