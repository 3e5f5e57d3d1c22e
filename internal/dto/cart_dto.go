package dto

import "nextel-storefront-be/internal/entity"

// AddItemRequest carries the product as the client saw it, in whatever field
// naming it came with; the controller normalizes it before the cart service
// is involved.
type AddItemRequest struct {
	Product  map[string]interface{} `json:"product" validate:"required"`
	Quantity int                    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	ProductId string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type RemoveItemRequest struct {
	ProductId string `json:"product_id" validate:"required"`
}

type CartResponse struct {
	Items []entity.CartLineItem `json:"items"`
	Total float64               `json:"total"`
	Count int                   `json:"count"`
}

func NewCartResponse(snapshot entity.CartSnapshot) *CartResponse {
	return &CartResponse{
		Items: snapshot.Items,
		Total: snapshot.Total,
		Count: snapshot.Count,
	}
}
