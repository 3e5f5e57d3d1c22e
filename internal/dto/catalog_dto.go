package dto

import "nextel-storefront-be/internal/entity"

type ProductListResponse struct {
	Products []entity.Product `json:"products"`
	Count    int              `json:"count"`
}

type CategoryListResponse struct {
	Categories []entity.Category `json:"categories"`
	Count      int               `json:"count"`
}

type OfferListResponse struct {
	Offers []entity.Offer `json:"offers"`
	Count  int            `json:"count"`
}
