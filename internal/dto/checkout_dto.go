package dto

import "nextel-storefront-be/internal/entity"

type ShippingRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
}

type PaymentRequest struct {
	CardNumber string `json:"card_number" validate:"required,min=12,max=19"`
	CardExpiry string `json:"card_expiry" validate:"required"`
	CardCvc    string `json:"card_cvc" validate:"required,min=3,max=4"`
}

type CheckoutStateResponse struct {
	Step     int    `json:"step"`
	StepName string `json:"step_name"`
}

type ReviewResponse struct {
	Items      []entity.CartLineItem  `json:"items"`
	Subtotal   float64                `json:"subtotal"`
	Tax        float64                `json:"tax"`
	GrandTotal float64                `json:"grand_total"`
	Customer   entity.CustomerInfo    `json:"customer"`
	Shipping   entity.ShippingAddress `json:"shipping"`
	CardLast4  string                 `json:"card_last4"`
}

type SubmitResponse struct {
	OrderId string  `json:"order_id"`
	Status  string  `json:"status"`
	Total   float64 `json:"total"`
}

type OrderResponse struct {
	OrderId  string                 `json:"order_id"`
	Items    []entity.CartLineItem  `json:"items"`
	Total    float64                `json:"total"`
	Status   string                 `json:"status"`
	PlacedAt string                 `json:"placed_at"`
	Shipping entity.ShippingAddress `json:"shipping"`
}
