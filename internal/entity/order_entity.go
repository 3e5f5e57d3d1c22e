package entity

import "time"

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
)

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

// PaymentDetails is carried through the checkout flow for review rendering
// only. The storefront never contacts a payment gateway; nothing here is
// charged.
type PaymentDetails struct {
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCvc    string `json:"-"`
}

// CardLast4 returns the trailing digits shown on the review step.
func (p PaymentDetails) CardLast4() string {
	if len(p.CardNumber) < 4 {
		return "****"
	}
	return p.CardNumber[len(p.CardNumber)-4:]
}

type Order struct {
	OrderId         string          `json:"order_id"`
	UserId          string          `json:"user_id"`
	Items           []CartLineItem  `json:"items"`
	Total           float64         `json:"total"`
	CustomerInfo    CustomerInfo    `json:"customer_info"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Status          OrderStatus     `json:"status"`
	PlacedAt        time.Time       `json:"placed_at"`
}

// Checkout step constants. Steps only move one at a time; there is no
// skipping.
const (
	CheckoutStepShipping = 1
	CheckoutStepPayment  = 2
	CheckoutStepReview   = 3
)

// CheckoutState gates checkout progression for one user. Discarded after a
// successful submission or abandonment (TTL eviction).
type CheckoutState struct {
	UserId   string
	Step     int
	Customer CustomerInfo
	Shipping ShippingAddress
	Payment  PaymentDetails
}
