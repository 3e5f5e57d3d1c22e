package entity

import "math"

// CartLineItem is one entry in a cart, keyed by product id. UnitPrice is the
// price snapshotted at add time; it is never re-read from the catalog.
type CartLineItem struct {
	ProductId string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image,omitempty"`
	Category  string  `json:"category,omitempty"`
	Quantity  int     `json:"quantity"`
}

// CartSnapshot is a derived read of cart state. It is recomputed on every
// access, never stored, so items/total/count cannot drift apart.
type CartSnapshot struct {
	Items []CartLineItem `json:"items"`
	Total float64        `json:"total"`
	Count int            `json:"count"`
}

func BuildSnapshot(items []CartLineItem) CartSnapshot {
	total := 0.0
	count := 0
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
		count += item.Quantity
	}
	return CartSnapshot{
		Items: items,
		Total: RoundCents(total),
		Count: count,
	}
}

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
