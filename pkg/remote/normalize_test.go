package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProductFieldAliases(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
		want string
	}{
		{"legacy pascal keys", map[string]interface{}{"Product_Id": "p1"}, "p1"},
		{"snake keys", map[string]interface{}{"product_id": "p2"}, "p2"},
		{"short id", map[string]interface{}{"id": "p3"}, "p3"},
		{"upper id", map[string]interface{}{"ID": "p4"}, "p4"},
		{"numeric id", map[string]interface{}{"id": float64(42)}, "42"},
		{"first alias wins", map[string]interface{}{"Product_Id": "p5", "id": "other"}, "p5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProduct(tt.raw).Id)
		})
	}
}

func TestNormalizeProductFull(t *testing.T) {
	product := NormalizeProduct(map[string]interface{}{
		"Product_Id":              "p1",
		"Product_Name":            "5G Ultra Speed Boost",
		"Product_Price":           "$19.99",
		"Category_Name":           "Upgrades",
		"Product_Thumbnail_Image": "/img/boost.png",
		"Product_Label":           "HOT",
	})

	assert.Equal(t, "p1", product.Id)
	assert.Equal(t, "5G Ultra Speed Boost", product.Name)
	assert.Equal(t, 19.99, product.Price)
	assert.Equal(t, "Upgrades", product.CategoryName)
	assert.Equal(t, "/img/boost.png", product.Image)
	assert.Equal(t, "HOT", product.Label)
}

func TestNormalizeProductNeverYieldsNegativePrice(t *testing.T) {
	for name, raw := range map[string]map[string]interface{}{
		"negative number": {"id": "p1", "price": -5.0},
		"negative string": {"id": "p1", "Product_Price": "-5.00"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0.0, NormalizeProduct(raw).Price)
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name   string
		in     interface{}
		want   float64
		wantOk bool
	}{
		{"number", 19.99, 19.99, true},
		{"zero", 0.0, 0, true},
		{"plain string", "59", 59, true},
		{"decimal string", "19.99", 19.99, true},
		{"dollar string", "$19.99", 19.99, true},
		{"padded dollar string", " $ 19.99", 19.99, true},
		{"spaced dollar", " $19.99 ", 19.99, true},
		{"negative", -1.0, 0, false},
		{"negative int", -5, 0, false},
		{"negative string", "-5.00", 0, false},
		{"garbage string", "free", 0, false},
		{"empty string", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.in)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnwrapListEnvelopes(t *testing.T) {
	record := map[string]interface{}{"id": "p1"}

	tests := []struct {
		name string
		in   interface{}
		want int
	}{
		{"value envelope", map[string]interface{}{"value": []interface{}{record}}, 1},
		{"products envelope", map[string]interface{}{"products": []interface{}{record, record}}, 2},
		{"bare array", []interface{}{record}, 1},
		{"unknown envelope", map[string]interface{}{"data": []interface{}{record}}, 0},
		{"scalar", "nope", 0},
		{"array with junk entries", []interface{}{record, "junk", 7}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unwrapList(tt.in, "value", "products")
			assert.Len(t, got, tt.want)
		})
	}
}

func TestNormalizeOrderDefaults(t *testing.T) {
	order := NormalizeOrder(map[string]interface{}{
		"orderId":    "UP-1",
		"total":      "12.50",
		"order_date": "2026-08-01T10:00:00Z",
	})
	assert.Equal(t, "UP-1", order.OrderId)
	assert.Equal(t, 12.5, order.Total)
	assert.Equal(t, "confirmed", string(order.Status))
	assert.Equal(t, 2026, order.PlacedAt.Year())

	// A record with no parsable date still normalizes.
	bare := NormalizeOrder(map[string]interface{}{"id": "UP-2"})
	assert.Equal(t, "UP-2", bare.OrderId)
	assert.True(t, bare.PlacedAt.IsZero())
}

func TestNormalizeUserAliases(t *testing.T) {
	user := NormalizeUser(map[string]interface{}{
		"User_Id":    "u1",
		"user_name":  "Dana",
		"email":      "dana@example.com",
		"User_Phone": "555-0101",
	})
	assert.Equal(t, "u1", user.Id)
	assert.Equal(t, "Dana", user.Name)
	assert.Equal(t, "dana@example.com", user.Email)
	assert.Equal(t, "555-0101", user.Phone)
}
