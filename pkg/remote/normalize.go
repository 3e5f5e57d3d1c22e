package remote

import (
	"strconv"
	"strings"
	"time"

	"nextel-storefront-be/internal/entity"
)

// The upstream functions API is loose about field naming: the same logical
// field arrives under different keys depending on the endpoint (and sometimes
// the deploy). All of that tolerance lives here, in one place. Nothing past
// this file ever sees an upstream key.

var (
	productIdKeys    = []string{"Product_Id", "product_id", "id", "ID"}
	productNameKeys  = []string{"Product_Name", "product_name", "name"}
	productPriceKeys = []string{"Product_Price", "product_price", "price"}
	categoryIdKeys   = []string{"Category_Id", "category_id"}
	categoryNameKeys = []string{"Category_Name", "category_name", "category"}
	productImgKeys   = []string{"Product_Thumbnail_Image", "product_image", "image"}
	productLabelKeys = []string{"Product_Label", "label"}
	productDescKeys  = []string{"Product_Description", "description"}

	userIdKeys    = []string{"User_Id", "user_id", "id"}
	userNameKeys  = []string{"User_Name", "user_name", "name"}
	userEmailKeys = []string{"User_Email", "user_email", "email"}
	userPhoneKeys = []string{"User_Phone", "user_phone", "phone"}

	offerIdKeys    = []string{"Offer_Id", "offer_id", "id"}
	offerTitleKeys = []string{"Offer_Title", "offer_title", "title", "name"}
	offerDescKeys  = []string{"Offer_Description", "offer_description", "description"}
	offerDiscKeys  = []string{"Offer_Discount", "offer_discount", "discount"}

	orderIdKeys     = []string{"Order_Id", "order_id", "orderId", "id"}
	orderTotalKeys  = []string{"Order_Total", "order_total", "total"}
	orderStatusKeys = []string{"Order_Status", "order_status", "status"}
	orderDateKeys   = []string{"Order_Date", "order_date", "placed_at", "createdAt", "created_at"}
)

// NormalizeProduct resolves a raw upstream (or client-supplied) product map
// into the canonical Product shape.
func NormalizeProduct(raw map[string]interface{}) entity.Product {
	price, _ := ParsePrice(firstValue(raw, productPriceKeys...))
	return entity.Product{
		Id:           firstString(raw, productIdKeys...),
		Name:         firstString(raw, productNameKeys...),
		Price:        price,
		CategoryId:   firstString(raw, categoryIdKeys...),
		CategoryName: firstString(raw, categoryNameKeys...),
		Image:        firstString(raw, productImgKeys...),
		Label:        firstString(raw, productLabelKeys...),
		Description:  firstString(raw, productDescKeys...),
	}
}

// NormalizeUser resolves a raw upstream user map into the canonical User
// shape.
func NormalizeUser(raw map[string]interface{}) entity.User {
	return entity.User{
		Id:    firstString(raw, userIdKeys...),
		Name:  firstString(raw, userNameKeys...),
		Email: firstString(raw, userEmailKeys...),
		Phone: firstString(raw, userPhoneKeys...),
	}
}

func NormalizeCategory(raw map[string]interface{}) entity.Category {
	return entity.Category{
		Id:    firstString(raw, categoryIdKeys...),
		Name:  firstString(raw, categoryNameKeys...),
		Image: firstString(raw, productImgKeys...),
	}
}

// NormalizeOrder resolves a raw upstream order record. Only the summary
// fields are recoverable; upstream records do not carry line items.
func NormalizeOrder(raw map[string]interface{}) entity.Order {
	total, _ := ParsePrice(firstValue(raw, orderTotalKeys...))
	status := firstString(raw, orderStatusKeys...)
	if status == "" {
		status = string(entity.OrderStatusConfirmed)
	}
	placedAt, _ := time.Parse(time.RFC3339, firstString(raw, orderDateKeys...))
	return entity.Order{
		OrderId:  firstString(raw, orderIdKeys...),
		Total:    total,
		Status:   entity.OrderStatus(status),
		PlacedAt: placedAt,
	}
}

func NormalizeOffer(raw map[string]interface{}) entity.Offer {
	return entity.Offer{
		Id:          firstString(raw, offerIdKeys...),
		Title:       firstString(raw, offerTitleKeys...),
		Description: firstString(raw, offerDescKeys...),
		Discount:    firstString(raw, offerDiscKeys...),
	}
}

// ParsePrice accepts the price however the upstream sends it (number, or a
// string like "19.99" or "$19.99") and reports whether it resolved to a
// non-negative value. A negative or unparsable price yields zero and false;
// a negative number is never returned.
func ParsePrice(v interface{}) (float64, bool) {
	switch p := v.(type) {
	case float64:
		if p < 0 {
			return 0, false
		}
		return p, true
	case int:
		if p < 0 {
			return 0, false
		}
		return float64(p), true
	case string:
		s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(p), "$"))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// unwrapList handles the upstream response envelopes: {"value": [...]},
// {"products": [...]}, or a bare JSON array.
func unwrapList(data interface{}, keys ...string) []map[string]interface{} {
	if obj, ok := data.(map[string]interface{}); ok {
		for _, key := range keys {
			if inner, ok := obj[key]; ok {
				return toMapSlice(inner)
			}
		}
		return nil
	}
	return toMapSlice(data)
}

func toMapSlice(data interface{}) []map[string]interface{} {
	list, ok := data.([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		}
	}
	return ""
}

func firstValue(m map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}
