package mapper

import (
	"encoding/json"

	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/model"

	"gorm.io/datatypes"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}
	items, _ := json.Marshal(o.Items)
	return &model.Order{
		OrderId:         o.OrderId,
		UserId:          o.UserId,
		Items:           datatypes.JSON(items),
		Total:           o.Total,
		CustomerName:    o.CustomerInfo.Name,
		CustomerEmail:   o.CustomerInfo.Email,
		CustomerPhone:   o.CustomerInfo.Phone,
		ShippingAddress: o.ShippingAddress.Address,
		ShippingCity:    o.ShippingAddress.City,
		ShippingZip:     o.ShippingAddress.ZipCode,
		Status:          string(o.Status),
		PlacedAt:        o.PlacedAt,
	}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}
	var items []entity.CartLineItem
	_ = json.Unmarshal(o.Items, &items)
	return &entity.Order{
		OrderId: o.OrderId,
		UserId:  o.UserId,
		Items:   items,
		Total:   o.Total,
		CustomerInfo: entity.CustomerInfo{
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
			Phone: o.CustomerPhone,
		},
		ShippingAddress: entity.ShippingAddress{
			Address: o.ShippingAddress,
			City:    o.ShippingCity,
			ZipCode: o.ShippingZip,
		},
		Status:   entity.OrderStatus(o.Status),
		PlacedAt: o.PlacedAt,
	}
}

func (m *OrderMapper) ToEntities(orders []*model.Order) []*entity.Order {
	out := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, m.ToEntity(o))
	}
	return out
}
