package service

import (
	"context"
	"testing"
	"time"

	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogProductLookup(t *testing.T) {
	gateway := &fakeGateway{products: []entity.Product{speedBoost, proPlan}}
	svc := NewCatalogService(gateway, memory.NewOrderRepository(), nopLogger{})
	ctx := context.Background()

	product, err := svc.Product(ctx, "prod-pro")
	require.NoError(t, err)
	assert.Equal(t, "Pro Plan", product.Name)

	_, err = svc.Product(ctx, "prod-missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogOrdersMergeLocalArchiveOverUpstream(t *testing.T) {
	gateway := &ordersGateway{
		fakeGateway: fakeGateway{},
		orders: []map[string]interface{}{
			{"Order_Id": "UP-1", "Order_Total": "12.50", "Order_Date": "2026-08-01T10:00:00Z"},
			{"Order_Id": "ORD-42", "Order_Total": 10.0},
		},
	}
	archive := memory.NewOrderRepository()
	require.NoError(t, archive.Save(context.Background(), &entity.Order{
		OrderId:  "ORD-42",
		UserId:   "u1",
		Items:    []entity.CartLineItem{{ProductId: speedBoost.Id, Name: speedBoost.Name, UnitPrice: 19.99, Quantity: 1}},
		Total:    19.99,
		Status:   entity.OrderStatusConfirmed,
		PlacedAt: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
	}))

	svc := NewCatalogService(gateway, archive, nopLogger{})
	orders, err := svc.Orders(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Newest first; the archived copy of ORD-42 wins because it has items.
	assert.Equal(t, "ORD-42", orders[0].OrderId)
	assert.Len(t, orders[0].Items, 1)
	assert.Equal(t, 19.99, orders[0].Total)
	assert.Equal(t, "UP-1", orders[1].OrderId)
	assert.Equal(t, 12.5, orders[1].Total)
}

func TestCatalogOrdersServeArchiveWhenUpstreamDown(t *testing.T) {
	gateway := &ordersGateway{fakeGateway: fakeGateway{}, err: assert.AnError}
	archive := memory.NewOrderRepository()
	require.NoError(t, archive.Save(context.Background(), &entity.Order{
		OrderId: "ORD-7",
		UserId:  "u1",
		Total:   5,
		Status:  entity.OrderStatusConfirmed,
	}))

	svc := NewCatalogService(gateway, archive, nopLogger{})
	orders, err := svc.Orders(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-7", orders[0].OrderId)
}

func TestCatalogSearchDegradesToEmpty(t *testing.T) {
	svc := NewCatalogService(&searchFailGateway{}, memory.NewOrderRepository(), nopLogger{})

	res, err := svc.Search(context.Background(), "boost")
	require.NoError(t, err)
	assert.Empty(t, res.Products)
}

// ordersGateway overrides order history on top of the fake.
type ordersGateway struct {
	fakeGateway
	orders []map[string]interface{}
	err    error
}

func (g *ordersGateway) GetUserOrders(context.Context, string) ([]map[string]interface{}, error) {
	return g.orders, g.err
}

type searchFailGateway struct {
	fakeGateway
}

func (searchFailGateway) Search(context.Context, string) ([]entity.Product, error) {
	return nil, assert.AnError
}
