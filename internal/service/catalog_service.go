package service

import (
	"context"
	"sort"
	"time"

	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/pkg/logger"
	"nextel-storefront-be/internal/repository/contract"
	"nextel-storefront-be/pkg/remote"
)

type ICatalogService interface {
	AppData(ctx context.Context) (map[string]interface{}, error)
	Products(ctx context.Context) (*dto.ProductListResponse, error)
	Product(ctx context.Context, id string) (*entity.Product, error)
	Categories(ctx context.Context) (*dto.CategoryListResponse, error)
	Search(ctx context.Context, term string) (*dto.ProductListResponse, error)
	Offers(ctx context.Context, userId string) (*dto.OfferListResponse, error)
	Orders(ctx context.Context, userId string) ([]*dto.OrderResponse, error)
}

type catalogService struct {
	gateway remote.Gateway
	orders  contract.OrderRepository
	log     logger.ILogger
}

func NewCatalogService(gateway remote.Gateway, orders contract.OrderRepository, log logger.ILogger) ICatalogService {
	return &catalogService{
		gateway: gateway,
		orders:  orders,
		log:     log,
	}
}

func (cs *catalogService) AppData(ctx context.Context) (map[string]interface{}, error) {
	return cs.gateway.GetAppData(ctx)
}

func (cs *catalogService) Products(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := cs.gateway.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Products: products, Count: len(products)}, nil
}

// Product fetches the list and picks the requested id out of it; the upstream
// has no single-product endpoint.
func (cs *catalogService) Product(ctx context.Context, id string) (*entity.Product, error) {
	products, err := cs.gateway.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Id == id {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

func (cs *catalogService) Categories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := cs.gateway.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryListResponse{Categories: categories, Count: len(categories)}, nil
}

// Search degrades to an empty result set when the upstream is unreachable; a
// broken search box should not error out the page.
func (cs *catalogService) Search(ctx context.Context, term string) (*dto.ProductListResponse, error) {
	if term == "" {
		return &dto.ProductListResponse{Products: []entity.Product{}}, nil
	}

	products, err := cs.gateway.Search(ctx, term)
	if err != nil {
		cs.log.Warn("catalog", "search degraded to empty results", map[string]interface{}{
			"term":  term,
			"error": err.Error(),
		})
		return &dto.ProductListResponse{Products: []entity.Product{}}, nil
	}
	return &dto.ProductListResponse{Products: products, Count: len(products)}, nil
}

func (cs *catalogService) Offers(ctx context.Context, userId string) (*dto.OfferListResponse, error) {
	offers, err := cs.gateway.GetUserOffers(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &dto.OfferListResponse{Offers: offers, Count: len(offers)}, nil
}

// Orders merges the upstream order history with the local archive. Locally
// archived orders win on id collision because they carry line items.
func (cs *catalogService) Orders(ctx context.Context, userId string) ([]*dto.OrderResponse, error) {
	merged := make(map[string]*dto.OrderResponse)

	raw, err := cs.gateway.GetUserOrders(ctx, userId)
	if err != nil {
		cs.log.Warn("catalog", "upstream order history unavailable, serving local archive", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}
	for _, m := range raw {
		order := remote.NormalizeOrder(m)
		if order.OrderId == "" {
			continue
		}
		merged[order.OrderId] = toOrderResponse(&order)
	}

	local, err := cs.orders.FindByUser(ctx, userId)
	if err != nil {
		cs.log.Warn("catalog", "local order archive read failed", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}
	for _, order := range local {
		merged[order.OrderId] = toOrderResponse(order)
	}

	result := make([]*dto.OrderResponse, 0, len(merged))
	for _, order := range merged {
		result = append(result, order)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PlacedAt > result[j].PlacedAt
	})
	return result, nil
}

func toOrderResponse(order *entity.Order) *dto.OrderResponse {
	placedAt := ""
	if !order.PlacedAt.IsZero() {
		placedAt = order.PlacedAt.UTC().Format(time.RFC3339)
	}
	return &dto.OrderResponse{
		OrderId:  order.OrderId,
		Items:    order.Items,
		Total:    order.Total,
		Status:   string(order.Status),
		PlacedAt: placedAt,
		Shipping: order.ShippingAddress,
	}
}
