package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"nextel-storefront-be/internal/entity"
)

// ErrUnavailable covers every transport-level failure talking to the
// upstream API: connection refused, timeout, non-2xx, unparsable body.
// Callers decide whether to mask it (checkout), degrade (search) or fall
// back (auth).
var ErrUnavailable = errors.New("remote api unavailable")

// Endpoint paths on the upstream functions API.
const (
	pathAppData    = "/getAppData"
	pathProducts   = "/getProducts"
	pathCategories = "/getCategories"
	pathCreateOrd  = "/createOrder"
	pathUserOrders = "/getUserOrders"
	pathUserOffers = "/getUserOffers"
	pathValidate   = "/validateUser"
	pathRegister   = "/insertUser"
	pathSearch     = "/getSearchResults"
)

// Gateway is the storefront's view of the upstream API. Services depend on
// this interface; tests substitute fakes.
type Gateway interface {
	GetAppData(ctx context.Context) (map[string]interface{}, error)
	GetProducts(ctx context.Context) ([]entity.Product, error)
	GetCategories(ctx context.Context) ([]entity.Category, error)
	Search(ctx context.Context, term string) ([]entity.Product, error)
	GetUserOffers(ctx context.Context, userId string) ([]entity.Offer, error)
	GetUserOrders(ctx context.Context, userId string) ([]map[string]interface{}, error)
	CreateOrder(ctx context.Context, order *entity.Order) (string, error)
	ValidateUser(ctx context.Context, email, password string) (*entity.User, error)
	RegisterUser(ctx context.Context, name, email, phone, password string) (*entity.User, error)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (interface{}, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (interface{}, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (interface{}, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}

	var data interface{}
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, nil
}

func (c *Client) GetAppData(ctx context.Context) (map[string]interface{}, error) {
	data, err := c.get(ctx, pathAppData, nil)
	if err != nil {
		return nil, err
	}
	if obj, ok := data.(map[string]interface{}); ok {
		if inner, ok := obj["value"].(map[string]interface{}); ok {
			return inner, nil
		}
		return obj, nil
	}
	return nil, fmt.Errorf("%w: unexpected app data shape", ErrUnavailable)
}

func (c *Client) GetProducts(ctx context.Context) ([]entity.Product, error) {
	data, err := c.get(ctx, pathProducts, nil)
	if err != nil {
		return nil, err
	}
	return normalizeProducts(unwrapList(data, "value", "products")), nil
}

func (c *Client) GetCategories(ctx context.Context) ([]entity.Category, error) {
	data, err := c.get(ctx, pathCategories, nil)
	if err != nil {
		return nil, err
	}
	raw := unwrapList(data, "value", "categories")
	categories := make([]entity.Category, 0, len(raw))
	for _, m := range raw {
		categories = append(categories, NormalizeCategory(m))
	}
	return categories, nil
}

func (c *Client) Search(ctx context.Context, term string) ([]entity.Product, error) {
	data, err := c.get(ctx, pathSearch, url.Values{"term": {term}})
	if err != nil {
		return nil, err
	}
	return normalizeProducts(unwrapList(data, "value", "products")), nil
}

func (c *Client) GetUserOffers(ctx context.Context, userId string) ([]entity.Offer, error) {
	data, err := c.get(ctx, pathUserOffers, url.Values{"userid": {userId}})
	if err != nil {
		return nil, err
	}
	raw := unwrapList(data, "value", "offers")
	offers := make([]entity.Offer, 0, len(raw))
	for _, m := range raw {
		offers = append(offers, NormalizeOffer(m))
	}
	return offers, nil
}

// GetUserOrders returns the raw upstream order records; the catalog service
// merges them with the local archive.
func (c *Client) GetUserOrders(ctx context.Context, userId string) ([]map[string]interface{}, error) {
	data, err := c.get(ctx, pathUserOrders, url.Values{"userid": {userId}})
	if err != nil {
		return nil, err
	}
	return unwrapList(data, "value", "orders"), nil
}

// CreateOrder submits the order upstream and returns the upstream order id,
// which may be empty when the upstream acknowledges without assigning one.
func (c *Client) CreateOrder(ctx context.Context, order *entity.Order) (string, error) {
	payload := map[string]interface{}{
		"userId": order.UserId,
		"items":  order.Items,
		"total":  order.Total,
		"shippingAddress": map[string]string{
			"address": order.ShippingAddress.Address,
			"city":    order.ShippingAddress.City,
			"zipCode": order.ShippingAddress.ZipCode,
		},
		"customerInfo": map[string]string{
			"name":  order.CustomerInfo.Name,
			"email": order.CustomerInfo.Email,
			"phone": order.CustomerInfo.Phone,
		},
	}

	data, err := c.post(ctx, pathCreateOrd, payload)
	if err != nil {
		return "", err
	}
	if obj, ok := data.(map[string]interface{}); ok {
		return firstString(obj, "orderId", "Order_Id", "order_id"), nil
	}
	return "", nil
}

// ValidateUser checks credentials upstream. A nil user with a nil error
// means the upstream reached a verdict and rejected the credentials.
func (c *Client) ValidateUser(ctx context.Context, email, password string) (*entity.User, error) {
	data, err := c.post(ctx, pathValidate, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	obj, ok := data.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected validate shape", ErrUnavailable)
	}

	if !truthy(obj["success"]) && !truthy(obj["valid"]) && obj["user"] == nil && obj["value"] == nil {
		return nil, nil
	}

	raw := extractUserMap(obj)
	user := NormalizeUser(raw)
	if user.Id == "" {
		user.Id = email
	}
	if user.Email == "" {
		user.Email = email
	}
	return &user, nil
}

// RegisterUser creates an account upstream. A nil user with a nil error
// means the upstream refused the registration.
func (c *Client) RegisterUser(ctx context.Context, name, email, phone, password string) (*entity.User, error) {
	data, err := c.post(ctx, pathRegister, map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
		"phone":    phone,
	})
	if err != nil {
		return nil, err
	}

	obj, ok := data.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected register shape", ErrUnavailable)
	}

	if !truthy(obj["success"]) && obj["user"] == nil && firstString(obj, userIdKeys...) == "" {
		return nil, nil
	}

	raw := extractUserMap(obj)
	user := NormalizeUser(raw)
	if user.Name == "" {
		user.Name = name
	}
	if user.Email == "" {
		user.Email = email
	}
	if user.Phone == "" {
		user.Phone = phone
	}
	return &user, nil
}

func normalizeProducts(raw []map[string]interface{}) []entity.Product {
	products := make([]entity.Product, 0, len(raw))
	for _, m := range raw {
		products = append(products, NormalizeProduct(m))
	}
	return products
}

// extractUserMap digs the user record out of whichever envelope the upstream
// used: {"value": [user]}, {"user": {...}}, or the user fields inline.
func extractUserMap(obj map[string]interface{}) map[string]interface{} {
	if list, ok := obj["value"].([]interface{}); ok && len(list) > 0 {
		if m, ok := list[0].(map[string]interface{}); ok {
			return m
		}
	}
	if m, ok := obj["user"].(map[string]interface{}); ok {
		return m
	}
	return obj
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "1"
	case float64:
		return t != 0
	default:
		return false
	}
}
