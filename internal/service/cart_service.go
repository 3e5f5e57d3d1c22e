package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"nextel-storefront-be/internal/constant"
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/pkg/logger"
	"nextel-storefront-be/internal/repository/contract"
	"nextel-storefront-be/pkg/analytics"
)

// cartKeyPrefix mirrors the storage key the web storefront used, one blob per
// user.
const cartKeyPrefix = "telecom_cart:"

type ICartService interface {
	Snapshot(ctx context.Context, userId string) (entity.CartSnapshot, error)
	AddItem(ctx context.Context, userId string, product entity.Product, quantityDelta int) (entity.CartSnapshot, error)
	RemoveItem(ctx context.Context, userId string, productId string) (entity.CartSnapshot, error)
	UpdateQuantity(ctx context.Context, userId string, productId string, quantity int) (entity.CartSnapshot, error)
	Clear(ctx context.Context, userId string) error
}

type cartService struct {
	store contract.KeyedStore
	sink  analytics.Sink
	log   logger.ILogger
}

func NewCartService(store contract.KeyedStore, sink analytics.Sink, log logger.ILogger) ICartService {
	return &cartService{
		store: store,
		sink:  sink,
		log:   log,
	}
}

func (cs *cartService) Snapshot(ctx context.Context, userId string) (entity.CartSnapshot, error) {
	return entity.BuildSnapshot(cs.load(ctx, userId)), nil
}

func (cs *cartService) AddItem(ctx context.Context, userId string, product entity.Product, quantityDelta int) (entity.CartSnapshot, error) {
	if product.Id == "" || product.Price < 0 {
		return entity.CartSnapshot{}, ErrInvalidProduct
	}
	if quantityDelta < 1 {
		quantityDelta = 1
	}

	items := cs.load(ctx, userId)

	merged := false
	for i := range items {
		if items[i].ProductId == product.Id {
			// Merge quantities; the unit price stays as snapshotted at the
			// first add.
			items[i].Quantity += quantityDelta
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, entity.CartLineItem{
			ProductId: product.Id,
			Name:      product.Name,
			UnitPrice: product.Price,
			Image:     product.Image,
			Category:  product.CategoryName,
			Quantity:  quantityDelta,
		})
	}

	cs.save(ctx, userId, items)

	snapshot := entity.BuildSnapshot(items)
	cs.sink.Emit(constant.EventCartAdd, map[string]string{
		"product_id":       product.Id,
		"product_name":     product.Name,
		"product_price":    formatPrice(product.Price),
		"quantity":         strconv.Itoa(quantityDelta),
		"cart_total_items": strconv.Itoa(snapshot.Count),
		"cart_total_value": formatPrice(snapshot.Total),
	})
	return snapshot, nil
}

func (cs *cartService) RemoveItem(ctx context.Context, userId string, productId string) (entity.CartSnapshot, error) {
	items := cs.load(ctx, userId)

	var removed *entity.CartLineItem
	kept := items[:0]
	for i := range items {
		if items[i].ProductId == productId {
			line := items[i]
			removed = &line
			continue
		}
		kept = append(kept, items[i])
	}

	if removed != nil {
		cs.save(ctx, userId, kept)
	}

	snapshot := entity.BuildSnapshot(kept)
	if removed != nil {
		cs.sink.Emit(constant.EventCartRemove, map[string]string{
			"product_id":       removed.ProductId,
			"product_name":     removed.Name,
			"cart_total_items": strconv.Itoa(snapshot.Count),
			"cart_total_value": formatPrice(snapshot.Total),
		})
	}
	return snapshot, nil
}

// UpdateQuantity sets the absolute quantity for a line. A quantity below one
// is a removal, matching the storefront's stepper behavior.
func (cs *cartService) UpdateQuantity(ctx context.Context, userId string, productId string, quantity int) (entity.CartSnapshot, error) {
	if quantity < 1 {
		return cs.RemoveItem(ctx, userId, productId)
	}

	items := cs.load(ctx, userId)

	var updated *entity.CartLineItem
	for i := range items {
		if items[i].ProductId == productId {
			items[i].Quantity = quantity
			updated = &items[i]
			break
		}
	}

	if updated != nil {
		cs.save(ctx, userId, items)
	}

	snapshot := entity.BuildSnapshot(items)
	if updated != nil {
		cs.sink.Emit(constant.EventCartUpdateQuantity, map[string]string{
			"product_id":       updated.ProductId,
			"product_name":     updated.Name,
			"quantity":         strconv.Itoa(quantity),
			"cart_total_items": strconv.Itoa(snapshot.Count),
			"cart_total_value": formatPrice(snapshot.Total),
		})
	}
	return snapshot, nil
}

func (cs *cartService) Clear(ctx context.Context, userId string) error {
	if err := cs.store.Delete(ctx, cartKey(userId)); err != nil {
		cs.log.Warn("cart", "failed to clear cart", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}
	return nil
}

// load reads the persisted cart. A missing key, a store error or an
// unparsable blob all yield an empty cart; there is no error path on reads.
func (cs *cartService) load(ctx context.Context, userId string) []entity.CartLineItem {
	data, found, err := cs.store.Load(ctx, cartKey(userId))
	if err != nil {
		cs.log.Warn("cart", "cart load failed, treating as empty", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return []entity.CartLineItem{}
	}
	if !found {
		return []entity.CartLineItem{}
	}

	var items []entity.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		cs.log.Warn("cart", "corrupt cart blob, treating as empty", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return []entity.CartLineItem{}
	}
	if items == nil {
		items = []entity.CartLineItem{}
	}
	return items
}

func (cs *cartService) save(ctx context.Context, userId string, items []entity.CartLineItem) {
	data, err := json.Marshal(items)
	if err != nil {
		cs.log.Error("cart", "failed to encode cart", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return
	}
	if err := cs.store.Save(ctx, cartKey(userId), data); err != nil {
		cs.log.Warn("cart", "failed to persist cart", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}
}

func cartKey(userId string) string {
	return cartKeyPrefix + userId
}

func formatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
