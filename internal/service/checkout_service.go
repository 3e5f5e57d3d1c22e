package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"nextel-storefront-be/internal/constant"
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/pkg/logger"
	"nextel-storefront-be/internal/repository/contract"
	"nextel-storefront-be/internal/repository/memory"
	"nextel-storefront-be/pkg/analytics"
	"nextel-storefront-be/pkg/remote"
)

// taxRate is applied on the review step only; the stored order total is the
// item subtotal, matching what the upstream order API expects.
const taxRate = 0.08

var checkoutStepNames = map[int]string{
	entity.CheckoutStepShipping: "shipping",
	entity.CheckoutStepPayment:  "payment",
	entity.CheckoutStepReview:   "review",
}

type ICheckoutService interface {
	Begin(ctx context.Context, userId string) (*dto.CheckoutStateResponse, error)
	SetShipping(ctx context.Context, userId string, req *dto.ShippingRequest) (*dto.CheckoutStateResponse, error)
	SetPayment(ctx context.Context, userId string, req *dto.PaymentRequest) (*dto.CheckoutStateResponse, error)
	Back(ctx context.Context, userId string) (*dto.CheckoutStateResponse, error)
	Review(ctx context.Context, userId string) (*dto.ReviewResponse, error)
	Submit(ctx context.Context, userId string) (*dto.SubmitResponse, error)
}

type checkoutService struct {
	states  *memory.CheckoutRepository
	cart    ICartService
	gateway remote.Gateway
	orders  contract.OrderRepository
	sink    analytics.Sink
	log     logger.ILogger

	// maskFailures keeps the storefront's optimistic submission behavior:
	// an upstream failure still confirms the order with a synthesized id.
	maskFailures bool
}

func NewCheckoutService(
	states *memory.CheckoutRepository,
	cart ICartService,
	gateway remote.Gateway,
	orders contract.OrderRepository,
	sink analytics.Sink,
	log logger.ILogger,
	maskFailures bool,
) ICheckoutService {
	return &checkoutService{
		states:       states,
		cart:         cart,
		gateway:      gateway,
		orders:       orders,
		sink:         sink,
		log:          log,
		maskFailures: maskFailures,
	}
}

func (cs *checkoutService) Begin(ctx context.Context, userId string) (*dto.CheckoutStateResponse, error) {
	snapshot, err := cs.cart.Snapshot(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	state := &entity.CheckoutState{
		UserId: userId,
		Step:   entity.CheckoutStepShipping,
	}
	cs.states.Save(state)

	cs.sink.Emit(constant.EventBeginCheckout, map[string]string{
		"cart_total_items": strconv.Itoa(snapshot.Count),
		"cart_total_value": formatPrice(snapshot.Total),
	})
	return stepResponse(state), nil
}

// SetShipping stores the contact and address details and advances to the
// payment step.
func (cs *checkoutService) SetShipping(ctx context.Context, userId string, req *dto.ShippingRequest) (*dto.CheckoutStateResponse, error) {
	state, found := cs.states.Get(userId)
	if !found || state.Step != entity.CheckoutStepShipping {
		return nil, ErrInvalidStep
	}

	state.Customer = entity.CustomerInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	state.Shipping = entity.ShippingAddress{
		Address: req.Address,
		City:    req.City,
		ZipCode: req.ZipCode,
	}
	state.Step = entity.CheckoutStepPayment
	cs.states.Save(state)

	cs.emitStep(state.Step)
	return stepResponse(state), nil
}

// SetPayment stores card details for review rendering and advances to the
// review step. Nothing is charged.
func (cs *checkoutService) SetPayment(ctx context.Context, userId string, req *dto.PaymentRequest) (*dto.CheckoutStateResponse, error) {
	state, found := cs.states.Get(userId)
	if !found || state.Step != entity.CheckoutStepPayment {
		return nil, ErrInvalidStep
	}

	state.Payment = entity.PaymentDetails{
		CardNumber: req.CardNumber,
		CardExpiry: req.CardExpiry,
		CardCvc:    req.CardCvc,
	}
	state.Step = entity.CheckoutStepReview
	cs.states.Save(state)

	cs.emitStep(state.Step)
	return stepResponse(state), nil
}

// Back moves one step towards shipping. Entered data is kept.
func (cs *checkoutService) Back(ctx context.Context, userId string) (*dto.CheckoutStateResponse, error) {
	state, found := cs.states.Get(userId)
	if !found {
		return nil, ErrInvalidStep
	}
	if state.Step > entity.CheckoutStepShipping {
		state.Step--
		cs.states.Save(state)
	}
	return stepResponse(state), nil
}

func (cs *checkoutService) Review(ctx context.Context, userId string) (*dto.ReviewResponse, error) {
	state, found := cs.states.Get(userId)
	if !found || state.Step != entity.CheckoutStepReview {
		return nil, ErrInvalidStep
	}

	snapshot, err := cs.cart.Snapshot(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	tax := entity.RoundCents(snapshot.Total * taxRate)
	return &dto.ReviewResponse{
		Items:      snapshot.Items,
		Subtotal:   snapshot.Total,
		Tax:        tax,
		GrandTotal: entity.RoundCents(snapshot.Total + tax),
		Customer:   state.Customer,
		Shipping:   state.Shipping,
		CardLast4:  state.Payment.CardLast4(),
	}, nil
}

func (cs *checkoutService) Submit(ctx context.Context, userId string) (*dto.SubmitResponse, error) {
	state, found := cs.states.Get(userId)
	if !found || state.Step != entity.CheckoutStepReview {
		return nil, ErrInvalidStep
	}

	snapshot, err := cs.cart.Snapshot(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &entity.Order{
		UserId:          userId,
		Items:           snapshot.Items,
		Total:           snapshot.Total,
		CustomerInfo:    state.Customer,
		ShippingAddress: state.Shipping,
		Status:          entity.OrderStatusConfirmed,
		PlacedAt:        time.Now().UTC(),
	}

	upstreamId, err := cs.gateway.CreateOrder(ctx, order)
	switch {
	case err == nil:
		order.OrderId = upstreamId
	case cs.maskFailures:
		cs.log.Warn("checkout", "order submission failed upstream, confirming locally", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	default:
		if errors.Is(err, remote.ErrUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
		}
		return nil, err
	}
	if order.OrderId == "" {
		order.OrderId = synthesizeOrderId()
	}

	if err := cs.orders.Save(ctx, order); err != nil {
		cs.log.Warn("checkout", "failed to archive order locally", map[string]interface{}{
			"order_id": order.OrderId,
			"error":    err.Error(),
		})
	}

	// The cart and checkout state are gone after submit regardless of how
	// the upstream call went.
	_ = cs.cart.Clear(ctx, userId)
	cs.states.Delete(userId)

	cs.sink.Emit(constant.EventPurchase, map[string]string{
		"order_id":    order.OrderId,
		"order_total": formatPrice(order.Total),
		"item_count":  strconv.Itoa(snapshot.Count),
	})

	return &dto.SubmitResponse{
		OrderId: order.OrderId,
		Status:  string(order.Status),
		Total:   order.Total,
	}, nil
}

func (cs *checkoutService) emitStep(step int) {
	cs.sink.Emit(constant.EventCheckoutStep, map[string]string{
		"step":      strconv.Itoa(step),
		"step_name": checkoutStepNames[step],
	})
}

func stepResponse(state *entity.CheckoutState) *dto.CheckoutStateResponse {
	return &dto.CheckoutStateResponse{
		Step:     state.Step,
		StepName: checkoutStepNames[state.Step],
	}
}

// synthesizeOrderId mints the fallback order id used when the upstream did
// not assign one.
func synthesizeOrderId() string {
	return fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
}
