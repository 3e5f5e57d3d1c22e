package service

import (
	"context"
	"strings"
	"testing"

	"nextel-storefront-be/internal/constant"
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/repository/memory"
	"nextel-storefront-be/pkg/analytics"
	"nextel-storefront-be/pkg/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway implements remote.Gateway for tests. Only the behaviors a test
// configures matter; everything else returns empty results.
type fakeGateway struct {
	products []entity.Product

	createOrderId    string
	createOrderErr   error
	createOrderCalls int
	lastOrder        *entity.Order

	validateUser *entity.User
	validateErr  error
	registerUser *entity.User
	registerErr  error
}

func (g *fakeGateway) GetAppData(context.Context) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

func (g *fakeGateway) GetProducts(context.Context) ([]entity.Product, error) {
	return g.products, nil
}

func (g *fakeGateway) GetCategories(context.Context) ([]entity.Category, error) {
	return nil, nil
}

func (g *fakeGateway) Search(context.Context, string) ([]entity.Product, error) {
	return nil, nil
}

func (g *fakeGateway) GetUserOffers(context.Context, string) ([]entity.Offer, error) {
	return nil, nil
}

func (g *fakeGateway) GetUserOrders(context.Context, string) ([]map[string]interface{}, error) {
	return nil, nil
}

func (g *fakeGateway) CreateOrder(_ context.Context, order *entity.Order) (string, error) {
	g.createOrderCalls++
	g.lastOrder = order
	return g.createOrderId, g.createOrderErr
}

func (g *fakeGateway) ValidateUser(context.Context, string, string) (*entity.User, error) {
	return g.validateUser, g.validateErr
}

func (g *fakeGateway) RegisterUser(context.Context, string, string, string, string) (*entity.User, error) {
	return g.registerUser, g.registerErr
}

type checkoutFixture struct {
	svc     ICheckoutService
	cart    ICartService
	gateway *fakeGateway
	sink    *captureSink
}

func newCheckoutFixture(t *testing.T, maskFailures bool) *checkoutFixture {
	t.Helper()
	gateway := &fakeGateway{}
	sink := &captureSink{}
	cart := newTestCartService(memory.NewKeyedStore(), analytics.NopSink{})
	svc := NewCheckoutService(
		memory.NewCheckoutRepository(),
		cart,
		gateway,
		memory.NewOrderRepository(),
		sink,
		nopLogger{},
		maskFailures,
	)
	return &checkoutFixture{svc: svc, cart: cart, gateway: gateway, sink: sink}
}

func (f *checkoutFixture) fillCart(t *testing.T, userId string) {
	t.Helper()
	_, err := f.cart.AddItem(context.Background(), userId, speedBoost, 2)
	require.NoError(t, err)
}

func (f *checkoutFixture) walkToReview(t *testing.T, userId string) {
	t.Helper()
	ctx := context.Background()

	_, err := f.svc.Begin(ctx, userId)
	require.NoError(t, err)

	_, err = f.svc.SetShipping(ctx, userId, &dto.ShippingRequest{
		Name:    "Dana Smith",
		Email:   "dana@example.com",
		Phone:   "555-0101",
		Address: "1 Main St",
		City:    "Springfield",
		ZipCode: "12345",
	})
	require.NoError(t, err)

	_, err = f.svc.SetPayment(ctx, userId, &dto.PaymentRequest{
		CardNumber: "4111111111111111",
		CardExpiry: "12/27",
		CardCvc:    "123",
	})
	require.NoError(t, err)
}

func TestCheckoutBeginRequiresItems(t *testing.T) {
	f := newCheckoutFixture(t, true)

	_, err := f.svc.Begin(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutStepsAreSequential(t *testing.T) {
	f := newCheckoutFixture(t, true)
	f.fillCart(t, "u1")
	ctx := context.Background()

	// Payment before shipping is rejected.
	_, err := f.svc.Begin(ctx, "u1")
	require.NoError(t, err)
	_, err = f.svc.SetPayment(ctx, "u1", &dto.PaymentRequest{CardNumber: "4111111111111111", CardExpiry: "12/27", CardCvc: "123"})
	assert.ErrorIs(t, err, ErrInvalidStep)

	// Submitting from the shipping step is rejected too.
	_, err = f.svc.Submit(ctx, "u1")
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestCheckoutBackKeepsEnteredData(t *testing.T) {
	f := newCheckoutFixture(t, true)
	f.fillCart(t, "u1")
	f.walkToReview(t, "u1")
	ctx := context.Background()

	res, err := f.svc.Back(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepPayment, res.Step)

	// Walking forward again reaches review without re-entering shipping.
	_, err = f.svc.SetPayment(ctx, "u1", &dto.PaymentRequest{CardNumber: "4111111111111111", CardExpiry: "12/27", CardCvc: "123"})
	require.NoError(t, err)

	review, err := f.svc.Review(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Dana Smith", review.Customer.Name)
	assert.Equal(t, "Springfield", review.Shipping.City)
}

func TestCheckoutReviewTotals(t *testing.T) {
	f := newCheckoutFixture(t, true)
	f.fillCart(t, "u1")
	f.walkToReview(t, "u1")

	review, err := f.svc.Review(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 39.98, review.Subtotal)
	assert.Equal(t, entity.RoundCents(39.98*0.08), review.Tax)
	assert.Equal(t, entity.RoundCents(39.98*1.08), review.GrandTotal)
	assert.Equal(t, "1111", review.CardLast4)
}

func TestCheckoutSubmitUsesUpstreamOrderId(t *testing.T) {
	f := newCheckoutFixture(t, true)
	f.gateway.createOrderId = "UP-778899"
	f.fillCart(t, "u1")
	f.walkToReview(t, "u1")
	ctx := context.Background()

	res, err := f.svc.Submit(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, "UP-778899", res.OrderId)
	assert.Equal(t, string(entity.OrderStatusConfirmed), res.Status)
	assert.Equal(t, 39.98, res.Total)
	assert.Equal(t, 1, f.gateway.createOrderCalls)

	// Cart and checkout state are gone.
	snapshot, err := f.cart.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
	_, err = f.svc.Review(ctx, "u1")
	assert.ErrorIs(t, err, ErrInvalidStep)

	purchases := f.sink.byName(constant.EventPurchase)
	require.Len(t, purchases, 1)
	assert.Equal(t, "UP-778899", purchases[0].Fields["order_id"])
}

func TestCheckoutSubmitSynthesizesIdWhenUpstreamAssignsNone(t *testing.T) {
	f := newCheckoutFixture(t, true)
	f.gateway.createOrderId = ""
	f.fillCart(t, "u1")
	f.walkToReview(t, "u1")

	res, err := f.svc.Submit(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.OrderId, "ORD-"), "got %q", res.OrderId)
}

func TestCheckoutSubmitMasksUpstreamFailure(t *testing.T) {
	f := newCheckoutFixture(t, true)
	f.gateway.createOrderErr = remote.ErrUnavailable
	f.fillCart(t, "u1")
	f.walkToReview(t, "u1")
	ctx := context.Background()

	res, err := f.svc.Submit(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.OrderId, "ORD-"))

	// Even a masked failure clears the cart.
	snapshot, err := f.cart.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
}

func TestCheckoutSubmitSurfacesFailureWhenUnmasked(t *testing.T) {
	f := newCheckoutFixture(t, false)
	f.gateway.createOrderErr = remote.ErrUnavailable
	f.fillCart(t, "u1")
	f.walkToReview(t, "u1")
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, "u1")
	require.ErrorIs(t, err, ErrRemoteUnavailable)

	// Cart and checkout state survive a surfaced failure so the user can
	// retry.
	snapshot, err := f.cart.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, snapshot.Items, 1)

	review, err := f.svc.Review(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 39.98, review.Subtotal)

	assert.Empty(t, f.sink.byName(constant.EventPurchase))
}
