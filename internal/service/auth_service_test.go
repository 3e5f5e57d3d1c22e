package service

import (
	"context"
	"testing"

	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/repository/memory"
	"nextel-storefront-be/pkg/analytics"
	"nextel-storefront-be/pkg/remote"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJwtSecret = "test-secret"

func newTestAuthService(gateway *fakeGateway, demoMode bool) IAuthService {
	return NewAuthService(gateway, memory.NewFallbackUserRepository(), analytics.NopSink{}, nopLogger{}, testJwtSecret, demoMode)
}

func TestAuthLoginUpstreamSuccess(t *testing.T) {
	gateway := &fakeGateway{
		validateUser: &entity.User{Id: "u-9", Name: "Dana", Email: "dana@example.com"},
	}
	svc := newTestAuthService(gateway, false)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "Dana@Example.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "u-9", res.User.Id)
	assert.NotEmpty(t, res.Token)

	// The token is a valid HS256 JWT carrying the user id.
	token, err := jwt.Parse(res.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testJwtSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "u-9", claims["user_id"])
}

func TestAuthLoginUpstreamRejection(t *testing.T) {
	svc := newTestAuthService(&fakeGateway{validateUser: nil}, false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "dana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthDemoModeFallbackRoundtrip(t *testing.T) {
	gateway := &fakeGateway{
		registerErr: remote.ErrUnavailable,
		validateErr: remote.ErrUnavailable,
	}
	svc := newTestAuthService(gateway, true)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)

	// The locally registered account can log in while upstream is down.
	loggedIn, err := svc.Login(ctx, &dto.LoginRequest{Email: "dana@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.Id, loggedIn.User.Id)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "dana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Registering the same email twice locally is refused.
	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthRegisterWithoutDemoModeSurfacesOutage(t *testing.T) {
	svc := newTestAuthService(&fakeGateway{registerErr: remote.ErrUnavailable}, false)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestAuthRegisterUpstreamDuplicate(t *testing.T) {
	// A nil user with no error is the upstream's duplicate-account verdict.
	svc := newTestAuthService(&fakeGateway{registerUser: nil}, true)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
