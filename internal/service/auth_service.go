package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nextel-storefront-be/internal/constant"
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/pkg/logger"
	"nextel-storefront-be/internal/repository/contract"
	"nextel-storefront-be/pkg/analytics"
	"nextel-storefront-be/pkg/remote"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
}

type authService struct {
	gateway remote.Gateway
	users   contract.FallbackUserRepository
	sink    analytics.Sink
	log     logger.ILogger

	jwtSecret string

	// demoMode enables the local fallback account store when the upstream
	// auth API is down. Off in production.
	demoMode bool
}

func NewAuthService(
	gateway remote.Gateway,
	users contract.FallbackUserRepository,
	sink analytics.Sink,
	log logger.ILogger,
	jwtSecret string,
	demoMode bool,
) IAuthService {
	return &authService{
		gateway:   gateway,
		users:     users,
		sink:      sink,
		log:       log,
		jwtSecret: jwtSecret,
		demoMode:  demoMode,
	}
}

func (as *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := as.gateway.ValidateUser(ctx, email, req.Password)
	if err != nil {
		as.log.Warn("auth", "upstream validation unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// The upstream either failed or rejected; in both cases the local
	// fallback store gets a chance, covering demo-mode registrations.
	if user == nil && as.demoMode {
		user = as.localLogin(ctx, email, req.Password)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	as.sink.Emit(constant.EventUserLogin, map[string]string{
		"user_id": user.Id,
	})
	return as.authResponse(user)
}

func (as *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := as.gateway.RegisterUser(ctx, req.Name, email, req.Phone, req.Password)
	if err == nil && user == nil {
		// The upstream reached a verdict and refused; the only refusal it
		// reports is a duplicate account.
		return nil, ErrEmailTaken
	}
	if err != nil {
		as.log.Warn("auth", "upstream registration unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		if !as.demoMode {
			return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
		}
		user, err = as.localRegister(ctx, req, email)
		if err != nil {
			return nil, err
		}
	}

	as.sink.Emit(constant.EventUserRegister, map[string]string{
		"user_id": user.Id,
	})
	return as.authResponse(user)
}

func (as *authService) localLogin(ctx context.Context, email, password string) *entity.User {
	record, err := as.users.FindByEmail(ctx, email)
	if err != nil || record == nil {
		return nil
	}
	if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)) != nil {
		return nil
	}
	return &entity.User{
		Id:    record.Id,
		Name:  record.Name,
		Email: record.Email,
		Phone: record.Phone,
	}
}

func (as *authService) localRegister(ctx context.Context, req *dto.RegisterRequest, email string) (*entity.User, error) {
	existing, err := as.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	record := &entity.FallbackUser{
		Id:           fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := as.users.Create(ctx, record); err != nil {
		return nil, err
	}

	return &entity.User{
		Id:    record.Id,
		Name:  record.Name,
		Email: record.Email,
		Phone: record.Phone,
	}, nil
}

func (as *authService) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, err := as.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User: dto.UserDTO{
			Id:    user.Id,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		},
	}, nil
}

func (as *authService) issueToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id,
		"email":   user.Email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecret))
}
