package implementation

import (
	"context"
	"errors"

	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/mapper"
	"nextel-storefront-be/internal/model"
	"nextel-storefront-be/internal/repository/contract"
	"nextel-storefront-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FallbackUserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewFallbackUserRepository(db *gorm.DB) contract.FallbackUserRepository {
	return &FallbackUserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *FallbackUserRepositoryImpl) Create(ctx context.Context, user *entity.FallbackUser) error {
	modelUser := r.mapper.ToModel(user)
	return r.db.WithContext(ctx).Create(modelUser).Error
}

func (r *FallbackUserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.FallbackUser, error) {
	var modelUser model.FallbackUser
	query := specification.ByEmail{Email: email}.Apply(r.db.WithContext(ctx))

	if err := query.First(&modelUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelUser), nil
}
