package mapper

import (
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(u *entity.FallbackUser) *model.FallbackUser {
	if u == nil {
		return nil
	}
	return &model.FallbackUser{
		Id:           u.Id,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UserMapper) ToEntity(u *model.FallbackUser) *entity.FallbackUser {
	if u == nil {
		return nil
	}
	return &entity.FallbackUser{
		Id:           u.Id,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
