package mapper

import (
	"github.com/tagnote-app/tagnote-be/internal/entity"
	"github.com/tagnote-app/tagnote-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(mu *model.User) *entity.User {
	if mu == nil {
		return nil
	}

	return &entity.User{
		Id:           mu.Id,
		Email:        mu.Email,
		CreatedAt:    mu.CreatedAt,
		LastSignInAt: mu.LastSignInAt,
	}
}

func (m *UserMapper) ToModel(e *entity.User) *model.User {
	if e == nil {
		return nil
	}

	return &model.User{
		Id:           e.Id,
		Email:        e.Email,
		CreatedAt:    e.CreatedAt,
		LastSignInAt: e.LastSignInAt,
	}
}

func (m *UserMapper) TokenToEntity(mt *model.UserRefreshToken) *entity.UserRefreshToken {
	if mt == nil {
		return nil
	}

	return &entity.UserRefreshToken{
		Id:        mt.Id,
		UserId:    mt.UserId,
		TokenHash: mt.TokenHash,
		ExpiresAt: mt.ExpiresAt,
		Revoked:   mt.Revoked,
		CreatedAt: mt.CreatedAt,
	}
}

func (m *UserMapper) TokenToModel(e *entity.UserRefreshToken) *model.UserRefreshToken {
	if e == nil {
		return nil
	}

	return &model.UserRefreshToken{
		Id:        e.Id,
		UserId:    e.UserId,
		TokenHash: e.TokenHash,
		ExpiresAt: e.ExpiresAt,
		Revoked:   e.Revoked,
		CreatedAt: e.CreatedAt,
	}
}
