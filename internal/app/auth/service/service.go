package service

import (
	"context"

	validate "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/akulinin/todo-backend/internal/app/auth/dto"
	"github.com/akulinin/todo-backend/internal/app/auth/hash"
	"github.com/akulinin/todo-backend/internal/app/auth/jwt"
	"github.com/akulinin/todo-backend/internal/domain/model"
	"github.com/akulinin/todo-backend/internal/repo"
)

type AuthService interface {
	Register(ctx context.Context, dto dto.RegisterDTO) (model.User, error)
	Login(ctx context.Context, dto dto.LoginDTO) (model.TokenPair, error)
	Refresh(ctx context.Context, dto dto.RefreshDTO) (model.TokenPair, error)
	Validate(ctx context.Context, dto dto.ValidateDTO) (model.User, error)
}

func NewAuthService(userRepo repo.UserRepo, tx repo.TxManager, hasher hash.Hasher, codec jwt.Codec, v *validate.Validate, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tx:       tx,
		hasher:   hasher,
		codec:    codec,
		v:        v,
		log:      log,
	}
}
