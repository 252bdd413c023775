package service

import (
	"context"
	"errors"
	"time"

	validate "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/akulinin/todo-backend/internal/app/auth/dto"
	"github.com/akulinin/todo-backend/internal/app/auth/hash"
	"github.com/akulinin/todo-backend/internal/app/auth/jwt"
	customErrors "github.com/akulinin/todo-backend/internal/domain/errors"
	"github.com/akulinin/todo-backend/internal/domain/model"
	"github.com/akulinin/todo-backend/internal/repo"
)

const tokenTypeBearer = "bearer"

type authService struct {
	userRepo repo.UserRepo
	tx       repo.TxManager
	hasher   hash.Hasher
	codec    jwt.Codec
	v        *validate.Validate
	log      *zap.Logger
}

func (a *authService) Register(ctx context.Context, dto dto.RegisterDTO) (model.User, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	passwordHash, err := a.hasher.Hash(dto.Password)
	if err != nil {
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	user := model.User{
		Username:       dto.Username,
		HashedPassword: passwordHash,
		IsActive:       true,
	}
	res, err := a.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return model.User{}, customErrors.ErrAlreadyExists
		}
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	return res, nil
}

func (a *authService) Login(ctx context.Context, dto dto.LoginDTO) (model.TokenPair, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}

	user, err := a.userRepo.GetUserByUsername(ctx, dto.Username)
	if errors.Is(err, customErrors.ErrNotFound) {
		// same external error as a bad password
		a.log.Debug("login: unknown username")
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	}
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "Login")
	}

	if !a.hasher.Verify(dto.Password, user.HashedPassword) {
		a.log.Debug("login: password mismatch")
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	}

	pair, err := a.issuePair(user.Username)
	if err != nil {
		return model.TokenPair{}, err
	}

	// Overwriting the column revokes whatever refresh token was issued
	// before; one active refresh token per user.
	if err := a.userRepo.UpdateRefreshToken(ctx, user.ID, &pair.RefreshToken); err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "Login")
	}

	return pair, nil
}

func (a *authService) Refresh(ctx context.Context, dto dto.RefreshDTO) (model.TokenPair, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}

	claims, err := a.codec.Verify(dto.RefreshToken, jwt.TypeRefresh)
	if err != nil {
		return model.TokenPair{}, customErrors.ErrInvalidToken
	}

	var pair model.TokenPair
	err = a.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := a.userRepo.GetUserByUsernameForUpdate(ctx, claims.Subject)
		if errors.Is(err, customErrors.ErrNotFound) {
			a.log.Debug("refresh: subject no longer exists")
			return customErrors.ErrInvalidToken
		}
		if err != nil {
			return customErrors.WrapInternal(err, "Refresh")
		}

		// A rotated-away or never-issued token fails here even though its
		// signature and expiry are fine.
		if user.RefreshToken == nil || *user.RefreshToken != dto.RefreshToken {
			a.log.Debug("refresh: presented token is not the active one")
			return customErrors.ErrInvalidToken
		}

		pair, err = a.issuePair(user.Username)
		if err != nil {
			return err
		}
		return a.userRepo.UpdateRefreshToken(ctx, user.ID, &pair.RefreshToken)
	})
	if err != nil {
		if customErrors.IsInvalidToken(err) || customErrors.IsInternal(err) {
			return model.TokenPair{}, err
		}
		return model.TokenPair{}, customErrors.WrapInternal(err, "Refresh")
	}

	return pair, nil
}

func (a *authService) Validate(ctx context.Context, dto dto.ValidateDTO) (model.User, error) {
	if dto.AccessToken == "" {
		return model.User{}, customErrors.ErrUnauthenticated
	}

	claims, err := a.codec.Verify(dto.AccessToken, jwt.TypeAccess)
	if err != nil {
		return model.User{}, customErrors.ErrInvalidToken
	}

	user, err := a.userRepo.GetUserByUsername(ctx, claims.Subject)
	if errors.Is(err, customErrors.ErrNotFound) {
		a.log.Debug("validate: token subject no longer exists")
		return model.User{}, customErrors.ErrNotFound
	}
	if err != nil {
		return model.User{}, customErrors.WrapInternal(err, "Validate")
	}

	return user, nil
}

func (a *authService) issuePair(username string) (model.TokenPair, error) {
	now := time.Now()

	accessToken, atExp, err := a.codec.Generate(username, jwt.TypeAccess)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "issue access token")
	}
	refreshToken, rtExp, err := a.codec.Generate(username, jwt.TypeRefresh)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "issue refresh token")
	}

	return model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
		AccessTTL:    atExp.Sub(now),
		RefreshTTL:   rtExp.Sub(now),
	}, nil
}
