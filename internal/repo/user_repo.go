package repo

import (
	"context"

	"github.com/akulinin/todo-backend/internal/domain/model"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)

	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	// GetUserByUsernameForUpdate takes a row lock; call it inside
	// TxManager.RunInTx.
	GetUserByUsernameForUpdate(ctx context.Context, username string) (model.User, error)

	UpdateRefreshToken(ctx context.Context, userID int64, token *string) error
}
