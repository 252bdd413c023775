package repo

import (
	"context"

	"github.com/akulinin/todo-backend/internal/domain/model"
)

type TaskRepo interface {
	CreateTask(ctx context.Context, t model.Task) (model.Task, error)

	GetTaskByID(ctx context.Context, id int64) (model.Task, error)

	// GetTaskByIDForUpdate takes a row lock; call it inside
	// TxManager.RunInTx.
	GetTaskByIDForUpdate(ctx context.Context, id int64) (model.Task, error)

	UpdateTask(ctx context.Context, t model.Task) (model.Task, error)

	DeleteTask(ctx context.Context, id int64) error

	ListTasksByUser(ctx context.Context, userID int64, offset, limit int) ([]model.Task, error)
}
