package service

import (
	"context"

	validate "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/akulinin/todo-backend/internal/app/task/dto"
	"github.com/akulinin/todo-backend/internal/domain/model"
	"github.com/akulinin/todo-backend/internal/repo"
)

// TaskService applies the ownership rule on every call: a task is
// visible and mutable only through the user that owns it. Callers pass
// the authenticated user's id, never a client-supplied one.
type TaskService interface {
	Create(ctx context.Context, dto dto.CreateTaskDTO, ownerID int64) (model.Task, error)
	Get(ctx context.Context, taskID, callerID int64) (model.Task, error)
	Update(ctx context.Context, taskID int64, patch dto.UpdateTaskDTO, callerID int64) (model.Task, error)
	Delete(ctx context.Context, taskID, callerID int64) error
	List(ctx context.Context, callerID int64, q dto.ListTasksDTO) ([]model.Task, error)
}

func NewTaskService(taskRepo repo.TaskRepo, tx repo.TxManager, v *validate.Validate, log *zap.Logger) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		tx:       tx,
		v:        v,
		log:      log,
	}
}
