package service

import (
	"context"
	"errors"
	"strings"
	"time"

	validate "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/akulinin/todo-backend/internal/app/task/dto"
	customErrors "github.com/akulinin/todo-backend/internal/domain/errors"
	"github.com/akulinin/todo-backend/internal/domain/model"
	"github.com/akulinin/todo-backend/internal/repo"
)

const defaultListLimit = 10

type taskService struct {
	taskRepo repo.TaskRepo
	tx       repo.TxManager
	v        *validate.Validate
	log      *zap.Logger
}

func (s *taskService) Create(ctx context.Context, d dto.CreateTaskDTO, ownerID int64) (model.Task, error) {
	d.TaskInfo = strings.TrimSpace(d.TaskInfo)
	if err := s.v.Struct(d); err != nil {
		return model.Task{}, customErrors.NewInvalidArgument(err.Error())
	}
	if !d.DatetimeToDo.After(time.Now()) {
		return model.Task{}, customErrors.NewInvalidArgument("datetime_to_do must be in the future")
	}

	task := model.Task{
		UserID:       ownerID,
		DatetimeToDo: d.DatetimeToDo,
		TaskInfo:     d.TaskInfo,
	}
	res, err := s.taskRepo.CreateTask(ctx, task)
	if err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "Create")
	}

	return res, nil
}

func (s *taskService) Get(ctx context.Context, taskID, callerID int64) (model.Task, error) {
	task, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if errors.Is(err, customErrors.ErrNotFound) {
		return model.Task{}, customErrors.ErrNotFound
	}
	if err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "Get")
	}

	// existence is established first; a forbidden task never reads as 404
	if task.UserID != callerID {
		return model.Task{}, customErrors.ErrForbidden
	}

	return task, nil
}

func (s *taskService) Update(ctx context.Context, taskID int64, patch dto.UpdateTaskDTO, callerID int64) (model.Task, error) {
	if patch.TaskInfo != nil {
		trimmed := strings.TrimSpace(*patch.TaskInfo)
		patch.TaskInfo = &trimmed
	}
	if err := s.v.Struct(patch); err != nil {
		return model.Task{}, customErrors.NewInvalidArgument(err.Error())
	}
	if patch.DatetimeToDo != nil && !patch.DatetimeToDo.After(time.Now()) {
		return model.Task{}, customErrors.NewInvalidArgument("datetime_to_do must be in the future")
	}

	var updated model.Task
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		task, err := s.taskRepo.GetTaskByIDForUpdate(ctx, taskID)
		if errors.Is(err, customErrors.ErrNotFound) {
			return customErrors.ErrNotFound
		}
		if err != nil {
			return customErrors.WrapInternal(err, "Update")
		}
		if task.UserID != callerID {
			return customErrors.ErrForbidden
		}

		// nil patch fields leave the stored values untouched
		if patch.DatetimeToDo != nil {
			task.DatetimeToDo = *patch.DatetimeToDo
		}
		if patch.TaskInfo != nil {
			task.TaskInfo = *patch.TaskInfo
		}
		if patch.IsCompleted != nil {
			task.IsCompleted = *patch.IsCompleted
		}
		task.UpdatedAt = time.Now()

		updated, err = s.taskRepo.UpdateTask(ctx, task)
		if err != nil {
			return customErrors.WrapInternal(err, "Update")
		}
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}

	return updated, nil
}

func (s *taskService) Delete(ctx context.Context, taskID, callerID int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		task, err := s.taskRepo.GetTaskByIDForUpdate(ctx, taskID)
		if errors.Is(err, customErrors.ErrNotFound) {
			return customErrors.ErrNotFound
		}
		if err != nil {
			return customErrors.WrapInternal(err, "Delete")
		}
		if task.UserID != callerID {
			return customErrors.ErrForbidden
		}

		if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
			return customErrors.WrapInternal(err, "Delete")
		}
		return nil
	})
}

func (s *taskService) List(ctx context.Context, callerID int64, q dto.ListTasksDTO) ([]model.Task, error) {
	if q.Limit == 0 {
		q.Limit = defaultListLimit
	}
	if err := s.v.Struct(q); err != nil {
		return nil, customErrors.NewInvalidArgument(err.Error())
	}

	tasks, err := s.taskRepo.ListTasksByUser(ctx, callerID, q.Offset, q.Limit)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "List")
	}

	return tasks, nil
}
