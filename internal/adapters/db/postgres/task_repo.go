package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	customErrors "github.com/akulinin/todo-backend/internal/domain/errors"
	"github.com/akulinin/todo-backend/internal/domain/model"
)

type TaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (p *TaskRepo) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	res := conn(ctx, p.db).Create(&task)
	if err := res.Error; err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "CreateTask")
	}
	return task, nil
}

func (p *TaskRepo) GetTaskByID(ctx context.Context, id int64) (model.Task, error) {
	var t model.Task
	res := conn(ctx, p.db).Where("id = ?", id).First(&t)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Task{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "GetTaskByID")
	}

	return t, nil
}

func (p *TaskRepo) GetTaskByIDForUpdate(ctx context.Context, id int64) (model.Task, error) {
	var t model.Task
	res := lockForUpdate(conn(ctx, p.db)).Where("id = ?", id).First(&t)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Task{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "GetTaskByIDForUpdate")
	}

	return t, nil
}

func (p *TaskRepo) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	res := conn(ctx, p.db).Save(&task)
	if err := res.Error; err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "UpdateTask")
	}
	return task, nil
}

func (p *TaskRepo) DeleteTask(ctx context.Context, id int64) error {
	res := conn(ctx, p.db).Delete(&model.Task{}, id)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "DeleteTask")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}

	return nil
}

func (p *TaskRepo) ListTasksByUser(ctx context.Context, userID int64, offset, limit int) ([]model.Task, error) {
	var tasks []model.Task
	res := conn(ctx, p.db).
		Where("user_id = ?", userID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&tasks)
	if err := res.Error; err != nil {
		return nil, customErrors.WrapInternal(err, "ListTasksByUser")
	}

	return tasks, nil
}
