package dto

import "time"

type CreateTaskDTO struct {
	DatetimeToDo time.Time `json:"datetime_to_do" validate:"required"`
	TaskInfo     string    `json:"task_info" validate:"required,min=3,max=1000,taskinfo"`
}

// UpdateTaskDTO is a partial patch: nil fields stay untouched.
type UpdateTaskDTO struct {
	DatetimeToDo *time.Time `json:"datetime_to_do"`
	TaskInfo     *string    `json:"task_info" validate:"omitempty,min=3,max=1000,taskinfo"`
	IsCompleted  *bool      `json:"is_completed"`
}

type ListTasksDTO struct {
	Offset int `form:"offset" validate:"min=0"`
	Limit  int `form:"limit" validate:"min=1,max=100"`
}
