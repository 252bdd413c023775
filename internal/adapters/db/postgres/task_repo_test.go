package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/akulinin/todo-backend/internal/domain/errors"
	"github.com/akulinin/todo-backend/internal/domain/model"
)

func newTask(userID int64, info string) model.Task {
	return model.Task{
		UserID:       userID,
		DatetimeToDo: time.Now().Add(time.Hour),
		TaskInfo:     info,
	}
}

func TestTaskRepo_CreateGet(t *testing.T) {
	repo := NewTaskRepo(setupDB(t))
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, newTask(1, "Buy milk"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected store-assigned id")
	}

	got, err := repo.GetTaskByID(ctx, created.ID)
	if err != nil || got.TaskInfo != "Buy milk" {
		t.Fatalf("get: %v", err)
	}
	if got.IsCompleted {
		t.Fatal("new task must not be completed")
	}

	if _, err := repo.GetTaskByID(ctx, created.ID+100); !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTaskRepo_UpdateDelete(t *testing.T) {
	repo := NewTaskRepo(setupDB(t))
	ctx := context.Background()

	created, _ := repo.CreateTask(ctx, newTask(1, "Buy milk"))

	created.IsCompleted = true
	updated, err := repo.UpdateTask(ctx, created)
	if err != nil || !updated.IsCompleted {
		t.Fatalf("update: %v", err)
	}

	if err := repo.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteTask(ctx, created.ID); !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTaskRepo_ListByUser(t *testing.T) {
	repo := NewTaskRepo(setupDB(t))
	ctx := context.Background()

	var mine []int64
	for _, info := range []string{"a", "b", "c"} {
		created, err := repo.CreateTask(ctx, newTask(1, info))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		mine = append(mine, created.ID)
	}
	if _, err := repo.CreateTask(ctx, newTask(2, "theirs")); err != nil {
		t.Fatalf("create: %v", err)
	}

	tasks, err := repo.ListTasksByUser(ctx, 1, 0, 10)
	if err != nil || len(tasks) != 3 {
		t.Fatalf("list: %v (%d tasks)", err, len(tasks))
	}
	for i, task := range tasks {
		if task.ID != mine[i] {
			t.Fatalf("want id %d at position %d, got %d", mine[i], i, task.ID)
		}
	}

	page, err := repo.ListTasksByUser(ctx, 1, 2, 10)
	if err != nil || len(page) != 1 || page[0].ID != mine[2] {
		t.Fatalf("pagination: %v", err)
	}
}
