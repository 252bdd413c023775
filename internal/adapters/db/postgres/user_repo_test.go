package postgres

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/akulinin/todo-backend/internal/domain/errors"
	"github.com/akulinin/todo-backend/internal/domain/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, model.User{Username: "alice", HashedPassword: "h", IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected store-assigned id")
	}

	got, err := repo.GetUserByUsername(ctx, "alice")
	if err != nil || got.ID != created.ID {
		t.Fatalf("get by username: %v", err)
	}
	if got.RefreshToken != nil {
		t.Fatal("fresh user must have no refresh token")
	}

	if _, err := repo.GetUserByUsername(ctx, "nobody"); !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserRepo_DuplicateUsername(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, model.User{Username: "alice", HashedPassword: "h"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.CreateUser(ctx, model.User{Username: "alice", HashedPassword: "h2"}); !errors.IsAlreadyExists(err) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestUserRepo_UpdateRefreshToken(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, model.User{Username: "alice", HashedPassword: "h"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	token := "refresh-token-1"
	if err := repo.UpdateRefreshToken(ctx, created.ID, &token); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := repo.GetUserByUsername(ctx, "alice")
	if got.RefreshToken == nil || *got.RefreshToken != token {
		t.Fatal("refresh token not persisted")
	}

	next := "refresh-token-2"
	if err := repo.UpdateRefreshToken(ctx, created.ID, &next); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = repo.GetUserByUsername(ctx, "alice")
	if *got.RefreshToken != next {
		t.Fatal("refresh token not overwritten")
	}

	if err := repo.UpdateRefreshToken(ctx, created.ID+100, &token); !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserRepo_LockInsideTx(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepo(db)
	tm := NewTxManager(db)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, model.User{Username: "alice", HashedPassword: "h"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = tm.RunInTx(ctx, func(ctx context.Context) error {
		got, err := repo.GetUserByUsernameForUpdate(ctx, "alice")
		if err != nil {
			return err
		}
		token := "rotated"
		return repo.UpdateRefreshToken(ctx, got.ID, &token)
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	got, _ := repo.GetUserByUsername(ctx, "alice")
	if got.ID != created.ID || got.RefreshToken == nil || *got.RefreshToken != "rotated" {
		t.Fatal("tx write not visible after commit")
	}
}

func TestTxManager_RollbackOnError(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepo(db)
	tm := NewTxManager(db)
	ctx := context.Background()

	created, _ := repo.CreateUser(ctx, model.User{Username: "alice", HashedPassword: "h"})

	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		token := "should-roll-back"
		if err := repo.UpdateRefreshToken(ctx, created.ID, &token); err != nil {
			return err
		}
		return errors.ErrInvalidToken
	})
	if !errors.IsInvalidToken(err) {
		t.Fatalf("expected fn error, got %v", err)
	}
	got, _ := repo.GetUserByUsername(ctx, "alice")
	if got.RefreshToken != nil {
		t.Fatal("rolled-back write must not be visible")
	}
}
