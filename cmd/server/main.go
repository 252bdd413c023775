package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgresRepo "github.com/akulinin/todo-backend/internal/adapters/db/postgres"
	httpTransport "github.com/akulinin/todo-backend/internal/adapters/transport/http"
	"github.com/akulinin/todo-backend/internal/app/auth/hash"
	"github.com/akulinin/todo-backend/internal/app/auth/jwt"
	authsvc "github.com/akulinin/todo-backend/internal/app/auth/service"
	tasksvc "github.com/akulinin/todo-backend/internal/app/task/service"
	"github.com/akulinin/todo-backend/internal/app/validate"
	"github.com/akulinin/todo-backend/internal/infra/config"
	lg "github.com/akulinin/todo-backend/internal/infra/log"
	"github.com/akulinin/todo-backend/internal/infra/migrate"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	v := validate.New()
	tx := postgresRepo.NewTxManager(db)
	codec := jwt.NewCodec(cfg)

	authService := authsvc.NewAuthService(postgresRepo.NewUserRepo(db), tx, hash.NewArgon2(), codec, v, zapLog)
	taskService := tasksvc.NewTaskService(postgresRepo.NewTaskRepo(db), tx, v, zapLog)

	router := httpTransport.NewHandler(authService, taskService, zapLog).Router(cfg)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		zapLog.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		zapLog.Info("shutdown signal received")
	case <-ctx.Done():
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
