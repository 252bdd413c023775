package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akulinin/todo-backend/internal/adapters/transport/http/middleware"
	authdto "github.com/akulinin/todo-backend/internal/app/auth/dto"
	authsvc "github.com/akulinin/todo-backend/internal/app/auth/service"
	taskdto "github.com/akulinin/todo-backend/internal/app/task/dto"
	tasksvc "github.com/akulinin/todo-backend/internal/app/task/service"
	customErrors "github.com/akulinin/todo-backend/internal/domain/errors"
	"github.com/akulinin/todo-backend/internal/domain/model"
	"github.com/akulinin/todo-backend/internal/infra/config"
)

type Handler struct {
	auth  authsvc.AuthService
	tasks tasksvc.TaskService
	log   *zap.Logger
}

func NewHandler(auth authsvc.AuthService, tasks tasksvc.TaskService, log *zap.Logger) *Handler {
	return &Handler{auth: auth, tasks: tasks, log: log}
}

func (h *Handler) Router(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(h.log))

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: cfg.AllowCredentials,
			MaxAge:           12 * time.Hour,
		}))
	}

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/token", h.login)
		auth.POST("/refresh", h.refresh)
	}

	tasks := router.Group("/tasks", middleware.RequireAuth(h.auth))
	{
		tasks.POST("/create", h.createTask)
		tasks.GET("/", h.listTasks)
		tasks.GET("/:id", h.getTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	return router
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

func (h *Handler) register(c *gin.Context) {
	var body authdto.RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse{
		ID:       user.ID,
		Username: user.Username,
		IsActive: user.IsActive,
	})
}

func (h *Handler) login(c *gin.Context) {
	var body authdto.LoginDTO
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *Handler) refresh(c *gin.Context) {
	var body authdto.RefreshDTO
	if err := c.ShouldBindJSON(&body); err != nil || body.RefreshToken == "" {
		body.RefreshToken = c.Query("refresh_token")
	}

	pair, err := h.auth.Refresh(c.Request.Context(), authdto.RefreshDTO{RefreshToken: body.RefreshToken})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *Handler) createTask(c *gin.Context) {
	var body taskdto.CreateTaskDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), body, middleware.CurrentUser(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Handler) listTasks(c *gin.Context) {
	var q taskdto.ListTasksDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), middleware.CurrentUser(c).ID, q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) getTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), id, middleware.CurrentUser(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) updateTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	var patch taskdto.UpdateTaskDTO
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), id, patch, middleware.CurrentUser(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) deleteTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id, middleware.CurrentUser(c).ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// handleError is the single boundary between domain errors and HTTP
// status codes. Nothing below it leaks internals to the client.
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case customErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case customErrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "username already registered"})
	case customErrors.IsInvalidCredentials(err):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect username or password"})
	case customErrors.IsInvalidToken(err), customErrors.IsUnauthenticated(err):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
	case customErrors.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not allowed to access this task"})
	case customErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	default:
		h.log.Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
