package http

import (
	"taskhub/internal/adapter/http/handlers"
	"taskhub/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Tasks       *handlers.TaskHandler
	Projects    *handlers.ProjectHandler
	Recurrences *handlers.RecurrenceHandler
}

// NewRouter builds the engine with recovery, request ids and access logging,
// then registers every route.
func NewRouter(logger *zap.Logger, trustedProxies []string, h Handlers) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.GinZapMiddleware(logger))
	RegisterRoutes(r, h)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Tasks.ListTasks)
		api.GET("/tasks/user/:userId", h.Tasks.ListTasksByUser)
		api.GET("/tasks/:id", h.Tasks.GetTask)
		api.GET("/tasks/:id/subtasks", h.Tasks.ListSubtasks)
		api.POST("/tasks", h.Tasks.CreateTask)
		api.PUT("/tasks/:id", h.Tasks.UpdateTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)

		api.GET("/projects", h.Projects.ListProjects)
		api.GET("/projects/user/:userId", h.Projects.ListProjectsByUser)
		api.GET("/projects/:id", h.Projects.GetProject)
		api.POST("/projects", h.Projects.CreateProject)
		api.PATCH("/projects/:id", h.Projects.UpdateProject)
		api.DELETE("/projects/:id", h.Projects.DeleteProject)
		api.PUT("/projects/:id/collaborators", h.Projects.ReplaceCollaborators)
		api.PUT("/projects/:id/owner", h.Projects.ChangeOwner)

		api.GET("/recurrences/:id", h.Recurrences.GetRecurrence)
		api.GET("/recurrences/task/:taskId", h.Recurrences.ListRecurrencesByTask)
		api.POST("/recurrences", h.Recurrences.CreateRecurrence)
		api.PUT("/recurrences/:id", h.Recurrences.UpdateRecurrence)
		api.DELETE("/recurrences/:id", h.Recurrences.DeleteRecurrence)
	}
}
