package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	StatusOk           = "ok"
	StatusDown         = "down"
	healthCheckTimeout = 2 * time.Second
	healthTimeFormat   = "2006-01-02 15:04:05"
	defaultAppName     = "taskhub"
	defaultAppVersion  = "dev"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthAdvanced struct {
	AppName           string            `json:"app_name"`
	AppVersion        string            `json:"app_version"`
	CurrentSystemTime string            `json:"current_system_time"`
	Language          string            `json:"language"`
	Status            map[string]string `json:"status"`
}

type HealthHandler struct {
	checkers []ports.HealthChecker
}

func NewHealthHandler(checkers ...ports.HealthChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers}
}

// CheckHealth answers 200 only when every downstream dependency responds.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	for _, status := range h.checkDependencies(c.Request.Context()) {
		if status != StatusOk {
			statusCode = http.StatusServiceUnavailable
			message = StatusDown
			break
		}
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeFormat),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeFormat),
		Language:          middleware.GetLang(c),
		Status:            h.checkDependencies(c.Request.Context()),
	})
}

func (h *HealthHandler) checkDependencies(ctx context.Context) map[string]string {
	timeoutCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	results := make([]string, len(h.checkers))
	var g errgroup.Group
	for i, checker := range h.checkers {
		g.Go(func() error {
			results[i] = StatusOk
			if err := checker.Ping(timeoutCtx); err != nil {
				zap.L().Warn("health check failed", zap.String("dependency", checker.Name()), zap.Error(err))
				results[i] = StatusDown
			}
			return nil
		})
	}
	_ = g.Wait()

	statuses := make(map[string]string, len(h.checkers))
	for i, checker := range h.checkers {
		statuses[checker.Name()] = results[i]
	}
	return statuses
}

func getAppName() string {
	if name := os.Getenv("APP_NAME"); name != "" {
		return name
	}
	return defaultAppName
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return defaultAppVersion
	}
	return version
}
