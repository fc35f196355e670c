package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskhub/pkg/translator"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"taskhub/internal/adapter/atomic"
	"taskhub/internal/adapter/cache"
	"taskhub/internal/adapter/events"
	httpadapter "taskhub/internal/adapter/http"
	"taskhub/internal/adapter/http/handlers"
	"taskhub/internal/app/enrich"
	"taskhub/internal/app/service"
	"taskhub/internal/app/shape"
	"taskhub/internal/config"
	"taskhub/internal/core/identifier"
	"taskhub/internal/core/participant"
	"taskhub/internal/core/ports"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	mode, err := identifier.ParseMode(cfg.IdentifierMode)
	if err != nil {
		logger.Fatal("invalid identifier mode", zap.Error(err))
	}
	ids := identifier.NewValidator(mode)
	reconciler := participant.NewReconciler(ids)

	httpClient := &http.Client{Timeout: cfg.DownstreamTimeout}
	taskClient := atomic.NewTaskClient(cfg.TaskServiceURL, httpClient, logger)
	projectClient := atomic.NewProjectClient(cfg.ProjectServiceURL, httpClient, logger)
	profileClient := atomic.NewProfileClient(cfg.ProfileServiceURL, httpClient, logger)
	recurrenceClient := atomic.NewRecurrenceClient(cfg.RecurrenceServiceURL, httpClient, logger)

	checkers := []ports.HealthChecker{taskClient, projectClient, profileClient}

	var profiles ports.ProfileLookup = profileClient
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		redisClient := redis.NewClient(opts)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("failed to close redis client", zap.Error(err))
			}
		}()
		profiles = cache.NewProfileCache(profileClient, cache.NewRedisStore(redisClient), cfg.ProfileCacheTTL, logger)
		checkers = append(checkers, cache.NewHealthChecker(redisClient))
		logger.Info("profile cache enabled", zap.Duration("ttl", cfg.ProfileCacheTTL))
	}

	var publisher interface {
		ports.TaskEventPublisher
		Close() error
	} = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		writer := events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTaskTopic)
		publisher = events.NewKafkaPublisher(writer, cfg.KafkaTaskTopic, logger)
		logger.Info("task events enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTaskTopic))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("failed to close event publisher", zap.Error(err))
		}
	}()

	owners := enrich.NewOwnerEnricher(profiles, ids, logger)
	projectEnricher := enrich.NewProjectEnricher(owners, projectClient, reconciler, logger)

	taskService := service.NewTaskService(taskClient, shape.NewTaskTranslator(reconciler, owners), publisher, logger)
	projectService := service.NewProjectService(
		projectClient,
		shape.NewProjectTranslator(ids, reconciler, projectEnricher, cfg.ProjectSecondaryLookups),
		ids,
		logger,
	)
	recurrenceService := service.NewRecurrenceService(recurrenceClient, logger)

	r, err := httpadapter.NewRouter(logger, cfg.TrustedProxies, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(checkers...),
		Tasks:       handlers.NewTaskHandler(taskService, ids),
		Projects:    handlers.NewProjectHandler(projectService, ids),
		Recurrences: handlers.NewRecurrenceHandler(recurrenceService, ids),
	})
	if err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr), zap.String("identifier_mode", string(mode)))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
}
