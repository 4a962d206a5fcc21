package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/config"
	v1 "github.com/FirdavsNurmatov/guard-monitoring/internal/handler/http/v1"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/relay"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/repository"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/service"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/status"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/webhook"
	"github.com/FirdavsNurmatov/guard-monitoring/pkg/logger"
	"github.com/FirdavsNurmatov/guard-monitoring/pkg/postgres"
	redisclient "github.com/FirdavsNurmatov/guard-monitoring/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/FirdavsNurmatov/guard-monitoring/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Guard Monitoring API
// @version 1.0
// @description Administrative console backend for guard patrol checkpoint monitoring.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Каталог для загружаемых планов помещений
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Канал реального времени: Redis Pub/Sub -> websocket-хаб
	eventPublisher := relay.NewRedisEventPublisher(redisClient)
	hub := relay.NewHub(log)
	go hub.Run(ctx)
	subscriber := relay.NewSubscriber(redisClient, hub, log)
	subscriber.Start(ctx)

	// Инициализация репозиториев
	objectRepo := repository.NewObjectRepository(dbpool, redisClient)
	checkpointRepo := repository.NewCheckpointRepository(dbpool)
	scanLogRepo := repository.NewScanLogRepository(dbpool)

	// Инициализация сервисов
	objectService := service.NewObjectService(objectRepo, checkpointRepo, log)
	scanLogService := service.NewScanLogService(scanLogRepo, checkpointRepo, eventPublisher, webhookPublisher, log)

	// Сессии редактирования живут в памяти, брошенные убирает janitor
	sessions := service.NewEditSessionManager(cfg.EditSessionTTL, log)
	sessions.StartJanitor(ctx)

	// Периодическая переоценка статусов точек
	monitor := status.NewMonitor(scanLogRepo, eventPublisher, log, cfg.StatusTickInterval)
	monitor.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(objectService, scanLogService, sessions, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Static("/uploads", cfg.UploadsDir)
	api := router.Group("/api/v1")
	api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
