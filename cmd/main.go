package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/community_map/internal/config"
	"github.com/shenikar/community_map/internal/geocoding"
	v1 "github.com/shenikar/community_map/internal/handler/http/v1"
	"github.com/shenikar/community_map/internal/metrics"
	"github.com/shenikar/community_map/internal/repository"
	"github.com/shenikar/community_map/internal/repository/memory"
	"github.com/shenikar/community_map/internal/service"
	"github.com/shenikar/community_map/internal/webhook"
	"github.com/shenikar/community_map/pkg/logger"
	mongodb "github.com/shenikar/community_map/pkg/mongo"
	redisclient "github.com/shenikar/community_map/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/community_map/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// stores - репозитории, выбранные по STORE_DRIVER
type stores struct {
	incidents  service.IncidentRepository
	chat       service.ChatRepository
	highlights service.HighlightRepository
	content    service.ContentRepository
	presence   service.PresenceRepository
	redis      *goredis.Client
	cleanup    func()
}

// runMigrations применяет миграции индексов MongoDB
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	// драйвер mongodb берет имя базы из пути URL
	migrationURL, err := url.Parse(cfg.MongoURL)
	if err != nil {
		return fmt.Errorf("invalid MONGO_URL: %w", err)
	}
	migrationURL.Path = "/" + cfg.DBName

	m, err := migrate.New(cfg.MigrationsPath, migrationURL.String())
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func openStores(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*stores, error) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Warn("Using in-memory store, data is lost on restart")
		return &stores{
			incidents:  memory.NewIncidentRepository(),
			chat:       memory.NewChatRepository(),
			highlights: memory.NewHighlightRepository(),
			content:    memory.NewContentRepository(),
			presence:   memory.NewPresenceRepository(),
			cleanup:    func() {},
		}, nil
	}

	if cfg.RunMigrations {
		if err := runMigrations(cfg, log); err != nil {
			return nil, err
		}
	}

	// Подключение к MongoDB
	client, db, err := mongodb.NewMongoDB(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		return nil, err
	}
	log.Info("Successfully connected to MongoDB")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info("Successfully connected to Redis")

	return &stores{
		incidents:  repository.NewIncidentRepository(db),
		chat:       repository.NewChatRepository(db),
		highlights: repository.NewHighlightRepository(db),
		content:    repository.NewContentRepository(db),
		presence:   repository.NewPresenceRepository(redisClient),
		redis:      redisClient,
		cleanup: func() {
			_ = redisClient.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(shutdownCtx)
		},
	}, nil
}

// @title Community Map API
// @version 1.0
// @description Anonymous community incident reporting on a shared map.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
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

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer st.cleanup()

	// Геокодер: Nominatim с кэшем в Redis, если он доступен
	var geocoder service.Geocoder = geocoding.NewClient(geocoding.Config{
		BaseURL:    cfg.GeocoderURL,
		UserAgent:  cfg.GeocoderUserAgent,
		Timeout:    cfg.GeocoderTimeout,
		RatePerSec: cfg.GeocoderRatePerSec,
	}, log)

	// Инициализация издателя вебхуков
	var webhookPublisher webhook.WebhookPublisher = webhook.NopPublisher{}
	if st.redis != nil {
		geocoder = geocoding.NewCachedGeocoder(geocoder, st.redis, cfg.GeocodeCacheTTL, log)

		if cfg.WebhookURL != "" {
			webhookPublisher = webhook.NewRedisWebhookPublisher(st.redis)
		}
		// Инициализация и запуск воркера вебхуков
		webhookWorker := webhook.NewWebhookWorker(st.redis, log, cfg)
		webhookWorker.Start(ctx)
	}

	// Инициализация сервисов
	incidentService := service.NewIncidentService(st.incidents, webhookPublisher, log, service.SystemClock)
	chatService := service.NewChatService(st.chat, log, service.SystemClock)
	presenceService := service.NewPresenceService(st.presence, log, service.SystemClock)

	sweeper := service.NewSweeper(incidentService, chatService, presenceService, log)
	if cfg.SweepSchedule != "" {
		if err := sweeper.Start(ctx, cfg.SweepSchedule); err != nil {
			log.Fatalf("Failed to start retention sweeper: %v", err)
		}
		defer sweeper.Stop()
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Incidents:  incidentService,
		Chat:       chatService,
		Presence:   presenceService,
		Highlights: service.NewHighlightService(st.highlights, log, service.SystemClock),
		Content:    service.NewContentService(st.content, log, service.SystemClock),
		Admin:      service.NewAdminService(cfg.AdminAccount, cfg.AdminPIN, log),
		Geocode:    service.NewGeocodeService(geocoder, cfg.GeocoderTimeout, log),
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLogger(log), v1.Metrics(), v1.CORS(cfg.CORSOrigins))
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
