package main

// @title Subway Path Service API
// @version 1.0.0
// @description Поиск кратчайшего пути между станциями метро и расчет стоимости проезда.
// @description
// @description Основные возможности:
// @description - Кратчайший путь по расстоянию или по времени в пути
// @description - Суммарные расстояние и время маршрута
// @description - Стоимость проезда с надбавкой линий и возрастной скидкой

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/subway-path-service/docs"
	"github.com/subway-path-service/internal/config"
	httpDelivery "github.com/subway-path-service/internal/delivery/http"
	"github.com/subway-path-service/internal/delivery/http/handler"
	"github.com/subway-path-service/internal/pkg/logger"
	"github.com/subway-path-service/internal/repository/cache"
	"github.com/subway-path-service/internal/repository/postgres"
	"github.com/subway-path-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Subway Path Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Int("path_max_stations", cfg.Path.MaxStations),
		zap.Duration("path_query_timeout", cfg.Path.QueryTimeout),
	)

	// 3. Connect to PostgreSQL (stations, lines, sections)
	db, err := postgres.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// 4. Connect to Redis (sessions)
	redisClient, err := cache.NewRedis(cfg, log)
	if err != nil {
		_ = db.Close()
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// 5. Repositories
	stationRepo := postgres.NewStationRepository(db)
	lineRepo := postgres.NewLineRepository(db)
	sessionRepo := cache.NewSessionRepository(redisClient)

	// 6. Use cases
	pathUC := usecase.NewPathUseCase(stationRepo, lineRepo, log, cfg.Path)

	// 7. HTTP handlers
	pathHandler := handler.NewPathHandler(pathUC, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	}, log)

	// 8. HTTP server
	server := httpDelivery.NewServer(cfg, log, sessionRepo, pathHandler, healthHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
