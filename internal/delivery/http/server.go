package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/subway-path-service/internal/config"
	"github.com/subway-path-service/internal/delivery/http/handler"
	"github.com/subway-path-service/internal/delivery/http/middleware"
	"github.com/subway-path-service/internal/domain/repository"
	"github.com/subway-path-service/internal/pkg/errors"
	"github.com/subway-path-service/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	sessions repository.SessionRepository

	// Handlers
	pathHandler   *handler.PathHandler
	healthHandler *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	sessions repository.SessionRepository,
	pathHandler *handler.PathHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Subway Path Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		sessions:      sessions,
		pathHandler:   pathHandler,
		healthHandler: healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")
	api.Get("/health", s.healthHandler.Check)

	// Path routes
	auth := middleware.OptionalAuth(s.sessions, s.logger)
	s.app.Get("/paths", auth, s.pathHandler.FindPath)
	s.app.Get("/paths/time", auth, s.pathHandler.FindPathByDuration)
}

// App возвращает fiber.App (используется в тестах через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			if e.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Int("status", e.Code), zap.Error(err))
			}
			return utils.SendError(c, errors.New("HTTP_ERROR", e.Message, e.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
