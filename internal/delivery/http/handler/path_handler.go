package handler

import (
	"context"
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/subway-path-service/internal/delivery/http/middleware"
	"github.com/subway-path-service/internal/domain"
	"github.com/subway-path-service/internal/fare"
	"github.com/subway-path-service/internal/pathfinding"
	"github.com/subway-path-service/internal/pkg/errors"
	"github.com/subway-path-service/internal/pkg/utils"
	"github.com/subway-path-service/internal/pkg/validator"
	"github.com/subway-path-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// PathFinder - сценарий поиска пути, который обслуживает обработчик
type PathFinder interface {
	FindPath(ctx context.Context, age *int, source, target int64, weightType domain.WeightType) (*dto.PathResponse, error)
}

// PathHandler - обработчик запросов кратчайшего пути
type PathHandler struct {
	pathUC PathFinder
	logger *zap.Logger
}

// NewPathHandler - создание нового PathHandler
func NewPathHandler(pathUC PathFinder, logger *zap.Logger) *PathHandler {
	return &PathHandler{
		pathUC: pathUC,
		logger: logger,
	}
}

// FindPath godoc
// @Summary Кратчайший путь между станциями
// @Description Возвращает путь по минимальному расстоянию или времени, суммарные расстояние и время и стоимость проезда. Для авторизованного пользователя применяется возрастная скидка.
// @Tags Paths
// @Produce json
// @Param source query int true "ID станции отправления"
// @Param target query int true "ID станции назначения"
// @Param weightType query string false "Метрика: DISTANCE или DURATION" default(DISTANCE)
// @Param Authorization header string false "Bearer токен"
// @Success 200 {object} dto.PathResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /paths [get]
func (h *PathHandler) FindPath(c *fiber.Ctx) error {
	req, err := parsePathRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	weightType, err := domain.ParseWeightType(req.WeightType)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	return h.findPath(c, req, weightType)
}

// FindPathByDuration godoc
// @Summary Путь с минимальным временем в пути
// @Description То же, что /paths с weightType=DURATION
// @Tags Paths
// @Produce json
// @Param source query int true "ID станции отправления"
// @Param target query int true "ID станции назначения"
// @Param Authorization header string false "Bearer токен"
// @Success 200 {object} dto.PathResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /paths/time [get]
func (h *PathHandler) FindPathByDuration(c *fiber.Ctx) error {
	req, err := parsePathRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.findPath(c, req, domain.WeightDuration)
}

func (h *PathHandler) findPath(c *fiber.Ctx, req *dto.PathRequest, weightType domain.WeightType) error {
	var age *int
	if member := middleware.LoginMemberFrom(c); member != nil {
		a := member.Age
		age = &a
	}

	result, err := h.pathUC.FindPath(c.UserContext(), age, req.Source, req.Target, weightType)
	if err != nil {
		appErr := mapPathError(err)
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			h.logger.Error("Failed to find path",
				zap.Int64("source", req.Source),
				zap.Int64("target", req.Target),
				zap.Error(err))
		}
		return utils.SendError(c, appErr)
	}

	return c.JSON(result)
}

func parsePathRequest(c *fiber.Ctx) (*dto.PathRequest, error) {
	var req dto.PathRequest
	if err := c.QueryParser(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("source and target must be numeric station IDs")
	}

	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(validator.Describe(err))
	}

	return &req, nil
}

// mapPathError переводит ошибки поиска пути и расчета стоимости в ответы API
func mapPathError(err error) *errors.AppError {
	switch {
	case stderrors.Is(err, pathfinding.ErrSameStation):
		return errors.ErrSameStation
	case stderrors.Is(err, pathfinding.ErrStationNotFound):
		return errors.ErrStationNotFound
	case stderrors.Is(err, pathfinding.ErrNoPath):
		return errors.ErrPathNotFound
	case stderrors.Is(err, fare.ErrInvalidAge):
		return errors.ErrInvalidAge
	case stderrors.Is(err, pathfinding.ErrGraphBuild), stderrors.Is(err, fare.ErrInvalidInput):
		return errors.ErrGraphBuild
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.ErrTimeout
	default:
		return errors.ErrDatabaseError
	}
}
