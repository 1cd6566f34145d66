package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/subway-path-service/internal/config"
	"github.com/subway-path-service/internal/domain"
	"github.com/subway-path-service/internal/domain/repository"
	"github.com/subway-path-service/internal/fare"
	"github.com/subway-path-service/internal/pathfinding"
	"github.com/subway-path-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// PathUseCase - поиск кратчайшего пути между станциями и расчет стоимости поездки.
// Граф строится заново для каждого запроса из актуального снимка линий.
type PathUseCase struct {
	stationRepo  repository.StationRepository
	lineRepo     repository.LineRepository
	logger       *zap.Logger
	maxStations  int
	queryTimeout time.Duration
}

func NewPathUseCase(
	stationRepo repository.StationRepository,
	lineRepo repository.LineRepository,
	logger *zap.Logger,
	cfg config.PathConfig,
) *PathUseCase {
	maxStations := cfg.MaxStations
	if maxStations <= 0 {
		maxStations = pathfinding.DefaultMaxStations
	}
	queryTimeout := cfg.QueryTimeout
	if queryTimeout <= 0 {
		queryTimeout = 3 * time.Second
	}

	return &PathUseCase{
		stationRepo:  stationRepo,
		lineRepo:     lineRepo,
		logger:       logger,
		maxStations:  maxStations,
		queryTimeout: queryTimeout,
	}
}

// FindPath ищет кратчайший путь source -> target по выбранной метрике.
// age == nil означает анонимный запрос (без скидки).
// Ошибки pathfinding и fare возвращаются без преобразования.
func (uc *PathUseCase) FindPath(
	ctx context.Context,
	age *int,
	source, target int64,
	weightType domain.WeightType,
) (*dto.PathResponse, error) {
	lines, stations, err := uc.loadNetwork(ctx, source, target)
	if err != nil {
		return nil, err
	}

	graph, err := pathfinding.Build(stations, lines, weightType, pathfinding.WithMaxStations(uc.maxStations))
	if err != nil {
		uc.logger.Error("Failed to build subway graph",
			zap.Int("lines", len(lines)),
			zap.Int("stations", len(stations)),
			zap.Error(err))
		return nil, err
	}

	path, err := graph.ShortestPath(source, target)
	if err != nil {
		uc.logger.Debug("Path not found",
			zap.Int64("source", source),
			zap.Int64("target", target),
			zap.String("weight_type", string(weightType)),
			zap.Error(err))
		return nil, err
	}

	amount, err := fare.Calculate(path.Distance, path.MaxSurcharge(), age)
	if err != nil {
		uc.logger.Warn("Failed to calculate fare", zap.Error(err))
		return nil, err
	}

	uc.logger.Debug("Path found",
		zap.Int64("source", source),
		zap.Int64("target", target),
		zap.String("weight_type", string(weightType)),
		zap.Int("stations", len(path.StationIDs)),
		zap.Int("distance", path.Distance),
		zap.Int("duration", path.Duration),
		zap.Int64s("lines", path.LineIDs()),
		zap.Int("fare", amount))

	return dto.NewPathResponse(path, stationNames(stations), amount), nil
}

// loadNetwork читает линии и станции, на которые они ссылаются, вместе с source и target.
// Станции, которых нет в базе, в результат не попадают.
func (uc *PathUseCase) loadNetwork(ctx context.Context, source, target int64) ([]domain.Line, []domain.Station, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	lines, err := uc.lineRepo.FindAllWithSections(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load lines: %w", err)
	}

	stations, err := uc.stationRepo.FindByIDs(ctx, referencedStations(lines, source, target))
	if err != nil {
		return nil, nil, fmt.Errorf("load stations: %w", err)
	}

	return lines, stations, nil
}

func referencedStations(lines []domain.Line, extra ...int64) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	add := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, id := range extra {
		add(id)
	}
	for _, l := range lines {
		for _, s := range l.Sections {
			add(s.UpStationID)
			add(s.DownStationID)
		}
	}
	return ids
}

func stationNames(stations []domain.Station) map[int64]string {
	names := make(map[int64]string, len(stations))
	for _, s := range stations {
		names[s.ID] = s.Name
	}
	return names
}
