package repository

import (
	"context"

	"github.com/subway-path-service/internal/domain"
)

// StationRepository определяет методы чтения станций
type StationRepository interface {
	// FindByIDs возвращает известные станции из списка ID, упорядоченные по ID. Неизвестные ID пропускаются
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Station, error)
}
