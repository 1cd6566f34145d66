package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/subway-path-service/internal/domain"
	"github.com/subway-path-service/internal/domain/repository"
	"go.uber.org/zap"
)

type stationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *stationRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Station, error) {
	if len(ids) == 0 {
		return []domain.Station{}, nil
	}

	query := `SELECT id, name FROM stations WHERE id = ANY($1) ORDER BY id`

	var stations []domain.Station
	if err := r.db.SelectContext(ctx, &stations, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to get stations by IDs", zap.Int("count", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("select stations by ids: %w", err)
	}

	return stations, nil
}
