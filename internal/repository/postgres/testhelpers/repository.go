package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/subway-path-service/internal/domain/repository"
	"github.com/subway-path-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewStationRepositoryForTest creates a station repository with test database and logger
func NewStationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StationRepository {
	return postgres.NewStationRepository(postgres.NewDBForTest(db, logger))
}

// NewLineRepositoryForTest creates a line repository with test database and logger
func NewLineRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LineRepository {
	return postgres.NewLineRepository(postgres.NewDBForTest(db, logger))
}
