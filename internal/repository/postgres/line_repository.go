package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/subway-path-service/internal/domain"
	"github.com/subway-path-service/internal/domain/repository"
	"go.uber.org/zap"
)

type lineRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLineRepository(db *DB) repository.LineRepository {
	return &lineRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// lineSectionRow - строка LEFT JOIN линии и ее секции. У линии без секций поля секции NULL
type lineSectionRow struct {
	LineID        int64         `db:"line_id"`
	Name          string        `db:"name"`
	Color         string        `db:"color"`
	Surcharge     int           `db:"surcharge"`
	SectionID     sql.NullInt64 `db:"section_id"`
	UpStationID   sql.NullInt64 `db:"up_station_id"`
	DownStationID sql.NullInt64 `db:"down_station_id"`
	Distance      sql.NullInt32 `db:"distance"`
	Duration      sql.NullInt32 `db:"duration"`
}

func (r *lineRepository) FindAllWithSections(ctx context.Context) ([]domain.Line, error) {
	query := `
		SELECT
			l.id AS line_id, l.name, l.color, l.surcharge,
			s.id AS section_id, s.up_station_id, s.down_station_id,
			s.distance, s.duration
		FROM lines l
		LEFT JOIN sections s ON s.line_id = l.id
		ORDER BY l.id, s.position
	`

	var rows []lineSectionRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to get lines with sections", zap.Error(err))
		return nil, fmt.Errorf("select lines: %w", err)
	}

	return groupLines(rows), nil
}

// groupLines собирает строки, упорядоченные по line_id, в линии с секциями
func groupLines(rows []lineSectionRow) []domain.Line {
	lines := make([]domain.Line, 0)
	for _, row := range rows {
		if len(lines) == 0 || lines[len(lines)-1].ID != row.LineID {
			lines = append(lines, domain.Line{
				ID:        row.LineID,
				Name:      row.Name,
				Color:     row.Color,
				Surcharge: row.Surcharge,
				Sections:  []domain.Section{},
			})
		}
		if !row.SectionID.Valid {
			continue
		}

		current := &lines[len(lines)-1]
		current.Sections = append(current.Sections, domain.Section{
			ID:            row.SectionID.Int64,
			LineID:        row.LineID,
			UpStationID:   row.UpStationID.Int64,
			DownStationID: row.DownStationID.Int64,
			Distance:      int(row.Distance.Int32),
			Duration:      int(row.Duration.Int32),
		})
	}
	return lines
}
