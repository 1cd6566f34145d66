package repository

import (
	"context"

	"github.com/subway-path-service/internal/domain"
)

// LineRepository определяет методы чтения линий метро
type LineRepository interface {
	// FindAllWithSections возвращает снимок всех линий вместе с их секциями.
	// Секции каждой линии упорядочены от начала цепочки к концу.
	FindAllWithSections(ctx context.Context) ([]domain.Line, error)
}
