package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/subway-path-service/internal/domain"
)

// MockStationRepository - мок для StationRepository
type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Station, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

// MockLineRepository - мок для LineRepository
type MockLineRepository struct {
	mock.Mock
}

func (m *MockLineRepository) FindAllWithSections(ctx context.Context) ([]domain.Line, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Line), args.Error(1)
}

const (
	gyodae int64 = iota + 1
	gangnam
	yangjae
	nambuTerminal
)

func subwayStations() []domain.Station {
	return []domain.Station{
		{ID: gyodae, Name: "교대역"},
		{ID: gangnam, Name: "강남역"},
		{ID: yangjae, Name: "양재역"},
		{ID: nambuTerminal, Name: "남부터미널역"},
	}
}

// subwayLines - сеть из приемочного сценария; надбавки задаются отдельно,
// т.к. в исходном сценарии линии зарегистрированы без надбавки
func subwayLines(sinbundangSurcharge, line3Surcharge int) []domain.Line {
	return []domain.Line{
		{
			ID: 1, Name: "2호선", Color: "green",
			Sections: []domain.Section{
				{UpStationID: gyodae, DownStationID: gangnam, Distance: 10, Duration: 3},
			},
		},
		{
			ID: 2, Name: "신분당선", Color: "red", Surcharge: sinbundangSurcharge,
			Sections: []domain.Section{
				{UpStationID: gangnam, DownStationID: yangjae, Distance: 10, Duration: 5},
			},
		},
		{
			ID: 3, Name: "3호선", Color: "orange", Surcharge: line3Surcharge,
			Sections: []domain.Section{
				{UpStationID: gyodae, DownStationID: nambuTerminal, Distance: 2, Duration: 2},
				{UpStationID: nambuTerminal, DownStationID: yangjae, Distance: 3, Duration: 2},
			},
		},
	}
}
