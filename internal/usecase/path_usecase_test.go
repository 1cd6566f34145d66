package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/subway-path-service/internal/config"
	"github.com/subway-path-service/internal/domain"
	"github.com/subway-path-service/internal/fare"
	"github.com/subway-path-service/internal/pathfinding"
	"github.com/subway-path-service/internal/usecase"
	"github.com/subway-path-service/internal/usecase/dto"
)

func intPtr(v int) *int { return &v }

func newPathUseCase(lines []domain.Line, stations []domain.Station) (*usecase.PathUseCase, *MockStationRepository, *MockLineRepository) {
	stationRepo := &MockStationRepository{}
	lineRepo := &MockLineRepository{}

	lineRepo.On("FindAllWithSections", mock.Anything).Return(lines, nil)
	stationRepo.On("FindByIDs", mock.Anything, mock.Anything).Return(stations, nil)

	uc := usecase.NewPathUseCase(stationRepo, lineRepo, zap.NewNop(), config.PathConfig{
		MaxStations:  100,
		QueryTimeout: time.Second,
	})
	return uc, stationRepo, lineRepo
}

func stationIDs(resp *dto.PathResponse) []int64 {
	ids := make([]int64, 0, len(resp.Stations))
	for _, s := range resp.Stations {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestPathUseCase_FindPath(t *testing.T) {
	ctx := context.Background()

	t.Run("shortest distance path", func(t *testing.T) {
		uc, stationRepo, lineRepo := newPathUseCase(subwayLines(0, 0), subwayStations())

		resp, err := uc.FindPath(ctx, nil, gyodae, yangjae, domain.WeightDistance)

		require.NoError(t, err)
		assert.Equal(t, []int64{gyodae, nambuTerminal, yangjae}, stationIDs(resp))
		assert.Equal(t, "남부터미널역", resp.Stations[1].Name)
		assert.Equal(t, 5, resp.Distance)
		assert.Equal(t, 4, resp.Duration)
		assert.Equal(t, 1250, resp.Fare)

		stationRepo.AssertExpectations(t)
		lineRepo.AssertExpectations(t)
	})

	t.Run("minimum duration path", func(t *testing.T) {
		uc, _, _ := newPathUseCase(subwayLines(0, 0), subwayStations())

		resp, err := uc.FindPath(ctx, nil, gyodae, yangjae, domain.WeightDuration)

		require.NoError(t, err)
		assert.Equal(t, []int64{gyodae, nambuTerminal, yangjae}, stationIDs(resp))
		assert.Equal(t, 5, resp.Distance)
		assert.Equal(t, 4, resp.Duration)
		assert.Equal(t, 1250, resp.Fare)
	})

	t.Run("teenager discount", func(t *testing.T) {
		uc, _, _ := newPathUseCase(subwayLines(0, 0), subwayStations())

		resp, err := uc.FindPath(ctx, intPtr(13), gyodae, yangjae, domain.WeightDistance)

		require.NoError(t, err)
		// 1250 - (1250 - 350) * 0.2
		assert.Equal(t, 1070, resp.Fare)
	})

	t.Run("child discount", func(t *testing.T) {
		uc, _, _ := newPathUseCase(subwayLines(0, 0), subwayStations())

		resp, err := uc.FindPath(ctx, intPtr(6), gyodae, yangjae, domain.WeightDistance)

		require.NoError(t, err)
		// 1250 - (1250 - 350) * 0.5
		assert.Equal(t, 800, resp.Fare)
	})

	t.Run("max surcharge of lines on path", func(t *testing.T) {
		uc, _, _ := newPathUseCase(subwayLines(900, 1000), subwayStations())

		resp, err := uc.FindPath(ctx, nil, gyodae, yangjae, domain.WeightDistance)

		require.NoError(t, err)
		assert.Equal(t, 2250, resp.Fare)
	})

	t.Run("surcharge of unused line is ignored", func(t *testing.T) {
		uc, _, _ := newPathUseCase(subwayLines(900, 0), subwayStations())

		resp, err := uc.FindPath(ctx, nil, gyodae, yangjae, domain.WeightDistance)

		require.NoError(t, err)
		assert.Equal(t, 1250, resp.Fare)
	})

	t.Run("deterministic across rebuilds", func(t *testing.T) {
		uc, _, _ := newPathUseCase(subwayLines(900, 1000), subwayStations())

		first, err := uc.FindPath(ctx, intPtr(15), yangjae, gyodae, domain.WeightDuration)
		require.NoError(t, err)
		second, err := uc.FindPath(ctx, intPtr(15), yangjae, gyodae, domain.WeightDuration)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestPathUseCase_FindPath_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("same station", func(t *testing.T) {
		uc, _, _ := newPathUseCase(subwayLines(0, 0), subwayStations())

		resp, err := uc.FindPath(ctx, nil, gyodae, gyodae, domain.WeightDistance)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, pathfinding.ErrSameStation)
	})

	t.Run("unknown station", func(t *testing.T) {
		uc, _, _ := newPathUseCase(subwayLines(0, 0), subwayStations())

		resp, err := uc.FindPath(ctx, nil, gyodae, 404, domain.WeightDistance)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, pathfinding.ErrStationNotFound)
	})

	t.Run("disconnected stations", func(t *testing.T) {
		stations := append(subwayStations(), domain.Station{ID: 9, Name: "고립역"})
		uc, _, _ := newPathUseCase(subwayLines(0, 0), stations)

		resp, err := uc.FindPath(ctx, nil, gyodae, 9, domain.WeightDistance)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, pathfinding.ErrNoPath)
	})

	t.Run("section references missing station", func(t *testing.T) {
		uc, _, _ := newPathUseCase(subwayLines(0, 0), subwayStations()[:3])

		resp, err := uc.FindPath(ctx, nil, gyodae, yangjae, domain.WeightDistance)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, pathfinding.ErrGraphBuild)
	})

	t.Run("negative age", func(t *testing.T) {
		uc, _, _ := newPathUseCase(subwayLines(0, 0), subwayStations())

		resp, err := uc.FindPath(ctx, intPtr(-3), gyodae, yangjae, domain.WeightDistance)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, fare.ErrInvalidAge)
	})

	t.Run("line repository failure", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		lineRepo := &MockLineRepository{}
		dbErr := errors.New("connection refused")
		lineRepo.On("FindAllWithSections", mock.Anything).Return(nil, dbErr)

		uc := usecase.NewPathUseCase(stationRepo, lineRepo, zap.NewNop(), config.PathConfig{})

		resp, err := uc.FindPath(ctx, nil, gyodae, yangjae, domain.WeightDistance)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, dbErr)
		stationRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	})

	t.Run("station repository failure", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		lineRepo := &MockLineRepository{}
		dbErr := errors.New("timeout")
		lineRepo.On("FindAllWithSections", mock.Anything).Return(subwayLines(0, 0), nil)
		stationRepo.On("FindByIDs", mock.Anything, mock.Anything).Return(nil, dbErr)

		uc := usecase.NewPathUseCase(stationRepo, lineRepo, zap.NewNop(), config.PathConfig{})

		resp, err := uc.FindPath(ctx, nil, gyodae, yangjae, domain.WeightDistance)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestPathUseCase_RequestsReferencedStations(t *testing.T) {
	stationRepo := &MockStationRepository{}
	lineRepo := &MockLineRepository{}
	lineRepo.On("FindAllWithSections", mock.Anything).Return(subwayLines(0, 0), nil)
	stationRepo.On("FindByIDs", mock.Anything, mock.MatchedBy(func(ids []int64) bool {
		return assert.ElementsMatch(t, []int64{gyodae, gangnam, yangjae, nambuTerminal, 77}, ids)
	})).Return(subwayStations(), nil)

	uc := usecase.NewPathUseCase(stationRepo, lineRepo, zap.NewNop(), config.PathConfig{})

	_, err := uc.FindPath(context.Background(), nil, 77, gyodae, domain.WeightDistance)

	assert.ErrorIs(t, err, pathfinding.ErrStationNotFound)
	stationRepo.AssertExpectations(t)
}
