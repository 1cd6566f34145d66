package dto

import "github.com/subway-path-service/internal/domain"

// PathRequest - параметры запроса кратчайшего пути (query string)
type PathRequest struct {
	Source     int64  `query:"source" validate:"required,gt=0"`
	Target     int64  `query:"target" validate:"required,gt=0"`
	WeightType string `query:"weightType" validate:"omitempty,oneof=DISTANCE DURATION distance duration"`
}

// StationResponse - станция в составе маршрута
type StationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PathResponse - маршрут между двумя станциями с итоговой стоимостью
type PathResponse struct {
	Stations []StationResponse `json:"stations"`
	Distance int               `json:"distance"`
	Duration int               `json:"duration"`
	Fare     int               `json:"fare"`
}

// NewPathResponse собирает ответ из найденного пути. names - имена станций по ID
func NewPathResponse(path *domain.Path, names map[int64]string, fare int) *PathResponse {
	stations := make([]StationResponse, 0, len(path.StationIDs))
	for _, id := range path.StationIDs {
		stations = append(stations, StationResponse{ID: id, Name: names[id]})
	}

	return &PathResponse{
		Stations: stations,
		Distance: path.Distance,
		Duration: path.Duration,
		Fare:     fare,
	}
}
