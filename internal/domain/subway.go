package domain

import (
	"fmt"
	"strings"
)

type Station struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Section - отрезок линии между двумя соседними станциями
type Section struct {
	ID            int64 `json:"id" db:"id"`
	LineID        int64 `json:"line_id" db:"line_id"`
	UpStationID   int64 `json:"up_station_id" db:"up_station_id"`
	DownStationID int64 `json:"down_station_id" db:"down_station_id"`
	Distance      int   `json:"distance" db:"distance"`
	Duration      int   `json:"duration" db:"duration"`
}

type Line struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	Surcharge int       `json:"surcharge" db:"surcharge"`
	Sections  []Section `json:"sections"`
}

// WeightType выбирает атрибут секции, используемый как вес ребра
type WeightType string

const (
	WeightDistance WeightType = "DISTANCE"
	WeightDuration WeightType = "DURATION"
)

// ParseWeightType разбирает значение из query string. Пустая строка означает DISTANCE.
func ParseWeightType(s string) (WeightType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(WeightDistance):
		return WeightDistance, nil
	case string(WeightDuration):
		return WeightDuration, nil
	default:
		return "", fmt.Errorf("unknown weight type %q", s)
	}
}

// Weight возвращает вес секции для выбранной метрики
func (w WeightType) Weight(s Section) int {
	if w == WeightDuration {
		return s.Duration
	}
	return s.Distance
}

func (w WeightType) IsValid() bool {
	return w == WeightDistance || w == WeightDuration
}

// LoginMember - аутентифицированный пользователь, от имени которого выполняется запрос
type LoginMember struct {
	ID  int64 `json:"id"`
	Age int   `json:"age"`
}

// Path - результат поиска кратчайшего маршрута
type Path struct {
	StationIDs []int64
	Distance   int
	Duration   int
	// Lines[i] - линия, которой принадлежит ребро StationIDs[i] -> StationIDs[i+1]
	Lines []Line
}

// MaxSurcharge возвращает максимальную надбавку среди линий маршрута
func (p *Path) MaxSurcharge() int {
	max := 0
	for _, l := range p.Lines {
		if l.Surcharge > max {
			max = l.Surcharge
		}
	}
	return max
}

// LineIDs возвращает уникальные ID линий в порядке первого использования
func (p *Path) LineIDs() []int64 {
	seen := make(map[int64]struct{}, len(p.Lines))
	ids := make([]int64, 0, len(p.Lines))
	for _, l := range p.Lines {
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		ids = append(ids, l.ID)
	}
	return ids
}
