package pathfinding_test

import "github.com/subway-path-service/internal/domain"

const (
	gyodae int64 = iota + 1
	gangnam
	yangjae
	nambuTerminal
	isolated
)

func stations() []domain.Station {
	return []domain.Station{
		{ID: gyodae, Name: "교대역"},
		{ID: gangnam, Name: "강남역"},
		{ID: yangjae, Name: "양재역"},
		{ID: nambuTerminal, Name: "남부터미널역"},
		{ID: isolated, Name: "고립역"},
	}
}

//	교대역    --- *2호선* ---   강남역
//	|                          |
//	*3호선*                   *신분당선*
//	|                          |
//	남부터미널역 --- *3호선* --- 양재
func lines() []domain.Line {
	return []domain.Line{
		{
			ID: 1, Name: "2호선", Color: "green",
			Sections: []domain.Section{
				{UpStationID: gyodae, DownStationID: gangnam, Distance: 10, Duration: 3},
			},
		},
		{
			ID: 2, Name: "신분당선", Color: "red", Surcharge: 900,
			Sections: []domain.Section{
				{UpStationID: gangnam, DownStationID: yangjae, Distance: 10, Duration: 5},
			},
		},
		{
			ID: 3, Name: "3호선", Color: "orange", Surcharge: 1000,
			Sections: []domain.Section{
				{UpStationID: gyodae, DownStationID: nambuTerminal, Distance: 2, Duration: 2},
				{UpStationID: nambuTerminal, DownStationID: yangjae, Distance: 3, Duration: 2},
			},
		},
	}
}
