package pathfinding

import "errors"

var (
	// ErrStationNotFound indicates that source or target is not a vertex of the graph.
	ErrStationNotFound = errors.New("pathfinding: station not found")

	// ErrSameStation indicates that source and target are the same station.
	ErrSameStation = errors.New("pathfinding: source and target are the same station")

	// ErrNoPath indicates that both stations exist but are not connected.
	ErrNoPath = errors.New("pathfinding: stations are not connected")

	// ErrGraphBuild indicates inconsistent line data: a section pointing at an
	// unknown station, a negative weight, a self-loop or an oversized network.
	ErrGraphBuild = errors.New("pathfinding: cannot build graph")
)
