package pathfinding

import (
	"fmt"
	"sort"

	"github.com/subway-path-service/internal/domain"
)

// DefaultMaxStations bounds the number of vertices a single query may build.
const DefaultMaxStations = 10000

// Options configures graph construction.
type Options struct {
	MaxStations int
}

// Option is a functional option for Build.
type Option func(*Options)

// WithMaxStations overrides DefaultMaxStations. Non-positive values are ignored.
func WithMaxStations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxStations = n
		}
	}
}

// edge is one direction of a surviving section between two stations.
type edge struct {
	to       int64
	weight   int
	distance int
	duration int
	line     domain.Line
}

// Graph is an undirected weighted station graph built for a single query.
// It is never mutated after Build returns.
type Graph struct {
	weightType domain.WeightType
	adj        map[int64][]edge
}

type stationPair struct {
	a, b int64
}

func pairOf(u, v int64) stationPair {
	if u > v {
		u, v = v, u
	}
	return stationPair{a: u, b: v}
}

// Build converts the line snapshot into a graph weighted by weightType.
// Every station in stations becomes a vertex, even if no section touches it.
func Build(stations []domain.Station, lines []domain.Line, weightType domain.WeightType, opts ...Option) (*Graph, error) {
	cfg := Options{MaxStations: DefaultMaxStations}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !weightType.IsValid() {
		return nil, fmt.Errorf("%w: unknown weight type %q", ErrGraphBuild, weightType)
	}
	if len(stations) > cfg.MaxStations {
		return nil, fmt.Errorf("%w: %d stations exceed limit of %d", ErrGraphBuild, len(stations), cfg.MaxStations)
	}

	g := &Graph{
		weightType: weightType,
		adj:        make(map[int64][]edge, len(stations)),
	}
	for _, s := range stations {
		g.adj[s.ID] = nil
	}

	best := make(map[stationPair]edge)
	for _, line := range lines {
		owner := line
		owner.Sections = nil

		for _, s := range line.Sections {
			if err := g.checkSection(line, s); err != nil {
				return nil, err
			}

			candidate := edge{
				weight:   weightType.Weight(s),
				distance: s.Distance,
				duration: s.Duration,
				line:     owner,
			}
			key := pairOf(s.UpStationID, s.DownStationID)
			if current, ok := best[key]; !ok || preferred(candidate, current) {
				best[key] = candidate
			}
		}
	}

	for key, e := range best {
		forward, backward := e, e
		forward.to = key.b
		backward.to = key.a
		g.adj[key.a] = append(g.adj[key.a], forward)
		g.adj[key.b] = append(g.adj[key.b], backward)
	}
	for id := range g.adj {
		neighbours := g.adj[id]
		sort.Slice(neighbours, func(i, j int) bool { return neighbours[i].to < neighbours[j].to })
	}

	return g, nil
}

func (g *Graph) checkSection(line domain.Line, s domain.Section) error {
	if _, ok := g.adj[s.UpStationID]; !ok {
		return fmt.Errorf("%w: line %d references unknown station %d", ErrGraphBuild, line.ID, s.UpStationID)
	}
	if _, ok := g.adj[s.DownStationID]; !ok {
		return fmt.Errorf("%w: line %d references unknown station %d", ErrGraphBuild, line.ID, s.DownStationID)
	}
	if s.UpStationID == s.DownStationID {
		return fmt.Errorf("%w: line %d has a self-loop at station %d", ErrGraphBuild, line.ID, s.UpStationID)
	}
	if s.Distance < 0 || s.Duration < 0 {
		return fmt.Errorf("%w: line %d section %d→%d has negative weight", ErrGraphBuild, line.ID, s.UpStationID, s.DownStationID)
	}
	return nil
}

// preferred reports whether c should replace current as the edge for a station pair:
// lower weight, then lower surcharge, then lower line ID.
func preferred(c, current edge) bool {
	if c.weight != current.weight {
		return c.weight < current.weight
	}
	if c.line.Surcharge != current.line.Surcharge {
		return c.line.Surcharge < current.line.Surcharge
	}
	return c.line.ID < current.line.ID
}

// WeightType returns the metric the graph was built with.
func (g *Graph) WeightType() domain.WeightType {
	return g.weightType
}

// HasStation reports whether id is a vertex of the graph.
func (g *Graph) HasStation(id int64) bool {
	_, ok := g.adj[id]
	return ok
}

// StationCount returns the number of vertices.
func (g *Graph) StationCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of undirected edges after parallel-edge resolution.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, es := range g.adj {
		n += len(es)
	}
	return n / 2
}
