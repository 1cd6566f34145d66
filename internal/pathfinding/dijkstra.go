package pathfinding

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/subway-path-service/internal/domain"
)

// ShortestPath returns the cheapest path from source to target under the
// graph's weight type.
//
// Errors, in order of precedence:
//
//   - ErrSameStation     if source == target.
//   - ErrStationNotFound if either station is not a vertex.
//   - ErrNoPath          if target is unreachable from source.
func (g *Graph) ShortestPath(source, target int64) (*domain.Path, error) {
	if source == target {
		return nil, fmt.Errorf("%w: %d", ErrSameStation, source)
	}
	if !g.HasStation(source) {
		return nil, fmt.Errorf("%w: source %d", ErrStationNotFound, source)
	}
	if !g.HasStation(target) {
		return nil, fmt.Errorf("%w: target %d", ErrStationNotFound, target)
	}

	r := newRunner(g, source)
	r.run(target)

	if r.cost[target] == math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, source, target)
	}

	return r.path(source, target), nil
}

// runner holds the mutable state of one search.
type runner struct {
	g       *Graph
	cost    map[int64]int64
	prev    map[int64]int64
	via     map[int64]edge // edge used to reach a vertex
	visited map[int64]bool
	pq      stationPQ
}

func newRunner(g *Graph, source int64) *runner {
	n := len(g.adj)
	r := &runner{
		g:       g,
		cost:    make(map[int64]int64, n),
		prev:    make(map[int64]int64, n),
		via:     make(map[int64]edge, n),
		visited: make(map[int64]bool, n),
		pq:      make(stationPQ, 0, n),
	}
	for id := range g.adj {
		r.cost[id] = math.MaxInt64
	}
	r.cost[source] = 0
	heap.Push(&r.pq, &stationItem{id: source, cost: 0})
	return r
}

// run settles vertices until target is final or the queue is exhausted.
func (r *runner) run(target int64) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stationItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == target {
			return
		}
		r.relax(u)
	}
}

func (r *runner) relax(u int64) {
	for _, e := range r.g.adj[u] {
		if r.visited[e.to] {
			continue
		}
		next := r.cost[u] + int64(e.weight)
		// strict: the first predecessor found at a given cost is kept
		if next >= r.cost[e.to] {
			continue
		}
		r.cost[e.to] = next
		r.prev[e.to] = u
		r.via[e.to] = e
		heap.Push(&r.pq, &stationItem{id: e.to, cost: next})
	}
}

// path walks predecessor links back from target and reverses them.
func (r *runner) path(source, target int64) *domain.Path {
	var (
		ids   []int64
		lines []domain.Line
		p     = &domain.Path{}
	)
	for v := target; v != source; v = r.prev[v] {
		e := r.via[v]
		ids = append(ids, v)
		lines = append(lines, e.line)
		p.Distance += e.distance
		p.Duration += e.duration
	}
	ids = append(ids, source)

	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}

	p.StationIDs = ids
	p.Lines = lines
	return p
}

type stationItem struct {
	id   int64
	cost int64
}

// stationPQ is a min-heap ordered by (cost, station ID).
type stationPQ []*stationItem

func (pq stationPQ) Len() int { return len(pq) }

func (pq stationPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].id < pq[j].id
}

func (pq stationPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *stationPQ) Push(x interface{}) { *pq = append(*pq, x.(*stationItem)) }

func (pq *stationPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
