// Package pathfinding builds a routing graph from a snapshot of subway lines
// and answers single-pair shortest-path queries over it.
//
// The station graph is undirected: a section up→down can be travelled in both
// directions and keeps its own distance and duration either way. When several
// sections connect the same pair of stations only one edge survives, chosen by
//
//  1. the lowest weight under the requested metric,
//  2. then the lowest line surcharge,
//  3. then the lowest line ID.
//
// The surviving edge carries the owning line, so the fare layer sees exactly
// the lines the chosen path rides.
//
// Search is Dijkstra with a binary heap and lazy decrease-key. Equal-cost
// paths are resolved deterministically: the heap pops by (cost, station ID),
// neighbours are relaxed in ascending station ID order and a predecessor is
// only replaced by a strictly cheaper one.
//
// Complexity:
//
//   - Build: O(S log S) for S sections (adjacency lists are sorted).
//   - Search: O((V + E) log V).
package pathfinding
