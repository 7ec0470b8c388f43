package datastructure

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrUnknownPoint      = errors.New("waypoint not found in graph")
	ErrInvalidConnection = errors.New("connection references unknown waypoint")
	ErrSelfLoop          = errors.New("connection endpoints must differ")
	ErrNonPositiveWeight = errors.New("connection distance must be positive")
)

// Waypoint is a named point on the map with fixed coordinates. Immutable
// once added to a Graph.
type Waypoint struct {
	Id  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}

func NewWaypoint(id string, lat, lon float64) Waypoint {
	return Waypoint{Id: id, Lat: lat, Lon: lon}
}

// Neighbor is one half of an undirected connection, as seen from the
// adjacency list of its tail waypoint.
type Neighbor struct {
	To     string
	Weight float64 // km
}

func NewNeighbor(to string, weight float64) Neighbor {
	return Neighbor{To: to, Weight: weight}
}

// Graph stores waypoints and their undirected weighted connections.
// Every connection appears in both endpoints' adjacency lists with the
// same weight. Mutation is serialized against concurrent readers, so
// queries may run in parallel once the seeding phase is done.
type Graph struct {
	mu        sync.RWMutex
	waypoints map[string]Waypoint
	adjacency map[string][]Neighbor

	numConnections int
}

func NewGraph() *Graph {
	return &Graph{
		waypoints: make(map[string]Waypoint),
		adjacency: make(map[string][]Neighbor),
	}
}

// AddPoint inserts a waypoint. Reports false (and leaves the existing
// waypoint untouched) when the id is already present.
func (g *Graph) AddPoint(id string, lat, lon float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.waypoints[id]; ok {
		return false
	}
	g.waypoints[id] = NewWaypoint(id, lat, lon)
	return true
}

// AddConnection links two existing waypoints with an undirected edge of
// the given distance in km. The graph is left unchanged when either
// endpoint is unknown, when the endpoints are equal, or when the
// distance is not positive.
func (g *Graph) AddConnection(id1, id2 string, distance float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.waypoints[id1]; !ok {
		return ErrInvalidConnection
	}
	if _, ok := g.waypoints[id2]; !ok {
		return ErrInvalidConnection
	}
	if id1 == id2 {
		return ErrSelfLoop
	}
	if distance <= 0 {
		return ErrNonPositiveWeight
	}

	g.adjacency[id1] = append(g.adjacency[id1], NewNeighbor(id2, distance))
	g.adjacency[id2] = append(g.adjacency[id2], NewNeighbor(id1, distance))
	g.numConnections++
	return nil
}

func (g *Graph) GetPoint(id string) (Waypoint, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	wp, ok := g.waypoints[id]
	if !ok {
		return Waypoint{}, ErrUnknownPoint
	}
	return wp, nil
}

func (g *Graph) HasPoint(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.waypoints[id]
	return ok
}

// ListPoints returns all waypoints sorted by id. The order carries no
// meaning, a stable iteration just keeps responses reproducible.
func (g *Graph) ListPoints() []Waypoint {
	g.mu.RLock()
	defer g.mu.RUnlock()

	points := make([]Waypoint, 0, len(g.waypoints))
	for _, wp := range g.waypoints {
		points = append(points, wp)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Id < points[j].Id
	})
	return points
}

// Neighbors returns a copy of the adjacency list of id, empty when the
// waypoint is unknown or has no connections.
func (g *Graph) Neighbors(id string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := g.adjacency[id]
	neighbors := make([]Neighbor, len(adj))
	copy(neighbors, adj)
	return neighbors
}

func (g *Graph) NumberOfPoints() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.waypoints)
}

func (g *Graph) NumberOfConnections() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numConnections
}
