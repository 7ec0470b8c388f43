package routing

import (
	"errors"
	"math"

	"github.com/waypointd/waypointd/pkg"
	da "github.com/waypointd/waypointd/pkg/datastructure"
	"go.uber.org/zap"
)

var ErrPathNotFound = errors.New("no route between the given waypoints")

// Engine answers point-to-point shortest-path queries against one
// graph. The graph is shared, not owned: concurrent queries are safe as
// long as the graph is no longer mutated.
type Engine struct {
	graph *da.Graph
	log   *zap.Logger
}

func NewEngine(graph *da.Graph, log *zap.Logger) *Engine {
	return &Engine{graph: graph, log: log}
}

func (e *Engine) GetGraph() *da.Graph {
	return e.graph
}

// FindShortestPath computes the minimum-total-weight path between two
// waypoint ids along with the derived distance and travel time.
func (e *Engine) FindShortestPath(startId, endId string) (*da.RoutePlan, error) {
	if !e.graph.HasPoint(startId) {
		return nil, da.ErrUnknownPoint
	}
	if !e.graph.HasPoint(endId) {
		return nil, da.ErrUnknownPoint
	}

	query := NewDijkstra(e.graph)
	totalDistance, pathIds, found := query.ShortestPath(startId, endId)
	if !found {
		return nil, ErrPathNotFound
	}

	path := make([]da.Waypoint, len(pathIds))
	for i, id := range pathIds {
		wp, err := e.graph.GetPoint(id)
		if err != nil {
			return nil, err
		}
		path[i] = wp
	}

	e.log.Debug("shortest path query answered",
		zap.String("start", startId), zap.String("end", endId),
		zap.Float64("distance_km", totalDistance),
		zap.Int("settled", query.numSettledNodes))

	return da.NewRoutePlan(path, totalDistance, EstimateTravelTime(totalDistance)), nil
}

// EstimateTravelTime derives minutes from km at the assumed average
// speed. math.Round rounds half away from zero, so 9.45 -> 9 and
// 4.5 -> 5 (ties round upward for positive distances).
func EstimateTravelTime(distanceKM float64) int {
	return int(math.Round(distanceKM / pkg.AVERAGE_SPEED_KMH * 60.0))
}
