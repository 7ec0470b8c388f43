package usecases

import (
	"github.com/waypointd/waypointd/pkg/datastructure"
)

type RoutingEngine interface {
	GetGraph() *datastructure.Graph
	FindShortestPath(startId, endId string) (*datastructure.RoutePlan, error)
}

type SpatialIndex interface {
	SearchWithinRadius(qLat, qLon, radius float64) []datastructure.Waypoint
	NearestWaypoint(qLat, qLon float64) (datastructure.Waypoint, float64, bool)
}
