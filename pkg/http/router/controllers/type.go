package controllers

import (
	"github.com/waypointd/waypointd/pkg/datastructure"
)

type RoutingService interface {
	ListPoints() []datastructure.Waypoint
	GetPoint(id string) (datastructure.Waypoint, error)
	ShortestPath(startId, endId string) (*datastructure.RoutePlan, error)
	NearestPoint(lat, lon float64) (datastructure.Waypoint, float64, error)
}
