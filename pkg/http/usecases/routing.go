package usecases

import (
	"errors"

	"github.com/waypointd/waypointd/pkg/datastructure"
	"github.com/waypointd/waypointd/pkg/engine/routing"
	"github.com/waypointd/waypointd/pkg/util"
	"go.uber.org/zap"
)

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialindex SpatialIndex) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialindex,
	}
}

func (rs *RoutingService) ListPoints() []datastructure.Waypoint {
	return rs.engine.GetGraph().ListPoints()
}

func (rs *RoutingService) GetPoint(id string) (datastructure.Waypoint, error) {
	wp, err := rs.engine.GetGraph().GetPoint(id)
	if err != nil {
		return datastructure.Waypoint{}, util.WrapErrorf(err, util.ErrNotFound,
			"waypoint %q is not part of the graph", id)
	}
	return wp, nil
}

// ShortestPath answers one routing query. Unknown ids and missing
// routes both surface as not-found to the caller.
func (rs *RoutingService) ShortestPath(startId, endId string) (*datastructure.RoutePlan, error) {
	plan, err := rs.engine.FindShortestPath(startId, endId)
	if err != nil {
		switch {
		case errors.Is(err, datastructure.ErrUnknownPoint):
			return nil, util.WrapErrorf(err, util.ErrNotFound,
				"unknown waypoint in route query from %q to %q", startId, endId)
		case errors.Is(err, routing.ErrPathNotFound):
			return nil, util.WrapErrorf(err, util.ErrNotFound,
				"no route found from %q to %q", startId, endId)
		default:
			return nil, util.WrapErrorf(err, util.ErrInternalServerError,
				"route query from %q to %q failed", startId, endId)
		}
	}
	return plan, nil
}

func (rs *RoutingService) NearestPoint(lat, lon float64) (datastructure.Waypoint, float64, error) {
	wp, distanceKM, found := rs.spatialIndex.NearestWaypoint(lat, lon)
	if !found {
		return datastructure.Waypoint{}, 0, util.WrapErrorf(nil, util.ErrNotFound,
			"no waypoint near %f,%f", lat, lon)
	}
	return wp, distanceKM, nil
}
