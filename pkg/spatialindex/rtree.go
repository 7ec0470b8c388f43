package spatialindex

import (
	"github.com/tidwall/rtree"
	da "github.com/waypointd/waypointd/pkg/datastructure"
	"github.com/waypointd/waypointd/pkg/geo"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[da.Waypoint]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[da.Waypoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build index every waypoint of the graph, each leaf having a bounding
// box with radius boundingBoxRadius (in km)
func (rt *Rtree) Build(graph *da.Graph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")

	for _, wp := range graph.ListPoints() {
		lowerLat, lowerLon := geo.GetDestinationPoint(wp.Lat, wp.Lon, 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(wp.Lat, wp.Lon, 45, boundingBoxRadius)

		rt.tr.Insert([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat}, wp)
	}

	log.Info("R-tree spatial index built.", zap.Int("waypoints", graph.NumberOfPoints()))
}

// SearchWithinRadius search for all waypoints within radius (in km) from the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []da.Waypoint {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]da.Waypoint, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data da.Waypoint) bool {
			results = append(results, data)
			return true
		})
	return results
}

// NearestWaypoint expanding-radius lookup of the closest indexed
// waypoint to (qLat, qLon). Returns the great-circle distance in km.
func (rt *Rtree) NearestWaypoint(qLat, qLon float64) (da.Waypoint, float64, bool) {
	const maxRadiusKM = 20000.0

	for radius := 1.0; radius <= maxRadiusKM; radius *= 2 {
		candidates := rt.SearchWithinRadius(qLat, qLon, radius)
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		bestDist := geo.GreatCircleDistance(qLat, qLon, best.Lat, best.Lon)
		for _, cand := range candidates[1:] {
			d := geo.GreatCircleDistance(qLat, qLon, cand.Lat, cand.Lon)
			if d < bestDist {
				best, bestDist = cand, d
			}
		}
		return best, bestDist, true
	}

	return da.Waypoint{}, 0, false
}
