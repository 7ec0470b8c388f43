package geo

import (
	"github.com/waypointd/waypointd/pkg"
	da "github.com/waypointd/waypointd/pkg/datastructure"
	"github.com/waypointd/waypointd/pkg/util"
)

// GeoJSON output for the map client. Geometry coordinates follow the
// GeoJSON convention of [lon, lat], the reverse of the waypoint
// representation.

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry coordinates are []float64 for a Point and [][]float64 for a
// LineString.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// RouteFeatureCollection renders a route plan as one LineString plus
// start and end markers. Pure derivation, no failure modes.
func RouteFeatureCollection(plan *da.RoutePlan) FeatureCollection {
	path := plan.GetPath()

	lineCoords := make([][]float64, len(path))
	for i, wp := range path {
		lineCoords[i] = []float64{wp.Lon, wp.Lat}
	}

	start := plan.GetStartPoint()
	end := plan.GetEndPoint()

	return FeatureCollection{
		Type: "FeatureCollection",
		Features: []Feature{
			{
				Type: "Feature",
				Geometry: Geometry{
					Type:        "LineString",
					Coordinates: lineCoords,
				},
				Properties: map[string]interface{}{
					"distance": util.FormatKM(plan.GetTotalDistance()),
					"time":     plan.GetEstimatedTime(),
					"color":    pkg.ROUTE_LINE_COLOR,
					"width":    pkg.ROUTE_LINE_WIDTH,
				},
			},
			pointFeature(start, "Start", pkg.START_MARKER_COLOR),
			pointFeature(end, "End", pkg.END_MARKER_COLOR),
		},
	}
}

func pointFeature(wp da.Waypoint, name, color string) Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{wp.Lon, wp.Lat},
		},
		Properties: map[string]interface{}{
			"name":  name,
			"color": color,
		},
	}
}
