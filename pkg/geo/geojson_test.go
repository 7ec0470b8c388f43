package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/waypointd/waypointd/pkg"
	da "github.com/waypointd/waypointd/pkg/datastructure"
)

func testPlan() *da.RoutePlan {
	path := []da.Waypoint{
		da.NewWaypoint("A", -6.175392, 106.827153),
		da.NewWaypoint("B", -6.193125, 106.821810),
		da.NewWaypoint("E", -6.224895, 106.809296),
	}
	return da.NewRoutePlan(path, 6.0, 9)
}

func TestRouteFeatureCollection(t *testing.T) {
	fc := RouteFeatureCollection(testPlan())

	require.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 3)

	line := fc.Features[0]
	require.Equal(t, "LineString", line.Geometry.Type)
	require.Equal(t, pkg.ROUTE_LINE_COLOR, line.Properties["color"])
	require.Equal(t, pkg.ROUTE_LINE_WIDTH, line.Properties["width"])
	require.Equal(t, "6.00", line.Properties["distance"])
	require.Equal(t, 9, line.Properties["time"])

	// geometry coordinates are [lon, lat], swapped from the waypoint
	// representation
	coords, ok := line.Geometry.Coordinates.([][]float64)
	require.True(t, ok)
	require.Len(t, coords, 3)
	require.Equal(t, []float64{106.827153, -6.175392}, coords[0])
	require.Equal(t, []float64{106.809296, -6.224895}, coords[2])

	start := fc.Features[1]
	require.Equal(t, "Point", start.Geometry.Type)
	require.Equal(t, "Start", start.Properties["name"])
	require.Equal(t, pkg.START_MARKER_COLOR, start.Properties["color"])
	require.Equal(t, []float64{106.827153, -6.175392}, start.Geometry.Coordinates)

	end := fc.Features[2]
	require.Equal(t, "End", end.Properties["name"])
	require.Equal(t, pkg.END_MARKER_COLOR, end.Properties["color"])
	require.Equal(t, []float64{106.809296, -6.224895}, end.Geometry.Coordinates)
}

func TestPolylineFromCoords(t *testing.T) {
	coords := []Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	}

	// reference encoding from Google's polyline documentation
	require.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", PolylineFromCoords(coords))
}

func TestGreatCircleDistance(t *testing.T) {
	// Monas to Kota Tua, about 4.3 km
	d := GreatCircleDistance(-6.175392, 106.827153, -6.137555, 106.817171)
	require.InDelta(t, 4.3, d, 0.2)

	require.InDelta(t, 0, GreatCircleDistance(-6.1, 106.8, -6.1, 106.8), 1e-9)
}
