package controllers

import (
	"fmt"

	"github.com/waypointd/waypointd/pkg/datastructure"
	"github.com/waypointd/waypointd/pkg/geo"
	"github.com/waypointd/waypointd/pkg/util"
)

type computeRouteRequest struct {
	StartId string `json:"startId" validate:"required"`
	EndId   string `json:"endId" validate:"required"`
}

type nearestPointRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

type listPointsResponse struct {
	Points []datastructure.Waypoint `json:"points"`
}

func NewListPointsResponse(points []datastructure.Waypoint) listPointsResponse {
	return listPointsResponse{Points: points}
}

type routeSummary struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance string `json:"distance"`
	Time     string `json:"time"`
}

type computeRouteResponse struct {
	Path          []datastructure.Waypoint `json:"path"`
	TotalDistance string                   `json:"totalDistance"`
	EstimatedTime int                      `json:"estimatedTime"`
	StartPoint    datastructure.Waypoint   `json:"startPoint"`
	EndPoint      datastructure.Waypoint   `json:"endPoint"`
	Summary       routeSummary             `json:"summary"`
	Geojson       geo.FeatureCollection    `json:"geojson"`
	Polyline      string                   `json:"polyline"`
}

func NewComputeRouteResponse(plan *datastructure.RoutePlan) computeRouteResponse {
	distance := util.FormatKM(plan.GetTotalDistance())
	minutes := plan.GetEstimatedTime()

	pathCoords := make([]geo.Coordinate, len(plan.GetPath()))
	for i, wp := range plan.GetPath() {
		pathCoords[i] = geo.NewCoordinate(wp.Lat, wp.Lon)
	}

	return computeRouteResponse{
		Path:          plan.GetPath(),
		TotalDistance: distance,
		EstimatedTime: minutes,
		StartPoint:    plan.GetStartPoint(),
		EndPoint:      plan.GetEndPoint(),
		Summary: routeSummary{
			From:     plan.GetStartPoint().Id,
			To:       plan.GetEndPoint().Id,
			Distance: fmt.Sprintf("%s km", distance),
			Time:     fmt.Sprintf("%d minutes", minutes),
		},
		Geojson:  geo.RouteFeatureCollection(plan),
		Polyline: geo.PolylineFromCoords(pathCoords),
	}
}

type nearestPointResponse struct {
	Point    datastructure.Waypoint `json:"point"`
	Distance string                 `json:"distance"`
}

func NewNearestPointResponse(wp datastructure.Waypoint, distanceKM float64) nearestPointResponse {
	return nearestPointResponse{
		Point:    wp,
		Distance: util.FormatKM(distanceKM),
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
