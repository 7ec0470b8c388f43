package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	da "github.com/waypointd/waypointd/pkg/datastructure"
	"github.com/waypointd/waypointd/pkg/engine/routing"
	helper "github.com/waypointd/waypointd/pkg/http/router/routerhelper"
	"github.com/waypointd/waypointd/pkg/http/usecases"
	"github.com/waypointd/waypointd/pkg/logger"
	"github.com/waypointd/waypointd/pkg/spatialindex"
)

func newTestRouter(t *testing.T) http.Handler {
	log, err := logger.New()
	require.NoError(t, err)

	graph, err := da.NewDefaultGraph()
	require.NoError(t, err)

	rt := spatialindex.NewRtree()
	rt.Build(graph, 0.05, log)

	service := usecases.NewRoutingService(log, routing.NewEngine(graph, log), rt)

	router := httprouter.New()
	api := New(service, log)
	api.Routes(helper.NewRouteGroup(router, "/api"))
	return router
}

func doRequest(t *testing.T, handler http.Handler, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestListPointsEndpoint(t *testing.T) {
	handler := newTestRouter(t)

	rec, body := doRequest(t, handler, "/api/points")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]interface{})
	points := data["points"].([]interface{})
	require.Len(t, points, 5)

	first := points[0].(map[string]interface{})
	require.Equal(t, "A", first["id"])
	require.Contains(t, first, "lat")
	require.Contains(t, first, "lng")
}

func TestGetPointEndpoint(t *testing.T) {
	handler := newTestRouter(t)

	rec, body := doRequest(t, handler, "/api/points/B")
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]interface{})
	require.Equal(t, "B", data["id"])

	rec, _ = doRequest(t, handler, "/api/points/Z")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestComputeRoutesEndpoint(t *testing.T) {
	handler := newTestRouter(t)

	rec, body := doRequest(t, handler, "/api/computeRoutes?startId=A&endId=E")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]interface{})
	require.Equal(t, "6.00", data["totalDistance"])
	require.Equal(t, float64(9), data["estimatedTime"])

	path := data["path"].([]interface{})
	require.Len(t, path, 3)
	require.Equal(t, "A", path[0].(map[string]interface{})["id"])
	require.Equal(t, "E", path[2].(map[string]interface{})["id"])

	require.Equal(t, "A", data["startPoint"].(map[string]interface{})["id"])
	require.Equal(t, "E", data["endPoint"].(map[string]interface{})["id"])

	summary := data["summary"].(map[string]interface{})
	require.Equal(t, "A", summary["from"])
	require.Equal(t, "E", summary["to"])
	require.Equal(t, "6.00 km", summary["distance"])
	require.Equal(t, "9 minutes", summary["time"])

	geojson := data["geojson"].(map[string]interface{})
	require.Equal(t, "FeatureCollection", geojson["type"])
	require.Len(t, geojson["features"].([]interface{}), 3)

	require.NotEmpty(t, data["polyline"])
}

func TestComputeRoutesValidation(t *testing.T) {
	handler := newTestRouter(t)

	testCases := []struct {
		name   string
		target string
		want   int
	}{
		{name: "missing both ids", target: "/api/computeRoutes", want: http.StatusBadRequest},
		{name: "missing endId", target: "/api/computeRoutes?startId=A", want: http.StatusBadRequest},
		{name: "unknown start", target: "/api/computeRoutes?startId=Z&endId=E", want: http.StatusNotFound},
		{name: "unknown end", target: "/api/computeRoutes?startId=A&endId=Z", want: http.StatusNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doRequest(t, handler, tt.target)
			require.Equal(t, tt.want, rec.Code)
			require.Contains(t, body, "error")
		})
	}
}

func TestTestRouteEndpoint(t *testing.T) {
	handler := newTestRouter(t)

	rec, body := doRequest(t, handler, "/api/testRoute")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]interface{})
	require.Equal(t, "6.00", data["totalDistance"])

	summary := data["summary"].(map[string]interface{})
	require.Equal(t, "A", summary["from"])
	require.Equal(t, "E", summary["to"])
}

func TestNearestPointEndpoint(t *testing.T) {
	handler := newTestRouter(t)

	rec, body := doRequest(t, handler, "/api/nearestPoint?lat=-6.175&lon=106.827")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]interface{})
	point := data["point"].(map[string]interface{})
	require.Equal(t, "A", point["id"])

	rec, _ = doRequest(t, handler, "/api/nearestPoint?lat=abc&lon=106.8")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
