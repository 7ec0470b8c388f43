package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/waypointd/waypointd/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

// fixture pair used by the map demo page
const (
	testRouteStartId = "A"
	testRouteEndId   = "E"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}

}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/points", api.listPoints)
	group.GET("/points/:id", api.getPoint)
	group.GET("/computeRoutes", api.computeRoutes)
	group.GET("/testRoute", api.testRoute)
	group.GET("/nearestPoint", api.nearestPoint)
}

func (api *routingAPI) listPoints(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	points := api.routingService.ListPoints()

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewListPointsResponse(points)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) getPoint(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	id := p.ByName("id")

	point, err := api.routingService.GetPoint(id)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": point}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) computeRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request computeRouteRequest
	)

	query := r.URL.Query()

	request.StartId = query.Get("startId")
	request.EndId = query.Get("endId")

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	api.serveRoute(w, r, request.StartId, request.EndId)
}

func (api *routingAPI) testRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	api.serveRoute(w, r, testRouteStartId, testRouteEndId)
}

func (api *routingAPI) serveRoute(w http.ResponseWriter, r *http.Request, startId, endId string) {
	plan, err := api.routingService.ShortestPath(startId, endId)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewComputeRouteResponse(plan)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) nearestPoint(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestPointRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = parseFloatParam(query.Get("lat"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = parseFloatParam(query.Get("lon"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	point, distanceKM, err := api.routingService.NearestPoint(request.Lat, request.Lon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNearestPointResponse(point, distanceKM)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
