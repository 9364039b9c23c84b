package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/navigatorx-junction/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type intersectionAPI struct {
	intersectionService IntersectionService
	log                 *zap.Logger
}

func New(intersectionService IntersectionService, log *zap.Logger) *intersectionAPI {
	return &intersectionAPI{
		intersectionService: intersectionService,
		log:                 log,
	}
}

func (api *intersectionAPI) Routes(group *helper.RouteGroup) {
	group.GET("/intersections/:nodeID", api.getIntersection)
	group.GET("/intersections/:nodeID/turns", api.getTurns)
	group.GET("/nearestIntersection", api.nearestIntersection)
	group.GET("/ways/:wayID/issues", api.wayIssues)
}

// getIntersection
//
//	@Summary		highway segments meeting at a node, ways passing through the node are split into halves
//	@Tags			intersections
//	@Produce		json
//	@Param			nodeID	path		int	true	"osm node id"
//	@Success		200		{object}	intersectionResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/intersections/{nodeID} [get]
func (api *intersectionAPI) getIntersection(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request intersectionRequest
		err     error
	)

	request.NodeID, err = strconv.ParseInt(p.ByName("nodeID"), 10, 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("nodeID is required and must be a valid int"))
		return
	}
	if err := validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	in, err := api.intersectionService.GetIntersection(request.NodeID)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewIntersectionResponse(in, api.intersectionService)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// getTurns
//
//	@Summary		legal turns at a node arriving along the from segment
//	@Tags			intersections
//	@Produce		json
//	@Param			nodeID	path		int		true	"osm node id"
//	@Param			from	query		string	true	"from segment id, e.g. w12, w12.a"
//	@Success		200		{object}	turnsResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/intersections/{nodeID}/turns [get]
func (api *intersectionAPI) getTurns(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request turnsRequest
		err     error
	)

	request.NodeID, err = strconv.ParseInt(p.ByName("nodeID"), 10, 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("nodeID is required and must be a valid int"))
		return
	}
	request.From = r.URL.Query().Get("from")
	if err := validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	in, turns, err := api.intersectionService.GetTurns(request.NodeID, request.From)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewTurnsResponse(in, request.From, turns)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// nearestIntersection
//
//	@Summary		intersection at the junction nearest to a coordinate
//	@Tags			intersections
//	@Produce		json
//	@Param			lat	query		number	true	"latitude"
//	@Param			lon	query		number	true	"longitude"
//	@Success		200	{object}	intersectionResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Router			/nearestIntersection [get]
func (api *intersectionAPI) nearestIntersection(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestIntersectionRequest
		err     error
	)

	query := r.URL.Query()
	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	if err := validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	in, dist, err := api.intersectionService.NearestIntersection(request.Lat, request.Lon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	resp := NewIntersectionResponse(in, api.intersectionService)
	resp.Distance = &dist

	headers := make(http.Header)
	if err := writeJSON(w, http.StatusOK, envelope{"data": resp}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// wayIssues
//
//	@Summary		geometry mismatch issues of a way, with the proposed fixes
//	@Tags			validation
//	@Produce		json
//	@Param			wayID	path		int	true	"osm way id"
//	@Success		200		{array}		issueResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/ways/{wayID}/issues [get]
func (api *intersectionAPI) wayIssues(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request wayIssuesRequest
		err     error
	)

	request.WayID, err = strconv.ParseInt(p.ByName("wayID"), 10, 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("wayID is required and must be a valid int"))
		return
	}
	if err := validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	issues, err := api.intersectionService.WayIssues(request.WayID)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewIssuesResponse(issues)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
