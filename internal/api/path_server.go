package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/internal/logger"
	"github.com/katalvlaran/gridpath/internal/planner"
	"github.com/katalvlaran/gridpath/search"
	"github.com/redhatinsights/platform-go-middlewares/request_id"
	"github.com/sirupsen/logrus"
)

const PATH_PREFIX = "/api/gridpath/v1"

type PathServer struct {
	planner         *planner.Planner
	router          *mux.Router
	maxRequestBytes int64
}

func NewPathServer(p *planner.Planner, r *mux.Router, maxRequestBytes int64) *PathServer {
	return &PathServer{
		planner:         p,
		router:          r,
		maxRequestBytes: maxRequestBytes,
	}
}

func (s *PathServer) Routes() {
	subRouter := s.router.PathPrefix(PATH_PREFIX).Subrouter()
	subRouter.Use(loggingMiddleware)
	subRouter.HandleFunc("/path", s.handlePath()).Methods(http.MethodPost)
	subRouter.HandleFunc("/path", methodNotAllowed(http.MethodPost))
	subRouter.HandleFunc("/strategies", s.handleStrategies()).Methods(http.MethodGet)
	subRouter.HandleFunc("/strategies", methodNotAllowed(http.MethodGet))
}

// methodNotAllowed answers any method other than allowed. It is registered
// after the method-restricted route of the same path, which mux tries first.
func methodNotAllowed(allowed string) http.HandlerFunc {

	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Allow", allowed)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed",
			fmt.Errorf("%s is not supported, use %s", req.Method, allowed))
	}
}

func (s *PathServer) handlePath() http.HandlerFunc {

	return func(w http.ResponseWriter, req *http.Request) {

		requestId := request_id.GetReqID(req.Context())
		requestLogger := logger.Log.WithFields(logrus.Fields{"request_id": requestId})

		var pathRequest planner.Request

		body := http.MaxBytesReader(w, req.Body, s.maxRequestBytes)

		if err := decodeJSON(body, &pathRequest); err != nil {
			errMsg := "Unable to process json input"
			requestLogger.WithFields(logrus.Fields{"error": err}).Debug(errMsg)
			writeError(w, http.StatusBadRequest, errMsg, err)
			return
		}

		resp, err := s.planner.Solve(requestId, pathRequest)
		if err != nil {
			status, title := classify(err)
			requestLogger.WithFields(logrus.Fields{"error": err, "status": status}).Info(title)
			writeError(w, status, title, err)
			return
		}

		WriteJSONResponse(w, http.StatusOK, resp)
	}
}

func (s *PathServer) handleStrategies() http.HandlerFunc {

	type strategiesResponse struct {
		Strategies []string `json:"strategies"`
		Heuristics []string `json:"heuristics"`
	}

	return func(w http.ResponseWriter, req *http.Request) {
		WriteJSONResponse(w, http.StatusOK, strategiesResponse{
			Strategies: s.planner.Strategies(),
			Heuristics: heuristic.Tags(),
		})
	}
}

// classify maps a planner error to an HTTP status and a response title.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, planner.ErrGridTooLarge):
		return http.StatusRequestEntityTooLarge, "Grid is too large"
	case errors.Is(err, core.ErrPathNotFound):
		return http.StatusUnprocessableEntity, "No path to goal"
	case errors.Is(err, search.ErrExpansionLimit):
		return http.StatusUnprocessableEntity, "Search expansion limit reached"
	case errors.Is(err, planner.ErrInvalidRequest),
		errors.Is(err, search.ErrUnknownStrategy),
		errors.Is(err, heuristic.ErrUnknownHeuristic),
		errors.Is(err, gridmap.ErrEmptyGrid),
		errors.Is(err, gridmap.ErrNonRectangular),
		errors.Is(err, gridmap.ErrBadTileCost),
		errors.Is(err, gridmap.ErrOutOfBounds),
		errors.Is(err, gridmap.ErrWallEndpoint),
		errors.Is(err, gridmap.ErrUnknownCostModel):
		return http.StatusBadRequest, "Invalid path request"
	default:
		return http.StatusInternalServerError, "Unable to compute path"
	}
}
