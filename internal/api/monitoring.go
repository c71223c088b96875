package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MonitoringServer struct {
	router *mux.Router
}

func NewMonitoringServer(r *mux.Router) *MonitoringServer {
	return &MonitoringServer{
		router: r,
	}
}

func (s *MonitoringServer) Routes() {
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth()).Methods(http.MethodGet)
}

func (s *MonitoringServer) handleHealth() http.HandlerFunc {

	type healthResponse struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, req *http.Request) {
		WriteJSONResponse(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
