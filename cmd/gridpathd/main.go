package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/katalvlaran/gridpath/internal/api"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logger"
	"github.com/katalvlaran/gridpath/internal/planner"
	"github.com/katalvlaran/gridpath/internal/utils"
	"github.com/katalvlaran/gridpath/search"
	"github.com/redhatinsights/platform-go-middlewares/request_id"
	"github.com/sirupsen/logrus"
)

const REQUEST_ID_HEADER = "x-request-id"

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		logger.Log.Fatal("Invalid configuration: ", err)
	}
	if err := logger.InitLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		logger.Log.Fatal("Unable to initialise logger: ", err)
	}

	var apiAddrPtr = flag.String("apiAddr", cfg.ApiAddr, "Hostname:port of the path server")
	var monitoringAddrPtr = flag.String("monitoringAddr", cfg.MonitoringAddr, "Hostname:port of the monitoring server")
	flag.Parse()

	logger.Log.Info("Starting gridpath service")
	logger.Log.Info("gridpath configuration:\n", cfg)

	p := planner.New(planner.Defaults{
		Strategy:      cfg.DefaultStrategy,
		Connectivity:  cfg.DefaultConnectivity,
		CostModel:     cfg.DefaultCostModel,
		MaxExpansions: cfg.MaxExpansions,
		MaxCells:      cfg.MaxCells,
	}, logrus.NewEntry(logger.Log))
	if _, err := search.New(cfg.DefaultStrategy); err != nil {
		logger.Log.Fatal("Invalid default strategy: ", err)
	}

	apiMux := mux.NewRouter()
	apiMux.Use(request_id.ConfiguredRequestID(REQUEST_ID_HEADER))
	apiMux.Use(handlers.RecoveryHandler(handlers.RecoveryLogger(logger.Log), handlers.PrintRecoveryStack(true)))

	pathServer := api.NewPathServer(p, apiMux, cfg.MaxRequestBytes)
	pathServer.Routes()

	monitoringMux := mux.NewRouter()
	monitoringMux.Use(request_id.ConfiguredRequestID(REQUEST_ID_HEADER))

	monitoringServer := api.NewMonitoringServer(monitoringMux)
	monitoringServer.Routes()

	monitoringSrv := utils.StartHTTPServer(*monitoringAddrPtr, "monitoring", monitoringMux)
	apiSrv := utils.StartHTTPServer(*apiAddrPtr, "path", apiMux)

	signalChan := make(chan os.Signal, 1)

	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-signalChan
	logger.Log.Info("Received signal to shutdown: ", sig)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HttpShutdownTimeout)
	defer cancel()

	utils.ShutdownHTTPServer(ctx, "path", apiSrv)
	utils.ShutdownHTTPServer(ctx, "monitoring", monitoringSrv)

	logger.Log.Info("gridpath shutting down")
}
