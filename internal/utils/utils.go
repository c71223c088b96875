package utils

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/gridpath/internal/logger"
	"github.com/sirupsen/logrus"
)

// StartHTTPServer serves handler on addr in a background goroutine. Any
// error other than a clean shutdown is fatal.
func StartHTTPServer(addr, name string, handler *mux.Router) *http.Server {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.Log.WithFields(logrus.Fields{"server": name, "addr": addr}).Info("Starting server")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithFields(logrus.Fields{"error": err}).Fatalf("%s server error", name)
		}
	}()

	return srv
}

// ShutdownHTTPServer stops srv gracefully, waiting at most until ctx is done.
func ShutdownHTTPServer(ctx context.Context, name string, srv *http.Server) {
	logger.Log.WithField("server", name).Info("Shutting down server")
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithFields(logrus.Fields{"error": err}).Errorf("Error shutting down %s server", name)
	}
}
