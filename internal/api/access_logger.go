package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/katalvlaran/gridpath/internal/logger"
	"github.com/redhatinsights/platform-go-middlewares/request_id"
	"github.com/sirupsen/logrus"
)

func logrusAccessLogShim(_ io.Writer, params handlers.LogFormatterParams) {
	request := fmt.Sprintf("%s %s %s", params.Request.Method, params.URL.RequestURI(), params.Request.Proto)
	logger.Log.WithFields(logrus.Fields{
		"request":    request,
		"status":     params.StatusCode,
		"size":       params.Size,
		"request_id": request_id.GetReqID(params.Request.Context()),
	}).Info("access")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return handlers.CustomLoggingHandler(io.Discard, next, logrusAccessLogShim)
}
