package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/katalvlaran/gridpath/internal/logger"
)

type errorResponse struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.WithError(err).Error("Unable to encode payload!")
		return
	}
}

func writeError(w http.ResponseWriter, status int, title string, err error) {
	errorResponse := errorResponse{Title: title,
		Status: status,
		Detail: err.Error()}
	WriteJSONResponse(w, errorResponse.Status, errorResponse)
}

func decodeJSON(body io.ReadCloser, v interface{}) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return errors.New("Request body is too large")
		}
		return errors.New("Request body includes malformed json")
	}
	if dec.More() {
		return errors.New("Request body must only contain one json object")
	}

	return nil
}
