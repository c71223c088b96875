package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/internal/logger"
	"github.com/katalvlaran/gridpath/internal/planner"
	"github.com/katalvlaran/gridpath/search"
	"github.com/redhatinsights/platform-go-middlewares/request_id"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const REQUEST_ID_HEADER = "x-request-id"

func newTestRouter(maxBytes int64) (*mux.Router, *logtest.Hook) {
	hook := logtest.NewLocal(logger.Log)
	logger.Log.SetLevel(logrus.DebugLevel)

	r := mux.NewRouter()
	r.Use(request_id.ConfiguredRequestID(REQUEST_ID_HEADER))
	p := planner.New(planner.Defaults{MaxCells: 100}, logrus.NewEntry(logger.Log))
	NewPathServer(p, r, maxBytes).Routes()
	NewMonitoringServer(r).Routes()

	return r, hook
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, PATH_PREFIX+"/path", strings.NewReader(body))
	req.Header.Set(REQUEST_ID_HEADER, "test-request")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandlePath_OK(t *testing.T) {
	r, hook := newTestRouter(1 << 20)

	rr := post(r, `{"tiles": [[1,1,1],[1,1,1],[1,1,1]], "start": {"x":0,"y":0}, "goal": {"x":2,"y":2}}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "application/json; charset=UTF-8", rr.Header().Get("Content-Type"))

	var resp planner.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, search.NameDijkstra, resp.Strategy)
	require.NotNil(t, resp.Cost)
	assert.Equal(t, 4.0, *resp.Cost)
	assert.Len(t, resp.Path, 5)

	var access *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "access" {
			access = e
		}
	}
	require.NotNil(t, access, "access log written")
	assert.Equal(t, http.StatusOK, access.Data["status"])
}

func TestHandlePath_Errors(t *testing.T) {
	r, _ := newTestRouter(512)
	big := fmt.Sprintf(`{"tiles": [[%s1]]}`, strings.Repeat("1,", 400))

	cases := []struct {
		name   string
		body   string
		status int
		title  string
	}{
		{"Malformed", `{"tiles": [[1,1]`, http.StatusBadRequest, "Unable to process json input"},
		{"UnknownField", `{"tiles": [[1]], "colour": "red"}`, http.StatusBadRequest, "Unable to process json input"},
		{"TwoObjects", `{"tiles": [[1]]} {"tiles": [[1]]}`, http.StatusBadRequest, "Unable to process json input"},
		{"BodyTooLarge", big, http.StatusBadRequest, "Unable to process json input"},
		{"MissingTiles", `{"goal": {"x":1,"y":0}}`, http.StatusBadRequest, "Invalid path request"},
		{"UnknownStrategy", `{"tiles": [[1,1]], "goal": {"x":1,"y":0}, "strategy": "bfs"}`, http.StatusBadRequest, "Invalid path request"},
		{"TooManyCells", `{"tiles": [[1,1,1,1,1,1,1,1,1,1,1]` + strings.Repeat(`,[1,1,1,1,1,1,1,1,1,1,1]`, 9) + `]}`, http.StatusRequestEntityTooLarge, "Grid is too large"},
		{"Unreachable", `{"tiles": [[1,0,1]], "goal": {"x":2,"y":0}}`, http.StatusUnprocessableEntity, "No path to goal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := post(r, tc.body)
			assert.Equal(t, tc.status, rr.Code, rr.Body.String())

			var er errorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &er))
			assert.Equal(t, tc.title, er.Title)
			assert.Equal(t, tc.status, er.Status)
			assert.NotEmpty(t, er.Detail)
		})
	}
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	r, _ := newTestRouter(1 << 20)
	cases := []struct {
		method, path, allow string
	}{
		{http.MethodGet, "/path", http.MethodPost},
		{http.MethodDelete, "/path", http.MethodPost},
		{http.MethodPost, "/strategies", http.MethodGet},
	}
	for _, tc := range cases {
		t.Run(tc.method+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, PATH_PREFIX+tc.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			require.Equal(t, http.StatusMethodNotAllowed, rr.Code, rr.Body.String())
			assert.Equal(t, tc.allow, rr.Header().Get("Allow"))

			var er errorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &er))
			assert.Equal(t, "Method not allowed", er.Title)
			assert.Equal(t, http.StatusMethodNotAllowed, er.Status)
		})
	}
}

func TestHandleStrategies(t *testing.T) {
	r, _ := newTestRouter(1 << 20)
	req := httptest.NewRequest(http.MethodGet, PATH_PREFIX+"/strategies", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, search.Names(), body["strategies"])
	assert.Equal(t, []string{"div", "exp", "msh"}, body["heuristics"])
}

func TestMonitoringServer(t *testing.T) {
	r, _ := newTestRouter(1 << 20)

	// one search so the gridpath_ series exist
	require.Equal(t, http.StatusOK, post(r, `{"tiles": [[1,1]], "goal": {"x":1,"y":0}}`).Code)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "gridpath_search_total")

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: x", core.ErrPathNotFound), http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: x", search.ErrExpansionLimit), http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: x", planner.ErrInvalidRequest), http.StatusBadRequest},
		{fmt.Errorf("%w: x", planner.ErrGridTooLarge), http.StatusRequestEntityTooLarge},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		status, title := classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.NotEmpty(t, title)
	}
}
