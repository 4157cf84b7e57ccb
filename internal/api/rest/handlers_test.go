package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/ironforge/footylab/internal/genjob"
)

func TestSeasonParam(t *testing.T) {
	router := mux.NewRouter()
	var got string
	router.HandleFunc("/seasons/{season}/table", func(w http.ResponseWriter, r *http.Request) {
		got = seasonParam(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/seasons/2024-25/table", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, "2024/25", got)
}

func TestRouterRegistersDashboardRoutes(t *testing.T) {
	router := newRouter(NewHandler(nil, nil), NewGenerateHandler(genjob.NewService(nil, nil)))

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/api/v1/matches/MTH_00001"},
		{http.MethodGet, "/api/v1/seasons/2024-25/matchdays"},
		{http.MethodGet, "/api/v1/seasons/2024-25/matches"},
		{http.MethodGet, "/api/v1/seasons/2024-25/table"},
		{http.MethodPost, "/api/v1/regenerate"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		var match mux.RouteMatch
		require.True(t, router.Match(req, &match), "%s %s not routed", tc.method, tc.path)
	}
}

func TestGenerateHandlerAcceptsJob(t *testing.T) {
	svc := genjob.NewService(nil, nil)
	h := NewGenerateHandler(svc)

	body := strings.NewReader(`{"seed": 99, "num_clubs": 8, "season": "2024/25"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/regenerate", body)
	rec := httptest.NewRecorder()

	h.HandleGenerateRequest(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var job genjob.Job
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&job))
	require.Equal(t, int64(99), job.Seed)
	require.Equal(t, genjob.JobStatusQueued, job.Status)
	require.NotEmpty(t, job.JobID)
}

func TestGenerateHandlerRejectsBadRequests(t *testing.T) {
	svc := genjob.NewService(nil, nil)
	h := NewGenerateHandler(svc)

	cases := []string{
		`not json`,
		`{"num_clubs": 1, "season": "2024/25"}`,
		`{"num_clubs": 8}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/regenerate", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.HandleGenerateRequest(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestGenerateStatusEmpty(t *testing.T) {
	svc := genjob.NewService(nil, nil)
	h := NewGenerateHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/regenerate/status", nil)
	rec := httptest.NewRecorder()

	h.HandleGenerateStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status genjob.StatusSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	require.Nil(t, status.ActiveJob)
	require.Empty(t, status.History)
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "Internal server error", resp["error"])
}

func TestRespondErrorIncludesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, http.StatusNotFound, "Club not found", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
