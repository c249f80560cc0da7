package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arora962/NagarikMitra/internal/api"
	"github.com/Arora962/NagarikMitra/internal/config"
	"github.com/Arora962/NagarikMitra/internal/domain"
	"github.com/Arora962/NagarikMitra/internal/service"
	"github.com/Arora962/NagarikMitra/internal/storage"
	"github.com/Arora962/NagarikMitra/internal/storage/badger"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))

	kv, err := badger.Open(badger.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	store := service.NewReportStore(storage.NewReportRepository(kv, "", logger), logger)
	store.Initialize(ctx)

	svc := service.NewService(
		store,
		store,
		service.NewNearbyService(store, logger, 1.0),
		service.NewStatsService(store),
	)

	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverBadger}}
	return api.NewServer(ctx, cfg, logger, svc).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func TestRouter_ReportLifecycle(t *testing.T) {
	h := newTestServer(t)

	rr := do(t, h, http.MethodPost, "/api/v1/reports/",
		`{"photoReference":"p1","location":{"latitude":28.6139,"longitude":77.2090},"description":"pothole"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created domain.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, domain.StatusReported, created.Status)
	assert.Equal(t, domain.DepartmentUnassigned, created.Department)

	rr = do(t, h, http.MethodPost, "/api/v1/admin/reports/"+created.ID+"/advance", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = do(t, h, http.MethodPut, "/api/v1/admin/reports/"+created.ID+"/department", `{"department":"Public Works"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/api/v1/reports/"+created.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var got domain.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, domain.StatusAcknowledged, got.Status)
	assert.Equal(t, "Public Works", got.Department)

	rr = do(t, h, http.MethodGet, "/api/v1/reports/?status=Acknowledged", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list domain.ListReportsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list.Reports, 1)
	assert.Equal(t, 1, list.Total)

	rr = do(t, h, http.MethodGet, "/api/v1/reports/nearby?lat=28.6139&lng=77.2090", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var nearby domain.NearbyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &nearby))
	assert.Len(t, nearby.Reports, 1)

	rr = do(t, h, http.MethodGet, "/api/v1/admin/stats", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var stats domain.ReportStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.ByDepartment["Public Works"])

	rr = do(t, h, http.MethodDelete, "/api/v1/admin/reports/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, h, http.MethodDelete, "/api/v1/admin/reports/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodDelete, "/api/v1/admin/reports/", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRouter_SubmitValidation(t *testing.T) {
	h := newTestServer(t)

	rr := do(t, h, http.MethodPost, "/api/v1/reports/", `{"photoReference":" ","description":"x"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body struct {
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, []string{"photoReference", "location"}, body.Fields)

	rr = do(t, h, http.MethodGet, "/api/v1/reports/", "")
	var list domain.ListReportsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list.Reports)
}

func TestRouter_SystemEndpoints(t *testing.T) {
	h := newTestServer(t)

	rr := do(t, h, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "nagarik_reports")
}
