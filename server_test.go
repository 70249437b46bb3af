package eldlog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/princesinghrajput/eld-logsheet/config"
	"github.com/princesinghrajput/eld-logsheet/logsheet"
)

func testServer(t *testing.T, cfg config.AppConfig) *Server {
	t.Helper()
	srv, err := NewServer(cfg, zerolog.Nop())
	require.NoError(t, err)
	srv.now = func() time.Time { return time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC) }
	return srv
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t, config.Default())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleLogsServesSampleWithoutPlanner(t *testing.T) {
	srv := testServer(t, config.Default())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var days []logsheet.Day
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	require.Len(t, days, 2)
	require.True(t, days[0].IsSample)
	require.True(t, days[1].IsSample)
}

func TestHandleLogsFetchesPlanner(t *testing.T) {
	planner := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"daily_logs": [{"date": "2024-01-10", "segments": [
			{"status": "driving", "start": "06:00", "end": "10:00"}
		]}]}`))
	}))
	defer planner.Close()

	cfg := config.Default()
	cfg.Planner.ResultURL = planner.URL
	srv := testServer(t, cfg)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var days []logsheet.Day
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	require.Len(t, days, 1)
	require.False(t, days[0].IsSample)
	require.Equal(t, 240, days[0].Totals.DrivingMinutes)
}

func TestHandleLogsDegradesOnPlannerFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Planner.ResultURL = "http://127.0.0.1:1/nope"
	srv := testServer(t, cfg)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var days []logsheet.Day
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	require.Len(t, days, 2)
	require.True(t, days[0].IsSample)
}

func TestHandleNormalize(t *testing.T) {
	srv := testServer(t, config.Default())
	body := `{"hos": {"daily_logs": [{"date": "2024-01-10", "segments": [
		{"status": "off", "start_hour": 0, "end_hour": 5}
	]}]}}`

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/logs", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var days []logsheet.Day
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	require.Len(t, days, 1)
	require.Equal(t, 300, days[0].Totals.OffDutyMinutes)
}

func TestHandleNormalizeBadJSON(t *testing.T) {
	srv := testServer(t, config.Default())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/logs", strings.NewReader(`{`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSheet(t *testing.T) {
	srv := testServer(t, config.Default())

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs/sample-0/sheet.svg?theme=dark&width=900", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "REMARKS")
	require.Contains(t, rec.Body.String(), `fill="#020617"`)

	// Second render of the same sheet comes from the cache.
	again := httptest.NewRecorder()
	srv.Router().ServeHTTP(again, httptest.NewRequest(http.MethodGet, "/api/logs/sample-0/sheet.svg?theme=dark&width=900", nil))
	require.Equal(t, rec.Body.String(), again.Body.String())
}

func TestHandleSheetPositionalID(t *testing.T) {
	srv := testServer(t, config.Default())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs/1/sheet.svg", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleSheetUnknownDay(t *testing.T) {
	srv := testServer(t, config.Default())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs/nope/sheet.svg", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRenderCache(t *testing.T) {
	cache, err := NewRenderCache(2)
	require.NoError(t, err)

	day := logsheet.Day{ID: "d1"}
	cache.Put(day, 900, "light", []byte("<svg/>"))

	got, ok := cache.Get(day, 900, "light")
	require.True(t, ok)
	require.Equal(t, []byte("<svg/>"), got)

	_, ok = cache.Get(day, 1200, "light")
	require.False(t, ok, "different width is a different render")

	changed := day
	changed.Headline = "new content, same id"
	_, ok = cache.Get(changed, 900, "light")
	require.False(t, ok, "content change must invalidate")
}
