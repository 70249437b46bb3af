package eldlog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/princesinghrajput/eld-logsheet/convert"
	"github.com/princesinghrajput/eld-logsheet/logsheet"
	"github.com/princesinghrajput/eld-logsheet/render"
	"github.com/princesinghrajput/eld-logsheet/trip"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	requestsTotal.WithLabelValues("health", "200").Inc()
}

// handleLogs returns the normalized day list for the configured planner feed,
// or the sample timeline when the feed is absent or unusable.
func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	days := s.loadDays(r)
	writeJSON(w, http.StatusOK, days)
	requestsTotal.WithLabelValues("logs", "200").Inc()
}

// handleNormalize normalizes a raw trip result posted in the request body.
// Malformed JSON is the only error; an unrecognizable shape degrades to the
// sample timeline per the never-fail policy.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	result, err := trip.Decode(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		requestsTotal.WithLabelValues("normalize", "400").Inc()
		return
	}

	days := convert.NormalizeTripResult(result)
	if len(days) == 0 {
		sampleFallbacks.Inc()
		days = convert.SampleDays(s.now())
	}
	daysNormalized.Add(float64(len(days)))

	writeJSON(w, http.StatusOK, days)
	requestsTotal.WithLabelValues("normalize", "200").Inc()
}

// handleSheet renders one day's log sheet as SVG. Width and theme come from
// query parameters, defaulting to the configured render settings.
func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	days := s.loadDays(r)
	day, ok := findDay(days, chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown day id"})
		requestsTotal.WithLabelValues("sheet", "404").Inc()
		return
	}

	width := float64(s.cfg.Render.Width)
	if raw := r.URL.Query().Get("width"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			width = v
		}
	}
	theme := render.ParseTheme(s.cfg.Render.Theme)
	if raw := r.URL.Query().Get("theme"); raw != "" {
		theme = render.ParseTheme(raw)
	}

	svg, ok := s.cache.Get(day, width, theme)
	if ok {
		renderCacheHits.Inc()
	} else {
		geometry := render.LayoutDay(day, width)
		svg = []byte(render.RenderSheet(day, geometry, theme))
		if len(svg) == 0 {
			// Zero usable width: skip the frame rather than fail.
			w.WriteHeader(http.StatusNoContent)
			requestsTotal.WithLabelValues("sheet", "204").Inc()
			return
		}
		s.cache.Put(day, width, theme, svg)
		sheetsRendered.WithLabelValues(string(theme)).Inc()
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
	requestsTotal.WithLabelValues("sheet", "200").Inc()
}

// loadDays fetches the configured planner feed and normalizes it, degrading
// to the sample timeline on any failure.
func (s *Server) loadDays(r *http.Request) []logsheet.Day {
	result, err := s.client.Fetch(r.Context(), s.cfg.Planner.ResultURL)
	if err != nil {
		s.log.Warn().Err(err).Msg("planner fetch failed, serving sample timeline")
		result = nil
	}
	days := convert.NormalizeTripResult(result)
	if len(days) == 0 {
		sampleFallbacks.Inc()
		return convert.SampleDays(s.now())
	}
	daysNormalized.Add(float64(len(days)))
	return days
}

func findDay(days []logsheet.Day, id string) (logsheet.Day, bool) {
	for _, day := range days {
		if day.ID == id {
			return day, true
		}
	}
	// Positional fallback: "0", "1", ...
	if idx, err := strconv.Atoi(id); err == nil && idx >= 0 && idx < len(days) {
		return days[idx], true
	}
	return logsheet.Day{}, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
