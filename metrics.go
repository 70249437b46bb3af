package eldlog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eldlog_http_requests_total",
		Help: "HTTP requests served, by route and status code.",
	}, []string{"route", "code"})

	daysNormalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eldlog_days_normalized_total",
		Help: "Log days produced by trip-result normalization.",
	})

	sampleFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eldlog_sample_fallbacks_total",
		Help: "Requests answered with the sample timeline because no usable day data was found.",
	})

	sheetsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eldlog_sheets_rendered_total",
		Help: "Log sheets rendered to SVG, by theme.",
	}, []string{"theme"})

	renderCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eldlog_render_cache_hits_total",
		Help: "Sheet renders served from the LRU cache.",
	})
)
