package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analyzeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "morph_analyze_requests_total",
		Help: "Word analysis requests by analysis cache result",
	}, []string{"cache"})
	analyzeCacheHits     = analyzeRequests.WithLabelValues("hit")
	analyzeCacheMisses   = analyzeRequests.WithLabelValues("miss")
	analyzeCacheDisabled = analyzeRequests.WithLabelValues("disabled")

	analyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "morph_analyze_duration_seconds",
		Help:    "Time spent searching the morphotactic graph for one word",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	searchPaths = promauto.NewCounter(prometheus.CounterOpts{
		Name: "morph_search_paths_total",
		Help: "Search paths created while analyzing words",
	})

	surfaceCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "morph_surface_cache_lookups_total",
		Help: "Surface template cache lookups by result, added once per analyzed word",
	}, []string{"result"})
	surfaceCacheHits   = surfaceCacheLookups.WithLabelValues("hit")
	surfaceCacheMisses = surfaceCacheLookups.WithLabelValues("miss")

	analysesPerWord = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "morph_analyses_per_word",
		Help:    "Number of distinct analyses found for a word",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	})
)
