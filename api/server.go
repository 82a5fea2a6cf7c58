package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// NewHandler routes /analyze and /metrics behind CORS for the given origins.
func NewHandler(req *Request, corsOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", req.ProcessData)
	mux.Handle("/metrics", promhttp.Handler())

	return cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader, "ETag"},
	}).Handler(mux)
}
