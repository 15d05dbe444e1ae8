package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates the console router with all routes configured
func NewRouter(
	sessionHandler *SessionHandler,
	analyzerHandler *AnalyzerHandler,
	requestLogger func(http.Handler) http.Handler,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()
	router.Use(requestLogger)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"pdf-analyzer-console"}`))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Analyzer routes
	api.HandleFunc("/connectivity", analyzerHandler.CheckConnectivity).Methods(http.MethodGet)
	api.HandleFunc("/analyzer/health", analyzerHandler.Health).Methods(http.MethodGet)

	// Session routes
	api.HandleFunc("/session", sessionHandler.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/session/file", sessionHandler.SelectFile).Methods(http.MethodPost)
	api.HandleFunc("/session/upload", sessionHandler.Upload).Methods(http.MethodPost)
	api.HandleFunc("/session/analyze", sessionHandler.Analyze).Methods(http.MethodPost)
	api.HandleFunc("/session/results", sessionHandler.FetchResults).Methods(http.MethodPost)
	api.HandleFunc("/session/export", sessionHandler.Export).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			requestIDHeader,
		},
		ExposedHeaders: []string{
			"Content-Disposition",
			requestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
