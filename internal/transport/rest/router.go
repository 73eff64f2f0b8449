package rest

import (
	"net/http"
	"os"

	"interviewflow/internal/service"
	"interviewflow/internal/transport/rest/handler"
	"interviewflow/internal/transport/ws"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Container holds all dependencies for the router
type Container struct {
	Orchestrator   *service.Orchestrator
	HistoryService *service.HistoryService
	ResumeService  *service.ResumeService
	TrackerService *service.TrackerService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	interviewHandler := handler.NewInterviewHandler(c.Orchestrator, c.HistoryService)
	resumeHandler := handler.NewResumeHandler(c.ResumeService)
	trackerHandler := handler.NewTrackerHandler(c.TrackerService)
	wsHandler := ws.NewHandler(c.Orchestrator)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/interview/start", interviewHandler.Start).Methods("POST", "OPTIONS")
	api.HandleFunc("/interview/history", interviewHandler.History).Methods("GET", "OPTIONS")
	api.HandleFunc("/interview/{sessionId}/answer", interviewHandler.Answer).Methods("POST", "OPTIONS")
	api.HandleFunc("/interview/{sessionId}/telemetry", interviewHandler.Telemetry).Methods("POST", "OPTIONS")
	api.HandleFunc("/interview/{sessionId}/end", interviewHandler.End).Methods("POST", "OPTIONS")
	api.HandleFunc("/dashboard/stats", interviewHandler.DashboardStats).Methods("GET", "OPTIONS")

	api.HandleFunc("/resume/upload", resumeHandler.Upload).Methods("POST", "OPTIONS")
	api.HandleFunc("/resume/list", resumeHandler.List).Methods("GET", "OPTIONS")

	api.HandleFunc("/tracker", trackerHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/tracker/sync", trackerHandler.Sync).Methods("POST", "OPTIONS")
	api.HandleFunc("/tracker/job", trackerHandler.AddJob).Methods("POST", "OPTIONS")

	// WebSocket route
	api.HandleFunc("/ws/interview/{sessionId}", wsHandler.InterviewWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
