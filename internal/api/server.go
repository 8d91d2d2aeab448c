package api

import (
	"log/slog"
	"net/http"

	"dossier/internal/config"
	"dossier/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for dossier.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLog(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(bearerAuth(s.cfg.APIKey))

		r.Post("/api/archives", s.handleIngest)
		r.Post("/api/archives/batch", s.handleBatchIngest)
		r.Post("/api/archives/preview", s.handlePreview)
		r.Get("/api/archives/{jobID}/status", s.handleIngestStatus)

		r.Get("/api/records", s.handleListRecords)
		r.Get("/api/records/{kind}/{name}", s.handleGetRecord)
		r.Delete("/api/records/{kind}/{name}", s.handleDeleteRecord)

		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
