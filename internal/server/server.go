package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// Server exposes the JSON API: job search, job detail, saved/applied
// tracking and CV upload. Authentication is out of scope, the caller
// identifies itself with the X-User-ID header.
type Server struct {
	httpServer *http.Server
}

func New(port int, handlers *Handlers) *Server {

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Get("/jobs", handlers.SearchJobs)
		r.Get("/jobs/feed", handlers.JobsFeed)
		r.Get("/jobs/{jobID}", handlers.GetJob)

		r.Post("/jobs/{jobID}/save", handlers.SaveJob)
		r.Delete("/jobs/{jobID}/save", handlers.UnsaveJob)
		r.Get("/saved-jobs", handlers.ListSavedJobs)

		r.Post("/jobs/{jobID}/apply", handlers.ApplyToJob)
		r.Get("/applications", handlers.ListApplications)

		r.Post("/cv", handlers.UploadCV)
		r.Get("/cv", handlers.GetCVProfile)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Run() {
	log.Infof("http server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("http server failed: %v", err)
	}
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
