package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/braingym/internal/errors"
)

const requestTimeout = 10 * time.Second

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewNotFoundError("route", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, &errors.AppError{
			Code:    errors.ErrCodeBadRequest,
			Message: "method not allowed",
			Status:  http.StatusMethodNotAllowed,
		})
	})

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/session/events", s.handleEvents)

		r.Group(func(r chi.Router) {
			r.Use(timeoutMiddleware(requestTimeout))
			r.Use(bodyLimitMiddleware(maxBodyBytes))

			r.Get("/games", s.handleMenu)
			r.Get("/scores", s.handleBestScores)
			r.Get("/results", s.handleResults)

			r.Get("/session", s.handleGetSession)
			r.Post("/session/games/{id}", s.handleSelectGame)
			r.Post("/session/commands", s.handleCommand)
			r.Post("/session/exit", s.handleExit)
			r.Post("/session/home", s.handleExit)
			r.Post("/session/retry", s.handleRetry)
		})
	})
	return r
}
