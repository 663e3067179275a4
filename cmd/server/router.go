package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/moruhq/moru-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware and returns it.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public). Logout stays public so a
		// client holding a stale cookie can always clear it.
		r.Post("/auth/signup", app.authHandler.Signup)
		r.Post("/auth/login", app.authHandler.Login)
		r.Post("/auth/logout", app.authHandler.Logout)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(app.sessionMiddleware.Authenticate)

			r.Get("/users/me", app.authHandler.Me)

			r.Post("/memos", app.memoHandler.CreateMemo)
			r.Get("/memos", app.memoHandler.ListMemos)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
