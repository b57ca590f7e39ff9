package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/seimei-api/internal/api"
	apiMiddleware "github.com/phrazzld/seimei-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	seimeiHandler := api.NewSeimeiHandler(app.seimeiService, app.dictionary, app.logger)

	r.Route("/seimei", func(r chi.Router) {
		r.Post("/analyze", seimeiHandler.Analyze)
		r.Post("/kakusu", seimeiHandler.Kakusu)
		r.Post("/kantei", seimeiHandler.Kantei)
	})

	r.Get("/health", seimeiHandler.Health)

	return r
}
