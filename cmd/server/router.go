package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/postwright/postwright-api/internal/api"
	apiMiddleware "github.com/postwright/postwright-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Every response carries permissive cross-origin headers. Preflight
	// passes through the cors middleware (which sets the headers) into
	// answerOptions, which terminates any OPTIONS request with 204.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"*"},
		OptionsPassthrough: true,
	}))
	r.Use(answerOptions)

	r.Use(apiMiddleware.TraceMiddleware)

	// Anything unmatched, path or method, is a plain-text 404. Registered
	// before the /api subrouter so it inherits both handlers.
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	generateHandler := api.NewGenerateHandler(app.generator, app.logger)
	staticHandler := api.NewStaticHandler(app.config.Server.LandingPage, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-comment", generateHandler.GenerateComments)
		r.Post("/generate-post-content", generateHandler.GeneratePostContent)
		r.Get("/ping", generateHandler.Ping)
	})

	r.Get("/", staticHandler.ServeLanding)

	return r
}

// answerOptions terminates every OPTIONS request with 204 and no body.
func answerOptions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}
