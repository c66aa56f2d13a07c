package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/atinyakov/TalkTracker/internal/middleware"
)

// NewRouter constructs the HTTP handler serving the talk tracker API. It
// applies JSON content-type enforcement, request logging, and bearer-token
// authentication, and mounts the account, list, and talk endpoints under
// /api.
//
// Routes:
//
//	POST   /api/register                              → authHandler.Register
//	POST   /api/login                                 → authHandler.Login
//	GET    /api/lists                                 → listHandler.Index
//	POST   /api/lists                                 → listHandler.Create
//	GET    /api/lists/{slug}                          → listHandler.Detail
//	PUT    /api/lists/{slug}                          → listHandler.Rename
//	GET    /api/lists/{slug}/schedule                 → listHandler.Schedule
//	POST   /api/lists/{slug}/talks                    → talkHandler.Create
//	GET    /api/lists/{slug}/talks/{talkID}           → talkHandler.Detail
//	POST   /api/lists/{slug}/talks/{talkID}/rating    → talkHandler.Rate
//	POST   /api/lists/{slug}/talks/{talkID}/notes     → talkHandler.SetNotes
//	POST   /api/lists/{slug}/talks/{talkID}/move      → talkHandler.Move
//	DELETE /api/lists/{slug}/talks/{talkID}           → talkHandler.Delete
//
// Everything except register and login requires a valid bearer token.
func NewRouter(
	authHandler *AuthHandler,
	listHandler *ListHandler,
	talkHandler *TalkHandler,
	jwtSecret []byte,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Enforce bearer-token authentication
	r.Use(middleware.BearerAuth(jwtSecret))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected group: requires valid session token
		r.Route("/lists", func(r chi.Router) {
			r.Get("/", listHandler.Index)
			r.Post("/", listHandler.Create)

			r.Route("/{slug}", func(r chi.Router) {
				r.Get("/", listHandler.Detail)
				r.Put("/", listHandler.Rename)
				r.Get("/schedule", listHandler.Schedule)

				r.Route("/talks", func(r chi.Router) {
					r.Post("/", talkHandler.Create)

					r.Route("/{talkID}", func(r chi.Router) {
						r.Get("/", talkHandler.Detail)
						r.Post("/rating", talkHandler.Rate)
						r.Post("/notes", talkHandler.SetNotes)
						r.Post("/move", talkHandler.Move)
						r.Delete("/", talkHandler.Delete)
					})
				})
			})
		})
	})

	return r
}
