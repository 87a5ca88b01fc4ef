package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cbmpe-api/internal/config"
	"cbmpe-api/internal/handler"
	"cbmpe-api/internal/middleware"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Occurrence *handler.OccurrenceHandler
	Signature  *handler.SignatureHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
		auth.With(authMiddleware.RequireAuth).Get("/me", h.Auth.Me)
	})

	r.Route("/users", func(users chi.Router) {
		users.Use(authMiddleware.RequireAuth)
		users.Post("/", h.User.Create)
		users.Get("/", h.User.List)
		users.Get("/{id}", h.User.Get)
		users.Patch("/{id}", h.User.Update)
		users.Delete("/{id}", h.User.Delete)
	})

	r.Route("/occurrences", func(occurrences chi.Router) {
		occurrences.Use(authMiddleware.RequireAuth)
		occurrences.Post("/", h.Occurrence.Create)
		occurrences.Get("/", h.Occurrence.List)
		occurrences.Get("/{id}", h.Occurrence.Get)
		occurrences.Patch("/{id}", h.Occurrence.Update)
		occurrences.Delete("/{id}", h.Occurrence.Delete)
	})

	r.Route("/signatures", func(signatures chi.Router) {
		signatures.Use(authMiddleware.RequireAuth)
		signatures.Post("/", h.Signature.Create)
		signatures.Get("/", h.Signature.List)
		signatures.Get("/occurrence/{occurrenceId}", h.Signature.ListByOccurrence)
		signatures.Get("/{id}", h.Signature.Get)
		signatures.Patch("/{id}", h.Signature.Update)
		signatures.Delete("/{id}", h.Signature.Delete)
	})

	return r
}
