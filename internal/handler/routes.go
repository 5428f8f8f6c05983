package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/vaultpass/passgen/internal/middleware"
)

// Routes bundles the handlers mounted by NewRouter. Auth and Stats are nil when
// no database is available, in which case their routes are not registered.
type Routes struct {
	Generator *GeneratorHandler
	Auth      *AuthHandler
	Stats     *StatsHandler

	JWTSecret     string
	GenerateRPS   float64
	GenerateBurst int
}

// NewRouter builds the HTTP API.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rt.GenerateRPS, rt.GenerateBurst))
		r.Post("/api/v1/generate", rt.Generator.HandleGenerate)
	})
	r.Post("/api/v1/strength", rt.Generator.HandleStrength)

	if rt.Auth != nil && rt.Stats != nil {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/login", rt.Auth.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(rt.JWTSecret))
			r.Get("/api/v1/stats", rt.Stats.HandleStats)
		})
	}

	return r
}
