package http

import (
	"net/http"

	"talenthub/internal/auth"
	"talenthub/internal/config"
	"talenthub/internal/http/handler"
	mw "talenthub/internal/http/middleware"
	"talenthub/internal/jobs"
	"talenthub/internal/profile"
	"talenthub/internal/user"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT) http.Handler {
	store := &user.GormStore{DB: db}
	jobsRepo := &jobs.Repo{DB: db}

	authSvc := &auth.Service{Store: store, JWT: jwtSvc, Welcome: jobsRepo}
	profileSvc := &profile.Service{Store: store}

	return Routes(cfg, store, authSvc, profileSvc, jwtSvc)
}

// Routes wires handlers against the store boundary; tests mount it with a
// fake store.
func Routes(cfg config.Config, store user.Store, authSvc *auth.Service, profileSvc *profile.Service, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{Auth: authSvc}
	ph := &handler.ProfileHandler{Profile: profileSvc}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", ah.Register)
			r.Post("/login", ah.Login)
			r.With(auth.RequireAuth(jwtSvc, store)).Get("/me", ah.Me)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtSvc, store))

			r.Get("/profile", ph.Get)
			r.Put("/profile", ph.Update)
		})
	})

	return r
}
