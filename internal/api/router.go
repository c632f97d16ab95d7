package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Jasch-M/asyncmuseum/internal/config"
	"github.com/Jasch-M/asyncmuseum/internal/utils"
)

func (h *Handler) Routes(corsCfg config.CORSConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	if h.Metrics != nil {
		r.Use(h.Metrics.Middleware)
	}
	r.Use(h.recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", h.Health)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/exhibits", func(r chi.Router) {
			r.Get("/", h.ListExhibits)
			r.Post("/", h.CreateExhibit)
			r.Get("/{id}", h.GetExhibit)
			r.Put("/{id}", h.UpdateExhibit)
			r.Delete("/{id}", h.DeleteExhibit)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.ListEvents)
			r.Post("/", h.CreateEvent)
			r.Get("/{id}", h.GetEvent)
			r.Put("/{id}", h.UpdateEvent)
			r.Delete("/{id}", h.DeleteEvent)
		})

		r.Get("/visitor-info", h.GetVisitorInfo)
		r.Put("/visitor-info", h.PutVisitorInfo)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Get("/user", h.CurrentUser)
			r.Post("/logout", h.Logout)
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", h.SubmitContact)
			r.Get("/", h.ListContactSubmissions)
			r.Put("/{id}/read", h.MarkContactRead)
		})
	})

	return r
}
